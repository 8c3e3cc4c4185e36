package xfile

import (
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// StampedPath 用 ".<n>" 替换 path 最后一个扩展名。
//
// 没有扩展名时直接追加：
//
//	StampedPath("logs/app.log", 42) // "logs/app.42"
//	StampedPath("logs/app", 42)     // "logs/app.42"
//
// 以 "." 开头的隐藏文件名（".app"）不视为扩展名。
func StampedPath(path string, n uint64) string {
	dir, file := filepath.Split(path)
	ext := filepath.Ext(file)
	if ext == file {
		ext = ""
	}
	return dir + strings.TrimSuffix(file, ext) + "." + strconv.FormatUint(n, 10)
}

// UniqueStampedPath 返回一个当前不存在的时间戳路径。
//
// 起始值为 now 的 Unix 秒数，已被占用时逐一递增。
// 检查与后续使用之间存在 TOCTOU 窗口，调用方需保证同一 path 的调用串行。
func UniqueStampedPath(path string, now time.Time) string {
	secs := now.Unix()
	if secs < 0 {
		secs = 0
	}
	n := uint64(secs)
	candidate := StampedPath(path, n)
	for Exists(candidate) {
		n++
		candidate = StampedPath(path, n)
	}
	return candidate
}
