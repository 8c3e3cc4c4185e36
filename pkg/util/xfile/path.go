package xfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func containsNullByte(path string) bool {
	return strings.ContainsRune(path, 0)
}

// hasDotDotSegment 检测路径中是否有恰好等于 ".." 的路径段。
// '/' 与 '\' 都视为分隔符；"app..2024.log" 这类文件名不受影响。
func hasDotDotSegment(path string) bool {
	i := 0
	for i < len(path) {
		if path[i] == '/' || path[i] == '\\' {
			i++
			continue
		}
		j := i
		for j < len(path) && path[j] != '/' && path[j] != '\\' {
			j++
		}
		if j-i == 2 && path[i] == '.' && path[i+1] == '.' {
			return true
		}
		i = j
	}
	return false
}

// SanitizePath 对活动日志文件路径做格式净化并返回规范化结果。
//
// 拒绝：
//   - 空路径（[ErrEmptyPath]）
//   - 包含空字节的路径（[ErrNullByte]）
//   - 以 "/" 或 "\" 结尾的目录路径（[ErrInvalidPath]）
//   - 规范化后仍含 ".." 段的相对路径（[ErrPathTraversal]）
//
// 绝对路径中的 ".." 由 filepath.Clean 正常折叠，例如 "/var/log/../tmp/a.log" 得到
// "/var/tmp/a.log"。本函数不把路径限制在某个目录内。
func SanitizePath(filename string) (string, error) {
	if filename == "" {
		return "", fmt.Errorf("filename is required: %w", ErrEmptyPath)
	}
	if containsNullByte(filename) {
		return "", fmt.Errorf("filename contains null byte: %w", ErrNullByte)
	}
	// 必须在 Clean 之前检查，Clean 会去掉尾部分隔符
	if strings.HasSuffix(filename, "/") || strings.HasSuffix(filename, "\\") {
		return "", fmt.Errorf("path is a directory: %w", ErrInvalidPath)
	}

	cleaned := filepath.Clean(filename)
	if hasDotDotSegment(cleaned) {
		return "", fmt.Errorf("path traversal in filename: %w", ErrPathTraversal)
	}

	base := filepath.Base(cleaned)
	if base == "." || base == string(filepath.Separator) {
		return "", fmt.Errorf("no file name specified: %w", ErrInvalidPath)
	}
	return cleaned, nil
}

// Exists 报告 path 是否存在。
//
// 使用 Lstat，悬空符号链接也算占用槽位。权限不足等 stat 错误一律视为不存在，
// 与归档槽位扫描"能看到才算占用"的语义一致。
func Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
