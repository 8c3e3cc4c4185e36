package xlog

import (
	"log/slog"
	"time"
)

// 常用属性 key
const (
	KeyError     = "error"
	KeyDuration  = "duration"
	KeyComponent = "component"
	KeyOperation = "operation"
	KeyPath      = "path"
	KeyPattern   = "pattern"
	KeyIndex     = "index"
	KeyRollType  = "roll_type"
	KeyRoller    = "roller"
)

// Err 创建错误属性。err 为 nil 时返回空属性，slog 会忽略它。
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String(KeyError, err.Error())
}

// Duration 创建耗时属性，输出人类可读格式（如 "1.5s"）
func Duration(d time.Duration) slog.Attr {
	return slog.String(KeyDuration, d.String())
}

// Component 创建组件名属性
func Component(name string) slog.Attr {
	return slog.String(KeyComponent, name)
}

// Operation 创建操作名属性
func Operation(name string) slog.Attr {
	return slog.String(KeyOperation, name)
}

// Path 创建文件路径属性
func Path(p string) slog.Attr {
	return slog.String(KeyPath, p)
}

// Pattern 创建归档路径模板属性
func Pattern(p string) slog.Attr {
	return slog.String(KeyPattern, p)
}

// Index 创建归档索引属性
func Index(i uint32) slog.Attr {
	return slog.Uint64(KeyIndex, uint64(i))
}

// RollType 创建参考日期属性，接受任何实现 String 的值（如 xroll.RollType）
func RollType(t interface{ String() string }) slog.Attr {
	return slog.String(KeyRollType, t.String())
}

// Roller 创建配置中 roller 名称的属性
func Roller(name string) slog.Attr {
	return slog.String(KeyRoller, name)
}
