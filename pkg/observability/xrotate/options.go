package xrotate

import "os"

// DefaultFileMode 活动日志文件的默认权限，实际权限受 umask 影响
const DefaultFileMode os.FileMode = 0o644

type fileConfig struct {
	trigger  Trigger
	fileMode os.FileMode
	onError  func(error)
}

// Option 配置选项函数，nil 被忽略
type Option func(*fileConfig)

// WithTrigger 设置轮转触发器。未设置时只能通过 Rotate/RotateWith 手动轮转。
func WithTrigger(trigger Trigger) Option {
	return func(c *fileConfig) {
		c.trigger = trigger
	}
}

// WithFileMode 设置活动文件的创建权限，仅允许权限位（0000~0777）
func WithFileMode(mode os.FileMode) Option {
	return func(c *fileConfig) {
		c.fileMode = mode
	}
}

// WithOnError 设置错误回调函数
//
// 接收轮转失败等错误。不使用 slog 上报，避免 Rotator 作为日志输出目标时
// 产生递归写入。回调函数不得向同一 Rotator 写入数据，回调中的 panic 会被恢复。
func WithOnError(fn func(error)) Option {
	return func(c *fileConfig) {
		c.onError = fn
	}
}
