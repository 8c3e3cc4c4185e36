package xrotate

import (
	"io"

	"github.com/omeyang/xroll/pkg/observability/xroll"
)

//go:generate mockgen -destination=roller_mock_test.go -package=xrotate github.com/omeyang/xroll/pkg/observability/xroll Roller
//go:generate mockgen -destination=rotator_mock_test.go -package=xrotate -source=rotator.go

// 编译时断言：Rotator 接口是 io.WriteCloser 的超集
var _ io.WriteCloser = (Rotator)(nil)

// Rotator 日志轮转器接口
//
// 隐式实现 [io.WriteCloser]，可直接用作 xlog 的输出目标。
// 所有实现都必须是并发安全的。
type Rotator interface {
	// Write 写入日志数据，Trigger 要求时在写入后轮转
	Write(p []byte) (n int, err error)

	// Close 关闭轮转器，重复调用返回 [ErrClosed]
	Close() error

	// Rotate 以 [xroll.RollToday] 手动轮转
	Rotate() error

	// RotateWith 以指定 RollType 手动轮转
	RotateWith(rollType xroll.RollType) error
}

// Trigger 决定是否在本次写入后轮转。
//
// size 为写入后活动文件的大小（字节）。返回 true 时同时给出 RollType。
// Trigger 在 Rotator 的锁内调用，不得回调同一个 Rotator。
type Trigger interface {
	Trigger(size int64) (bool, xroll.RollType)
}

// TriggerFunc 将普通函数适配为 [Trigger]。
type TriggerFunc func(size int64) (bool, xroll.RollType)

// Trigger 调用 f(size)。
func (f TriggerFunc) Trigger(size int64) (bool, xroll.RollType) {
	return f(size)
}
