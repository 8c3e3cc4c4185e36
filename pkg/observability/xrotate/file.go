package xrotate

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"

	"github.com/omeyang/xroll/pkg/observability/xroll"
	"github.com/omeyang/xroll/pkg/util/xfile"
)

// fileRotator 基于 xroll.Roller 的 Rotator 实现
type fileRotator struct {
	path     string
	roller   xroll.Roller
	trigger  Trigger
	fileMode os.FileMode
	onError  func(error)

	mu   sync.Mutex // 保护 file 与 size
	file *os.File
	size int64

	closed atomic.Bool

	// 可注入的系统调用，仅用于测试
	openFn func(name string, flag int, perm os.FileMode) (*os.File, error)
}

// NewFile 创建写入 filename 的 Rotator，轮转时调用 roller。
//
// 会对文件路径进行规范化和安全检查，并创建不存在的父目录（权限 0750）。
// 活动文件在首次写入时才打开。
func NewFile(filename string, roller xroll.Roller, opts ...Option) (Rotator, error) {
	if filename == "" {
		return nil, ErrEmptyFilename
	}
	if roller == nil {
		return nil, ErrNilRoller
	}

	cfg := fileConfig{fileMode: DefaultFileMode}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	// FileMode 仅允许权限位（低 9 位），拒绝文件类型位、setuid/setgid 等
	if cfg.fileMode&^os.FileMode(0o777) != 0 {
		return nil, fmt.Errorf("%w: got %04o, only permission bits (0000~0777) allowed",
			ErrInvalidFileMode, cfg.fileMode)
	}

	safePath, err := xfile.SanitizePath(filename)
	if err != nil {
		return nil, err
	}
	if err := xfile.EnsureDir(safePath); err != nil {
		return nil, err
	}

	return &fileRotator{
		path:     safePath,
		roller:   roller,
		trigger:  cfg.trigger,
		fileMode: cfg.fileMode,
		onError:  cfg.onError,
		openFn:   os.OpenFile,
	}, nil
}

// Write 实现 io.Writer 接口
func (r *fileRotator) Write(p []byte) (int, error) {
	if r.closed.Load() {
		return 0, ErrClosed
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Close 可能在前置检查与加锁之间完成
	if r.closed.Load() {
		return 0, ErrClosed
	}

	if r.file == nil {
		if err := r.openLocked(); err != nil {
			return 0, err
		}
	}

	n, err := r.file.Write(p)
	r.size += int64(n)
	if err != nil {
		return n, fmt.Errorf("xrotate: write %s: %w", r.path, err)
	}

	if r.trigger == nil {
		return n, nil
	}
	if roll, rollType := r.trigger.Trigger(r.size); roll {
		if err := r.rotateLocked(rollType); err != nil {
			r.reportError(err)
			return n, err
		}
	}
	return n, nil
}

// Rotate 手动触发轮转
func (r *fileRotator) Rotate() error {
	return r.RotateWith(xroll.RollToday)
}

// RotateWith 以指定 RollType 手动触发轮转
//
// 活动文件不存在（尚未写入或已被外部移走）时不调用 Roller。
func (r *fileRotator) RotateWith(rollType xroll.RollType) error {
	if r.closed.Load() {
		return ErrClosed
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed.Load() {
		return ErrClosed
	}
	if err := r.rotateLocked(rollType); err != nil {
		r.reportError(err)
		return err
	}
	return nil
}

func (r *fileRotator) openLocked() error {
	f, err := r.openFn(r.path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, r.fileMode)
	if err != nil {
		return fmt.Errorf("xrotate: open %s: %w", r.path, err)
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("xrotate: stat %s: %w", r.path, err)
	}
	r.file = f
	r.size = info.Size()
	return nil
}

func (r *fileRotator) closeFileLocked() error {
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	if err != nil {
		return fmt.Errorf("xrotate: close %s: %w", r.path, err)
	}
	return nil
}

func (r *fileRotator) rotateLocked(rollType xroll.RollType) error {
	if err := r.closeFileLocked(); err != nil {
		return err
	}
	r.size = 0

	if !xfile.Exists(r.path) {
		return nil
	}
	if err := r.roller.Roll(r.path, rollType); err != nil {
		return fmt.Errorf("xrotate: roll %s: %w", r.path, err)
	}
	return nil
}

// reportError 通过回调上报内部错误
//
// 回调 panic 被 recover 隔离，防止日志错误通知反向中断业务主流程。
func (r *fileRotator) reportError(err error) {
	if err != nil && r.onError != nil {
		defer func() { recover() }() //nolint:errcheck // recover 返回值无需检查
		r.onError(err)
	}
}

// Close 实现 io.Closer 接口
//
// 首次 Close 即标记关闭，底层关闭失败后重试也只会得到 [ErrClosed]。
func (r *fileRotator) Close() error {
	if r.closed.Swap(true) {
		return ErrClosed
	}

	r.mu.Lock()
	err := r.closeFileLocked()
	r.mu.Unlock()

	if w, ok := r.roller.(xroll.Waiter); ok {
		w.Wait()
	}
	return err
}
