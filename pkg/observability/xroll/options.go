package xroll

import (
	"time"

	"github.com/omeyang/xroll/pkg/observability/xmetrics"
)

type options struct {
	base       uint32
	mode       Mode
	clock      func() time.Time
	localTime  bool
	observer   xmetrics.Observer
	onError    func(error)
	lockFile   string
	background bool
}

func defaultOptions() *options {
	return &options{
		mode:     ModeAppend,
		clock:    time.Now,
		observer: xmetrics.NoopObserver{},
	}
}

func applyOptions(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

// Option 配置 Roller。nil Option 被忽略。
type Option func(*options)

// WithBase 设置最小归档索引，默认 0。
func WithBase(base uint32) Option {
	return func(o *options) {
		o.base = base
	}
}

// WithMode 设置编号模式，默认 [ModeAppend]。
func WithMode(mode Mode) Option {
	return func(o *options) {
		o.mode = mode
	}
}

// WithClock 设置时钟，nil 被忽略。
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		if clock != nil {
			o.clock = clock
		}
	}
}

// WithLocalTime 日期 token 使用本地时区，默认 UTC。
func WithLocalTime(local bool) Option {
	return func(o *options) {
		o.localTime = local
	}
}

// WithObserver 设置观测器，nil 被忽略。
func WithObserver(observer xmetrics.Observer) Option {
	return func(o *options) {
		if observer != nil {
			o.observer = observer
		}
	}
}

// WithOnError 设置非致命错误回调。
//
// 接收释放文件锁失败等不影响本次结果的错误；由 [Build] 构造的后台轮转
// 也把后台错误送到这里。回调中的 panic 会被恢复。
func WithOnError(fn func(error)) Option {
	return func(o *options) {
		o.onError = fn
	}
}

// WithLockFile 在扫描与归档期间持有 path 上的进程间排他锁（flock），
// 使共享归档目录的多个进程不会选中同一个索引。空串关闭该功能。
func WithLockFile(path string) Option {
	return func(o *options) {
		o.lockFile = path
	}
}

// WithBackground 由 [Build] 和 [Registry.Build] 使用：为 true 时把固定窗口 Roller
// 包装为 [Background]。仅删除模式（count 为 0）不包装。
// [NewFixedWindow] 忽略此选项。
func WithBackground(background bool) Option {
	return func(o *options) {
		o.background = background
	}
}

func (o *options) now() time.Time {
	t := o.clock()
	if o.localTime {
		return t.Local()
	}
	return t.UTC()
}

func (o *options) reportError(err error) {
	if o.onError == nil || err == nil {
		return
	}
	defer func() { _ = recover() }()
	o.onError(err)
}
