package xroll

// Builder 以链式调用构造固定窗口 Roller。
//
//	roller, err := xroll.NewBuilder().
//		Base(1).
//		Mode(xroll.ModeShift).
//		Build("archive/app.{}.log.gz", 5)
type Builder struct {
	cfg  Config
	opts []Option
}

// NewBuilder 创建 Builder。
func NewBuilder() *Builder {
	return &Builder{cfg: Config{Kind: KindFixedWindow}}
}

// Base 设置最小归档索引。
func (b *Builder) Base(base uint32) *Builder {
	b.cfg.Base = &base
	return b
}

// Mode 设置编号模式。
func (b *Builder) Mode(mode Mode) *Builder {
	b.cfg.Mode = mode
	return b
}

// LockFile 设置进程间锁文件。
func (b *Builder) LockFile(path string) *Builder {
	b.cfg.LockFile = path
	return b
}

// Background 为 true 时返回 [Background] 包装。
func (b *Builder) Background(background bool) *Builder {
	b.cfg.Background = background
	return b
}

// Options 追加其他选项，如 [WithClock]、[WithObserver]。
func (b *Builder) Options(opts ...Option) *Builder {
	b.opts = append(b.opts, opts...)
	return b
}

// Build 构造 Roller。
func (b *Builder) Build(pattern string, count uint32) (Roller, error) {
	cfg := b.cfg
	cfg.Pattern = pattern
	cfg.Count = count
	return fixedWindowFactory(cfg, b.opts...)
}
