package xroll

import (
	"sort"
	"sync"
)

// Factory 根据配置构造 Roller。opts 位于配置派生的选项之后，可覆盖配置。
type Factory func(cfg Config, opts ...Option) (Roller, error)

// Registry 把类型名映射到 [Factory]。并发安全。
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry 创建空注册表。
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// DefaultRegistry 返回预置 [KindFixedWindow] 与 [KindDelete] 的新注册表。
// 每次调用返回独立实例，调用方注册的类型互不影响。
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.factories[KindFixedWindow] = fixedWindowFactory
	r.factories[KindDelete] = deleteFactory
	return r
}

// Register 注册 kind。kind 已存在返回 [ErrDuplicateKind]。
func (r *Registry) Register(kind string, factory Factory) error {
	if kind == "" || factory == nil {
		return configError(ErrInvalidFactory, "kind %q", kind)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.factories[kind]; ok {
		return configError(ErrDuplicateKind, "%q", kind)
	}
	r.factories[kind] = factory
	return nil
}

// Build 按 cfg.Kind 构造 Roller，Kind 为空时使用 [KindFixedWindow]。
// 未注册的类型返回 [ErrUnknownKind]。
func (r *Registry) Build(cfg Config, opts ...Option) (Roller, error) {
	kind := cfg.KindOrDefault()
	r.mu.RLock()
	factory, ok := r.factories[kind]
	r.mu.RUnlock()
	if !ok {
		return nil, configError(ErrUnknownKind, "%q", kind)
	}
	return factory(cfg, opts...)
}

// Kinds 返回已注册的类型名，按字典序排列。
func (r *Registry) Kinds() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	kinds := make([]string, 0, len(r.factories))
	for k := range r.factories {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

var std = DefaultRegistry()

// Build 使用默认注册表构造 Roller。
func Build(cfg Config, opts ...Option) (Roller, error) {
	return std.Build(cfg, opts...)
}

func fixedWindowFactory(cfg Config, opts ...Option) (Roller, error) {
	all := append(cfg.options(), opts...)
	roller, err := NewFixedWindow(cfg.Pattern, cfg.Count, all...)
	if err != nil {
		return nil, err
	}
	o := roller.opts
	if !o.background || cfg.Count == 0 {
		return roller, nil
	}

	bgOpts := []BackgroundOption{
		WithStampClock(o.clock),
		WithBackgroundObserver(o.observer),
	}
	if o.onError != nil {
		bgOpts = append(bgOpts, WithDiagnostics(o.onError))
	}
	return NewBackground(roller, bgOpts...), nil
}

func deleteFactory(Config, ...Option) (Roller, error) {
	return DeleteRoller{}, nil
}
