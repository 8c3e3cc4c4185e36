package xconf

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"

	"github.com/knadh/koanf/v2"

	"github.com/omeyang/xroll/pkg/observability/xroll"
)

// Document 一份 Roller 配置文档。
type Document struct {
	path      string
	format    Format
	fromBytes bool

	mu    sync.Mutex // 串行化 Reload
	state atomic.Pointer[snapshot]
}

// New 从文件加载文档，格式由扩展名决定。
func New(path string) (*Document, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}
	snap, err := readSnapshot(path, format)
	if err != nil {
		return nil, err
	}
	d := &Document{path: path, format: format}
	d.state.Store(snap)
	return d, nil
}

// NewFromBytes 从字节数据加载文档。空数据得到不含 Roller 的文档。
func NewFromBytes(data []byte, format Format) (*Document, error) {
	snap, err := parse(data, format)
	if err != nil {
		return nil, err
	}
	d := &Document{format: format, fromBytes: true}
	d.state.Store(snap)
	return d, nil
}

func readSnapshot(path string, format Format) (*snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}
	return parse(data, format)
}

// Reload 重新读取文件。失败时保留旧配置。
func (d *Document) Reload() error {
	if d.fromBytes {
		return ErrNotFromFile
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	snap, err := readSnapshot(d.path, d.format)
	if err != nil {
		return err
	}
	d.state.Store(snap)
	return nil
}

// Client 返回当前快照的 koanf 实例。Reload 后旧实例仍可用，但内容已过期。
func (d *Document) Client() *koanf.Koanf {
	return d.state.Load().k
}

// Path 返回文件路径，从字节数据创建时为空。
func (d *Document) Path() string { return d.path }

// Format 返回文档格式。
func (d *Document) Format() Format { return d.format }

// Names 返回所有 Roller 名称，按字典序排列。
func (d *Document) Names() []string {
	names := d.state.Load().names
	return append([]string(nil), names...)
}

// Roller 返回 name 的配置。
func (d *Document) Roller(name string) (xroll.Config, error) {
	cfg, ok := d.state.Load().rollers[name]
	if !ok {
		return xroll.Config{}, fmt.Errorf("%w: %q", ErrRollerNotFound, name)
	}
	if cfg.Base != nil {
		base := *cfg.Base
		cfg.Base = &base
	}
	return cfg, nil
}

// Build 用 reg 构造 name 对应的 Roller，reg 为 nil 时使用 xroll 的默认注册表。
// opts 位于配置派生的选项之后。
func (d *Document) Build(name string, reg *xroll.Registry, opts ...xroll.Option) (xroll.Roller, error) {
	cfg, err := d.Roller(name)
	if err != nil {
		return nil, err
	}
	if reg == nil {
		return xroll.Build(cfg, opts...)
	}
	return reg.Build(cfg, opts...)
}
