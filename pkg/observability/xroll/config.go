package xroll

// Roller 类型名。
const (
	KindFixedWindow = "fixed_window"
	KindDelete      = "delete"
)

// Config 是从配置文件解码得到的 Roller 参数。
//
// Base 为 nil 时使用 0。Kind 为空时按 [KindFixedWindow] 处理。
type Config struct {
	Kind       string  `koanf:"kind" json:"kind,omitempty"`
	Pattern    string  `koanf:"pattern" json:"pattern,omitempty"`
	Base       *uint32 `koanf:"base" json:"base,omitempty"`
	Count      uint32  `koanf:"count" json:"count"`
	Mode       Mode    `koanf:"mode" json:"mode"`
	Background bool    `koanf:"background" json:"background,omitempty"`
	LockFile   string  `koanf:"lock_file" json:"lock_file,omitempty"`
}

// KindOrDefault 返回 Kind，空时为 [KindFixedWindow]。
func (c Config) KindOrDefault() string {
	if c.Kind == "" {
		return KindFixedWindow
	}
	return c.Kind
}

// BaseOrDefault 返回 Base，nil 时为 0。
func (c Config) BaseOrDefault() uint32 {
	if c.Base == nil {
		return 0
	}
	return *c.Base
}

// options 把配置字段转换为 Option，位于调用方 Option 之前，调用方可覆盖。
func (c Config) options() []Option {
	return []Option{
		WithBase(c.BaseOrDefault()),
		WithMode(c.Mode),
		WithLockFile(c.LockFile),
		WithBackground(c.Background),
	}
}
