package xroll

import (
	"strconv"
	"strings"
)

// Mode 固定窗口的编号模式。
type Mode uint8

const (
	// ModeAppend 向上扫描第一个空闲索引，不改动既有归档。
	ModeAppend Mode = iota
	// ModeShift 既有归档索引加一，淘汰窗口外的最旧归档，新归档写入 base。
	ModeShift
)

// String 返回模式名称。
func (m Mode) String() string {
	switch m {
	case ModeAppend:
		return "append"
	case ModeShift:
		return "shift"
	default:
		return "mode(" + strconv.Itoa(int(m)) + ")"
	}
}

func (m Mode) valid() bool {
	return m == ModeAppend || m == ModeShift
}

// ParseMode 解析模式名称，大小写不敏感，空串为 [ModeAppend]。
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "append":
		return ModeAppend, nil
	case "shift":
		return ModeShift, nil
	default:
		return 0, configError(ErrInvalidMode, "%q", s)
	}
}

// MarshalText 实现 encoding.TextMarshaler。
func (m Mode) MarshalText() ([]byte, error) {
	if !m.valid() {
		return nil, configError(ErrInvalidMode, "%d", uint8(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText 实现 encoding.TextUnmarshaler，供配置解码使用。
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
