package xroll

import (
	"errors"
	"fmt"
)

// 错误分类。所有构造期错误包装 ErrConfig，所有轮转 I/O 错误包装 ErrRotation。
var (
	// ErrConfig 配置错误，只在构造期返回。
	ErrConfig = errors.New("xroll: invalid configuration")

	// ErrRotation 轮转执行期间的 I/O 错误。
	ErrRotation = errors.New("xroll: rotation failed")
)

// 具体的配置错误。
var (
	// ErrMissingPlaceholder 模板缺少 "{}" 索引占位符。
	ErrMissingPlaceholder = errors.New("xroll: pattern does not contain {}")

	// ErrCompressionUnavailable 模板扩展名要求的压缩能力未编译进当前二进制。
	ErrCompressionUnavailable = errors.New("xroll: compression unavailable")

	// ErrInvalidMode 未知的编号模式。
	ErrInvalidMode = errors.New("xroll: invalid mode")

	// ErrUnknownKind 注册表中没有该类型的构造函数。
	ErrUnknownKind = errors.New("xroll: unknown roller kind")

	// ErrDuplicateKind 重复注册同一类型。
	ErrDuplicateKind = errors.New("xroll: duplicate roller kind")

	// ErrInvalidFactory 注册空类型名或 nil 构造函数。
	ErrInvalidFactory = errors.New("xroll: invalid factory")

	// ErrNilRoller 传入了 nil Roller。
	ErrNilRoller = errors.New("xroll: nil roller")
)

// ErrIndexExhausted 索引空间耗尽，从 base 到 math.MaxUint32 的路径全部被占用。
var ErrIndexExhausted = errors.New("xroll: archive index exhausted")

// ErrClosed Background 已关闭。
var ErrClosed = errors.New("xroll: roller closed")

func configError(err error, format string, args ...any) error {
	return fmt.Errorf("%w: %w: %s", ErrConfig, err, fmt.Sprintf(format, args...))
}

func rotationError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrRotation, op, err)
}
