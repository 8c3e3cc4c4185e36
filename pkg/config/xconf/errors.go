package xconf

import "errors"

// 配置加载和解析相关错误。
var (
	// ErrEmptyPath 配置文件路径为空。
	ErrEmptyPath = errors.New("xconf: empty config path")

	// ErrUnsupportedFormat 不支持的配置格式。
	ErrUnsupportedFormat = errors.New("xconf: unsupported config format")

	// ErrLoadFailed 读取配置文件失败。
	ErrLoadFailed = errors.New("xconf: failed to load config")

	// ErrParseFailed 配置内容无法解析。
	ErrParseFailed = errors.New("xconf: failed to parse config")

	// ErrDecodeFailed 字段类型或取值不合法。
	ErrDecodeFailed = errors.New("xconf: failed to decode config")

	// ErrUnknownField 文档包含未知字段。
	ErrUnknownField = errors.New("xconf: unknown field")

	// ErrMissingField 缺少必填字段。
	ErrMissingField = errors.New("xconf: missing required field")

	// ErrRollerNotFound 文档中没有指定名称的 Roller。
	ErrRollerNotFound = errors.New("xconf: roller not found")

	// ErrNotFromFile 从字节数据创建的 Document 不支持重载与监视。
	ErrNotFromFile = errors.New("xconf: document not loaded from file")
)

// 监视相关错误。
var (
	// ErrNilCallback 回调为 nil。
	ErrNilCallback = errors.New("xconf: watch callback is nil")

	// ErrInvalidDebounce 防抖时间不是正数。
	ErrInvalidDebounce = errors.New("xconf: debounce must be positive")
)
