// Package xlog 基于 log/slog 的结构化日志库，供 xroll 的命令行与服务进程使用。
//
// # 创建 Logger
//
// 使用 Builder 模式（first-error-wins：遇到第一个配置错误后，Build 返回该错误）。
// Builder 方法：SetOutput、SetLevel、SetLevelString、SetFormat、SetAddSource、
// SetTrace、SetRotation、SetOnError、SetReplaceAttr。
//
//	logger, cleanup, err := xlog.New().
//		SetLevelString("debug").
//		SetFormat("json").
//		Build()
//	if err != nil {
//		return err
//	}
//	defer cleanup()
//
// # 日志轮转
//
// [Builder.SetRotation] 把输出切换为 [xrotate.Rotator]，轮转策略由调用方传入的
// [xroll.Roller] 决定。cleanup 会关闭 Rotator，并等待后台轮转完成。
//
// # 追踪字段
//
// 默认启用 [TraceHandler]：context 中存在有效的 OpenTelemetry span 时，
// 自动注入 trace_id 与 span_id。
//
// # 内部错误
//
// Handler 写入失败（磁盘满、轮转失败等）不会返回给调用方，只送往 OnError 回调。
// 回调内置递归保护与 panic 隔离。
package xlog
