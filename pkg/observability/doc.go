// Package observability 提供日志与归档轮转相关的子包。
//
// 子包列表：
//   - xroll: 固定窗口归档轮转，支持日期模板、压缩与后台执行
//   - xrotate: 活动日志文件写入，按触发条件调用 xroll 轮转
//   - xlog: 结构化日志，基于 log/slog 扩展，可输出到 xrotate
//   - xmetrics: 统一可观测性接口（指标、追踪）
//
// 设计原则：
//   - 遵循 OpenTelemetry 语义规范
//   - 自动从 context 中提取追踪信息注入日志
package observability
