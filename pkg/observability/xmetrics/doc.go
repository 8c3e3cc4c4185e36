// Package xmetrics 提供归档轮转的可观测性接口（metrics + tracing）。
//
// xmetrics 仅定义最小化接口：Observer/Span/Attr，
// 轮转代码只依赖接口，默认实现为 [NoopObserver]；
// [NewOTelObserver] 提供基于 OpenTelemetry 的实现。
//
// # 使用示例
//
//	obs, _ := xmetrics.NewOTelObserver()
//	_, span := xmetrics.Start(ctx, obs, xmetrics.SpanOptions{
//		Component: "xroll",
//		Operation: "roll",
//		Attrs:     []xmetrics.Attr{xmetrics.String("pattern", pattern)},
//	})
//	defer func() { span.End(xmetrics.Result{Err: err}) }()
//
// # 指标命名
//
//   - xroll.rotation.total（counter）
//   - xroll.rotation.duration（histogram，单位秒）
//
// 指标属性固定为 component / operation / status，
// 路径、索引等高基数信息只写入 span 属性。
package xmetrics
