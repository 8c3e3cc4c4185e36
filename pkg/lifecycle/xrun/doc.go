// Package xrun 提供基于 errgroup + context 的进程生命周期管理。
//
// 当任一服务返回错误或收到终止信号时，共享的 context 被取消，
// 所有服务应监听 ctx.Done() 并退出。
//
//	err := xrun.Run(ctx, []xrun.Option{xrun.WithLogger(logger)},
//		xrun.OnSignal([]os.Signal{syscall.SIGHUP}, func(ctx context.Context, _ os.Signal) error {
//			return rotator.Rotate()
//		}),
//	)
//	if errors.Is(err, xrun.ErrSignal) {
//		// 正常的信号退出
//	}
//
// 默认终止信号为 SIGINT 与 SIGTERM。SIGHUP 不在其中，留给 [OnSignal] 使用。
package xrun
