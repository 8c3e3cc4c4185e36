package xrun

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// DefaultSignals 返回 Run 默认监听的终止信号：SIGINT、SIGTERM。每次返回新切片。
func DefaultSignals() []os.Signal {
	return []os.Signal{syscall.SIGINT, syscall.SIGTERM}
}

type testSigChanKey struct{}

// withTestSigChan 在 context 中注入信号通道，测试时替代真实的 signal.Notify。
func withTestSigChan(ctx context.Context, c <-chan os.Signal) context.Context {
	return context.WithValue(ctx, testSigChanKey{}, c)
}

// subscribe 订阅 signals。context 中注入了测试通道时直接使用该通道。
func subscribe(ctx context.Context, signals []os.Signal) (<-chan os.Signal, func()) {
	if c, ok := ctx.Value(testSigChanKey{}).(<-chan os.Signal); ok {
		return c, func() {}
	}
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, signals...)
	return ch, func() { signal.Stop(ch) }
}

// OnSignal 返回服务函数：每收到一次 signals 中的信号就调用一次 fn，直到 ctx 取消。
//
// fn 返回错误时服务结束并返回该错误，Group 随之取消。
// fn 执行期间到达的同类信号最多合并保留一个。
func OnSignal(signals []os.Signal, fn func(ctx context.Context, sig os.Signal) error) func(ctx context.Context) error {
	copied := append([]os.Signal(nil), signals...)
	return func(ctx context.Context) error {
		if fn == nil {
			return ErrNilFunc
		}
		ch, stop := subscribe(ctx, copied)
		defer stop()
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case sig := <-ch:
				if err := fn(ctx, sig); err != nil {
					return err
				}
			}
		}
	}
}

// WaitForDone 返回阻塞到 ctx 取消的服务函数。
func WaitForDone() func(ctx context.Context) error {
	return func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}
}
