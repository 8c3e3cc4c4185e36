package xrun

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/omeyang/xroll/pkg/observability/xlog"
)

// Group 基于 errgroup 管理多个服务的并发运行和协调关闭。
//
// Go、GoWithName、Cancel 可并发调用；Wait 只应调用一次。
type Group struct {
	eg       *errgroup.Group
	ctx      context.Context
	causeCtx context.Context
	cancel   context.CancelCauseFunc
	opts     *groupOptions
}

// NewGroup 创建 Group，返回的 context 在任一服务出错或 Cancel 时取消。
// nil ctx 视为 context.Background()。
func NewGroup(ctx context.Context, opts ...Option) (*Group, context.Context) {
	if ctx == nil {
		ctx = context.Background()
	}
	options := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(options)
		}
	}

	causeCtx, cancel := context.WithCancelCause(ctx)
	eg, egCtx := errgroup.WithContext(causeCtx)
	return &Group{
		eg:       eg,
		ctx:      egCtx,
		causeCtx: causeCtx,
		cancel:   cancel,
		opts:     options,
	}, egCtx
}

// Go 在新 goroutine 中运行 fn。fn 返回非 nil 错误时取消其他服务。
func (g *Group) Go(fn func(ctx context.Context) error) {
	g.eg.Go(func() error {
		if fn == nil {
			return ErrNilFunc
		}
		return fn(g.ctx)
	})
}

// GoWithName 与 Go 相同，并在日志中记录服务名称。
func (g *Group) GoWithName(name string, fn func(ctx context.Context) error) {
	g.eg.Go(func() error {
		if fn == nil {
			return ErrNilFunc
		}
		g.debug("service starting", name)
		err := fn(g.ctx)
		if err != nil && !errors.Is(err, context.Canceled) {
			if l := g.opts.logger; l != nil {
				l.Warn(context.Background(), "service exited with error",
					xlog.Component(g.opts.name), xlog.Operation(name), xlog.Err(err))
			}
		} else {
			g.debug("service stopped", name)
		}
		return err
	})
}

func (g *Group) debug(msg, service string) {
	if l := g.opts.logger; l != nil {
		l.Debug(context.Background(), msg, xlog.Component(g.opts.name), xlog.Operation(service))
	}
}

// Wait 等待所有服务结束，返回第一个非 nil 错误。
//
// Group 被 Cancel(cause) 或信号取消时返回该 cause；没有显式原因的取消返回 nil。
// 服务内部自行产生的 context.Canceled 原样返回。
func (g *Group) Wait() error {
	defer g.cancel(nil)

	err := g.eg.Wait()
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	if err != nil && g.causeCtx.Err() == nil {
		return err
	}
	if g.causeCtx.Err() != nil {
		if cause := context.Cause(g.causeCtx); cause != nil && !errors.Is(cause, context.Canceled) {
			return cause
		}
	}
	return nil
}

// Cancel 取消所有服务，cause 会由 Wait 返回。cause 不应包装 context.Canceled。
func (g *Group) Cancel(cause error) {
	g.cancel(cause)
}

// Context 返回 Group 的 context。
func (g *Group) Context() context.Context {
	return g.ctx
}

// Run 运行 services 直到全部结束或收到终止信号。
//
// 收到信号时返回 *[SignalError]（errors.Is(err, ErrSignal) 为 true）。
func Run(ctx context.Context, opts []Option, services ...func(ctx context.Context) error) error {
	g, _ := NewGroup(ctx, opts...)

	if !g.opts.noSignalHandler {
		signals := g.opts.signals
		if len(signals) == 0 {
			signals = DefaultSignals()
		}
		g.Go(func(ctx context.Context) error {
			ch, stop := subscribe(ctx, signals)
			defer stop()
			select {
			case sig := <-ch:
				if l := g.opts.logger; l != nil {
					l.Info(context.Background(), "received signal",
						xlog.Component(g.opts.name), xlog.Operation(sig.String()))
				}
				g.Cancel(&SignalError{Signal: sig})
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}

	for _, svc := range services {
		g.Go(svc)
	}
	return g.Wait()
}
