package main

import (
	"context"
	"errors"
	"os"
	"sync"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/xroll/pkg/config/xconf"
	"github.com/omeyang/xroll/pkg/lifecycle/xrun"
	"github.com/omeyang/xroll/pkg/observability/xlog"
	"github.com/omeyang/xroll/pkg/observability/xroll"
	"github.com/omeyang/xroll/pkg/util/xfile"
)

func createWatchCommand() *cli.Command {
	return &cli.Command{
		Name:      "watch",
		Usage:     "常驻运行：SIGHUP 触发轮转，配置文件变更自动重载，SIGINT/SIGTERM 退出",
		ArgsUsage: "<file>",
		Flags:     append(rollerFlags(), yesterdayFlag()),
		Action:    cmdWatch,
	}
}

// watchState 常驻模式下的当前 Roller，配置重载时替换。
type watchState struct {
	env      *env
	file     string
	rollType xroll.RollType
	name     string

	mu     sync.Mutex // 串行化 Roll 与替换
	roller xroll.Roller
}

func cmdWatch(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() != 1 {
		return newUsageError("watch 需要且只需要一个文件参数")
	}

	e, err := newEnv(cmd)
	if err != nil {
		return err
	}
	defer e.close()

	roller, name, err := e.buildRoller(cmd)
	if err != nil {
		return err
	}
	st := &watchState{
		env:      e,
		file:     cmd.Args().First(),
		rollType: rollType(cmd),
		name:     name,
		roller:   roller,
	}

	services := []func(context.Context) error{
		xrun.OnSignal([]os.Signal{syscall.SIGHUP}, st.rollOnSignal),
	}
	if e.doc != nil {
		services = append(services, watchConfig(e.doc, st.reload))
	}

	e.logger.Info(ctx, "watching", xlog.Path(st.file), xlog.Roller(name))
	err = xrun.Run(ctx, []xrun.Option{xrun.WithLogger(e.logger), xrun.WithName("xrollctl")}, services...)
	st.wait()

	if errors.Is(err, xrun.ErrSignal) {
		return nil
	}
	return err
}

// rollOnSignal 轮转活动文件。失败只记录日志，不结束常驻进程。
func (s *watchState) rollOnSignal(ctx context.Context, _ os.Signal) error {
	if !xfile.Exists(s.file) {
		s.env.logger.Warn(ctx, "active file missing, roll skipped", xlog.Path(s.file))
		return nil
	}

	s.mu.Lock()
	err := s.roller.Roll(s.file, s.rollType)
	s.mu.Unlock()

	if err != nil {
		s.env.logger.Error(ctx, "roll failed", xlog.Path(s.file), xlog.Roller(s.name), xlog.Err(err))
		return nil
	}
	s.env.logger.Info(ctx, "rolled", xlog.Path(s.file), xlog.Roller(s.name), xlog.RollType(s.rollType))
	return nil
}

// reload 配置变更后重建 Roller。重建失败保留当前 Roller。
func (s *watchState) reload(doc *xconf.Document, err error) {
	ctx := context.Background()
	if err != nil {
		s.env.logger.Warn(ctx, "config reload failed, keeping current roller",
			xlog.Path(doc.Path()), xlog.Err(err))
		return
	}
	roller, err := doc.Build(s.name, nil, s.env.opts...)
	if err != nil {
		s.env.logger.Warn(ctx, "rebuilding roller failed, keeping current roller",
			xlog.Roller(s.name), xlog.Err(err))
		return
	}

	s.mu.Lock()
	old := s.roller
	s.roller = roller
	s.mu.Unlock()

	waitRoller(old)
	s.env.logger.Info(ctx, "roller reloaded", xlog.Roller(s.name))
}

func (s *watchState) current() xroll.Roller {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.roller
}

func (s *watchState) wait() {
	waitRoller(s.current())
}

// watchConfig 返回监视配置文件的服务函数，ctx 取消时停止监视。
func watchConfig(doc *xconf.Document, callback xconf.WatchCallback) func(context.Context) error {
	return func(ctx context.Context) error {
		w, err := xconf.Watch(doc, callback)
		if err != nil {
			return err
		}
		w.StartAsync()
		<-ctx.Done()
		return errors.Join(w.Stop(), ctx.Err())
	}
}
