package main

import (
	"context"
	"sync/atomic"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/xroll/pkg/config/xconf"
	"github.com/omeyang/xroll/pkg/observability/xlog"
	"github.com/omeyang/xroll/pkg/observability/xmetrics"
	"github.com/omeyang/xroll/pkg/observability/xroll"
)

// env 是一次命令执行的公共依赖。
type env struct {
	logger  xlog.LoggerWithLevel
	cleanup func() error

	// failures 后台归档失败次数，只经诊断回调报告。
	failures atomic.Int64

	// buildRoller 之后有效：配置来源时的文档与命令行派生选项。
	doc  *xconf.Document
	opts []xroll.Option
}

func newEnv(cmd *cli.Command) (*env, error) {
	logger, cleanup, err := xlog.New().
		SetOutput(cmd.Root().ErrWriter).
		SetLevelString(cmd.String(flagLogLevel)).
		Build()
	if err != nil {
		return nil, asUsageError(err)
	}
	return &env{logger: logger, cleanup: cleanup}, nil
}

func (e *env) close() {
	_ = e.cleanup()
}

// onRollError 后台诊断回调。
func (e *env) onRollError(err error) {
	e.failures.Add(1)
	e.logger.Error(context.Background(), "background roll failed",
		xlog.Component("xrollctl"), xlog.Err(err))
}

// rollerOptions 命令行派生的公共选项，位于配置之后，可覆盖配置。
func (e *env) rollerOptions(cmd *cli.Command) ([]xroll.Option, error) {
	c, err := clock(cmd)
	if err != nil {
		return nil, err
	}
	observer, err := xmetrics.NewOTelObserver(xmetrics.WithInstrumentationName("xrollctl"))
	if err != nil {
		return nil, err
	}
	opts := []xroll.Option{
		xroll.WithClock(c),
		xroll.WithLocalTime(cmd.Bool(flagLocalTime)),
		xroll.WithObserver(observer),
		xroll.WithOnError(e.onRollError),
	}
	if cmd.IsSet(flagBackground) {
		opts = append(opts, xroll.WithBackground(cmd.Bool(flagBackground)))
	}
	return opts, nil
}

// buildRoller 根据 --config/--roller 或内联 flag 构造 Roller，返回 Roller 与描述名。
func (e *env) buildRoller(cmd *cli.Command) (xroll.Roller, string, error) {
	opts, err := e.rollerOptions(cmd)
	if err != nil {
		return nil, "", err
	}
	e.opts = opts

	name := cmd.String(flagRoller)
	if name != "" || cmd.String(flagConfig) != "" {
		if cmd.IsSet(flagPattern) || cmd.IsSet(flagCount) {
			return nil, "", newUsageError("--%s 与内联 --%s/--%s 不能同时使用", flagRoller, flagPattern, flagCount)
		}
		doc, err := loadDocument(cmd)
		if err != nil {
			return nil, "", err
		}
		roller, err := doc.Build(name, nil, opts...)
		if err != nil {
			return nil, "", err
		}
		e.doc = doc
		return roller, name, nil
	}

	cfg, err := inlineConfig(cmd)
	if err != nil {
		return nil, "", err
	}
	roller, err := xroll.Build(cfg, opts...)
	if err != nil {
		return nil, "", asUsageError(err)
	}
	return roller, cfg.Pattern, nil
}

// loadDocument 加载 --config，--roller 缺失时返回参数错误。
func loadDocument(cmd *cli.Command) (*xconf.Document, error) {
	path := cmd.String(flagConfig)
	if path == "" {
		return nil, newUsageError("--%s 需要 --%s", flagRoller, flagConfig)
	}
	if cmd.String(flagRoller) == "" {
		return nil, newUsageError("--%s 需要 --%s", flagConfig, flagRoller)
	}
	return xconf.New(path)
}

func inlineConfig(cmd *cli.Command) (xroll.Config, error) {
	if !cmd.IsSet(flagPattern) || !cmd.IsSet(flagCount) {
		return xroll.Config{}, newUsageError("需要 --%s 与 --%s，或 --%s 与 --%s",
			flagPattern, flagCount, flagConfig, flagRoller)
	}
	count, err := uint32Flag(cmd, flagCount)
	if err != nil {
		return xroll.Config{}, err
	}
	mode, err := xroll.ParseMode(cmd.String(flagMode))
	if err != nil {
		return xroll.Config{}, asUsageError(err)
	}
	cfg := xroll.Config{
		Kind:     xroll.KindFixedWindow,
		Pattern:  cmd.String(flagPattern),
		Count:    count,
		Mode:     mode,
		LockFile: cmd.String(flagLockFile),
	}
	if cmd.IsSet(flagBase) {
		base, err := uint32Flag(cmd, flagBase)
		if err != nil {
			return xroll.Config{}, err
		}
		cfg.Base = &base
	}
	return cfg, nil
}

// waitRoller 等待后台归档完成。
func waitRoller(r xroll.Roller) {
	if w, ok := r.(xroll.Waiter); ok {
		w.Wait()
	}
}
