package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/xroll/pkg/config/xconf"
	"github.com/omeyang/xroll/pkg/observability/xlog"
	"github.com/omeyang/xroll/pkg/observability/xroll"
)

// errBackgroundFailed 后台归档失败，详情已写入日志。
var errBackgroundFailed = errors.New("background roll failed")

func createRollCommand() *cli.Command {
	return &cli.Command{
		Name:      "roll",
		Usage:     "执行一次轮转",
		ArgsUsage: "<file>",
		Flags:     append(rollerFlags(), yesterdayFlag()),
		Action:    cmdRoll,
	}
}

func cmdRoll(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() != 1 {
		return newUsageError("roll 需要且只需要一个文件参数")
	}
	file := cmd.Args().First()

	e, err := newEnv(cmd)
	if err != nil {
		return err
	}
	defer e.close()

	roller, name, err := e.buildRoller(cmd)
	if err != nil {
		return err
	}

	rt := rollType(cmd)
	start := time.Now()
	if err := roller.Roll(file, rt); err != nil {
		return err
	}
	waitRoller(roller)
	if e.failures.Load() > 0 {
		return errBackgroundFailed
	}
	e.logger.Info(ctx, "rolled",
		xlog.Path(file), xlog.Roller(name), xlog.RollType(rt), xlog.Duration(time.Since(start)))
	return nil
}

func createResolveCommand() *cli.Command {
	return &cli.Command{
		Name:   "resolve",
		Usage:  "打印指定索引的归档路径",
		Flags:  []cli.Flag{patternFlag(), &cli.UintFlag{Name: flagIndex, Aliases: []string{"i"}, Usage: "归档索引"}, yesterdayFlag()},
		Action: cmdResolve,
	}
}

func cmdResolve(_ context.Context, cmd *cli.Command) error {
	pattern, err := requirePattern(cmd)
	if err != nil {
		return err
	}
	index, err := uint32Flag(cmd, flagIndex)
	if err != nil {
		return err
	}
	now, err := referenceNow(cmd)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.Root().Writer, xroll.Resolve(pattern, index, rollType(cmd), now))
	return nil
}

func createNextCommand() *cli.Command {
	return &cli.Command{
		Name:   "next",
		Usage:  "打印最小的空闲归档路径",
		Flags:  []cli.Flag{patternFlag(), baseFlag(), yesterdayFlag()},
		Action: cmdNext,
	}
}

func cmdNext(_ context.Context, cmd *cli.Command) error {
	pattern, err := requirePattern(cmd)
	if err != nil {
		return err
	}
	base, err := uint32Flag(cmd, flagBase)
	if err != nil {
		return err
	}
	now, err := referenceNow(cmd)
	if err != nil {
		return err
	}
	_, path, err := xroll.NextFree(pattern, base, rollType(cmd), now)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.Root().Writer, path)
	return nil
}

func requirePattern(cmd *cli.Command) (string, error) {
	pattern := cmd.String(flagPattern)
	if pattern == "" {
		return "", newUsageError("需要 --%s", flagPattern)
	}
	if !xroll.HasPlaceholder(pattern) {
		return "", asUsageError(fmt.Errorf("%w: %q", xroll.ErrMissingPlaceholder, pattern))
	}
	return pattern, nil
}

func createCheckCommand() *cli.Command {
	return &cli.Command{
		Name:   "check",
		Usage:  "校验配置文件并列出 Roller",
		Action: cmdCheck,
	}
}

func cmdCheck(_ context.Context, cmd *cli.Command) error {
	path := cmd.String(flagConfig)
	if path == "" {
		return newUsageError("check 需要 --%s", flagConfig)
	}
	doc, err := xconf.New(path)
	if err != nil {
		return err
	}

	out := cmd.Root().Writer
	var errs []error
	for _, name := range doc.Names() {
		cfg, err := doc.Roller(name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		// 只构造不轮转，校验模板与压缩能力
		if _, err := doc.Build(name, nil); err != nil {
			fmt.Fprintf(out, "%s\tINVALID\t%v\n", name, err)
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
			continue
		}
		fmt.Fprintf(out, "%s\t%s\n", name, describe(cfg))
	}
	fmt.Fprintf(out, "compression\t%s\n", describeCompressions())
	return errors.Join(errs...)
}

// describeCompressions 列出当前二进制可用的压缩方式，如 "none gzip(.gz)"。
func describeCompressions() string {
	parts := make([]string, 0, 3)
	for _, c := range xroll.Compressions() {
		if c.Extension == "" {
			parts = append(parts, c.Name)
			continue
		}
		parts = append(parts, c.Name+"("+c.Extension+")")
	}
	return strings.Join(parts, " ")
}

func describe(cfg xroll.Config) string {
	kind := cfg.KindOrDefault()
	if kind != xroll.KindFixedWindow {
		return "kind=" + kind
	}
	s := fmt.Sprintf("kind=%s pattern=%s base=%d count=%d mode=%s",
		kind, cfg.Pattern, cfg.BaseOrDefault(), cfg.Count, cfg.Mode)
	if cfg.Background {
		s += " background"
	}
	if cfg.LockFile != "" {
		s += " lock_file=" + cfg.LockFile
	}
	return s
}
