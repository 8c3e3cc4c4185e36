package main

import (
	"math"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/xroll/pkg/observability/xroll"
)

const (
	flagConfig     = "config"
	flagRoller     = "roller"
	flagLogLevel   = "log-level"
	flagLocalTime  = "local-time"
	flagTime       = "time"
	flagPattern    = "pattern"
	flagCount      = "count"
	flagBase       = "base"
	flagMode       = "mode"
	flagLockFile   = "lock-file"
	flagIndex      = "index"
	flagYesterday  = "yesterday"
	flagBackground = "background"
)

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: flagConfig, Aliases: []string{"c"}, Usage: "Roller 配置文件（YAML/JSON）"},
		&cli.StringFlag{Name: flagRoller, Aliases: []string{"r"}, Usage: "配置文件中的 Roller 名称"},
		&cli.StringFlag{Name: flagLogLevel, Usage: "日志级别 (debug/info/warn/error)", Value: "info"},
		&cli.BoolFlag{Name: flagLocalTime, Usage: "日期 token 使用本地时区"},
		&cli.StringFlag{Name: flagTime, Usage: "参考时间（RFC3339），默认当前时间"},
	}
}

func patternFlag() cli.Flag {
	return &cli.StringFlag{Name: flagPattern, Aliases: []string{"p"}, Usage: "归档路径模板，必须包含 {}"}
}

func baseFlag() cli.Flag {
	return &cli.UintFlag{Name: flagBase, Aliases: []string{"b"}, Usage: "最小归档索引"}
}

func yesterdayFlag() cli.Flag {
	return &cli.BoolFlag{Name: flagYesterday, Usage: "日期 token 使用前一天"}
}

// rollerFlags 内联 Roller 定义，与 --config/--roller 互斥。
func rollerFlags() []cli.Flag {
	return []cli.Flag{
		patternFlag(),
		&cli.UintFlag{Name: flagCount, Aliases: []string{"n"}, Usage: "窗口大小，0 表示仅删除"},
		baseFlag(),
		&cli.StringFlag{Name: flagMode, Aliases: []string{"m"}, Usage: "编号模式 (append/shift)"},
		&cli.StringFlag{Name: flagLockFile, Usage: "进程间锁文件"},
		&cli.BoolFlag{Name: flagBackground, Usage: "后台执行归档"},
	}
}

func rollType(cmd *cli.Command) xroll.RollType {
	if cmd.Bool(flagYesterday) {
		return xroll.RollYesterday
	}
	return xroll.RollToday
}

func uint32Flag(cmd *cli.Command, name string) (uint32, error) {
	v := cmd.Uint(name)
	if v > math.MaxUint32 {
		return 0, newUsageError("--%s %d 超出范围", name, v)
	}
	return uint32(v), nil
}

// clock 返回参考时钟：--time 固定时间，否则为 time.Now。
func clock(cmd *cli.Command) (func() time.Time, error) {
	s := cmd.String(flagTime)
	if s == "" {
		return time.Now, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, newUsageError("--%s: %w", flagTime, err)
	}
	return func() time.Time { return t }, nil
}

// referenceNow 返回日期 token 使用的当前时间，时区与 xroll 选项一致。
func referenceNow(cmd *cli.Command) (time.Time, error) {
	c, err := clock(cmd)
	if err != nil {
		return time.Time{}, err
	}
	now := c()
	if cmd.Bool(flagLocalTime) {
		return now.Local(), nil
	}
	return now.UTC(), nil
}
