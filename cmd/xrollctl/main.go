// xrollctl 是 xroll 归档轮转的运维命令行工具。
//
// 用法:
//
//	xrollctl [全局选项] <命令> [命令参数]
//
// 全局选项:
//
//	-c, --config     Roller 配置文件（YAML/JSON）
//	-r, --roller     配置文件中的 Roller 名称
//	    --log-level  日志级别 (debug/info/warn/error，默认 info)
//	    --local-time 日期 token 使用本地时区（默认 UTC）
//	    --time       参考时间（RFC3339，默认当前时间）
//
// 命令:
//
//	roll <file>      执行一次轮转
//	resolve          打印指定索引的归档路径
//	next             打印最小的空闲归档路径
//	check            校验配置文件并列出 Roller
//	watch <file>     常驻运行：SIGHUP 触发轮转，配置文件变更自动重载
//
// Roller 来源：--config 与 --roller 指定配置项，或通过 --pattern、--count、
// --base、--mode 内联指定。
//
// 退出码:
//
//	0: 成功
//	1: 操作失败
//	2: 参数错误
//
// 示例:
//
//	xrollctl roll --pattern 'archive/app.{yyyy-mm-dd}.{}.log.gz' --count 7 app.log
//	xrollctl -c xroll.yaml -r app roll --yesterday app.log
//	xrollctl resolve --pattern 'app.{yyyy-mm}.{}.log' --index 3
//	xrollctl -c xroll.yaml -r app watch app.log
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
)

// 版本信息，可通过 -ldflags "-X main.Version=..." 注入。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func main() {
	os.Exit(run(context.Background(), os.Args, os.Stdout, os.Stderr))
}

func createApp(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "xrollctl",
		Usage:     "xroll 归档轮转命令行工具",
		Version:   fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
		Writer:    stdout,
		ErrWriter: stderr,
		Flags:     globalFlags(),
		Commands: []*cli.Command{
			createRollCommand(),
			createResolveCommand(),
			createNextCommand(),
			createCheckCommand(),
			createWatchCommand(),
		},
		// 不让 urfave/cli 直接 os.Exit，退出码统一由 run 映射。
		ExitErrHandler: func(_ context.Context, cmd *cli.Command, err error) {
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(cmd.Root().ErrWriter, err)
			}
		},
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	app := createApp(stdout, stderr)
	if err := app.Run(ctx, args); err != nil {
		var usageErr *usageError
		if errors.As(err, &usageErr) {
			fmt.Fprintf(stderr, "参数错误: %v\n", usageErr)
			return 2
		}
		if isCLIUsageError(err) {
			return 2
		}
		fmt.Fprintf(stderr, "错误: %v\n", err)
		return 1
	}
	return 0
}
