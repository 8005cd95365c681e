// xmagicctl 是 xmagic 日志后端与内容识别结果的命令行工具。
//
// 用法:
//
//	xmagicctl <命令> [命令参数]
//
// 命令:
//
//	backends              列出日志后端、探测结果及当前会选中的后端
//	resolve [--type T]    打印后端解析结果
//	log [选项] <消息>     通过日志入口输出一条日志
//	shortname <名称>      打印限定名的最后一段
//	classify [选项]       打印一条内容识别结果
//
// 日志配置与库一致：XMAGIC_CONFIG 指定配置文件，XMAGIC_LOGGER_* 覆盖单项。
//
// 退出码:
//
//	0: 成功
//	1: 执行失败
//	2: 参数错误（缺少参数、非法级别、未知命令等）
//
// 示例:
//
//	xmagicctl backends
//	XMAGIC_LOGGER_TYPE=json xmagicctl resolve
//	xmagicctl log --label payment.refund --level warn "refund delayed"
//	xmagicctl shortname github.com.acme.shop.Service
//	xmagicctl classify --mime image/png --message "PNG image data"
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
)

// 版本信息（可通过 -ldflags 注入）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func main() {
	os.Exit(run(context.Background(), os.Args, os.Stdout, os.Stderr))
}

// createApp 创建 CLI 应用。
func createApp(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "xmagicctl",
		Usage:     "日志后端解析与内容识别工具",
		Version:   fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
		Writer:    stdout,
		ErrWriter: stderr,
		Commands:  createCommands(),
		// 禁止 urfave/cli 直接调用 os.Exit，由 run() 统一映射退出码。
		ExitErrHandler: func(_ context.Context, _ *cli.Command, err error) {
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(stderr, err)
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
			// flag 解析器已输出错误详情
			return 2
		}
		fmt.Fprintf(stderr, "错误: %v\n", err)
		return 1
	}
	return 0
}
