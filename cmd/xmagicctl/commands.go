package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/xmagic/pkg/content/xcontent"
	"github.com/omeyang/xmagic/pkg/observability/xlog"
	"github.com/omeyang/xmagic/pkg/observability/xlogbackend"
	"github.com/omeyang/xmagic/pkg/observability/xlogfactory"
)

// usageError 参数错误，退出码 2。
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

func usagef(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

// isCLIUsageError 判断是否为 urfave/cli 产生的参数错误（未知 flag、缺少 flag 值等）。
func isCLIUsageError(err error) bool {
	if _, ok := err.(cli.ExitCoder); ok {
		return true
	}
	msg := err.Error()
	for _, marker := range []string{"flag provided but not defined", "flag needs an argument", "invalid value", "Required flag"} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

// 创建所有子命令。
func createCommands() []*cli.Command {
	return []*cli.Command{
		createBackendsCommand(),
		createResolveCommand(),
		createLogCommand(),
		createShortNameCommand(),
		createClassifyCommand(),
	}
}

// defaultRegistry 按当前配置创建默认注册表，诊断写入 w
func defaultRegistry(w io.Writer) (*xlogbackend.Registry, xlogfactory.Settings, error) {
	settings, cfgErr := xlogfactory.LoadSettings()
	if cfgErr != nil {
		fmt.Fprintf(w, "配置警告: %v\n", cfgErr)
	}
	reg, err := xlogbackend.NewDefaultRegistry(xlogbackend.Options{
		Output:    w,
		File:      settings.File,
		ProjectID: settings.Project,
	})
	return reg, settings, err
}

func createBackendsCommand() *cli.Command {
	return &cli.Command{
		Name:  "backends",
		Usage: "列出日志后端及探测结果",
		Action: func(_ context.Context, cmd *cli.Command) error {
			return cmdBackends(cmd.Root().Writer, cmd.Root().ErrWriter)
		},
	}
}

func cmdBackends(stdout, stderr io.Writer) error {
	reg, settings, err := defaultRegistry(stderr)
	if err != nil {
		return err
	}
	selected := reg.Resolve(settings.Type).Name()

	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ORDER\tNAME\tUSABLE\tSELECTED")
	for i, d := range reg.Descriptors() {
		mark := ""
		if d.Name() == selected {
			mark = "*"
		}
		fmt.Fprintf(tw, "%d\t%s\t%t\t%s\n", i+1, d.Name(), xlogbackend.SafeProbe(d), mark)
	}
	return tw.Flush()
}

func createResolveCommand() *cli.Command {
	return &cli.Command{
		Name:  "resolve",
		Usage: "打印后端解析结果",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "type",
				Usage: "指定后端名称（覆盖 XMAGIC_LOGGER_TYPE）",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			return cmdResolve(cmd.Root().Writer, cmd.Root().ErrWriter, cmd.String("type"))
		},
	}
}

func cmdResolve(stdout, stderr io.Writer, override string) error {
	reg, settings, err := defaultRegistry(stderr)
	if err != nil {
		return err
	}
	if override == "" {
		override = settings.Type
	}
	fmt.Fprintln(stdout, reg.Resolve(override).Name())
	return nil
}

func createLogCommand() *cli.Command {
	return &cli.Command{
		Name:      "log",
		Usage:     "通过日志入口输出一条日志",
		ArgsUsage: "<message>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "label",
				Usage: "日志标签",
				Value: "xmagicctl",
			},
			&cli.StringFlag{
				Name:  "level",
				Usage: "日志级别 (trace/debug/info/warn/error/fatal)",
				Value: "info",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cmdLog(ctx, cmd.Root().Writer, cmd.String("label"), cmd.String("level"), cmd.Args().Slice())
		},
	}
}

func cmdLog(ctx context.Context, stdout io.Writer, label, levelText string, args []string) error {
	if len(args) == 0 {
		return usagef("缺少日志消息")
	}
	level, err := xlog.ParseLevel(levelText)
	if err != nil {
		return usagef("%v", err)
	}

	logger := xlogfactory.GetLogger(label)
	if !logger.Enabled(ctx, level) {
		fmt.Fprintf(stdout, "级别 %s 未启用，日志被丢弃\n", level)
		return nil
	}
	logger.Log(ctx, level, strings.Join(args, " "))
	return nil
}

func createShortNameCommand() *cli.Command {
	return &cli.Command{
		Name:      "shortname",
		Usage:     "打印限定名的最后一段",
		ArgsUsage: "<name>",
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return usagef("shortname 需要且只需要一个参数")
			}
			fmt.Fprintln(cmd.Root().Writer, xlogfactory.ShortName(cmd.Args().First()))
			return nil
		},
	}
}

func createClassifyCommand() *cli.Command {
	return &cli.Command{
		Name:  "classify",
		Usage: "打印一条内容识别结果",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "mime", Usage: "MIME 类型"},
			&cli.StringFlag{Name: "ext", Usage: "文件扩展名，未给出 --mime 时使用"},
			&cli.StringFlag{Name: "name", Usage: "MIME 类型无法识别时使用的名称"},
			&cli.StringFlag{Name: "message", Usage: "识别描述"},
			&cli.BoolFlag{Name: "partial", Usage: "是否为部分匹配"},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			return cmdClassify(cmd.Root().Writer, cmd.String("mime"), cmd.String("ext"),
				cmd.String("name"), cmd.String("message"), cmd.Bool("partial"))
		},
	}
}

func cmdClassify(stdout io.Writer, mime, ext, name, message string, partial bool) error {
	if mime == "" && ext == "" && name == "" {
		return usagef("需要 --mime、--ext 或 --name 之一")
	}
	if mime == "" && ext != "" {
		mime = xcontent.FromFileExtension(ext).MimeType()
	}

	info := xcontent.New(name, mime, message, partial)
	fmt.Fprintln(stdout, info)
	if exts := info.FileExtensions(); exts != nil {
		fmt.Fprintf(stdout, "extensions: %s\n", strings.Join(exts, ", "))
	}
	if info.Partial() {
		fmt.Fprintln(stdout, "partial: true")
	}
	return nil
}
