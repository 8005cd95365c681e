package xlog

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/omeyang/xmagic/pkg/observability/xrotate"
)

// ReplaceAttrFunc 属性替换函数类型
//
// 用于字段重命名、脱敏、过滤等场景。
// 返回空 Key 的 Attr 时该属性会被移除。
type ReplaceAttrFunc func(groups []string, a slog.Attr) slog.Attr

// Builder 日志配置构建器
type Builder struct {
	output       io.Writer
	levelVar     *slog.LevelVar
	format       string
	addSource    bool
	enableEnrich bool
	cloudProject string // 非空时 EnrichHandler 输出 Cloud Logging 的 trace 字段
	attrs        []slog.Attr
	replaceAttr  ReplaceAttrFunc
	rotator      xrotate.Rotator
	onError      func(error)
	err          error
}

// New 创建配置构建器
//
// 默认：stderr、Info 级别、text 格式、启用 trace 注入。
func New() *Builder {
	levelVar := new(slog.LevelVar)
	levelVar.Set(slog.LevelInfo)

	return &Builder{
		output:       os.Stderr,
		levelVar:     levelVar,
		format:       "text",
		enableEnrich: true,
	}
}

// SetOutput 设置日志输出目标
func (b *Builder) SetOutput(w io.Writer) *Builder {
	if b.err != nil {
		return b
	}
	if w == nil {
		b.err = ErrNilOutput
		return b
	}
	b.output = w
	return b
}

// SetLevel 设置日志级别
//
// 作用于当前 LevelVar；若先调用了 SetLevelVar，会修改该共享 LevelVar。
func (b *Builder) SetLevel(level Level) *Builder {
	if b.err != nil {
		return b
	}
	b.levelVar.Set(slog.Level(level))
	return b
}

// SetLevelString 通过字符串设置日志级别
func (b *Builder) SetLevelString(s string) *Builder {
	if b.err != nil {
		return b
	}
	level, err := ParseLevel(s)
	if err != nil {
		b.err = err
		return b
	}
	return b.SetLevel(level)
}

// SetLevelVar 使用外部共享的 LevelVar
//
// 多个 logger 共享同一 LevelVar 时，任一处 SetLevel 对全部生效。
// nil 被忽略。
func (b *Builder) SetLevelVar(v *slog.LevelVar) *Builder {
	if b.err != nil || v == nil {
		return b
	}
	b.levelVar = v
	return b
}

// SetFormat 设置输出格式：text 或 json
func (b *Builder) SetFormat(format string) *Builder {
	if b.err != nil {
		return b
	}
	normalized := strings.ToLower(strings.TrimSpace(format))
	if normalized == "" {
		b.format = "text"
		return b
	}
	if normalized != "text" && normalized != "json" {
		b.err = fmt.Errorf("%w: %q", ErrUnknownFormat, format)
		return b
	}
	b.format = normalized
	return b
}

// SetAddSource 是否在日志中添加源码位置
func (b *Builder) SetAddSource(enable bool) *Builder {
	b.addSource = enable
	return b
}

// SetEnrich 是否启用 trace 信息自动注入，默认启用
func (b *Builder) SetEnrich(enable bool) *Builder {
	b.enableEnrich = enable
	return b
}

// SetCloudTrace 让 EnrichHandler 以 Cloud Logging 的字段名注入 trace
//
// projectID 用于拼接 "projects/<id>/traces/<trace_id>"。
func (b *Builder) SetCloudTrace(projectID string) *Builder {
	b.cloudProject = strings.TrimSpace(projectID)
	return b
}

// SetAttrs 设置固定属性，Build 时一次性注入 handler
func (b *Builder) SetAttrs(attrs ...slog.Attr) *Builder {
	b.attrs = append(b.attrs, attrs...)
	return b
}

// SetRotation 设置日志轮转
func (b *Builder) SetRotation(filename string, opts ...xrotate.Option) *Builder {
	if b.err != nil {
		return b
	}
	rotator, err := xrotate.NewLumberjack(filename, opts...)
	if err != nil {
		b.err = err
		return b
	}
	b.rotator = rotator
	b.output = rotator
	return b
}

// SetOnError 设置内部错误回调
//
// 当 Handler.Handle() 失败时调用。回调在热路径同步执行，应保持轻量。
func (b *Builder) SetOnError(fn func(error)) *Builder {
	b.onError = fn
	return b
}

// SetReplaceAttr 设置属性替换函数
//
// 在内置的级别名替换之后执行，因此 level 字段的值已是 "TRACE"、"FATAL" 等字符串。
func (b *Builder) SetReplaceAttr(fn ReplaceAttrFunc) *Builder {
	b.replaceAttr = fn
	return b
}

// Build 构建 Logger 实例
//
// 返回值：
//   - LoggerWithLevel: 日志实例
//   - func() error: 清理函数（关闭 SetRotation 创建的文件）
//   - error: 配置错误
func (b *Builder) Build() (LoggerWithLevel, func() error, error) {
	if b.err != nil {
		return nil, nil, b.err
	}

	replace := b.replaceAttr
	opts := &slog.HandlerOptions{
		Level:     b.levelVar,
		AddSource: b.addSource,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			a = replaceLevelName(groups, a)
			if replace != nil {
				a = replace(groups, a)
			}
			return a
		},
	}

	var handler slog.Handler
	switch b.format {
	case "json":
		handler = slog.NewJSONHandler(b.output, opts)
	default:
		handler = slog.NewTextHandler(b.output, opts)
	}

	if b.enableEnrich {
		eh, err := NewEnrichHandler(handler, WithCloudProject(b.cloudProject))
		if err != nil {
			return nil, nil, err
		}
		handler = eh
	}

	if len(b.attrs) > 0 {
		handler = handler.WithAttrs(b.attrs)
	}

	logger := &xlogger{
		handler:        handler,
		levelVar:       b.levelVar,
		onError:        b.onError,
		errorCount:     new(atomic.Uint64),
		addSource:      b.addSource,
		inErrorHandler: new(atomic.Bool),
	}

	return logger, b.createCleanup(), nil
}

// NewFromHandler 用现成的 handler 构建 logger
//
// 不做任何装饰，供 Builder 无法构建时的兜底路径使用。
// levelVar 为 nil 时使用 Info 级别的新 LevelVar。
func NewFromHandler(handler slog.Handler, levelVar *slog.LevelVar) (LoggerWithLevel, error) {
	if handler == nil {
		return nil, ErrNilHandler
	}
	if levelVar == nil {
		levelVar = new(slog.LevelVar)
	}
	return &xlogger{
		handler:        handler,
		levelVar:       levelVar,
		errorCount:     new(atomic.Uint64),
		inErrorHandler: new(atomic.Bool),
	}, nil
}

// createCleanup 创建清理函数
func (b *Builder) createCleanup() func() error {
	var once sync.Once
	rotator := b.rotator

	return func() error {
		var err error
		once.Do(func() {
			if rotator != nil {
				err = rotator.Close()
			}
		})
		return err
	}
}
