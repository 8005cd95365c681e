package xlogbackend

import (
	"log/slog"
	"sync"

	"github.com/omeyang/xmagic/pkg/observability/xlog"
)

var _ Descriptor = (*LocalDescriptor)(nil)

// LocalDescriptor 兜底后端：text 格式写入 Options.Output
//
// Probe 恒为 true，New 从不失败。nil *LocalDescriptor 与零值 LocalDescriptor{}
// 同样可用，缺省字段使用默认 Options（stderr、Info 级别）。
type LocalDescriptor struct {
	opts Options

	// 零值描述符首次使用时补齐一次默认值，之后构造的 logger 共享同一 LevelVar
	once     sync.Once
	resolved Options
}

// NewLocal 创建兜底描述符
func NewLocal(opts Options) *LocalDescriptor {
	return &LocalDescriptor{opts: opts.withDefaults()}
}

func (d *LocalDescriptor) options() Options {
	if d == nil {
		return Options{}.withDefaults()
	}
	d.once.Do(func() {
		d.resolved = d.opts.withDefaults()
	})
	return d.resolved
}

// Name 实现 Descriptor
func (d *LocalDescriptor) Name() string {
	return NameLocal
}

// Probe 实现 Descriptor，恒为 true
func (d *LocalDescriptor) Probe() bool {
	return true
}

// Construct 实现 Descriptor，error 恒为 nil
func (d *LocalDescriptor) Construct(label string) (xlog.LoggerWithLevel, error) {
	return d.New(label), nil
}

// New 构造绑定到 label 的 logger，从不失败
//
// Builder 构建失败时退化为未装饰的 slog.TextHandler。
func (d *LocalDescriptor) New(label string) xlog.LoggerWithLevel {
	opts := d.options()
	logger, _, err := opts.builder(opts.Output).
		SetFormat("text").
		SetAttrs(xlog.LoggerName(label)).
		Build()
	if err == nil {
		return logger
	}

	handler := slog.NewTextHandler(opts.Output, &slog.HandlerOptions{Level: opts.Level}).
		WithAttrs([]slog.Attr{xlog.LoggerName(label)})
	// handler 非 nil，NewFromHandler 不会失败
	raw, _ := xlog.NewFromHandler(handler, opts.Level)
	return raw
}
