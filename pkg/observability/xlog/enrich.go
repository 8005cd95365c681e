package xlog

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/trace"
)

// trace 字段的标准 key
const (
	KeyTraceID      = "trace_id"
	KeySpanID       = "span_id"
	KeyTraceSampled = "trace_sampled"

	// Cloud Logging 识别的 trace 字段
	KeyCloudTrace        = "logging.googleapis.com/trace"
	KeyCloudSpanID       = "logging.googleapis.com/spanId"
	KeyCloudTraceSampled = "logging.googleapis.com/trace_sampled"
)

// EnrichOption EnrichHandler 配置选项
type EnrichOption func(*EnrichHandler)

// WithCloudProject 使用 Cloud Logging 的 trace 字段名
//
// projectID 为空时保持默认的 trace_id/span_id 字段。
func WithCloudProject(projectID string) EnrichOption {
	return func(h *EnrichHandler) {
		h.cloudProject = projectID
	}
}

// EnrichHandler 自动从 context 提取 OpenTelemetry span 信息并注入日志
//
// 装饰模式实现，包装底层 slog.Handler。context 中没有有效 span 时不注入任何字段。
type EnrichHandler struct {
	base         slog.Handler
	cloudProject string
}

// NewEnrichHandler 创建 EnrichHandler
//
// 调用 WithGroup 后注入的 trace 字段会被归入 group 下，这是 slog handler 架构的固有限制。
func NewEnrichHandler(base slog.Handler, opts ...EnrichOption) (*EnrichHandler, error) {
	if base == nil {
		return nil, ErrNilHandler
	}
	h := &EnrichHandler{base: base}
	for _, opt := range opts {
		if opt != nil {
			opt(h)
		}
	}
	return h, nil
}

// Enabled 委托给底层 handler
func (h *EnrichHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.base.Enabled(ctx, level)
}

// maxEnrichAttrs 最大注入属性数量
const maxEnrichAttrs = 3

// Handle 在调用底层 handler 前注入 trace 字段
//
// 根据 slog 契约，修改前必须 Clone record。
func (h *EnrichHandler) Handle(ctx context.Context, r slog.Record) error {
	var buf [maxEnrichAttrs]slog.Attr
	attrs := h.appendTraceAttrs(buf[:0], ctx)

	if len(attrs) > 0 {
		r = r.Clone()
		r.AddAttrs(attrs...)
	}

	return h.base.Handle(ctx, r)
}

// appendTraceAttrs 追加 ctx 中 span 的 trace 字段
func (h *EnrichHandler) appendTraceAttrs(attrs []slog.Attr, ctx context.Context) []slog.Attr {
	if ctx == nil {
		return attrs
	}
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return attrs
	}

	if h.cloudProject != "" {
		return append(attrs,
			slog.String(KeyCloudTrace, "projects/"+h.cloudProject+"/traces/"+sc.TraceID().String()),
			slog.String(KeyCloudSpanID, sc.SpanID().String()),
			slog.Bool(KeyCloudTraceSampled, sc.IsSampled()),
		)
	}
	return append(attrs,
		slog.String(KeyTraceID, sc.TraceID().String()),
		slog.String(KeySpanID, sc.SpanID().String()),
		slog.Bool(KeyTraceSampled, sc.IsSampled()),
	)
}

// WithAttrs 返回带额外属性的新 handler
func (h *EnrichHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &EnrichHandler{
		base:         h.base.WithAttrs(attrs),
		cloudProject: h.cloudProject,
	}
}

// WithGroup 返回带分组的新 handler
func (h *EnrichHandler) WithGroup(name string) slog.Handler {
	return &EnrichHandler{
		base:         h.base.WithGroup(name),
		cloudProject: h.cloudProject,
	}
}
