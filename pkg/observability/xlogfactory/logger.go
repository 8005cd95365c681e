package xlogfactory

import (
	"context"
	"log/slog"

	"github.com/omeyang/xmagic/pkg/observability/xlog"
)

// Logger 绑定到标签的日志句柄
//
// 句柄之间没有共享的可变状态，底层后端自身的状态（输出、级别）除外。
// 所有方法并发安全。
type Logger struct {
	label    string
	backend  string
	degraded bool
	base     xlog.LoggerWithLevel
}

// Label 句柄的标签
func (l *Logger) Label() string {
	return l.label
}

// Backend 实际使用的后端名称
func (l *Logger) Backend() string {
	return l.backend
}

// Degraded 句柄是否因后端构造失败而改用兜底后端
func (l *Logger) Degraded() bool {
	return l.degraded
}

// Enabled 指定级别是否会被输出
func (l *Logger) Enabled(ctx context.Context, level xlog.Level) bool {
	return l.base.Enabled(ctx, level)
}

// Log 以指定级别输出一条日志
func (l *Logger) Log(ctx context.Context, level xlog.Level, msg string, attrs ...slog.Attr) {
	l.base.Log(ctx, level, msg, attrs...)
}

// Trace 输出 Trace 级别日志
func (l *Logger) Trace(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.base.Log(ctx, xlog.LevelTrace, msg, attrs...)
}

// Debug 输出 Debug 级别日志
func (l *Logger) Debug(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.base.Log(ctx, xlog.LevelDebug, msg, attrs...)
}

// Info 输出 Info 级别日志
func (l *Logger) Info(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.base.Log(ctx, xlog.LevelInfo, msg, attrs...)
}

// Warn 输出 Warn 级别日志
func (l *Logger) Warn(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.base.Log(ctx, xlog.LevelWarn, msg, attrs...)
}

// Error 输出 Error 级别日志
func (l *Logger) Error(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.base.Log(ctx, xlog.LevelError, msg, attrs...)
}

// Fatal 输出 Fatal 级别日志
//
// 只记录，不退出进程；是否终止由调用方决定。
func (l *Logger) Fatal(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.base.Log(ctx, xlog.LevelFatal, msg, attrs...)
}

// With 返回附加了固定属性的新句柄，标签与后端不变
func (l *Logger) With(attrs ...slog.Attr) *Logger {
	if len(attrs) == 0 {
		return l
	}
	derived := *l
	derived.base = xlog.Derive(l.base, attrs...)
	return &derived
}
