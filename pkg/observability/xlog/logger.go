package xlog

import (
	"context"
	"log/slog"
	"runtime"
	"sync/atomic"
	"time"
)

// 编译时接口检查
var (
	_ Logger          = (*xlogger)(nil)
	_ Leveler         = (*xlogger)(nil)
	_ LoggerWithLevel = (*xlogger)(nil)
)

// xlogger Logger 接口的实现
type xlogger struct {
	handler        slog.Handler
	levelVar       *slog.LevelVar
	onError        func(error)    // 内部错误回调
	errorCount     *atomic.Uint64 // 内部错误计数器，派生 logger 共享
	addSource      bool           // 是否记录源码位置（热路径优化）
	inErrorHandler *atomic.Bool   // 防止 onError 递归调用，派生 logger 共享
}

// logWithSkip 通用日志方法
// extraSkip: 在直接调用方之外还需跳过的栈帧数
//
//go:noinline
func (l *xlogger) logWithSkip(ctx context.Context, level slog.Level, msg string, attrs []slog.Attr, extraSkip int) {
	if ctx == nil {
		ctx = context.Background()
	}
	if !l.handler.Enabled(ctx, level) {
		return
	}

	// 仅在启用 AddSource 时才捕获调用者位置，runtime.Callers 开销不可忽略
	var pc uintptr
	if l.addSource {
		var pcs [1]uintptr
		// skip=3: Callers(0) → logWithSkip(1) → 直接调用方(2) → 再上一层(3)
		runtime.Callers(3+extraSkip, pcs[:])
		pc = pcs[0]
	}

	r := slog.NewRecord(time.Now(), level, msg, pc)
	r.AddAttrs(attrs...)

	if err := l.handler.Handle(ctx, r); err != nil {
		l.handleError(err)
	}
}

// log 实例便利方法共用的入口
// 调用链：业务代码 → Debug/Info/… → log → logWithSkip
//
//go:noinline
func (l *xlogger) log(ctx context.Context, level slog.Level, msg string, attrs []slog.Attr) {
	l.logWithSkip(ctx, level, msg, attrs, 1)
}

// handleError 处理内部错误（Handler.Handle 失败）
//
// 内置递归保护与 panic 隔离：回调内部再次出错不会无限递归，回调 panic 不会扩散。
// CAS 保护期间并发到达的错误只计数、不回调。
func (l *xlogger) handleError(err error) {
	if l.errorCount != nil {
		l.errorCount.Add(1)
	}
	if l.onError != nil && l.inErrorHandler != nil {
		if l.inErrorHandler.CompareAndSwap(false, true) {
			defer l.inErrorHandler.Store(false)
			l.safeOnError(err)
		}
	}
}

// safeOnError 执行 onError 回调，回调 panic 计入错误计数
func (l *xlogger) safeOnError(err error) {
	defer func() {
		if r := recover(); r != nil {
			if l.errorCount != nil {
				l.errorCount.Add(1)
			}
		}
	}()
	l.onError(err)
}

// Log 以指定级别记录日志
//
//go:noinline
func (l *xlogger) Log(ctx context.Context, level Level, msg string, attrs ...slog.Attr) {
	l.log(ctx, slog.Level(level), msg, attrs)
}

// Debug 记录 Debug 级别日志
func (l *xlogger) Debug(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, slog.LevelDebug, msg, attrs)
}

// Info 记录 Info 级别日志
func (l *xlogger) Info(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, slog.LevelInfo, msg, attrs)
}

// Warn 记录 Warn 级别日志
func (l *xlogger) Warn(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, slog.LevelWarn, msg, attrs)
}

// Error 记录 Error 级别日志
func (l *xlogger) Error(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, slog.LevelError, msg, attrs)
}

// derive 复制共享状态，替换 handler
func (l *xlogger) derive(h slog.Handler) *xlogger {
	return &xlogger{
		handler:        h,
		levelVar:       l.levelVar,
		onError:        l.onError,
		errorCount:     l.errorCount,
		addSource:      l.addSource,
		inErrorHandler: l.inErrorHandler,
	}
}

// With 返回带额外属性的派生 Logger
func (l *xlogger) With(attrs ...slog.Attr) Logger {
	if len(attrs) == 0 {
		return l
	}
	return l.derive(l.handler.WithAttrs(attrs))
}

// WithGroup 返回带分组的派生 Logger
func (l *xlogger) WithGroup(name string) Logger {
	if name == "" {
		return l
	}
	return l.derive(l.handler.WithGroup(name))
}

// SetLevel 动态设置日志级别
func (l *xlogger) SetLevel(level Level) {
	l.levelVar.Set(slog.Level(level))
}

// GetLevel 获取当前日志级别
func (l *xlogger) GetLevel() Level {
	return Level(l.levelVar.Level())
}

// Enabled 检查指定级别是否启用
func (l *xlogger) Enabled(ctx context.Context, level Level) bool {
	if ctx == nil {
		ctx = context.Background()
	}
	return l.handler.Enabled(ctx, slog.Level(level))
}

// leveledLogger 组合 Logger 与 Leveler，供 Derive 包装非 xlogger 实现
type leveledLogger struct {
	Logger
	Leveler
}

// Derive 返回带额外属性的派生 logger，保留级别控制
//
// 派生 logger 与 l 共享 handler 链、LevelVar 和输出目标。
func Derive(l LoggerWithLevel, attrs ...slog.Attr) LoggerWithLevel {
	if l == nil {
		return nil
	}
	d := l.With(attrs...)
	if dl, ok := d.(LoggerWithLevel); ok {
		return dl
	}
	return leveledLogger{Logger: d, Leveler: l}
}
