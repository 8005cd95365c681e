package xlogfactory

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/omeyang/xmagic/pkg/observability/xlog"
	"github.com/omeyang/xmagic/pkg/observability/xlogbackend"
)

// diagLabel 本包诊断日志的标签
const diagLabel = "xlogfactory"

var (
	// ErrNilLogger 后端构造返回了 nil logger 且没有错误
	ErrNilLogger = errors.New("xlogfactory: backend returned nil logger")

	// ErrConstructPanic 后端构造时 panic
	ErrConstructPanic = errors.New("xlogfactory: backend construction panicked")
)

// resolution 一次后端解析的结果，发布后只读
type resolution struct {
	registry   *xlogbackend.Registry
	descriptor xlogbackend.Descriptor
	level      *slog.LevelVar
}

var (
	// current 已发布的解析结果，nil 表示尚未解析
	current atomic.Pointer[resolution]

	// resolveMu 串行化首次解析
	resolveMu sync.Mutex

	// registryFactory 由后端配置创建注册表，测试可替换
	registryFactory = xlogbackend.NewDefaultRegistry
)

// GetLogger 返回绑定到 label 的日志句柄
//
// 从不返回 nil，也从不失败。首次调用触发后端解析，之后复用解析结果。
func GetLogger(label string) *Logger {
	return load().newLogger(label)
}

// GetLoggerFor 以 v 的动态类型全名作为标签返回日志句柄
//
// 标签形如 "github.com.acme.shop.order.Service"：包路径中的 "/" 替换为 "."，
// 因此 ShortName 得到类型名。指针类型取其元素类型；v 为 nil 时标签为空。
func GetLoggerFor(v any) *Logger {
	return GetLogger(typeLabel(v))
}

// Resolved 返回已解析的后端名称，不触发解析
func Resolved() (name string, ok bool) {
	r := current.Load()
	if r == nil {
		return "", false
	}
	return r.descriptor.Name(), true
}

// load 返回解析结果，必要时执行首次解析
func load() *resolution {
	if r := current.Load(); r != nil {
		return r
	}

	resolveMu.Lock()
	defer resolveMu.Unlock()
	if r := current.Load(); r != nil {
		return r
	}
	r := resolve()
	current.Store(r)
	return r
}

// resolve 读取配置并选出后端，调用方持有 resolveMu
func resolve() *resolution {
	settings, cfgErr := LoadSettings()

	level := new(slog.LevelVar)
	opts := settings.options(level)

	reg, regErr := registryFactory(opts)
	if regErr != nil || reg == nil {
		// 兜底注册表只含 local，NewRegistry 不会失败
		reg, _ = xlogbackend.NewRegistry(xlogbackend.NewLocal(opts))
	}

	if err := errors.Join(cfgErr, regErr); err != nil {
		reg.Fallback().New(diagLabel).Warn(context.Background(),
			"logger configuration partially ignored", xlog.Err(err))
	}

	return &resolution{
		registry:   reg,
		descriptor: reg.Resolve(settings.Type),
		level:      level,
	}
}

// newLogger 用已解析的后端构造句柄，失败时退回兜底后端
func (r *resolution) newLogger(label string) *Logger {
	d := r.descriptor
	base, err := construct(d, label)
	if err == nil {
		return &Logger{label: label, backend: d.Name(), base: base}
	}

	fallback := r.registry.Fallback()
	base = fallback.New(label)
	base.Warn(context.Background(), "logger backend failed, using fallback",
		xlog.Backend(d.Name()), xlog.Err(err))
	return &Logger{label: label, backend: fallback.Name(), base: base, degraded: true}
}

// construct 调用 d.Construct，把 panic 与 nil 结果转为错误
func construct(d xlogbackend.Descriptor, label string) (l xlog.LoggerWithLevel, err error) {
	defer func() {
		if p := recover(); p != nil {
			l, err = nil, fmt.Errorf("%w: %v", ErrConstructPanic, p)
		}
	}()
	l, err = d.Construct(label)
	if err == nil && l == nil {
		err = ErrNilLogger
	}
	return l, err
}

// typeLabel 返回 v 动态类型的点分全名
func typeLabel(v any) string {
	t := reflect.TypeOf(v)
	if t == nil {
		return ""
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() == "" || t.PkgPath() == "" {
		return t.String()
	}
	return strings.ReplaceAll(t.PkgPath(), "/", ".") + "." + t.Name()
}
