package xlogbackend

import (
	"fmt"

	"github.com/omeyang/xmagic/pkg/observability/xlog"
)

// 内置后端名称
const (
	NameGCP   = "gcp"
	NameFile  = "file"
	NameJSON  = "json"
	NameLocal = "local"
)

// Descriptor 日志后端描述符
//
// 实现必须并发安全。
type Descriptor interface {
	// Name 后端名称，在注册表内唯一，用于配置覆盖的精确匹配
	Name() string

	// Probe 检测后端在当前进程是否可用
	//
	// 必须廉价且无副作用。内部出错一律返回 false；
	// panic 会被 Registry 捕获并视为不可用。
	Probe() bool

	// Construct 构造绑定到 label 的 logger
	//
	// 即使 Probe 返回过 true 也可能失败，调用方应退回兜底后端。
	Construct(label string) (xlog.LoggerWithLevel, error)
}

// FuncDescriptor 由函数组装的描述符
//
// 用于注册内置后端之外的自定义后端。ProbeFunc 为 nil 视为不可用，
// ConstructFunc 为 nil 时 Construct 返回 ErrNotConstructible。
type FuncDescriptor struct {
	DescriptorName string
	ProbeFunc      func() bool
	ConstructFunc  func(label string) (xlog.LoggerWithLevel, error)
}

// Name 实现 Descriptor
func (f *FuncDescriptor) Name() string {
	return f.DescriptorName
}

// Probe 实现 Descriptor
func (f *FuncDescriptor) Probe() bool {
	if f.ProbeFunc == nil {
		return false
	}
	return f.ProbeFunc()
}

// Construct 实现 Descriptor
func (f *FuncDescriptor) Construct(label string) (xlog.LoggerWithLevel, error) {
	if f.ConstructFunc == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotConstructible, f.DescriptorName)
	}
	return f.ConstructFunc(label)
}

// SafeProbe 调用 d.Probe 并把 panic 视为不可用
func SafeProbe(d Descriptor) (ok bool) {
	if d == nil {
		return false
	}
	defer func() {
		if r := recover(); r != nil {
			ok = false
		}
	}()
	return d.Probe()
}
