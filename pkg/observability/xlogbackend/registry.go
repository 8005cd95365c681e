package xlogbackend

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// registryLabel 注册表自身诊断日志的标签
const registryLabel = "xlogbackend.Registry"

// Registry 有序的后端描述符注册表
//
// 顺序在构造时固定，兜底描述符始终位于最后。构造后只读，并发安全。
type Registry struct {
	descriptors []Descriptor
	byName      map[string]Descriptor
	fallback    *LocalDescriptor
}

// NewRegistry 创建注册表
//
// 解析顺序为 candidates 的给定顺序，fallback 追加在最后。
// 名称必须非空且互不相同（包括与 fallback 的名称）。
func NewRegistry(fallback *LocalDescriptor, candidates ...Descriptor) (*Registry, error) {
	if fallback == nil {
		return nil, ErrNilFallback
	}

	r := &Registry{
		descriptors: make([]Descriptor, 0, len(candidates)+1),
		byName:      make(map[string]Descriptor, len(candidates)+1),
		fallback:    fallback,
	}
	for i, d := range candidates {
		if d == nil {
			return nil, fmt.Errorf("%w: candidate %d", ErrNilDescriptor, i)
		}
		if err := r.add(d); err != nil {
			return nil, err
		}
	}
	if err := r.add(fallback); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Registry) add(d Descriptor) error {
	name := d.Name()
	if name == "" {
		return fmt.Errorf("%w: position %d", ErrEmptyName, len(r.descriptors))
	}
	if _, dup := r.byName[name]; dup {
		return fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}
	r.byName[name] = d
	r.descriptors = append(r.descriptors, d)
	return nil
}

// Resolve 选择本进程使用的后端描述符
//
// override 非空且与某个名称精确匹配时直接返回该描述符，不做任何探测。
// override 无法匹配时通过兜底后端输出一条 WARN 诊断，然后按顺序探测。
// 探测返回第一个 Probe 为 true 的描述符；Probe panic 视为不可用。
// 兜底描述符位于最后且恒可用，因此结果总是非 nil。
func (r *Registry) Resolve(override string) Descriptor {
	if override != "" {
		if d, ok := r.byName[override]; ok {
			return d
		}
		r.fallback.New(registryLabel).Warn(context.Background(),
			"unknown logger backend override, probing instead",
			slog.String("override", override),
			slog.String("known", strings.Join(r.Names(), ",")),
		)
	}

	for _, d := range r.descriptors {
		if SafeProbe(d) {
			return d
		}
	}
	return r.fallback
}

// Lookup 按名称查找描述符
func (r *Registry) Lookup(name string) (Descriptor, bool) {
	d, ok := r.byName[name]
	return d, ok
}

// Descriptors 返回按解析顺序排列的描述符副本
func (r *Registry) Descriptors() []Descriptor {
	out := make([]Descriptor, len(r.descriptors))
	copy(out, r.descriptors)
	return out
}

// Names 返回按解析顺序排列的描述符名称
func (r *Registry) Names() []string {
	names := make([]string, len(r.descriptors))
	for i, d := range r.descriptors {
		names[i] = d.Name()
	}
	return names
}

// Fallback 返回兜底描述符
func (r *Registry) Fallback() *LocalDescriptor {
	return r.fallback
}
