package xlogfactory

import (
	"testing"

	"github.com/omeyang/xmagic/pkg/observability/xlogbackend"
)

// ResetForTest 清除解析结果，下次 GetLogger 重新解析
func ResetForTest() {
	resolveMu.Lock()
	defer resolveMu.Unlock()
	current.Store(nil)
}

// SetRegistryFactoryForTest 替换注册表工厂，测试结束时恢复并清除解析结果
func SetRegistryFactoryForTest(t testing.TB, f func(xlogbackend.Options) (*xlogbackend.Registry, error)) {
	t.Helper()
	resolveMu.Lock()
	old := registryFactory
	registryFactory = f
	current.Store(nil)
	resolveMu.Unlock()

	t.Cleanup(func() {
		resolveMu.Lock()
		registryFactory = old
		current.Store(nil)
		resolveMu.Unlock()
	})
}

// TypeLabel 导出 typeLabel 供测试
var TypeLabel = typeLabel
