package xconf

import "github.com/knadh/koanf/v2"

// Format 配置文件格式
type Format string

const (
	// FormatYAML YAML 格式
	FormatYAML Format = "yaml"

	// FormatJSON JSON 格式
	FormatJSON Format = "json"
)

// Config 配置实例
type Config interface {
	// Client 返回当前 koanf 实例
	Client() *koanf.Koanf

	// Unmarshal 将 path 下的配置反序列化到 target，path 为空表示根
	Unmarshal(path string, target any) error

	// Reload 重新读取全部配置来源
	Reload() error

	// Path 配置文件路径，没有文件层时为空
	Path() string

	// Format 配置文件格式，没有文件层时为空
	Format() Format
}

// MustUnmarshal 与 Config.Unmarshal 相同，但失败时 panic
//
// 仅用于程序启动阶段加载必需配置。
func MustUnmarshal(cfg Config, path string, target any) {
	if err := cfg.Unmarshal(path, target); err != nil {
		panic(err)
	}
}
