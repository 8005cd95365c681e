package xconf

// Options 配置加载选项
type Options struct {
	// Delim 配置键分隔符，默认 "."
	Delim string

	// Tag 结构体标签名，默认 "koanf"
	Tag string

	// EnvPrefix 环境变量前缀，为空时不加载环境变量层
	EnvPrefix string
}

// Option 配置选项函数
type Option func(*Options)

func defaultOptions() *Options {
	return &Options{
		Delim: ".",
		Tag:   "koanf",
	}
}

// WithDelim 设置配置键分隔符
func WithDelim(delim string) Option {
	return func(o *Options) {
		if delim != "" {
			o.Delim = delim
		}
	}
}

// WithTag 设置结构体标签名
func WithTag(tag string) Option {
	return func(o *Options) {
		if tag != "" {
			o.Tag = tag
		}
	}
}

// WithEnvPrefix 启用环境变量层，只加载以 prefix 开头的变量
//
// 例如 prefix 为 "XMAGIC_" 时，XMAGIC_LOGGER_LEVEL 映射为 logger.level。
func WithEnvPrefix(prefix string) Option {
	return func(o *Options) {
		o.EnvPrefix = prefix
	}
}
