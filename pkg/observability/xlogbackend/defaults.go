package xlogbackend

// NewDefaultRegistry 创建包含全部内置后端的注册表
//
// 顺序：gcp、file、json、local。所有后端共享 opts 中的 Output 与 Level。
func NewDefaultRegistry(opts Options) (*Registry, error) {
	opts = opts.withDefaults()
	return NewRegistry(NewLocal(opts),
		NewGCP(opts),
		NewFile(opts),
		NewJSON(opts),
	)
}
