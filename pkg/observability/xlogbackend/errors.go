package xlogbackend

import "errors"

// 注册表构造错误
var (
	// ErrNilFallback 未提供兜底描述符
	ErrNilFallback = errors.New("xlogbackend: fallback descriptor is required")

	// ErrNilDescriptor 候选描述符为 nil
	ErrNilDescriptor = errors.New("xlogbackend: nil descriptor")

	// ErrEmptyName 描述符名称为空
	ErrEmptyName = errors.New("xlogbackend: descriptor name is empty")

	// ErrDuplicateName 描述符名称重复
	ErrDuplicateName = errors.New("xlogbackend: duplicate descriptor name")
)

// 后端构造错误
var (
	// ErrNoFile 未配置日志文件路径
	ErrNoFile = errors.New("xlogbackend: log file not configured")

	// ErrNoProject 无法确定 Google Cloud 项目 ID
	ErrNoProject = errors.New("xlogbackend: cloud project id unavailable")

	// ErrNotConstructible 描述符没有构造函数
	ErrNotConstructible = errors.New("xlogbackend: descriptor cannot construct loggers")
)
