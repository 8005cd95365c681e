package xlog

import "errors"

// 配置与构建相关错误
var (
	// ErrUnknownLevel 无法识别的日志级别字符串
	ErrUnknownLevel = errors.New("xlog: unknown level")

	// ErrUnknownFormat 无法识别的输出格式
	ErrUnknownFormat = errors.New("xlog: unknown format")

	// ErrNilHandler 当 NewEnrichHandler 的 base handler 为 nil 时返回
	ErrNilHandler = errors.New("xlog: base handler is nil")

	// ErrNilOutput SetOutput 传入 nil writer
	ErrNilOutput = errors.New("xlog: output writer is nil")
)
