package xlog

import "log/slog"

// =============================================================================
// 常用属性 Key 常量
// =============================================================================

const (
	// KeyError 错误字段的标准 key
	KeyError = "error"

	// KeyLogger 日志来源标签（组件/模块名）的标准 key
	KeyLogger = "logger"

	// KeyBackend 日志后端名称的标准 key
	KeyBackend = "backend"
)

// Err 创建错误属性
//
// 如果 err 为 nil，返回空属性（会被 slog 忽略）。
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String(KeyError, err.Error())
}

// LoggerName 创建日志来源标签属性
func LoggerName(label string) slog.Attr {
	return slog.String(KeyLogger, label)
}

// Backend 创建后端名称属性
func Backend(name string) slog.Attr {
	return slog.String(KeyBackend, name)
}
