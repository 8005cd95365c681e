package xrotate

import "io"

// 编译时断言：Rotator 接口是 io.WriteCloser 的超集
var _ io.WriteCloser = (Rotator)(nil)

// Rotator 日志轮转器接口
//
// 可直接作为 xlog 的输出目标。所有实现都必须是并发安全的：
//   - Close 后调用 Write 或 Rotate 返回 [ErrClosed]
//   - 重复 Close 返回 [ErrClosed]
type Rotator interface {
	// Write 写入日志数据，达到轮转条件时自动轮转
	Write(p []byte) (n int, err error)

	// Close 关闭轮转器，释放资源
	Close() error

	// Rotate 手动触发日志轮转
	Rotate() error

	// Filename 返回规范化后的日志文件路径
	Filename() string
}
