// Package observability 提供日志相关的子包。
//
// 子包列表：
//   - xlog: 结构化日志，基于 log/slog 扩展
//   - xrotate: 日志文件轮转
//   - xlogbackend: 日志后端描述符与注册表
//   - xlogfactory: 按标签获取日志句柄的全局入口
//
// 设计原则：
//   - 后端在进程内只解析一次
//   - 自动从 context 中提取追踪信息注入日志
//   - 支持动态级别控制
package observability
