// Package xlogfactory 是进程级的日志入口。
//
// [GetLogger] 按标签返回日志句柄。进程内第一次调用时解析一次日志后端，
// 之后所有标签、所有 goroutine 复用同一个后端，不再探测：
//
//	var log = xlogfactory.GetLogger("payment.refund")
//
//	log.Info(ctx, "refund accepted", slog.String("order", id))
//
// # 后端选择
//
// 后端由 xlogbackend 的默认注册表决定，顺序为 gcp、file、json、local。
// 配置项 logger.type 可以指定后端名称，跳过探测；名称无法识别时输出一条诊断并照常探测。
//
// 配置来源（见 [LoadSettings]）：
//
//	XMAGIC_CONFIG        可选的 YAML/JSON 配置文件路径
//	XMAGIC_LOGGER_TYPE   后端名称（gcp/file/json/local）
//	XMAGIC_LOGGER_LEVEL  初始级别（trace/debug/info/warn/error/fatal）
//	XMAGIC_LOGGER_FILE   file 后端的日志文件路径
//
// # 降级
//
// GetLogger 从不失败。已选中的后端构造失败（返回错误或 panic）时，
// 该次请求改用兜底的 local 后端，句柄创建时输出一条 WARN 诊断，
// [Logger.Degraded] 返回 true。缓存的后端不会因此被替换。
//
// # 并发
//
// 解析结果用 atomic.Pointer 发布，稳态读取无锁；首次解析在互斥锁内完成并二次检查，
// 并发的首次调用只会触发一次解析。
package xlogfactory
