// Package xlog 基于 log/slog 的结构化日志库，是 xlogbackend 各内置后端的实现基础。
//
// # 核心功能
//
//   - Builder 模式配置（输出目标、级别、格式、轮转、固定属性）
//   - 自动从 context 注入 OpenTelemetry trace 信息（EnrichHandler，默认启用）
//   - 动态级别调整（共享 LevelVar，运行时热更新）
//   - 六级日志：TRACE / DEBUG / INFO / WARN / ERROR / FATAL
//
// # 创建 Logger
//
// 使用 Builder 模式（first-error-wins：遇到第一个配置错误后，后续 Set 操作被跳过）。
// Builder 方法：SetLevel、SetLevelVar、SetFormat、SetOutput、SetRotation、SetEnrich、
// SetCloudTrace、SetAttrs、SetOnError、SetReplaceAttr。
//
//	logger, cleanup, err := xlog.New().
//	    SetFormat("json").
//	    SetAttrs(xlog.LoggerName("svc.module")).
//	    Build()
//
// # 日志级别
//
// LevelTrace(-8)、LevelDebug(-4)、LevelInfo(0)、LevelWarn(4)、LevelError(8)、LevelFatal(12)。
// 可通过 [ParseLevel] 从字符串解析。输出中的 level 字段始终使用 [Level.String] 的名称
// （TRACE、FATAL 而非 slog 默认的 DEBUG-4、ERROR+4）。
//
// LevelFatal 只表示严重程度，记录后不会退出进程。
//
// # 派生 Logger
//
// [Logger.With] 和 [Logger.WithGroup] 返回 [Logger] 接口（不含 [Leveler]）。
// 派生 logger 共享父级的 LevelVar，动态级别变更会同步生效。
package xlog
