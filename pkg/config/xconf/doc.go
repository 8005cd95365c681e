// Package xconf 提供分层配置加载，基于 koanf 实现。
//
// 配置来源按优先级由低到高：
//
//  1. 配置文件（可选）：YAML（.yaml/.yml）或 JSON（.json）
//  2. 环境变量（可选）：设置了 EnvPrefix 时加载
//
// 环境变量名去掉前缀后转小写，下划线映射为键分隔符：
//
//	XMAGIC_LOGGER_TYPE=json  ->  logger.type = "json"
//
// 因此环境变量无法表达本身含下划线的键，这类键只能写在配置文件里。
//
// # 用法
//
//	cfg, err := xconf.Load(os.Getenv("XMAGIC_CONFIG"), xconf.WithEnvPrefix("XMAGIC_"))
//	if err != nil {
//	    return err
//	}
//	var s Settings
//	err = cfg.Unmarshal("logger", &s)
//
// # 并发安全
//
// 所有方法并发安全。Reload 重新读取全部来源，解析成功后整体替换 koanf 实例，
// 失败时保留旧配置。Client() 返回的实例是快照，Reload 后不会变化。
//
// # 配置监视
//
// [Watch] 基于 fsnotify 监视配置文件所在目录，防抖后调用 Reload 并回调。
// 监视目录而非文件，以兼容编辑器"写临时文件再 rename"的保存方式。
// 只有带文件路径的 Config 可以监视。
package xconf
