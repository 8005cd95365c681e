// Package xlogbackend 定义日志后端描述符与有序的后端注册表。
//
// 每个 [Descriptor] 知道两件事：当前进程能否使用该后端（Probe），
// 以及如何构造绑定到某个标签的 logger（Construct）。
// [Registry] 在构造时固定候选顺序，并把兜底的 [LocalDescriptor] 放在最后，
// 因此 [Registry.Resolve] 总能返回一个可用的描述符。
//
// 内置后端（按默认顺序）：
//
//	gcp    Google Cloud 托管环境，输出 Cloud Logging 结构化 JSON
//	file   配置了日志文件且目录可写，按大小轮转
//	json   输出目标不是终端（容器、管道），JSON 格式
//	local  兜底，text 格式写入 stderr
//
// 基本用法：
//
//	reg, err := xlogbackend.NewDefaultRegistry(xlogbackend.Options{File: "/var/log/app.log"})
//	if err != nil {
//	    return err
//	}
//	d := reg.Resolve(os.Getenv("XMAGIC_LOGGER_TYPE"))
//	logger, err := d.Construct("svc.module")
//
// Probe 必须廉价且无副作用：不打开文件、不发起网络请求。
// 实际的资源分配推迟到 Construct。
package xlogbackend
