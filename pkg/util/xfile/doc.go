// Package xfile 提供日志文件路径相关的文件系统工具。
//
//   - [SanitizePath]: 路径格式净化，拒绝空路径、空字节、相对路径穿越和目录路径
//   - [EnsureDir]: 创建文件的父目录
//   - [WritableDir]: 检查文件的父目录是否存在且当前进程可写，不产生任何副作用
//
// 路径穿越检测使用精确的路径段匹配，只有 ".." 作为独立路径段时才被视为穿越，
// 以 ".." 开头的合法文件名（如 "..config"）不会被误判。
//
// 预定义错误变量支持 [errors.Is] 判断。
package xfile
