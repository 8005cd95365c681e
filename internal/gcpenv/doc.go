// Package gcpenv 识别进程是否运行在 Google Cloud 托管环境中。
//
// 识别只读取环境变量，不发起网络请求，可以在日志后端探测时反复调用。
// 项目 ID 优先取自环境变量，缺失时才查询 metadata server。
package gcpenv
