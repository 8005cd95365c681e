package xlogbackend

import (
	"io"
	"log/slog"
	"os"

	"github.com/omeyang/xmagic/pkg/observability/xlog"
	"github.com/omeyang/xmagic/pkg/observability/xrotate"
)

// Options 内置后端的公共配置
type Options struct {
	// Output local/json 后端的输出目标，默认 os.Stderr
	Output io.Writer

	// Level 所有后端共享的级别，默认 Info
	//
	// 同一注册表构造出的全部 logger 共享该 LevelVar，任一处 SetLevel 对全部生效。
	Level *slog.LevelVar

	// File file 后端的日志文件路径，为空时 file 后端不可用
	File string

	// Rotation file 后端的轮转选项
	Rotation []xrotate.Option

	// ProjectID gcp 后端的项目 ID，为空时从环境变量或 metadata server 获取
	ProjectID string
}

// withDefaults 补齐默认值
func (o Options) withDefaults() Options {
	if o.Output == nil {
		o.Output = os.Stderr
	}
	if o.Level == nil {
		o.Level = new(slog.LevelVar)
		o.Level.Set(slog.LevelInfo)
	}
	return o
}

// builder 创建带公共配置的 xlog 构建器
func (o Options) builder(w io.Writer) *xlog.Builder {
	return xlog.New().
		SetOutput(w).
		SetLevelVar(o.Level)
}
