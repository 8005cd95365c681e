package xlogbackend

import (
	"io"
	"os"

	"golang.org/x/term"

	"github.com/omeyang/xmagic/pkg/observability/xlog"
)

var _ Descriptor = (*JSONDescriptor)(nil)

// JSONDescriptor 结构化 JSON 后端，适用于容器与管道等非交互输出
type JSONDescriptor struct {
	opts Options
}

// NewJSON 创建 JSON 描述符
func NewJSON(opts Options) *JSONDescriptor {
	return &JSONDescriptor{opts: opts.withDefaults()}
}

// Name 实现 Descriptor
func (d *JSONDescriptor) Name() string {
	return NameJSON
}

// Probe 输出目标不是终端时可用
func (d *JSONDescriptor) Probe() bool {
	return !isTerminal(d.opts.Output)
}

// Construct 实现 Descriptor
func (d *JSONDescriptor) Construct(label string) (xlog.LoggerWithLevel, error) {
	logger, _, err := d.opts.builder(d.opts.Output).
		SetFormat("json").
		SetAttrs(xlog.LoggerName(label)).
		Build()
	if err != nil {
		return nil, err
	}
	return logger, nil
}

// isTerminal 判断 w 是否为终端
//
// 只有 *os.File 可能是终端；其他 Writer（buffer、网络连接等）一律视为非终端。
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
