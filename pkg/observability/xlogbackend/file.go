package xlogbackend

import (
	"sync"

	"github.com/omeyang/xmagic/pkg/observability/xlog"
	"github.com/omeyang/xmagic/pkg/util/xfile"
)

var _ Descriptor = (*FileDescriptor)(nil)

// FileDescriptor 轮转文件后端
//
// 同一描述符构造的所有 logger 共用一个轮转器，避免多个 lumberjack 实例争用同一文件。
// 轮转器在首次 Construct 时创建，创建失败不缓存，下次 Construct 重试。
type FileDescriptor struct {
	opts Options

	mu      sync.Mutex
	root    xlog.LoggerWithLevel
	cleanup func() error
}

// NewFile 创建文件描述符
func NewFile(opts Options) *FileDescriptor {
	return &FileDescriptor{opts: opts.withDefaults()}
}

// Name 实现 Descriptor
func (d *FileDescriptor) Name() string {
	return NameFile
}

// Probe 配置了合法路径且父目录存在、可写时可用
//
// 只做检查，不创建文件或目录。
func (d *FileDescriptor) Probe() bool {
	if d.opts.File == "" {
		return false
	}
	path, err := xfile.SanitizePath(d.opts.File)
	if err != nil {
		return false
	}
	return xfile.WritableDir(path) == nil
}

// Construct 实现 Descriptor
func (d *FileDescriptor) Construct(label string) (xlog.LoggerWithLevel, error) {
	root, err := d.rootLogger()
	if err != nil {
		return nil, err
	}
	return xlog.Derive(root, xlog.LoggerName(label)), nil
}

// rootLogger 返回共享轮转器的根 logger，必要时创建
func (d *FileDescriptor) rootLogger() (xlog.LoggerWithLevel, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.root != nil {
		return d.root, nil
	}
	if d.opts.File == "" {
		return nil, ErrNoFile
	}
	logger, cleanup, err := d.opts.builder(d.opts.Output).
		SetRotation(d.opts.File, d.opts.Rotation...).
		SetFormat("text").
		Build()
	if err != nil {
		return nil, err
	}
	d.root, d.cleanup = logger, cleanup
	return logger, nil
}

// Close 关闭共享轮转器
//
// 已构造的 logger 在 Close 后写入会失败并计入内部错误计数。
// 未构造过 logger 时为空操作。
func (d *FileDescriptor) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.cleanup == nil {
		return nil
	}
	err := d.cleanup()
	d.root, d.cleanup = nil, nil
	return err
}
