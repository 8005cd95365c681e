package xlogbackend

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/omeyang/xmagic/internal/gcpenv"
	"github.com/omeyang/xmagic/pkg/observability/xlog"
)

var _ Descriptor = (*GCPDescriptor)(nil)

// Cloud Logging 结构化日志字段
const (
	gcpKeySeverity  = "severity"
	gcpKeyMessage   = "message"
	gcpKeyTimestamp = "timestamp"
)

// GCPDescriptor Google Cloud 托管环境后端
//
// 输出 Cloud Logging 可直接解析的 JSON：severity/message/timestamp，
// 以及 logging.googleapis.com/trace 等 trace 关联字段。
type GCPDescriptor struct {
	opts Options

	// detect 与 lookup 可在测试中替换
	detect func() gcpenv.Info
	lookup func(context.Context) (string, error)

	projectOnce sync.Once
	projectID   string
	projectErr  error
}

// NewGCP 创建 GCP 描述符
func NewGCP(opts Options) *GCPDescriptor {
	return &GCPDescriptor{
		opts:   opts.withDefaults(),
		detect: gcpenv.Detect,
		lookup: gcpenv.MetadataProjectID,
	}
}

// Name 实现 Descriptor
func (d *GCPDescriptor) Name() string {
	return NameGCP
}

// Probe 仅根据环境变量判断，不访问 metadata server
func (d *GCPDescriptor) Probe() bool {
	return d.detect().OnGCP()
}

// Construct 实现 Descriptor
//
// 项目 ID 只查询一次；查询失败时每次 Construct 都返回同一错误。
func (d *GCPDescriptor) Construct(label string) (xlog.LoggerWithLevel, error) {
	projectID, err := d.project()
	if err != nil {
		return nil, err
	}
	logger, _, err := d.opts.builder(d.opts.Output).
		SetFormat("json").
		SetCloudTrace(projectID).
		SetReplaceAttr(cloudLoggingAttr).
		SetAttrs(xlog.LoggerName(label)).
		Build()
	if err != nil {
		return nil, err
	}
	return logger, nil
}

func (d *GCPDescriptor) project() (string, error) {
	d.projectOnce.Do(func() {
		if id := strings.TrimSpace(d.opts.ProjectID); id != "" {
			d.projectID = id
			return
		}
		id, err := gcpenv.ProjectID(context.Background(), d.detect(), d.lookup)
		if err != nil {
			d.projectErr = fmt.Errorf("%w: %w", ErrNoProject, err)
			return
		}
		d.projectID = id
	})
	return d.projectID, d.projectErr
}

// cloudLoggingAttr 把 slog 的顶层字段改写为 Cloud Logging 字段
//
// level 此时已被 xlog 渲染为 TRACE/DEBUG/.../FATAL 字符串。
func cloudLoggingAttr(groups []string, a slog.Attr) slog.Attr {
	if len(groups) > 0 {
		return a
	}
	switch a.Key {
	case slog.LevelKey:
		return slog.String(gcpKeySeverity, cloudSeverity(a.Value.String()))
	case slog.MessageKey:
		a.Key = gcpKeyMessage
	case slog.TimeKey:
		a.Key = gcpKeyTimestamp
	}
	return a
}

// cloudSeverity 级别名映射为 Cloud Logging severity
//
// "INFO+2" 这类偏移级别按基础级别映射。
func cloudSeverity(level string) string {
	base := level
	if i := strings.IndexAny(level, "+-"); i > 0 {
		base = level[:i]
	}
	switch base {
	case "TRACE", "DEBUG":
		return "DEBUG"
	case "INFO":
		return "INFO"
	case "WARN":
		return "WARNING"
	case "ERROR":
		return "ERROR"
	case "FATAL":
		return "CRITICAL"
	default:
		return "DEFAULT"
	}
}
