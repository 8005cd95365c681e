package gcpenv

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"

	"cloud.google.com/go/compute/metadata"
)

// Platform 托管平台类型
type Platform string

// 支持识别的平台
const (
	PlatformNone           Platform = ""
	PlatformCloudRun       Platform = "cloud_run"
	PlatformCloudRunJob    Platform = "cloud_run_job"
	PlatformCloudFunctions Platform = "cloud_functions"
	PlatformAppEngine      Platform = "app_engine"
	PlatformGKE            Platform = "gke"
)

// DefaultMetadataTimeout 查询 metadata server 的默认超时
const DefaultMetadataTimeout = 2 * time.Second

// ErrNoProject 无法确定 Google Cloud 项目 ID
var ErrNoProject = errors.New("gcpenv: cloud project id not found")

// projectEnvKeys 项目 ID 环境变量，按优先级排列
var projectEnvKeys = []string{"GOOGLE_CLOUD_PROJECT", "GCLOUD_PROJECT", "GCP_PROJECT"}

// Info 运行环境信息
type Info struct {
	Platform  Platform
	Service   string // Cloud Run 服务名 / 函数名 / GAE 服务名 / Job 名
	Revision  string // 版本或 revision，平台不提供时为空
	ProjectID string // 环境变量中的项目 ID，可能为空
}

// OnGCP 是否识别出托管平台
func (i Info) OnGCP() bool {
	return i.Platform != PlatformNone
}

// Detect 从环境变量识别当前运行环境
func Detect() Info {
	info := Info{ProjectID: projectFromEnv()}

	service := env("K_SERVICE")
	revision := env("K_REVISION")
	switch {
	case service != "" && env("FUNCTION_TARGET") != "":
		// Cloud Functions Gen 2 同样设置 K_SERVICE，需先于 Cloud Run 判断
		info.Platform, info.Service, info.Revision = PlatformCloudFunctions, service, revision
	case service != "" && revision != "":
		info.Platform, info.Service, info.Revision = PlatformCloudRun, service, revision
	case env("CLOUD_RUN_JOB") != "":
		info.Platform, info.Service, info.Revision = PlatformCloudRunJob, env("CLOUD_RUN_JOB"), env("CLOUD_RUN_EXECUTION")
	case env("GAE_SERVICE") != "":
		info.Platform, info.Service, info.Revision = PlatformAppEngine, env("GAE_SERVICE"), env("GAE_VERSION")
		if info.ProjectID == "" {
			// GAE_APPLICATION 形如 "s~my-app"，前缀为分区标识
			app := env("GAE_APPLICATION")
			if i := strings.IndexByte(app, '~'); i >= 0 {
				app = app[i+1:]
			}
			info.ProjectID = app
		}
	case env("KUBERNETES_SERVICE_HOST") != "" && (info.ProjectID != "" || env("GCE_METADATA_HOST") != ""):
		// 普通 Kubernetes 集群也有 KUBERNETES_SERVICE_HOST，需要额外的 GCP 线索
		info.Platform = PlatformGKE
	}
	return info
}

// ProjectID 返回项目 ID
//
// 优先使用 info 中的环境变量值，否则调用 lookup 查询（通常为 [MetadataProjectID]）。
// lookup 为 nil 或查询失败时返回 ErrNoProject。
func ProjectID(ctx context.Context, info Info, lookup func(context.Context) (string, error)) (string, error) {
	if info.ProjectID != "" {
		return info.ProjectID, nil
	}
	if lookup == nil {
		return "", ErrNoProject
	}
	id, err := lookup(ctx)
	if err != nil {
		return "", errors.Join(ErrNoProject, err)
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return "", ErrNoProject
	}
	return id, nil
}

// MetadataProjectID 向 metadata server 查询项目 ID
//
// ctx 没有截止时间时使用 DefaultMetadataTimeout。
func MetadataProjectID(ctx context.Context) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultMetadataTimeout)
		defer cancel()
	}
	return metadata.ProjectIDWithContext(ctx)
}

func projectFromEnv() string {
	for _, key := range projectEnvKeys {
		if v := env(key); v != "" {
			return v
		}
	}
	return ""
}

func env(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}
