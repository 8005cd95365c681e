package xlogfactory

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strings"

	"github.com/omeyang/xmagic/pkg/config/xconf"
	"github.com/omeyang/xmagic/pkg/observability/xlog"
)

// ErrNoConfigFile 未通过 XMAGIC_CONFIG 指定配置文件
var ErrNoConfigFile = errors.New("xlogfactory: " + EnvConfig + " is not set")

// WatchConfig 监视 XMAGIC_CONFIG 指向的配置文件，变更后重新应用 logger.level
//
// 只调整级别，已解析的后端保持不变。必要时先触发后端解析。
// 返回的 stop 停止监视。重载或解析失败时通过兜底后端输出诊断，保持当前级别。
func WatchConfig() (stop func() error, err error) {
	path := strings.TrimSpace(os.Getenv(EnvConfig))
	if path == "" {
		return nil, ErrNoConfigFile
	}
	cfg, err := xconf.Load(path, xconf.WithEnvPrefix(EnvPrefix))
	if err != nil {
		return nil, err
	}

	r := load()
	w, err := xconf.Watch(cfg, r.applyConfig)
	if err != nil {
		return nil, err
	}
	w.Start()
	return w.Stop, nil
}

// applyConfig 配置变更回调
func (r *resolution) applyConfig(cfg xconf.Config, err error) {
	if err == nil {
		var s Settings
		if s, err = settingsFrom(cfg); err == nil {
			lv, _ := s.level()
			r.level.Set(slog.Level(lv))
			return
		}
	}
	r.registry.Fallback().New(diagLabel).Warn(context.Background(),
		"logger configuration reload ignored", xlog.Err(err))
}
