package xlogfactory

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/omeyang/xmagic/pkg/config/xconf"
	"github.com/omeyang/xmagic/pkg/observability/xlog"
	"github.com/omeyang/xmagic/pkg/observability/xlogbackend"
	"github.com/omeyang/xmagic/pkg/observability/xrotate"
)

// 配置来源
const (
	// EnvConfig 指向配置文件的环境变量
	EnvConfig = "XMAGIC_CONFIG"

	// EnvPrefix 环境变量层的前缀
	EnvPrefix = "XMAGIC_"

	// settingsPath 日志配置在配置树中的路径
	settingsPath = "logger"
)

// Settings 日志配置
type Settings struct {
	// Type 指定后端名称，为空时自动探测
	Type string `koanf:"type"`

	// Level 初始级别，为空时为 info
	Level string `koanf:"level"`

	// File file 后端的日志文件路径
	File string `koanf:"file"`

	// Project gcp 后端的项目 ID，为空时从环境变量或 metadata server 获取
	Project string `koanf:"project"`

	// MaxSize file 后端单个文件上限（MB），0 为默认值
	MaxSize int `koanf:"maxsize"`

	// Backups file 后端保留的备份数，0 为默认值
	Backups int `koanf:"backups"`

	// MaxAge file 后端保留备份的天数，0 为默认值
	MaxAge int `koanf:"maxage"`
}

// LoadSettings 读取日志配置
//
// 先加载 XMAGIC_CONFIG 指向的文件（未设置则跳过），再叠加 XMAGIC_* 环境变量。
// 文件无法读取或解析时仍返回环境变量层的结果，同时返回错误；
// 调用方可以使用返回的 Settings 并把错误作为诊断输出。
func LoadSettings() (Settings, error) {
	var loadErr error
	cfg, err := xconf.Load(strings.TrimSpace(os.Getenv(EnvConfig)), xconf.WithEnvPrefix(EnvPrefix))
	if err != nil {
		loadErr = err
		cfg, err = xconf.Load("", xconf.WithEnvPrefix(EnvPrefix))
		if err != nil {
			return Settings{}, errors.Join(loadErr, err)
		}
	}
	s, err := settingsFrom(cfg)
	return s, errors.Join(loadErr, err)
}

// settingsFrom 从配置实例解析 Settings 并校验
func settingsFrom(cfg xconf.Config) (Settings, error) {
	var s Settings
	if err := cfg.Unmarshal(settingsPath, &s); err != nil {
		return Settings{}, err
	}
	s.Type = strings.TrimSpace(s.Type)
	s.File = strings.TrimSpace(s.File)
	s.Project = strings.TrimSpace(s.Project)
	return s, s.validate()
}

// validate 校验字段取值，只报告问题，不修改 Settings
func (s Settings) validate() error {
	var errs []error
	if _, err := s.level(); err != nil {
		errs = append(errs, err)
	}
	if s.MaxSize < 0 || s.Backups < 0 || s.MaxAge < 0 {
		errs = append(errs, fmt.Errorf("xlogfactory: negative rotation setting (maxsize=%d backups=%d maxage=%d)",
			s.MaxSize, s.Backups, s.MaxAge))
	}
	return errors.Join(errs...)
}

// level 解析级别，空值为 info
func (s Settings) level() (xlog.Level, error) {
	if strings.TrimSpace(s.Level) == "" {
		return xlog.LevelInfo, nil
	}
	return xlog.ParseLevel(s.Level)
}

// options 转换为后端配置，非法的级别退回 info
func (s Settings) options(levelVar *slog.LevelVar) xlogbackend.Options {
	lv, _ := s.level()
	levelVar.Set(slog.Level(lv))

	var rotation []xrotate.Option
	if s.MaxSize > 0 {
		rotation = append(rotation, xrotate.WithMaxSize(s.MaxSize))
	}
	if s.Backups > 0 {
		rotation = append(rotation, xrotate.WithMaxBackups(s.Backups))
	}
	if s.MaxAge > 0 {
		rotation = append(rotation, xrotate.WithMaxAge(s.MaxAge))
	}

	return xlogbackend.Options{
		Level:     levelVar,
		File:      s.File,
		Rotation:  rotation,
		ProjectID: s.Project,
	}
}
