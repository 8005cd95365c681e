package xlogfactory

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/xmagic/pkg/config/xconf"
	"github.com/omeyang/xmagic/pkg/observability/xlog"
)

func TestSettingsFrom(t *testing.T) {
	cfg, err := xconf.NewFromBytes([]byte(`
logger:
  type: " file "
  level: debug
  file: /var/log/xmagic/app.log
  project: demo
  maxsize: 50
  backups: 3
  maxage: 14
`), xconf.FormatYAML)
	require.NoError(t, err)

	s, err := settingsFrom(cfg)
	require.NoError(t, err)
	assert.Equal(t, Settings{
		Type:    "file",
		Level:   "debug",
		File:    "/var/log/xmagic/app.log",
		Project: "demo",
		MaxSize: 50,
		Backups: 3,
		MaxAge:  14,
	}, s)

	level := new(slog.LevelVar)
	opts := s.options(level)
	assert.Equal(t, slog.LevelDebug, level.Level())
	assert.Same(t, level, opts.Level)
	assert.Equal(t, "/var/log/xmagic/app.log", opts.File)
	assert.Equal(t, "demo", opts.ProjectID)
	assert.Len(t, opts.Rotation, 3)
}

func TestSettings_Validate(t *testing.T) {
	assert.NoError(t, Settings{}.validate())
	assert.ErrorIs(t, Settings{Level: "verbose"}.validate(), xlog.ErrUnknownLevel)
	assert.Error(t, Settings{Backups: -1}.validate())

	level := new(slog.LevelVar)
	opts := Settings{Level: "verbose", MaxSize: -5}.options(level)
	assert.Equal(t, slog.LevelInfo, level.Level(), "invalid level falls back to info")
	assert.Empty(t, opts.Rotation, "non-positive rotation values keep defaults")
}
