package xconf

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatch_NotWatchable(t *testing.T) {
	fromBytes, err := NewFromBytes(nil, FormatYAML)
	require.NoError(t, err)
	_, err = Watch(fromBytes, nil)
	assert.ErrorIs(t, err, ErrNotWatchable)

	envOnly, err := Load("")
	require.NoError(t, err)
	_, err = Watch(envOnly, nil)
	assert.ErrorIs(t, err, ErrNotWatchable)
}

func TestWatch_ReloadsOnWrite(t *testing.T) {
	path := writeFile(t, "config.yaml", testYAML)
	cfg, err := New(path)
	require.NoError(t, err)

	reloaded := make(chan string, 4)
	w, err := Watch(cfg, func(c Config, err error) {
		if err == nil {
			reloaded <- c.Client().String("logger.level")
		}
	}, WithDebounce(20*time.Millisecond))
	require.NoError(t, err)
	w.Start()
	w.Start() // 重复 Start 无效
	defer func() { require.NoError(t, w.Stop()) }()

	require.NoError(t, os.WriteFile(path, []byte("logger:\n  level: warn\n"), 0600))

	select {
	case level := <-reloaded:
		assert.Equal(t, "warn", level)
	case <-time.After(5 * time.Second):
		t.Fatal("config change was not observed")
	}
}

func TestWatch_IgnoresOtherFiles(t *testing.T) {
	path := writeFile(t, "config.yaml", testYAML)
	cfg, err := New(path)
	require.NoError(t, err)

	var calls atomic.Int32
	w, err := Watch(cfg, func(Config, error) { calls.Add(1) }, WithDebounce(10*time.Millisecond))
	require.NoError(t, err)
	w.Start()

	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(path), "other.yaml"), []byte("x: 1"), 0600))
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, w.Stop())

	assert.Zero(t, calls.Load())
}

func TestWatch_CallbackPanicIsContained(t *testing.T) {
	path := writeFile(t, "config.yaml", testYAML)
	cfg, err := New(path)
	require.NoError(t, err)

	var calls atomic.Int32
	w, err := Watch(cfg, func(Config, error) {
		calls.Add(1)
		panic("callback exploded")
	}, WithDebounce(10*time.Millisecond))
	require.NoError(t, err)
	w.Start()
	defer func() { _ = w.Stop() }()

	for i := 0; i < 2; i++ {
		require.NoError(t, os.WriteFile(path, []byte("logger:\n  level: info\n"), 0600))
		time.Sleep(150 * time.Millisecond)
	}
	assert.GreaterOrEqual(t, calls.Load(), int32(2), "watcher must keep running after a callback panic")
}

func TestWatcher_StopIdempotent(t *testing.T) {
	path := writeFile(t, "config.yaml", testYAML)
	cfg, err := New(path)
	require.NoError(t, err)

	notStarted, err := Watch(cfg, nil)
	require.NoError(t, err)
	require.NoError(t, notStarted.Stop())
	require.NoError(t, notStarted.Stop())
	notStarted.Start() // Stop 之后 Start 无效

	started, err := Watch(cfg, nil, WithDebounce(0))
	require.NoError(t, err)
	assert.Equal(t, DefaultDebounce, started.debounce)
	started.Start()
	require.NoError(t, started.Stop())
	require.NoError(t, started.Stop())
}
