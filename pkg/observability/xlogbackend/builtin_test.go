package xlogbackend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/xmagic/internal/gcpenv"
	"github.com/omeyang/xmagic/pkg/observability/xlog"
	"github.com/omeyang/xmagic/pkg/observability/xrotate"
)

// decodeLines 逐行解析 JSON 日志
func decodeLines(t *testing.T, data []byte) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range bytes.Split(bytes.TrimSpace(data), []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		var rec map[string]any
		require.NoError(t, json.Unmarshal(line, &rec), "line: %s", line)
		out = append(out, rec)
	}
	return out
}

// =============================================================================
// local
// =============================================================================

func TestLocal_AlwaysUsable(t *testing.T) {
	var buf bytes.Buffer
	d := NewLocal(Options{Output: &buf})

	assert.Equal(t, NameLocal, d.Name())
	assert.True(t, d.Probe())

	for _, label := range []string{"", "plain", "svc.module", "a.b.c."} {
		logger, err := d.Construct(label)
		require.NoError(t, err)
		require.NotNil(t, logger)
		assert.True(t, logger.Enabled(context.Background(), xlog.LevelInfo))
	}
}

func TestLocal_TextOutputWithLabel(t *testing.T) {
	var buf bytes.Buffer
	d := NewLocal(Options{Output: &buf})

	d.New("svc.module").Warn(context.Background(), "disk almost full")

	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, `msg="disk almost full"`)
	assert.Contains(t, out, "logger=svc.module")
}

func TestLocal_NilReceiver(t *testing.T) {
	var d *LocalDescriptor
	assert.True(t, d.Probe())
	assert.Equal(t, NameLocal, d.Name())
	assert.NotNil(t, d.New("nil.receiver"))
}

func TestLocal_ZeroValue(t *testing.T) {
	d := &LocalDescriptor{}
	reg, err := NewRegistry(d)
	require.NoError(t, err)

	l, err := reg.Fallback().Construct("svc")
	require.NoError(t, err)
	require.NotNil(t, l)

	ctx := context.Background()
	assert.True(t, l.Enabled(ctx, xlog.LevelInfo))
	assert.False(t, l.Enabled(ctx, xlog.LevelDebug))
	assert.NotPanics(t, func() { l.Info(ctx, "zero value fallback") })
	assert.Same(t, Descriptor(d), reg.Resolve(""))

	// 同一零值描述符构造的 logger 共享级别
	other := d.New("other")
	l.SetLevel(xlog.LevelError)
	assert.False(t, other.Enabled(ctx, xlog.LevelWarn))
}

func TestLocal_SharedLevel(t *testing.T) {
	level := new(slog.LevelVar)
	level.Set(slog.LevelWarn)
	var buf bytes.Buffer
	d := NewLocal(Options{Output: &buf, Level: level})

	a, b := d.New("a"), d.New("b")
	assert.False(t, b.Enabled(context.Background(), xlog.LevelInfo))

	a.SetLevel(xlog.LevelDebug)
	assert.True(t, b.Enabled(context.Background(), xlog.LevelDebug))
	assert.Equal(t, slog.LevelDebug, level.Level())
}

// =============================================================================
// json
// =============================================================================

func TestJSON_Probe(t *testing.T) {
	assert.True(t, NewJSON(Options{Output: &bytes.Buffer{}}).Probe(), "buffers are not terminals")

	f, err := os.Create(filepath.Join(t.TempDir(), "out.log"))
	require.NoError(t, err)
	defer f.Close()
	assert.True(t, NewJSON(Options{Output: f}).Probe(), "regular files are not terminals")

	assert.False(t, isTerminal(nil))
	assert.False(t, isTerminal((*os.File)(nil)))
}

func TestJSON_Construct(t *testing.T) {
	var buf bytes.Buffer
	d := NewJSON(Options{Output: &buf})
	assert.Equal(t, NameJSON, d.Name())

	logger, err := d.Construct("svc.json")
	require.NoError(t, err)
	logger.Log(context.Background(), xlog.LevelFatal, "fatal but alive")

	recs := decodeLines(t, buf.Bytes())
	require.Len(t, recs, 1)
	assert.Equal(t, "FATAL", recs[0]["level"])
	assert.Equal(t, "fatal but alive", recs[0]["msg"])
	assert.Equal(t, "svc.json", recs[0][xlog.KeyLogger])
}

// =============================================================================
// file
// =============================================================================

func TestFile_Probe(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		file string
		want bool
	}{
		{"unset", "", false},
		{"writable", filepath.Join(dir, "app.log"), true},
		{"missing_dir", filepath.Join(dir, "missing", "app.log"), false},
		{"directory_path", dir + string(filepath.Separator), false},
		{"traversal", "../app.log", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewFile(Options{File: tt.file}).Probe())
		})
	}
}

func TestFile_ProbeHasNoSideEffects(t *testing.T) {
	path := filepath.Join(t.TempDir(), "probe.log")
	assert.True(t, NewFile(Options{File: path}).Probe())

	_, err := os.Stat(path)
	assert.True(t, errors.Is(err, os.ErrNotExist), "probe must not create the log file")
}

func TestFile_ConstructSharesRotator(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	d := NewFile(Options{File: path, Rotation: []xrotate.Option{xrotate.WithCompress(false)}})
	t.Cleanup(func() { _ = d.Close() })
	assert.Equal(t, NameFile, d.Name())

	a, err := d.Construct("svc.a")
	require.NoError(t, err)
	b, err := d.Construct("svc.b")
	require.NoError(t, err)

	a.Info(context.Background(), "from a")
	b.Info(context.Background(), "from b")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "logger=svc.a")
	assert.Contains(t, out, "logger=svc.b")
	assert.Equal(t, 2, strings.Count(out, "\n"))

	require.NoError(t, d.Close())
	require.NoError(t, d.Close(), "closing twice is a no-op")
}

func TestFile_ConstructErrors(t *testing.T) {
	_, err := NewFile(Options{}).Construct("x")
	assert.ErrorIs(t, err, ErrNoFile)

	_, err = NewFile(Options{File: filepath.Join(t.TempDir(), "a.log"), Rotation: []xrotate.Option{xrotate.WithMaxSize(0)}}).Construct("x")
	assert.ErrorIs(t, err, xrotate.ErrInvalidMaxSize)
}

// =============================================================================
// gcp
// =============================================================================

// newTestGCP 创建替换了环境识别与 metadata 查询的 GCP 描述符
func newTestGCP(buf *bytes.Buffer, info gcpenv.Info, lookup func(context.Context) (string, error)) *GCPDescriptor {
	d := NewGCP(Options{Output: buf})
	d.detect = func() gcpenv.Info { return info }
	d.lookup = lookup
	return d
}

func TestGCP_Probe(t *testing.T) {
	var buf bytes.Buffer
	assert.False(t, newTestGCP(&buf, gcpenv.Info{}, nil).Probe())
	assert.True(t, newTestGCP(&buf, gcpenv.Info{Platform: gcpenv.PlatformCloudRun}, nil).Probe())
}

func TestGCP_ConstructCloudLoggingFields(t *testing.T) {
	var buf bytes.Buffer
	d := newTestGCP(&buf, gcpenv.Info{Platform: gcpenv.PlatformCloudRun, ProjectID: "proj"}, nil)
	assert.Equal(t, NameGCP, d.Name())

	logger, err := d.Construct("svc.gcp")
	require.NoError(t, err)
	logger.Warn(context.Background(), "quota low")
	logger.Log(context.Background(), xlog.LevelFatal, "gave up")

	recs := decodeLines(t, buf.Bytes())
	require.Len(t, recs, 2)
	assert.Equal(t, "WARNING", recs[0]["severity"])
	assert.Equal(t, "quota low", recs[0]["message"])
	assert.Contains(t, recs[0], "timestamp")
	assert.NotContains(t, recs[0], "msg")
	assert.NotContains(t, recs[0], "level")
	assert.Equal(t, "svc.gcp", recs[0][xlog.KeyLogger])
	assert.Equal(t, "CRITICAL", recs[1]["severity"])
}

func TestGCP_ProjectLookupOnce(t *testing.T) {
	var calls atomic.Int32
	var buf bytes.Buffer
	d := newTestGCP(&buf, gcpenv.Info{Platform: gcpenv.PlatformGKE}, func(context.Context) (string, error) {
		calls.Add(1)
		return "meta-proj", nil
	})

	for i := 0; i < 3; i++ {
		_, err := d.Construct("svc")
		require.NoError(t, err)
	}
	assert.Equal(t, int32(1), calls.Load())
}

func TestGCP_ProjectFromOptions(t *testing.T) {
	var buf bytes.Buffer
	d := NewGCP(Options{Output: &buf, ProjectID: " opt-proj "})
	d.lookup = func(context.Context) (string, error) {
		t.Fatal("metadata must not be queried when ProjectID is configured")
		return "", nil
	}

	_, err := d.Construct("svc")
	require.NoError(t, err)
}

func TestGCP_NoProject(t *testing.T) {
	var buf bytes.Buffer
	d := newTestGCP(&buf, gcpenv.Info{Platform: gcpenv.PlatformCloudRun}, func(context.Context) (string, error) {
		return "", errors.New("metadata unreachable")
	})

	_, err := d.Construct("svc")
	assert.ErrorIs(t, err, ErrNoProject)
	// 失败结果同样只查询一次
	_, err2 := d.Construct("svc")
	assert.Equal(t, err, err2)
}

func TestCloudSeverity(t *testing.T) {
	tests := map[string]string{
		"TRACE":   "DEBUG",
		"DEBUG":   "DEBUG",
		"INFO":    "INFO",
		"INFO+2":  "INFO",
		"WARN":    "WARNING",
		"ERROR":   "ERROR",
		"FATAL":   "CRITICAL",
		"DEBUG-2": "DEBUG",
		"weird":   "DEFAULT",
	}
	for in, want := range tests {
		assert.Equal(t, want, cloudSeverity(in), in)
	}
}

// =============================================================================
// defaults
// =============================================================================

func TestNewDefaultRegistry(t *testing.T) {
	for _, k := range []string{"K_SERVICE", "K_REVISION", "FUNCTION_TARGET", "CLOUD_RUN_JOB", "GAE_SERVICE", "KUBERNETES_SERVICE_HOST"} {
		t.Setenv(k, "")
	}

	var buf bytes.Buffer
	r, err := NewDefaultRegistry(Options{Output: &buf})
	require.NoError(t, err)
	assert.Equal(t, []string{NameGCP, NameFile, NameJSON, NameLocal}, r.Names())

	// 非 GCP、未配置文件、输出为 buffer：选中 json
	assert.Equal(t, NameJSON, r.Resolve("").Name())

	withFile, err := NewDefaultRegistry(Options{Output: &buf, File: filepath.Join(t.TempDir(), "app.log")})
	require.NoError(t, err)
	assert.Equal(t, NameFile, withFile.Resolve("").Name())
}
