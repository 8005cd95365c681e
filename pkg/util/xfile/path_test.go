package xfile

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{"simple", "app.log", "app.log", nil},
		{"absolute", "/var/log/app.log", "/var/log/app.log", nil},
		{"absolute_dotdot_resolved", "/var/log/../tmp/a.log", "/var/tmp/a.log", nil},
		{"redundant_slashes", "logs//app.log", filepath.Clean("logs//app.log"), nil},
		{"dotdot_prefix_name", "..config", "..config", nil},
		{"empty", "", "", ErrEmptyPath},
		{"null_byte", "app\x00.log", "", ErrNullByte},
		{"trailing_slash", "logs/", "", ErrInvalidPath},
		{"trailing_backslash", "logs\\", "", ErrInvalidPath},
		{"relative_traversal", "../etc/passwd", "", ErrPathTraversal},
		{"root", "/", "", ErrInvalidPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if runtime.GOOS == "windows" && filepath.IsAbs(tt.input) {
				t.Skip("unix path semantics")
			}
			got, err := SanitizePath(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHasDotDotSegment(t *testing.T) {
	assert.True(t, hasDotDotSegment(".."))
	assert.True(t, hasDotDotSegment("a/../b"))
	assert.True(t, hasDotDotSegment(`a\..\b`))
	assert.False(t, hasDotDotSegment("a/..b/c"))
	assert.False(t, hasDotDotSegment("app..2024.log"))
}

func TestEnsureDir(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a", "b", "app.log")

	require.NoError(t, EnsureDir(file))
	info, err := os.Stat(filepath.Dir(file))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// 已存在时不报错
	require.NoError(t, EnsureDir(file))
	// 无目录部分
	require.NoError(t, EnsureDir("app.log"))
}

func TestEnsureDirWithPerm_Errors(t *testing.T) {
	assert.ErrorIs(t, EnsureDirWithPerm("", DefaultDirPerm), ErrEmptyPath)
	assert.ErrorIs(t, EnsureDirWithPerm("a\x00/b", DefaultDirPerm), ErrNullByte)
	assert.ErrorIs(t, EnsureDirWithPerm("a/b.log", 0600), ErrInvalidPerm)
}

func TestWritableDir(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, WritableDir(filepath.Join(dir, "app.log")))

	err := WritableDir(filepath.Join(dir, "missing", "app.log"))
	assert.ErrorIs(t, err, ErrNotWritable)

	// 父路径是普通文件
	regular := filepath.Join(dir, "regular")
	require.NoError(t, os.WriteFile(regular, []byte("x"), 0600))
	assert.ErrorIs(t, WritableDir(filepath.Join(regular, "app.log")), ErrNotWritable)

	assert.ErrorIs(t, WritableDir(""), ErrEmptyPath)

	// 探测不产生副作用
	_, statErr := os.Stat(filepath.Join(dir, "missing"))
	assert.True(t, errors.Is(statErr, os.ErrNotExist))
}

func TestWritableDir_ReadOnly(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("root bypasses permission bits")
	}
	dir := t.TempDir()
	ro := filepath.Join(dir, "ro")
	require.NoError(t, os.Mkdir(ro, 0500))
	t.Cleanup(func() { _ = os.Chmod(ro, 0700) })

	assert.ErrorIs(t, WritableDir(filepath.Join(ro, "app.log")), ErrNotWritable)
}
