package xfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// SanitizePath 测试
// =============================================================================

func TestSanitizePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "绝对路径", input: "/var/log/app.log", want: "/var/log/app.log"},
		{name: "相对路径", input: "logs/app.log", want: "logs/app.log"},
		{name: "冗余分隔符与点", input: "logs//./app.log", want: "logs/app.log"},
		{name: "绝对路径中的点点被折叠", input: "/var/log/../tmp/app.log", want: "/var/tmp/app.log"},
		{name: "文件名含双点", input: "logs/app..2024.log", want: "logs/app..2024.log"},
		{name: "空路径", input: "", wantErr: ErrEmptyPath},
		{name: "空字节", input: "logs/app\x00.log", wantErr: ErrNullByte},
		{name: "尾部斜杠", input: "logs/", wantErr: ErrInvalidPath},
		{name: "尾部反斜杠", input: "logs\\", wantErr: ErrInvalidPath},
		{name: "相对路径穿越", input: "../etc/passwd", wantErr: ErrPathTraversal},
		{name: "中间穿越", input: "logs/../../etc/passwd", wantErr: ErrPathTraversal},
		{name: "仅当前目录", input: ".", wantErr: ErrInvalidPath},
		{name: "根目录", input: "/", wantErr: ErrInvalidPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SanitizePath(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHasDotDotSegment(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"..", true},
		{"../a", true},
		{"a/..", true},
		{"a\\..\\b", true},
		{"..config", false},
		{"a/...", false},
		{"a/b..c", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, hasDotDotSegment(tt.path), "path=%q", tt.path)
	}
}

// =============================================================================
// Exists 测试
// =============================================================================

func TestExists(t *testing.T) {
	dir := t.TempDir()

	file := filepath.Join(dir, "app.log")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))

	t.Run("普通文件", func(t *testing.T) {
		assert.True(t, Exists(file))
	})

	t.Run("目录", func(t *testing.T) {
		assert.True(t, Exists(dir))
	})

	t.Run("不存在", func(t *testing.T) {
		assert.False(t, Exists(filepath.Join(dir, "missing.log")))
	})

	t.Run("悬空符号链接占用槽位", func(t *testing.T) {
		link := filepath.Join(dir, "dangling.log")
		if err := os.Symlink(filepath.Join(dir, "nowhere"), link); err != nil {
			t.Skipf("symlink unsupported: %v", err)
		}
		assert.True(t, Exists(link))
	})
}
