package codec

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomBytes(t *testing.T, n int) []byte {
	t.Helper()
	buf := make([]byte, n)
	_, err := rand.New(rand.NewSource(7)).Read(buf)
	require.NoError(t, err)
	return buf
}

// withoutEncoder 在测试期间移除 kind 的编码实现，模拟构建标签去掉该能力。
func withoutEncoder(t *testing.T, kind Kind) {
	t.Helper()
	orig, ok := encoders[kind]
	delete(encoders, kind)
	t.Cleanup(func() {
		if ok {
			encoders[kind] = orig
		}
	})
}

func TestKindForPath(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    Kind
	}{
		{name: "gzip 扩展名", pattern: "archive/foo.{}.gz", want: Gzip},
		{name: "日志后缀加 gzip", pattern: "archive/foo.{}.log.gz", want: Gzip},
		{name: "zstd 扩展名", pattern: "archive/foo.{}.log.zst", want: Zstd},
		{name: "普通日志", pattern: "archive/foo.{}.log", want: None},
		{name: "无扩展名", pattern: "archive/foo.{}", want: None},
		{name: "gz 出现在中间", pattern: "archive/foo.gz.{}.log", want: None},
		{name: "大小写敏感", pattern: "archive/foo.{}.GZ", want: None},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindForPath(tt.pattern))
		})
	}
}

func TestKind_StringAndExtension(t *testing.T) {
	assert.Equal(t, "none", None.String())
	assert.Equal(t, "gzip", Gzip.String())
	assert.Equal(t, "zstd", Zstd.String())
	assert.Equal(t, "kind(9)", Kind(9).String())

	assert.Empty(t, None.Extension())
	assert.Equal(t, ".gz", Gzip.Extension())
	assert.Equal(t, ".zst", Zstd.Extension())
}

func TestAvailable_None(t *testing.T) {
	assert.True(t, Available(None))
	assert.Contains(t, Supported(), None)
}

func TestArchive_None(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "foo.log")
	dst := filepath.Join(dir, "foo.0.log")
	content := randomBytes(t, 4096)
	require.NoError(t, os.WriteFile(src, content, 0o600))

	require.NoError(t, Archive(None, src, dst))

	_, err := os.Stat(src)
	assert.ErrorIs(t, err, os.ErrNotExist)
	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestArchive_Unavailable(t *testing.T) {
	for _, kind := range []Kind{Gzip, Zstd} {
		t.Run(kind.String(), func(t *testing.T) {
			withoutEncoder(t, kind)

			dir := t.TempDir()
			src := filepath.Join(dir, "foo.log")
			require.NoError(t, os.WriteFile(src, []byte("x"), 0o600))

			assert.False(t, Available(kind))
			assert.NotContains(t, Supported(), kind)

			err := Archive(kind, src, filepath.Join(dir, "foo.0"+kind.Extension()))
			require.ErrorIs(t, err, ErrUnavailable)
			// 源文件不受影响
			_, statErr := os.Stat(src)
			assert.NoError(t, statErr)
		})
	}
}

func TestArchive_UnknownKind(t *testing.T) {
	err := Archive(Kind(42), "a", "b")
	assert.ErrorIs(t, err, ErrUnavailable)
}
