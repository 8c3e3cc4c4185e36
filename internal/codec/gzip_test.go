//go:build !xroll_nogzip

package codec

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArchive_GzipRoundTrip(t *testing.T) {
	require.True(t, Available(Gzip))

	dir := t.TempDir()
	src := filepath.Join(dir, "foo.log")
	dst := filepath.Join(dir, "foo.0.gz")
	content := randomBytes(t, 10000)
	require.NoError(t, os.WriteFile(src, content, 0o600))

	require.NoError(t, Archive(Gzip, src, dst))

	_, err := os.Stat(src)
	assert.ErrorIs(t, err, os.ErrNotExist, "压缩成功后源文件必须被删除")

	f, err := os.Open(dst)
	require.NoError(t, err)
	defer f.Close()
	zr, err := gzip.NewReader(f)
	require.NoError(t, err)
	defer zr.Close()
	got, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestArchive_GzipEmptySource(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "foo.log")
	dst := filepath.Join(dir, "foo.0.gz")
	require.NoError(t, os.WriteFile(src, nil, 0o600))

	require.NoError(t, Archive(Gzip, src, dst))

	f, err := os.Open(dst)
	require.NoError(t, err)
	defer f.Close()
	zr, err := gzip.NewReader(f)
	require.NoError(t, err)
	got, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestArchive_GzipMissingSource(t *testing.T) {
	dir := t.TempDir()
	dst := filepath.Join(dir, "foo.0.gz")

	err := Archive(Gzip, filepath.Join(dir, "missing.log"), dst)
	require.ErrorIs(t, err, os.ErrNotExist)
	_, statErr := os.Stat(dst)
	assert.ErrorIs(t, statErr, os.ErrNotExist)
}

func TestArchive_GzipMissingDestinationDir(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "foo.log")
	require.NoError(t, os.WriteFile(src, []byte("keep"), 0o600))

	err := Archive(Gzip, src, filepath.Join(dir, "no", "such", "foo.0.gz"))
	require.Error(t, err)
	_, statErr := os.Stat(src)
	assert.NoError(t, statErr, "创建目标失败时源文件保持不动")
}
