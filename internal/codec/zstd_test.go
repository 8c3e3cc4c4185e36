//go:build !xroll_nozstd

package codec

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArchive_ZstdRoundTrip(t *testing.T) {
	require.True(t, Available(Zstd))

	dir := t.TempDir()
	src := filepath.Join(dir, "foo.log")
	dst := filepath.Join(dir, "foo.0.log.zst")
	content := randomBytes(t, 10000)
	require.NoError(t, os.WriteFile(src, content, 0o600))

	require.NoError(t, Archive(Zstd, src, dst))

	_, err := os.Stat(src)
	assert.ErrorIs(t, err, os.ErrNotExist)

	f, err := os.Open(dst)
	require.NoError(t, err)
	defer f.Close()
	dec, err := zstd.NewReader(f)
	require.NoError(t, err)
	defer dec.Close()
	got, err := io.ReadAll(dec)
	require.NoError(t, err)
	assert.Equal(t, content, got)
}
