//go:build !xroll_nozstd

package codec

import (
	"io"

	"github.com/klauspost/compress/zstd"
)

func init() {
	encoders[Zstd] = func(w io.Writer) (io.WriteCloser, error) {
		return zstd.NewWriter(w)
	}
}
