//go:build !xroll_nogzip

package codec

import (
	"io"

	"github.com/klauspost/compress/gzip"
)

func init() {
	encoders[Gzip] = func(w io.Writer) (io.WriteCloser, error) {
		return gzip.NewWriterLevel(w, gzip.DefaultCompression)
	}
}
