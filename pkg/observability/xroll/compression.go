package xroll

import "github.com/omeyang/xroll/internal/codec"

// Compression 一种可用的归档压缩方式。
type Compression struct {
	// Name 为 none、gzip 或 zstd。
	Name string
	// Extension 为选中该方式的模板扩展名，none 为空。
	Extension string
}

// Compressions 返回当前二进制可用的压缩方式，none 在首位。
func Compressions() []Compression {
	kinds := codec.Supported()
	out := make([]Compression, 0, len(kinds))
	for _, k := range kinds {
		out = append(out, Compression{Name: k.String(), Extension: k.Extension()})
	}
	return out
}
