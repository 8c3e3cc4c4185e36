package codec

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/omeyang/xroll/pkg/util/xfile"
)

// ErrUnavailable 请求的压缩能力未编译进当前二进制。
var ErrUnavailable = errors.New("codec: compression unavailable")

// Kind 归档编码方式。
type Kind uint8

const (
	// None 不压缩，归档即移动。
	None Kind = iota
	// Gzip gzip 压缩。
	Gzip
	// Zstd zstd 压缩。
	Zstd
)

const (
	gzipExt = ".gz"
	zstdExt = ".zst"
)

// String 返回编码方式名称。
func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case Gzip:
		return "gzip"
	case Zstd:
		return "zstd"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Extension 返回编码方式对应的文件扩展名，None 返回空串。
func (k Kind) Extension() string {
	switch k {
	case Gzip:
		return gzipExt
	case Zstd:
		return zstdExt
	default:
		return ""
	}
}

// KindForPath 根据 pattern 的扩展名选择编码方式。
func KindForPath(pattern string) Kind {
	switch filepath.Ext(pattern) {
	case gzipExt:
		return Gzip
	case zstdExt:
		return Zstd
	default:
		return None
	}
}

// encoderFunc 包装 w 返回一个编码写入器，Close 时写出尾部数据。
type encoderFunc func(w io.Writer) (io.WriteCloser, error)

// encoders 由各编码实现文件在 init 中注册，受构建标签控制。
var encoders = map[Kind]encoderFunc{}

// Available 报告 kind 是否可用。None 总是可用。
func Available(kind Kind) bool {
	if kind == None {
		return true
	}
	_, ok := encoders[kind]
	return ok
}

// Supported 返回当前二进制支持的全部编码方式（含 None），按值排序。
func Supported() []Kind {
	kinds := []Kind{None}
	for k := range encoders {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// Archive 把 src 以 kind 方式归档到 dst，成功后 src 不再存在。
//
// None 委托给 [xfile.Move]；压缩方式的 dst 父目录必须已存在。
func Archive(kind Kind, src, dst string) error {
	if kind == None {
		return xfile.Move(src, dst)
	}
	newEncoder, ok := encoders[kind]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnavailable, kind)
	}
	return compress(newEncoder, src, dst)
}

func compress(newEncoder encoderFunc, src, dst string) error {
	in, err := os.Open(src) //#nosec G304 -- 路径由轮转器内部解析
	if err != nil {
		return fmt.Errorf("codec: open %s: %w", src, err)
	}

	info, err := in.Stat()
	if err != nil {
		_ = in.Close()
		return fmt.Errorf("codec: stat %s: %w", src, err)
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm()) //#nosec G304 -- 同上
	if err != nil {
		_ = in.Close()
		return fmt.Errorf("codec: create %s: %w", dst, err)
	}

	if err := encode(newEncoder, in, out); err != nil {
		_ = out.Close()
		_ = in.Close()
		return fmt.Errorf("codec: compress %s to %s: %w", src, dst, err)
	}
	if err := out.Close(); err != nil {
		_ = in.Close()
		return fmt.Errorf("codec: close %s: %w", dst, err)
	}
	// 删除前先关闭源，部分平台不允许删除打开中的文件
	if err := in.Close(); err != nil {
		return fmt.Errorf("codec: close %s: %w", src, err)
	}
	if err := os.Remove(src); err != nil {
		return fmt.Errorf("codec: remove %s: %w", src, err)
	}
	return nil
}

func encode(newEncoder encoderFunc, r io.Reader, w io.Writer) error {
	enc, err := newEncoder(w)
	if err != nil {
		return err
	}
	if _, err := io.Copy(enc, r); err != nil {
		_ = enc.Close()
		return err
	}
	return enc.Close()
}
