package xroll

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/gofrs/flock"

	"github.com/omeyang/xroll/internal/codec"
	"github.com/omeyang/xroll/pkg/observability/xmetrics"
	"github.com/omeyang/xroll/pkg/util/xfile"
)

const componentName = "xroll"

// compressionAvailable 可替换的能力检查，测试中模拟构建标签去掉压缩实现。
var compressionAvailable = codec.Available

// FixedWindowRoller 按路径模板把活动文件归档到带索引的位置。
//
// 同一实例上的并发 Roll 串行执行；配置 [WithLockFile] 后跨进程也串行。
type FixedWindowRoller struct {
	pattern     string
	count       uint32
	compression codec.Kind
	opts        *options
	lock        *flock.Flock

	mu sync.Mutex
}

// NewFixedWindow 创建固定窗口 Roller。
//
// pattern 必须包含 "{}"，否则返回 [ErrMissingPlaceholder]；扩展名对应的压缩能力
// 不可用时返回 [ErrCompressionUnavailable]。构造过程不访问文件系统。
// count 为 0 表示仅删除。
func NewFixedWindow(pattern string, count uint32, opts ...Option) (*FixedWindowRoller, error) {
	o := applyOptions(opts)

	if !HasPlaceholder(pattern) {
		return nil, configError(ErrMissingPlaceholder, "%q", pattern)
	}
	kind := codec.KindForPath(pattern)
	if !compressionAvailable(kind) {
		return nil, configError(ErrCompressionUnavailable, "%s required by %q", kind, pattern)
	}
	if !o.mode.valid() {
		return nil, configError(ErrInvalidMode, "%d", uint8(o.mode))
	}

	r := &FixedWindowRoller{
		pattern:     pattern,
		count:       count,
		compression: kind,
		opts:        o,
	}
	if o.lockFile != "" {
		r.lock = flock.New(o.lockFile)
	}
	return r, nil
}

// Pattern 返回路径模板。
func (r *FixedWindowRoller) Pattern() string { return r.pattern }

// Base 返回最小归档索引。
func (r *FixedWindowRoller) Base() uint32 { return r.opts.base }

// Count 返回窗口大小。
func (r *FixedWindowRoller) Count() uint32 { return r.count }

// Mode 返回编号模式。
func (r *FixedWindowRoller) Mode() Mode { return r.opts.mode }

// Compression 返回压缩方式名称：none、gzip 或 zstd。
func (r *FixedWindowRoller) Compression() string { return r.compression.String() }

// Roll 归档 file。
//
// 失败时返回包装 [ErrRotation] 的错误，不重试。失败后 file 可能仍在原处，
// 也可能已被部分处理（例如压缩中途失败留下截断的目标文件）。
func (r *FixedWindowRoller) Roll(file string, rollType RollType) (err error) {
	if r.count == 0 {
		_, span := xmetrics.Start(context.Background(), r.opts.observer, xmetrics.SpanOptions{
			Component: componentName,
			Operation: "delete",
			Attrs:     []xmetrics.Attr{xmetrics.String("file", file)},
		})
		err = removeFile(file)
		span.End(xmetrics.Result{Err: err})
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	_, span := xmetrics.Start(context.Background(), r.opts.observer, xmetrics.SpanOptions{
		Component: componentName,
		Operation: "roll",
		Attrs: []xmetrics.Attr{
			xmetrics.String("pattern", r.pattern),
			xmetrics.String("compression", r.compression.String()),
			xmetrics.String("roll_type", rollType.String()),
			xmetrics.String("mode", r.opts.mode.String()),
		},
	})
	var (
		index uint32
		dst   string
	)
	defer func() {
		span.End(xmetrics.Result{
			Err: err,
			Attrs: []xmetrics.Attr{
				xmetrics.Int64("index", int64(index)),
				xmetrics.String("destination", dst),
			},
		})
	}()

	unlock, err := r.acquire()
	if err != nil {
		return err
	}
	defer unlock()

	now := r.opts.now()
	if r.opts.mode == ModeShift {
		index, dst, err = r.shift(rollType, now)
	} else {
		index, dst, err = NextFree(r.pattern, r.opts.base, rollType, now)
		if err != nil {
			err = rotationError("scan "+r.pattern, err)
		}
	}
	if err != nil {
		return err
	}

	return r.archive(file, dst)
}

func (r *FixedWindowRoller) archive(file, dst string) error {
	if err := xfile.EnsureDir(dst); err != nil {
		return rotationError("create directory for "+dst, err)
	}
	if err := codec.Archive(r.compression, file, dst); err != nil {
		return rotationError(fmt.Sprintf("archive %s to %s", file, dst), err)
	}
	return nil
}

// acquire 获取进程间锁，未配置时返回空操作。
func (r *FixedWindowRoller) acquire() (func(), error) {
	if r.lock == nil {
		return func() {}, nil
	}
	if err := xfile.EnsureDir(r.lock.Path()); err != nil {
		return nil, rotationError("create lock directory", err)
	}
	if err := r.lock.Lock(); err != nil {
		return nil, rotationError("lock "+r.lock.Path(), err)
	}
	return func() {
		if err := r.lock.Unlock(); err != nil {
			r.opts.reportError(fmt.Errorf("xroll: unlock %s: %w", r.lock.Path(), err))
		}
	}, nil
}

func removeFile(file string) error {
	if err := os.Remove(file); err != nil {
		return rotationError("remove "+file, err)
	}
	return nil
}

func removeIfExists(path string) error {
	err := os.Remove(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
