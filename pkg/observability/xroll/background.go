package xroll

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/omeyang/xroll/pkg/observability/xmetrics"
	"github.com/omeyang/xroll/pkg/util/xfile"
)

// diagnosticsOutput 默认诊断输出，测试中可替换。
var diagnosticsOutput io.Writer = os.Stderr

func defaultDiagnostics(err error) {
	_, _ = fmt.Fprintf(diagnosticsOutput, "xroll: background rotation failed: %v\n", err)
}

type backgroundOptions struct {
	diagnostics func(error)
	clock       func() time.Time
	observer    xmetrics.Observer
}

// BackgroundOption 配置 [Background]。nil 选项被忽略。
type BackgroundOption func(*backgroundOptions)

// WithDiagnostics 设置后台错误回调，nil 被忽略。
// 回调在工作 goroutine 中执行，其中的 panic 会被恢复。
func WithDiagnostics(fn func(error)) BackgroundOption {
	return func(o *backgroundOptions) {
		if fn != nil {
			o.diagnostics = fn
		}
	}
}

// WithStampClock 设置生成临时文件名的时钟，nil 被忽略。
func WithStampClock(clock func() time.Time) BackgroundOption {
	return func(o *backgroundOptions) {
		if clock != nil {
			o.clock = clock
		}
	}
}

// WithBackgroundObserver 设置后台归档的观测器，nil 被忽略。
func WithBackgroundObserver(observer xmetrics.Observer) BackgroundOption {
	return func(o *backgroundOptions) {
		if observer != nil {
			o.observer = observer
		}
	}
}

// Background 在后台 goroutine 中执行内层 Roller。
//
// 状态只有两种：空闲（ready）与后台轮转中。Roll 先同步把活动文件改名为
// 唯一的临时路径，使调用方可以立即重新打开活动文件；若上一轮仍在进行则阻塞，
// 然后启动新的工作 goroutine 并立即返回 nil。
//
// 工作 goroutine 的错误不会返回给任何调用方，只送往诊断回调。
// 同一实例上的内层轮转严格串行。
type Background struct {
	inner Roller
	opts  backgroundOptions
	move  func(src, dst string) error

	// moveMu 串行化临时文件名选择与改名，并发 Roll 不会选中同一路径
	moveMu sync.Mutex

	mu      sync.Mutex
	cond    *sync.Cond
	ready   bool
	pending int
	closed  bool
}

// NewBackground 包装 inner。inner 为 nil 时 panic。
func NewBackground(inner Roller, opts ...BackgroundOption) *Background {
	if inner == nil {
		panic(ErrNilRoller)
	}
	o := backgroundOptions{
		diagnostics: defaultDiagnostics,
		clock:       time.Now,
		observer:    xmetrics.NoopObserver{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	b := &Background{
		inner: inner,
		opts:  o,
		move:  xfile.Move,
		ready: true,
	}
	b.cond = sync.NewCond(&b.mu)
	return b
}

// Roll 改名 file 后提交后台归档。
//
// 并发调用安全，各次调用得到互不相同的临时路径。
// 改名失败返回包装 [ErrRotation] 的错误；关闭后返回 [ErrClosed]。
// 上一次后台归档未完成时阻塞等待。
func (b *Background) Roll(file string, rollType RollType) error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return ErrClosed
	}
	b.pending++
	b.mu.Unlock()

	b.moveMu.Lock()
	temp := xfile.UniqueStampedPath(file, b.opts.clock())
	err := b.move(file, temp)
	b.moveMu.Unlock()
	if err != nil {
		b.mu.Lock()
		b.pending--
		b.cond.Broadcast()
		b.mu.Unlock()
		return rotationError(fmt.Sprintf("move %s to %s", file, temp), err)
	}

	b.mu.Lock()
	for !b.ready {
		b.cond.Wait()
	}
	b.ready = false
	b.pending--
	b.mu.Unlock()

	go b.work(file, temp, rollType)
	return nil
}

func (b *Background) work(file, temp string, rollType RollType) {
	defer func() {
		b.mu.Lock()
		b.ready = true
		// 等待者包括下一次 Roll 以及 Wait/Close，需全部唤醒后各自重新检查条件
		b.cond.Broadcast()
		b.mu.Unlock()
	}()

	_, span := xmetrics.Start(context.Background(), b.opts.observer, xmetrics.SpanOptions{
		Component: componentName,
		Operation: "background_roll",
		Attrs: []xmetrics.Attr{
			xmetrics.String("file", file),
			xmetrics.String("temp", temp),
			xmetrics.String("roll_type", rollType.String()),
		},
	})
	err := b.rollInner(temp, rollType)
	span.End(xmetrics.Result{Err: err})
	if err != nil {
		b.report(err)
	}
}

func (b *Background) rollInner(temp string, rollType RollType) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: panic while rolling %s: %v", ErrRotation, temp, r)
		}
	}()
	return b.inner.Roll(temp, rollType)
}

func (b *Background) report(err error) {
	defer func() { _ = recover() }()
	b.opts.diagnostics(err)
}

// Wait 阻塞到没有进行中或已提交未启动的归档。
func (b *Background) Wait() {
	b.mu.Lock()
	for !b.ready || b.pending > 0 {
		b.cond.Wait()
	}
	b.mu.Unlock()
}

// Busy 报告是否有后台归档正在进行。
func (b *Background) Busy() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return !b.ready
}

// Close 拒绝新的 Roll 并等待已提交的归档完成。重复调用返回 [ErrClosed]。
func (b *Background) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return ErrClosed
	}
	b.closed = true
	b.mu.Unlock()

	b.Wait()
	return nil
}

// Inner 返回被包装的 Roller。
func (b *Background) Inner() Roller {
	return b.inner
}
