package xroll

import (
	"fmt"
	"time"

	"github.com/omeyang/xroll/pkg/util/xfile"
)

// shift 为新归档腾出 base 位置，返回 base 与其路径。
//
// 同一日期戳内：删除 base+count-1，再从高到低把 i 移到 i+1。
// 自上而下处理保证每次移动的目标都已空出，不会覆盖任何归档。
func (r *FixedWindowRoller) shift(rollType RollType, now time.Time) (uint32, string, error) {
	base := r.opts.base
	last := lastIndex(base, r.count)
	resolve := func(i uint32) string {
		return Resolve(r.pattern, i, rollType, now)
	}

	oldest := resolve(last)
	if err := removeIfExists(oldest); err != nil {
		return 0, "", rotationError("prune "+oldest, err)
	}

	for i := last; i > base; i-- {
		src := resolve(i - 1)
		if !xfile.Exists(src) {
			continue
		}
		dst := resolve(i)
		if err := xfile.EnsureDir(dst); err != nil {
			return 0, "", rotationError("create directory for "+dst, err)
		}
		if err := xfile.Move(src, dst); err != nil {
			return 0, "", rotationError(fmt.Sprintf("shift %s to %s", src, dst), err)
		}
	}
	return base, resolve(base), nil
}
