package xroll

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/omeyang/xroll/pkg/util/xfile"
)

// 模板 token。
const (
	TokenIndex = "{}"
	TokenMonth = "{yyyy-mm}"
	TokenDay   = "{yyyy-mm-dd}"
)

// HasPlaceholder 报告 pattern 是否包含索引占位符 "{}"。
func HasPlaceholder(pattern string) bool {
	return strings.Contains(pattern, TokenIndex)
}

// ReferenceDate 返回 rollType 对应的参考日期。
// [RollYesterday] 为 now 减一个日历日，其余为 now 本身。
func ReferenceDate(rollType RollType, now time.Time) time.Time {
	if rollType == RollYesterday {
		return now.AddDate(0, 0, -1)
	}
	return now
}

// Resolve 把模板解析为具体路径。纯函数，不访问文件系统。
//
// 先替换日期 token，再把所有 "{}" 替换为 index。
func Resolve(pattern string, index uint32, rollType RollType, now time.Time) string {
	date := ReferenceDate(rollType, now)
	s := strings.ReplaceAll(pattern, TokenDay, date.Format("2006-01-02"))
	s = strings.ReplaceAll(s, TokenMonth, date.Format("2006-01"))
	return strings.ReplaceAll(s, TokenIndex, strconv.FormatUint(uint64(index), 10))
}

// NextFree 返回同一日期戳下从 base 起第一个不存在的归档路径及其索引。
//
// 检查与后续写入之间存在 TOCTOU 窗口；跨进程共享归档目录时使用 [WithLockFile]。
func NextFree(pattern string, base uint32, rollType RollType, now time.Time) (uint32, string, error) {
	index := base
	for {
		dst := Resolve(pattern, index, rollType, now)
		if !xfile.Exists(dst) {
			return index, dst, nil
		}
		if index == math.MaxUint32 {
			return 0, "", ErrIndexExhausted
		}
		index++
	}
}

// lastIndex 返回窗口内最大索引 base+count-1，溢出时截断到 math.MaxUint32。
// count 必须大于 0。
func lastIndex(base, count uint32) uint32 {
	last := uint64(base) + uint64(count) - 1
	if last > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(last)
}
