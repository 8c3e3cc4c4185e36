package xroll

import "strconv"

// RollType 选择归档路径中日期 token 的参考日期，每次调用单独传入。
type RollType int16

const (
	// RollToday 参考日期为当天。
	RollToday RollType = 0
	// RollYesterday 参考日期为前一天，通常用于跨零点触发的轮转。
	RollYesterday RollType = 1
)

// String 返回 RollType 的可读名称。
func (t RollType) String() string {
	switch t {
	case RollToday:
		return "today"
	case RollYesterday:
		return "yesterday"
	default:
		return "roll_type(" + strconv.Itoa(int(t)) + ")"
	}
}

// Roller 执行一次轮转。
//
// 成功返回后 file 不再存在。非 [RollYesterday] 的 rollType 一律按当天处理。
type Roller interface {
	Roll(file string, rollType RollType) error
}

// RollerFunc 将普通函数适配为 [Roller]。
type RollerFunc func(file string, rollType RollType) error

// Roll 调用 f(file, rollType)。
func (f RollerFunc) Roll(file string, rollType RollType) error {
	return f(file, rollType)
}

// Waiter 由异步执行的 Roller 实现，Wait 阻塞到所有已提交的轮转完成。
type Waiter interface {
	Wait()
}
