// Package xroll 执行日志文件的归档轮转（roll）。
//
// 调用方（通常是 [github.com/omeyang/xroll/pkg/observability/xrotate] 的 Rotator）
// 决定何时轮转，xroll 决定如何轮转：归档到哪个路径、是否压缩、如何编号。
// 唯一的执行契约是 [Roller]：
//
//	Roll(file string, rollType RollType) error
//
// 成功返回后活动文件 file 不再存在；除仅删除模式外，恰好有一个新归档文件
// 出现在之前未被占用的路径上。
//
// # 路径模板
//
// 归档路径由模板解析得到：
//   - "{}" 替换为十进制索引，模板必须至少包含一个
//   - "{yyyy-mm}" 替换为参考日期的年月，如 "2024-01"
//   - "{yyyy-mm-dd}" 替换为参考日期的年月日，如 "2024-01-15"
//
// 参考日期默认取 UTC 当天；[RollYesterday] 取前一天。
// 扩展名 ".gz" 选择 gzip 压缩，".zst" 选择 zstd 压缩，其他不压缩。
//
// # 固定窗口
//
// [FixedWindowRoller] 支持两种编号模式：
//   - [ModeAppend]（默认）：从 base 起向上扫描，使用第一个不存在的索引；
//     既有归档不会被改名或删除，count 只区分仅删除（0）与归档（>0）
//   - [ModeShift]：同一日期戳内最多保留 count 个归档。删除 base+count-1，
//     其余归档索引整体加一，新归档写入 base
//
// count 为 0 时只删除活动文件，不解析路径也不创建目录。
//
// # 后台轮转
//
// [Background] 包装任意 Roller：同步把活动文件改名为临时路径后立即返回，
// 实际归档在后台 goroutine 中执行。同一个 Background 的归档严格串行，
// 上一次尚未完成时新的 Roll 会阻塞等待。后台错误不返回给调用方，
// 只送往诊断回调（默认写 stderr）。
//
// # 错误
//
// 构造期错误包装 [ErrConfig]，轮转期 I/O 错误包装 [ErrRotation]，
// 可通过 errors.Is 区分。
package xroll
