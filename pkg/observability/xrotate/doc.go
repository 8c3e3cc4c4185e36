// Package xrotate 提供写入活动日志文件并在需要时轮转的 Rotator。
//
// Rotator 只负责持有活动文件：何时轮转由 [Trigger] 决定，如何轮转由
// [xroll.Roller] 决定。两者都由调用方注入，本包不内置任何大小或时间策略。
//
// # 写入与轮转顺序
//
//  1. 活动文件延迟打开（追加模式），已有内容计入当前大小
//  2. 写入数据并累加大小
//  3. 询问 Trigger；需要轮转时关闭活动文件、调用 Roller、大小清零
//  4. 下一次写入重新打开活动文件
//
// 轮转失败时，本次写入的字节数照常返回，同时返回轮转错误并送往 OnError 回调。
//
// # 关闭
//
// Close 关闭活动文件；Roller 实现 [xroll.Waiter] 时（如后台轮转）等待其完成。
// 关闭后 Write/Rotate 返回 [ErrClosed]，重复 Close 也返回 [ErrClosed]。
package xrotate
