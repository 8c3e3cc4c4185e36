// Package xfile 提供日志归档所需的文件系统工具。
//
// 本包是 xroll 的底层依赖，只包含轮转路径上真正用到的操作：
//
//   - [SanitizePath]: 活动日志文件路径的格式净化（空路径、空字节、相对路径穿越、目录路径）
//   - [EnsureDir]: 为文件路径创建父目录（默认权限 0750）
//   - [Exists]: 归档槽位探测，任何 stat 错误都视为"不存在"
//   - [Move]: 优先原子 rename，跨文件系统时回退为 copy + remove
//   - [Copy]: 流式复制，保留源文件权限位
//   - [StampedPath] / [UniqueStampedPath]: 以时间戳替换扩展名生成临时路径
//
// # Move 语义
//
// Move 的三种结果：
//
//	rename 成功          → 返回 nil
//	rename 报告源不存在   → 返回 nil（幂等，重试已完成的移动不会报错）
//	rename 其他失败       → Copy(src, dst) 后 Remove(src)
//
// 回退路径不是原子的：copy 完成而 remove 失败（或进程在两者之间崩溃）时，
// src 与 dst 会同时存在且内容相同。这是日志归档场景可接受的窗口，本包不做补偿。
//
// 源不存在被视为成功，这同时会吞掉"文件被其他进程删除"的竞态，调用方需要知晓。
//
// # 错误处理
//
// 预定义错误变量支持 [errors.Is] 判断：
//
//	_, err := xfile.SanitizePath("../etc/passwd")
//	if errors.Is(err, xfile.ErrPathTraversal) {
//	    // 处理路径穿越
//	}
package xfile
