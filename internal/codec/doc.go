// Package codec 提供归档文件的压缩编码。
//
// 本包是 internal 包，仅供 pkg/observability/xroll 使用。
// 外部用户不应直接导入此包。
//
// 编码方式由归档路径的扩展名决定：
//   - ".gz"  → [Gzip]（github.com/klauspost/compress/gzip）
//   - ".zst" → [Zstd]（github.com/klauspost/compress/zstd）
//   - 其他   → [None]，归档即移动
//
// 压缩能力在编译期决定：构建标签 xroll_nogzip / xroll_nozstd 分别去掉对应实现，
// 此时 [Available] 报告 false，[Archive] 返回 [ErrUnavailable]。
//
// 压缩流程：打开源、创建目标、流式编码、关闭编码器（写出尾部）、关闭目标、
// 关闭源、删除源。任一步骤失败立即返回，不清理已写出的部分目标文件。
package codec
