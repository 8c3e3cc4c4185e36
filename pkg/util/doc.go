// Package util 提供通用工具相关的子包。
//
// 子包列表：
//   - xfile: 文件操作工具，目录创建、路径处理、跨文件系统移动、时间戳命名
//
// 设计原则：
//   - 安全处理路径遍历
//   - 跨平台兼容
package util
