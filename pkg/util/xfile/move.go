package xfile

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// renameFn 可注入的 rename 实现，仅用于测试模拟跨设备（EXDEV）等失败。
var renameFn = os.Rename

// Move 将 src 移动到 dst。
//
// 先尝试 rename；src 不存在时视为已完成并返回 nil；其他 rename 失败
// （典型为跨文件系统的 EXDEV，或 dst 父目录不存在）回退为 [Copy] + os.Remove(src)。
// 回退路径非原子，失败时 src 与 dst 可能同时存在，见包文档。
func Move(src, dst string) error {
	err := renameFn(src, dst)
	if err == nil {
		return nil
	}
	// rename 的 ENOENT 也可能来自 dst 父目录缺失，只有 src 确实不存在才是空操作
	if errors.Is(err, fs.ErrNotExist) {
		if _, statErr := os.Lstat(src); errors.Is(statErr, fs.ErrNotExist) {
			return nil
		}
	}

	if err := Copy(src, dst); err != nil {
		return err
	}
	if err := os.Remove(src); err != nil {
		return fmt.Errorf("xfile: remove %s after copy: %w", src, err)
	}
	return nil
}

// Copy 将 src 的内容流式复制到 dst。
//
// dst 不存在时以 src 的权限位创建，已存在时被截断。返回前对 dst 执行 Sync。
func Copy(src, dst string) (err error) {
	in, err := os.Open(src) //#nosec G304 -- 路径由轮转器内部解析
	if err != nil {
		return fmt.Errorf("xfile: open %s: %w", src, err)
	}
	defer func() {
		if closeErr := in.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("xfile: close %s: %w", src, closeErr)
		}
	}()

	info, err := in.Stat()
	if err != nil {
		return fmt.Errorf("xfile: stat %s: %w", src, err)
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm()) //#nosec G304 -- 同上
	if err != nil {
		return fmt.Errorf("xfile: create %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return fmt.Errorf("xfile: copy %s to %s: %w", src, dst, err)
	}
	if err := out.Sync(); err != nil {
		_ = out.Close()
		return fmt.Errorf("xfile: sync %s: %w", dst, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("xfile: close %s: %w", dst, err)
	}
	return nil
}
