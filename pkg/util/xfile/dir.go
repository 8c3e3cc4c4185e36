package xfile

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultDirPerm 归档目录的默认权限（所有者 rwx，组 r-x，其他无权限）。
const DefaultDirPerm = 0o750

// EnsureDir 确保文件 filename 的父目录存在，使用 [DefaultDirPerm]。
//
// filename 是文件路径而不是目录路径。父目录为 "." 时直接返回。
// 底层使用 os.MkdirAll，已存在的目录不会被修改权限。
func EnsureDir(filename string) error {
	return EnsureDirWithPerm(filename, DefaultDirPerm)
}

// EnsureDirWithPerm 与 [EnsureDir] 相同，但使用指定权限。
//
// perm 必须包含所有者执行位（0100），否则返回 [ErrInvalidPerm]。
func EnsureDirWithPerm(filename string, perm os.FileMode) error {
	if filename == "" {
		return fmt.Errorf("filename is required: %w", ErrEmptyPath)
	}
	if containsNullByte(filename) {
		return fmt.Errorf("filename contains null byte: %w", ErrNullByte)
	}
	if perm&0o100 == 0 {
		return fmt.Errorf("directory permission %04o missing owner execute bit: %w", perm, ErrInvalidPerm)
	}
	dir := filepath.Dir(filename)
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, perm)
}
