// Where: internal/infra/fileops/file_ops.go
// What: Shared filesystem operations for outputs and staging trees.
// Why: Keep copy, move, and directory helpers consistent across transformations.
package fileops

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"

	cp "github.com/otiai10/copy"
)

var rename = os.Rename

func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o755)
}

func EnsureParent(path string) error {
	return EnsureDir(filepath.Dir(path))
}

// RemoveDir deletes path recursively. Empty and missing paths are not errors.
func RemoveDir(path string) error {
	if path == "" {
		return nil
	}
	if err := os.RemoveAll(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func WriteFile(path string, content []byte) error {
	if err := EnsureParent(path); err != nil {
		return err
	}
	return os.WriteFile(path, content, 0o644)
}

// CopyDir copies a directory tree, following symlinks so the copy is self-contained.
func CopyDir(src, dst string) error {
	if !DirExists(src) {
		return fmt.Errorf("copy dir: %s is not a directory", src)
	}
	opts := cp.Options{
		PreserveTimes: false,
		PreserveOwner: false,
		OnSymlink:     func(string) cp.SymlinkAction { return cp.Deep },
	}
	if err := cp.Copy(src, dst, opts); err != nil {
		return fmt.Errorf("copy dir %s: %w", src, err)
	}
	return nil
}

// CopyFile copies src to dst byte for byte, keeping the source mode.
func CopyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	return copyFileWithMode(src, dst, info.Mode())
}

func copyFileWithMode(src, dst string, mode fs.FileMode) error {
	if err := EnsureParent(dst); err != nil {
		return err
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return os.Chmod(dst, mode.Perm())
}

// MoveFile renames src to dst, falling back to copy and delete when the two
// paths sit on different filesystems.
func MoveFile(src, dst string) error {
	if err := EnsureParent(dst); err != nil {
		return err
	}
	if err := removePathIfExists(dst); err != nil {
		return err
	}
	err := rename(src, dst)
	if err == nil {
		return nil
	}
	if !errors.Is(err, syscall.EXDEV) {
		return err
	}
	if err := CopyFile(src, dst); err != nil {
		return err
	}
	return os.Remove(src)
}

func removePathIfExists(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if info.IsDir() {
		return os.RemoveAll(path)
	}
	return os.Remove(path)
}

func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

func FileOrDirExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
