//go:build unix

package xfile

import "golang.org/x/sys/unix"

// accessWritable 通过 access(2) 检查目录对当前进程是否可写
func accessWritable(dir string) error {
	return unix.Access(dir, unix.W_OK|unix.X_OK)
}
