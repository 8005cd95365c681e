//go:build !unix

package xfile

import (
	"fmt"
	"os"
)

// accessWritable 非 unix 平台没有 access(2)，退化为检查所有者写权限位
func accessWritable(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return err
	}
	if info.Mode().Perm()&0200 == 0 {
		return fmt.Errorf("directory %s is read-only", dir)
	}
	return nil
}
