//go:build linux || darwin

package platform

import (
	"fmt"

	"golang.org/x/sys/unix"
)

func (fs *StatFs) statfs(path string) error {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return fmt.Errorf("statfs %s: %w", path, err)
	}

	fs.blockSize = int64(st.Bsize)
	fs.blocks = st.Blocks
	fs.free = st.Bfree
	fs.available = st.Bavail

	return nil
}
