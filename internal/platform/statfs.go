package platform

import (
	"github.com/mouse-blink/shadower/internal/domain"
	m "github.com/mouse-blink/shadower/internal/model"
)

// StatFsType identifies StatFs in the shadow registry.
const StatFsType m.TypeID = "android.os.StatFs"

// StatFs method signatures.
var (
	SigGetBlockSize           = m.Sig("getBlockSize")
	SigGetBlockCount          = m.Sig("getBlockCount")
	SigGetFreeBlocks          = m.Sig("getFreeBlocks")
	SigGetAvailableBlocks     = m.Sig("getAvailableBlocks")
	SigRestat                 = m.Sig("restat", "String")
	SigGetBlockSizeLong       = m.Sig("getBlockSizeLong")
	SigGetBlockCountLong      = m.Sig("getBlockCountLong")
	SigGetFreeBlocksLong      = m.Sig("getFreeBlocksLong")
	SigGetAvailableBlocksLong = m.Sig("getAvailableBlocksLong")
)

// StatFs reports file system space for a path.
type StatFs struct {
	ic        *domain.InterceptionContext
	blockSize int64
	blocks    uint64
	free      uint64
	available uint64
}

// NewStatFs stats the file system holding path. When a shadow is bound the
// host file system is never consulted.
func NewStatFs(s *domain.Session, path string) (*StatFs, error) {
	fs := &StatFs{}

	ic, err := domain.Bind(s, fs, StatFsType, path)
	if err != nil {
		return nil, err
	}

	fs.ic = ic
	if ic.Shadowed() {
		return fs, nil
	}

	if err := fs.statfs(path); err != nil {
		return nil, err
	}

	return fs, nil
}

// Interception exposes the bound context to shadow accessors.
func (fs *StatFs) Interception() *domain.InterceptionContext { return fs.ic }

// BlockSize returns the block size in bytes.
func (fs *StatFs) BlockSize() (int, error) {
	return domain.Call(fs.ic, SigGetBlockSize, func() (int, error) {
		return int(fs.blockSize), nil
	})
}

// BlockCount returns the total number of blocks.
func (fs *StatFs) BlockCount() (int, error) {
	return domain.Call(fs.ic, SigGetBlockCount, func() (int, error) {
		return int(fs.blocks), nil
	})
}

// FreeBlocks returns the number of free blocks, including reserved ones.
func (fs *StatFs) FreeBlocks() (int, error) {
	return domain.Call(fs.ic, SigGetFreeBlocks, func() (int, error) {
		return int(fs.free), nil
	})
}

// AvailableBlocks returns the blocks available to unprivileged callers.
func (fs *StatFs) AvailableBlocks() (int, error) {
	return domain.Call(fs.ic, SigGetAvailableBlocks, func() (int, error) {
		return int(fs.available), nil
	})
}

// Restat re-reads the statistics for path.
func (fs *StatFs) Restat(path string) error {
	return domain.Do(fs.ic, SigRestat, func() error {
		return fs.statfs(path)
	}, path)
}

// BlockSizeLong is BlockSize as a 64-bit value.
func (fs *StatFs) BlockSizeLong() (int64, error) {
	return domain.Call(fs.ic, SigGetBlockSizeLong, func() (int64, error) {
		return fs.blockSize, nil
	})
}

// BlockCountLong is BlockCount as a 64-bit value.
func (fs *StatFs) BlockCountLong() (int64, error) {
	return domain.Call(fs.ic, SigGetBlockCountLong, func() (int64, error) {
		return int64(fs.blocks), nil
	})
}

// FreeBlocksLong is FreeBlocks as a 64-bit value.
func (fs *StatFs) FreeBlocksLong() (int64, error) {
	return domain.Call(fs.ic, SigGetFreeBlocksLong, func() (int64, error) {
		return int64(fs.free), nil
	})
}

// AvailableBlocksLong is AvailableBlocks as a 64-bit value.
func (fs *StatFs) AvailableBlocksLong() (int64, error) {
	return domain.Call(fs.ic, SigGetAvailableBlocksLong, func() (int64, error) {
		return int64(fs.available), nil
	})
}
