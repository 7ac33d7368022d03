package shadows

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/mouse-blink/shadower/internal/domain"
	m "github.com/mouse-blink/shadower/internal/model"
	"github.com/mouse-blink/shadower/internal/platform"
)

// BlockSize is the block size every shadowed StatFs reports.
const BlockSize = 4096

// Stats are the block counts registered for a path.
type Stats struct {
	BlockCount      int
	FreeBlocks      int
	AvailableBlocks int
}

// Class-scoped StatFs state: stats registered by tests, keyed by path.
var (
	statsMu sync.Mutex
	stats   = map[string]Stats{}
)

// RegisterStats sets the stats reported for path until the next reset.
func RegisterStats(path string, blockCount, freeBlocks, availableBlocks int) {
	statsMu.Lock()
	defer statsMu.Unlock()

	stats[path] = Stats{BlockCount: blockCount, FreeBlocks: freeBlocks, AvailableBlocks: availableBlocks}
}

// RegisterFileStats is RegisterStats for the absolute form of path.
func RegisterFileStats(path string, blockCount, freeBlocks, availableBlocks int) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}

	RegisterStats(abs, blockCount, freeBlocks, availableBlocks)

	return nil
}

// ResetStats forgets every registered path.
func ResetStats() error {
	statsMu.Lock()
	defer statsMu.Unlock()

	clear(stats)

	return nil
}

func lookupStats(path string) Stats {
	statsMu.Lock()
	defer statsMu.Unlock()

	return stats[path]
}

// StatFsShadow is the per-instance state of a shadowed StatFs.
type StatFsShadow struct {
	path string
	stat Stats
}

// Path returns the path the instance was last stat'ed for.
func (s *StatFsShadow) Path() string { return s.path }

func (s *StatFsShadow) restat(path string) {
	s.path = path
	s.stat = lookupStats(path)
}

// StatFsOf returns the shadow bound to fs.
func StatFsOf(fs *platform.StatFs) (*StatFsShadow, bool) {
	return domain.ShadowOf[*StatFsShadow](fs.Interception())
}

// StatFsDescriptor declares the StatFs shadow. Unregistered paths report zero
// blocks. The 64-bit accessors only exist from JELLY_BEAN_MR2 on.
func StatFsDescriptor() m.ShadowDescriptor {
	blockCount := func(s *StatFsShadow) int { return s.stat.BlockCount }
	available := func(s *StatFsShadow) int { return s.stat.AvailableBlocks }
	sinceMR2 := m.AtLeast(platform.JellyBeanMR2)

	return m.Shadow("ShadowStatFs", platform.StatFsType).
		Instance(func() any { return &StatFsShadow{} }).
		Constructor(domain.Method(func(s *StatFsShadow, args []any) (any, error) {
			s.restat(domain.Arg[string](args, 0))
			return nil, nil
		})).
		Method(platform.SigGetBlockSize, domain.Method(func(_ *StatFsShadow, _ []any) (any, error) {
			return BlockSize, nil
		})).
		Method(platform.SigGetBlockCount, domain.Method(func(s *StatFsShadow, _ []any) (any, error) {
			return blockCount(s), nil
		})).
		Method(platform.SigGetFreeBlocks, domain.Method(func(s *StatFsShadow, _ []any) (any, error) {
			return s.stat.FreeBlocks, nil
		})).
		Method(platform.SigGetAvailableBlocks, domain.Method(func(s *StatFsShadow, _ []any) (any, error) {
			return available(s), nil
		})).
		Method(platform.SigRestat, domain.Method(func(s *StatFsShadow, args []any) (any, error) {
			s.restat(domain.Arg[string](args, 0))
			return nil, nil
		})).
		MethodIn(platform.SigGetBlockSizeLong, sinceMR2, domain.Method(func(_ *StatFsShadow, _ []any) (any, error) {
			return int64(BlockSize), nil
		})).
		MethodIn(platform.SigGetBlockCountLong, sinceMR2, domain.Method(func(s *StatFsShadow, _ []any) (any, error) {
			return int64(blockCount(s)), nil
		})).
		MethodIn(platform.SigGetAvailableBlocksLong, sinceMR2, domain.Method(func(s *StatFsShadow, _ []any) (any, error) {
			return int64(available(s)), nil
		})).
		Reset(ResetStats).
		MustBuild()
}
