//go:build !linux && !darwin

package platform

func (fs *StatFs) statfs(_ string) error {
	return unsupported("statfs")
}
