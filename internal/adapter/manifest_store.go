// Package adapter persists shadow-set manifests.
package adapter

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/shadower/internal/model"
)

// ErrEmptyManifest is returned when saving a manifest without shadows.
var ErrEmptyManifest = errors.New("manifest has no shadows")

const manifestExt = ".yaml"

// ManifestStore persists and retrieves shadow-set manifests.
type ManifestStore interface {
	// Save writes manifest into dir and returns the path of the written file.
	Save(dir m.Path, manifest m.Manifest) (m.Path, error)
	// Load reads the manifest stored at path.
	Load(path m.Path) (m.Manifest, error)
}

// LocalManifestStore stores manifests as YAML files named after a hash of
// their content, so saving the same shadow set twice yields the same file.
type LocalManifestStore struct{}

// NewManifestStore constructs a ManifestStore implementation.
func NewManifestStore() ManifestStore {
	return &LocalManifestStore{}
}

// Save implements ManifestStore.
func (s *LocalManifestStore) Save(dir m.Path, manifest m.Manifest) (m.Path, error) {
	if len(manifest.Shadows) == 0 {
		return "", ErrEmptyManifest
	}

	data, err := yaml.Marshal(manifest)
	if err != nil {
		return "", fmt.Errorf("marshal manifest: %w", err)
	}

	if err := os.MkdirAll(string(dir), 0o755); err != nil {
		return "", fmt.Errorf("create manifest dir %s: %w", dir, err)
	}

	path := filepath.Join(string(dir), s.computeManifestHash(data)+manifestExt)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("write manifest %s: %w", path, err)
	}

	return m.Path(path), nil
}

// Load implements ManifestStore.
func (s *LocalManifestStore) Load(path m.Path) (m.Manifest, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.Manifest{}, fmt.Errorf("read manifest %s: %w", path, err)
	}

	var manifest m.Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return m.Manifest{}, fmt.Errorf("decode manifest %s: %w", path, err)
	}

	return manifest, nil
}

func (s *LocalManifestStore) computeManifestHash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])[:16]
}
