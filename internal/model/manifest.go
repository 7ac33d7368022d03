package model

// Path represents a file system path.
type Path string

// Manifest is a serializable snapshot of a registered shadow set.
type Manifest struct {
	Shadows []ManifestEntry `yaml:"shadows"`
}

// ManifestEntry describes one registered shadow.
type ManifestEntry struct {
	Name    string   `yaml:"name"`
	Target  string   `yaml:"target"`
	Range   string   `yaml:"range"`
	Methods []string `yaml:"methods,omitempty"`
	Reset   bool     `yaml:"reset"`
}

// ManifestFor builds the manifest of descriptors in the given order.
func ManifestFor(descriptors []ShadowDescriptor) Manifest {
	entries := make([]ManifestEntry, 0, len(descriptors))

	for _, d := range descriptors {
		entry := ManifestEntry{
			Name:   d.Name(),
			Target: string(d.Target()),
			Range:  d.Range().String(),
			Reset:  d.HasReset(),
		}

		for _, sig := range d.Signatures() {
			for _, v := range d.Variants(sig) {
				entry.Methods = append(entry.Methods, sig.Key()+" "+v.Range.String())
			}
		}

		entries = append(entries, entry)
	}

	return Manifest{Shadows: entries}
}
