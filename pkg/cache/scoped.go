package cache

// ScopedKeyer prepends a fixed prefix to every key from the wrapped
// Keyer. The serve command uses it to keep server artifact keys separate
// from plain CLI render keys in a shared cache directory, so gallery
// deletes only ever evict server entries.
//
//	serverKeyer := NewScopedKeyer(NewDefaultKeyer(), "server:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer wraps inner, or DefaultKeyer when inner is nil.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

func (k *ScopedKeyer) DatasetKey(name string, opts DatasetKeyOpts) string {
	return k.prefix + k.inner.DatasetKey(name, opts)
}

func (k *ScopedKeyer) ArtifactKey(datasetHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(datasetHash, opts)
}
