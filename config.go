package htmlchop

// RewritePolicy selects how asset references are made to resolve from each
// emitted fragment's directory.
type RewritePolicy string

// RewritePolicy values.
const (
	// RewriteInPlace rewrites stylesheet and image references relative to
	// the fragment's output directory. Asset files stay where they are.
	RewriteInPlace RewritePolicy = "rewrite-in-place"

	// CopyAssets copies the asset root next to each emitted fragment and
	// leaves references untouched.
	CopyAssets RewritePolicy = "copy-assets"
)

// HeadInjection selects how the cached head block is injected into
// emitted fragments.
type HeadInjection string

// HeadInjection values.
const (
	// HeadPerFragment rewrites the head separately for each fragment's
	// own directory depth.
	HeadPerFragment HeadInjection = "per-fragment"

	// HeadShared reuses a single head string rewritten once relative to
	// the output root. Only correct when references are absolute or the
	// asset root is copied.
	HeadShared HeadInjection = "shared"
)

// Config controls a split run. Use DefaultConfig and override fields; the
// zero value fails Validate.
type Config struct {
	RewritePolicy RewritePolicy `yaml:"rewrite_policy"`
	OrdinalPrefix bool          `yaml:"ordinal_prefix"`
	HeadInjection HeadInjection `yaml:"head_injection"`
	Lang          string        `yaml:"lang"`        // lang attribute for the <html> root, empty to omit
	Concurrency   int           `yaml:"concurrency"` // parallel fragment writes, 1 = strictly sequential
	Manifest      bool          `yaml:"manifest"`    // write manifest.json at the output root
}

// DefaultConfig returns the standard configuration: in-place rewriting,
// ordinal-prefixed directories, per-fragment head injection, sequential
// writes.
func DefaultConfig() Config {
	return Config{
		RewritePolicy: RewriteInPlace,
		OrdinalPrefix: true,
		HeadInjection: HeadPerFragment,
		Concurrency:   1,
	}
}

// Validate returns an error if the configuration is inconsistent.
func (c Config) Validate() error {
	switch c.RewritePolicy {
	case RewriteInPlace, CopyAssets:
	default:
		return Errorf(EINVALID, "unknown rewrite policy %q", c.RewritePolicy)
	}
	switch c.HeadInjection {
	case HeadPerFragment, HeadShared:
	default:
		return Errorf(EINVALID, "unknown head injection mode %q", c.HeadInjection)
	}
	if c.Concurrency < 1 {
		return Errorf(EINVALID, "concurrency must be at least 1")
	}
	return nil
}
