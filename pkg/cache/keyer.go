package cache

// LayoutKeyOpts holds the layout settings that change a plan.
type LayoutKeyOpts struct {
	HorizontalStretch float64  `json:"h"`
	VerticalStretch   float64  `json:"v"`
	TopView           float64  `json:"top"`
	Labels            []string `json:"labels,omitempty"`
}

// ArtifactKeyOpts holds the render settings that change an output file.
type ArtifactKeyOpts struct {
	VizType  string  `json:"viz"`
	Format   string  `json:"format"`
	Theme    string  `json:"theme,omitempty"` // hash of the resolved theme
	Width    float64 `json:"w,omitempty"`
	Height   float64 `json:"h,omitempty"`
	Scale    float64 `json:"scale,omitempty"`
	Detailed bool    `json:"detailed,omitempty"`
}

// Keyer derives cache keys.
type Keyer interface {
	// LayoutKey keys a plan by the well's content hash and layout options.
	LayoutKey(wellHash string, opts LayoutKeyOpts) string
	// ArtifactKey keys a rendered file by its source hash and render options.
	ArtifactKey(sourceHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes options into fixed-length keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

func (DefaultKeyer) LayoutKey(wellHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", wellHash, opts)
}

func (DefaultKeyer) ArtifactKey(sourceHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", sourceHash, opts)
}

// ScopedKeyer prefixes every key. The CLI scopes keys by build version so an
// upgrade never serves output rendered by older code.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer wraps inner, or DefaultKeyer when inner is nil.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

func (k *ScopedKeyer) LayoutKey(wellHash string, opts LayoutKeyOpts) string {
	return k.prefix + k.inner.LayoutKey(wellHash, opts)
}

func (k *ScopedKeyer) ArtifactKey(sourceHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(sourceHash, opts)
}
