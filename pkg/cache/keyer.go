package cache

// Keyer derives cache keys. Keys embed a hash of every input that can
// change the cached value, so a stale hit is impossible as long as the
// options structs are complete.
type Keyer interface {
	// FrameKey identifies a simulated frame.
	FrameKey(skillsHash string, opts FrameKeyOpts) string

	// ArtifactKey identifies a rendered artifact of a frame.
	ArtifactKey(frameHash string, opts ArtifactKeyOpts) string
}

// FrameKeyOpts are the simulation inputs that affect a frame.
type FrameKeyOpts struct {
	Mode      string     `json:"mode"`
	Width     float64    `json:"width"`
	Height    float64    `json:"height"`
	Frames    int        `json:"frames"`
	FPS       float64    `json:"fps"`
	Smoothing string     `json:"smoothing"`
	Alpha     float64    `json:"alpha"`
	Rate      float64    `json:"rate"`
	Bob       [3]float64 `json:"bob"`
	Tolerance float64    `json:"tolerance"`
	Pointer   []float64  `json:"pointer,omitempty"`
}

// ArtifactKeyOpts are the render inputs that affect an artifact.
type ArtifactKeyOpts struct {
	Format      string  `json:"format"`
	Style       string  `json:"style"`
	Scale       float64 `json:"scale"`
	Font        string  `json:"font,omitempty"`
	Interactive bool    `json:"interactive,omitempty"`
}

// DefaultKeyer hashes the JSON encoding of key components.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// FrameKey implements Keyer.
func (DefaultKeyer) FrameKey(skillsHash string, opts FrameKeyOpts) string {
	return hashKey("frame", skillsHash, opts)
}

// ArtifactKey implements Keyer.
func (DefaultKeyer) ArtifactKey(frameHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", frameHash, opts)
}
