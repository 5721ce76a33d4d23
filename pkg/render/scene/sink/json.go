package sink

import (
	"encoding/json"

	"github.com/dav88dev/skillorbit/pkg/engine"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	style  string
	indent bool
}

// WithJSONStyle records the style name in the output so a later render of
// the same frame can reproduce the look.
func WithJSONStyle(s string) JSONOption { return func(r *jsonRenderer) { r.style = s } }

// WithJSONIndent pretty-prints the output.
func WithJSONIndent() JSONOption { return func(r *jsonRenderer) { r.indent = true } }

type jsonOutput struct {
	Style string `json:"style,omitempty"`
	engine.Frame
}

// RenderJSON encodes the frame itself, the machine-readable counterpart of
// the drawn formats.
func RenderJSON(f engine.Frame, opts ...JSONOption) ([]byte, error) {
	var r jsonRenderer
	for _, opt := range opts {
		opt(&r)
	}
	out := jsonOutput{Style: r.style, Frame: f}
	if r.indent {
		return json.MarshalIndent(out, "", "  ")
	}
	return json.Marshal(out)
}

// ParseJSON decodes output of [RenderJSON] back into a frame.
func ParseJSON(data []byte) (engine.Frame, string, error) {
	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return engine.Frame{}, "", err
	}
	return out.Frame, out.Style, nil
}
