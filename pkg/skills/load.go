package skills

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/dav88dev/skillorbit/pkg/errors"
)

// Format identifies a skills document encoding.
type Format string

// Supported document formats.
const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// Document is the on-disk shape of a skills file:
//
//	{"skills": [{"name": "Go", "level": 90, "connections": ["Docker"]}]}
//
// JSON and YAML documents may also be a bare list of skills.
type Document struct {
	Skills []Input `json:"skills" toml:"skills" yaml:"skills"`
}

// FormatFromPath picks a format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported skills file extension %q (want .json, .toml, .yaml)", filepath.Ext(path))
}

// LoadFile reads and decodes a skills file, choosing the codec by extension.
// It returns the raw inputs; call [Build] to validate them.
func LoadFile(path string) ([]Input, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "skills file %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read %s", path)
	}
	return Decode(bytes.NewReader(data), format)
}

// Decode reads a skills document in the given format.
func Decode(r io.Reader, format Format) ([]Input, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read skills document")
	}

	switch format {
	case FormatJSON:
		return decodeJSON(data)
	case FormatTOML:
		var doc Document
		if _, err := toml.Decode(string(data), &doc); err != nil {
			return nil, errors.Wrap(errors.ErrCodeParse, err, "decode toml")
		}
		return doc.Skills, nil
	case FormatYAML:
		return decodeYAML(data)
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported skills format %q", format)
}

func decodeJSON(data []byte) ([]Input, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var list []Input
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, errors.Wrap(errors.ErrCodeParse, err, "decode json")
		}
		return list, nil
	}
	var doc Document
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeParse, err, "decode json")
	}
	return doc.Skills, nil
}

func decodeYAML(data []byte) ([]Input, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, errors.Wrap(errors.ErrCodeParse, err, "decode yaml")
	}
	if len(node.Content) > 0 && node.Content[0].Kind == yaml.SequenceNode {
		var list []Input
		if err := node.Content[0].Decode(&list); err != nil {
			return nil, errors.Wrap(errors.ErrCodeParse, err, "decode yaml")
		}
		return list, nil
	}
	var doc Document
	if err := node.Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeParse, err, "decode yaml")
	}
	return doc.Skills, nil
}

// Encode writes inputs as a skills document in the given format.
func Encode(w io.Writer, inputs []Input, format Format) error {
	doc := Document{Skills: inputs}
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case FormatTOML:
		return toml.NewEncoder(w).Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	}
	return errors.New(errors.ErrCodeInvalidFormat, "unsupported skills format %q", format)
}

// Inputs converts a registry back to inputs, preserving order.
func (r *Registry) Inputs() []Input {
	out := make([]Input, len(r.skills))
	for i, s := range r.skills {
		out[i] = Input{
			Name:        s.Name,
			Category:    s.Category,
			Color:       s.Color,
			Level:       s.Level,
			Description: s.Description,
			Connections: s.Connections,
		}
	}
	return out
}
