package skills

import (
	"slices"

	"github.com/dav88dev/skillorbit/pkg/errors"
)

// Input is one entry of a skills document as supplied by the host.
// Any "id" key in the source document is ignored; IDs are assigned by
// registration order.
type Input struct {
	Name        string   `json:"name" toml:"name" yaml:"name"`
	Category    string   `json:"category,omitempty" toml:"category" yaml:"category,omitempty"`
	Color       string   `json:"color,omitempty" toml:"color" yaml:"color,omitempty"`
	Level       int      `json:"level" toml:"level" yaml:"level"`
	Description string   `json:"description,omitempty" toml:"description" yaml:"description,omitempty"`
	Connections []string `json:"connections,omitempty" toml:"connections" yaml:"connections,omitempty"`
}

// Skill is a registered node. ID equals its registration index.
type Skill struct {
	ID          int
	Name        string
	Category    string
	Color       string
	Level       int
	Description string
	Connections []string
}

// Edge is a resolved, undirected connection between two registered skills.
// A is always the smaller index.
type Edge struct {
	A, B int
}

// Dangling is a connection that names a skill missing from the registry.
type Dangling struct {
	From int    // index of the declaring skill
	To   string // unresolved name
}

// Registry is the immutable catalog of skills built by [Build].
// It is safe for concurrent reads once built.
type Registry struct {
	skills  []Skill
	byName  map[string]int
	adj     [][]bool
	edges   []Edge
	dangled []Dangling
}

// Build validates inputs and returns a registry in input order.
//
// Build fails with a [errors.DuplicateNameError] when two entries share a
// name and with an ErrCodeParse error for empty names or out-of-range
// levels. Connections naming unknown skills are kept and reported by
// [Registry.Dangling]; they never fail the build.
func Build(inputs []Input) (*Registry, error) {
	r := &Registry{
		skills: make([]Skill, 0, len(inputs)),
		byName: make(map[string]int, len(inputs)),
	}

	for i, in := range inputs {
		if err := errors.ValidateSkillName(in.Name); err != nil {
			return nil, errors.Wrap(errors.ErrCodeParse, err, "skill #%d", i)
		}
		if err := errors.ValidateLevel(in.Name, in.Level); err != nil {
			return nil, err
		}
		if first, dup := r.byName[in.Name]; dup {
			return nil, &errors.DuplicateNameError{Name: in.Name, First: first, Second: i}
		}
		r.byName[in.Name] = i
		r.skills = append(r.skills, Skill{
			ID:          i,
			Name:        in.Name,
			Category:    in.Category,
			Color:       in.Color,
			Level:       in.Level,
			Description: in.Description,
			Connections: slices.Clone(in.Connections),
		})
	}

	r.resolve()
	return r, nil
}

// MustBuild is like Build but panics on error. Intended for tests and
// package-level fixtures.
func MustBuild(inputs []Input) *Registry {
	r, err := Build(inputs)
	if err != nil {
		panic(err)
	}
	return r
}

// resolve precomputes the symmetric adjacency matrix and edge list.
func (r *Registry) resolve() {
	n := len(r.skills)
	r.adj = make([][]bool, n)
	for i := range r.adj {
		r.adj[i] = make([]bool, n)
	}

	for i, s := range r.skills {
		for _, name := range s.Connections {
			j, ok := r.byName[name]
			if !ok {
				r.dangled = append(r.dangled, Dangling{From: i, To: name})
				continue
			}
			if i == j {
				continue
			}
			r.adj[i][j] = true
			r.adj[j][i] = true
		}
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if r.adj[i][j] {
				r.edges = append(r.edges, Edge{A: i, B: j})
			}
		}
	}
}

// Len returns the number of registered skills.
func (r *Registry) Len() int { return len(r.skills) }

// All returns the skills in registration order. The slice is a copy.
func (r *Registry) All() []Skill { return slices.Clone(r.skills) }

// ByIndex returns the skill registered at index i.
func (r *Registry) ByIndex(i int) (Skill, bool) {
	if i < 0 || i >= len(r.skills) {
		return Skill{}, false
	}
	return r.skills[i], true
}

// ByName returns the skill with the given display name.
func (r *Registry) ByName(name string) (Skill, bool) {
	i, ok := r.byName[name]
	if !ok {
		return Skill{}, false
	}
	return r.skills[i], true
}

// Index returns the registration index for name.
func (r *Registry) Index(name string) (int, bool) {
	i, ok := r.byName[name]
	return i, ok
}

// IsConnected reports whether either skill declares the other as a
// connection. It is symmetric and false for out-of-range indices.
func (r *Registry) IsConnected(a, b int) bool {
	if a < 0 || b < 0 || a >= len(r.adj) || b >= len(r.adj) {
		return false
	}
	return r.adj[a][b]
}

// IsConnectedByName is IsConnected keyed by display name. Unknown names
// are never connected.
func (r *Registry) IsConnectedByName(a, b string) bool {
	i, okA := r.byName[a]
	j, okB := r.byName[b]
	return okA && okB && r.adj[i][j]
}

// Neighbors returns the indices connected to i in ascending order.
func (r *Registry) Neighbors(i int) []int {
	if i < 0 || i >= len(r.adj) {
		return nil
	}
	var out []int
	for j, ok := range r.adj[i] {
		if ok {
			out = append(out, j)
		}
	}
	return out
}

// Edges returns each resolved connection once, ordered by (A, B).
func (r *Registry) Edges() []Edge { return slices.Clone(r.edges) }

// Dangling returns the connections that reference unknown skills, in
// declaration order.
func (r *Registry) Dangling() []Dangling { return slices.Clone(r.dangled) }
