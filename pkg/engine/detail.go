package engine

import "github.com/dav88dev/skillorbit/pkg/skills"

// DescriptionLimit is the longest description shown untruncated in the
// detail panel.
const DescriptionLimit = 60

// Detail is the content of the hover panel.
type Detail struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category,omitempty"`
	Color       string `json:"color,omitempty"`
	Level       int    `json:"level"`
	Description string `json:"description,omitempty"`
	Connections []int  `json:"connections,omitempty"`
}

// Detail returns the panel content for the hovered skill.
func (e *Engine) Detail() (Detail, bool) {
	s, ok := e.HoveredSkill()
	if !ok {
		return Detail{}, false
	}
	return DetailFor(e.reg, s), true
}

// DetailFor builds panel content for s.
func DetailFor(reg *skills.Registry, s skills.Skill) Detail {
	return Detail{
		ID:          s.ID,
		Name:        s.Name,
		Category:    s.Category,
		Color:       s.Color,
		Level:       s.Level,
		Description: Truncate(s.Description, DescriptionLimit),
		Connections: reg.Neighbors(s.ID),
	}
}

// Truncate shortens s to at most limit runes, replacing the tail with
// "..." when it had to cut.
func Truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	if limit <= 3 {
		return string(r[:limit])
	}
	return string(r[:limit-3]) + "..."
}
