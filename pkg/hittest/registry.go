package hittest

import "github.com/dav88dev/skillorbit/pkg/skills"

type registryGraph struct {
	reg *skills.Registry
}

// FromRegistry adapts a skill registry to [Graph].
func FromRegistry(reg *skills.Registry) Graph {
	return registryGraph{reg: reg}
}

func (g registryGraph) Level(i int) int {
	s, _ := g.reg.ByIndex(i)
	return s.Level
}

func (g registryGraph) IsConnected(a, b int) bool {
	return g.reg.IsConnected(a, b)
}
