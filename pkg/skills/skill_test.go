package skills

import (
	"errors"
	"slices"
	"testing"

	serrors "github.com/dav88dev/skillorbit/pkg/errors"
)

func sample() []Input {
	return []Input{
		{Name: "Go", Category: "Languages", Level: 90, Connections: []string{"Docker", "PostgreSQL"}},
		{Name: "Docker", Category: "DevOps", Level: 80},
		{Name: "PostgreSQL", Category: "Databases", Level: 70, Connections: []string{"Go"}},
		{Name: "Rust", Category: "Languages", Level: 60, Connections: []string{"WebAssembly"}},
	}
}

func TestBuild(t *testing.T) {
	reg, err := Build(sample())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if reg.Len() != 4 {
		t.Errorf("Len() = %d, want 4", reg.Len())
	}
	for i, s := range reg.All() {
		if s.ID != i {
			t.Errorf("All()[%d].ID = %d, want %d", i, s.ID, i)
		}
	}
	s, ok := reg.ByName("PostgreSQL")
	if !ok || s.ID != 2 || s.Category != "Databases" {
		t.Errorf("ByName(PostgreSQL) = %+v, %v", s, ok)
	}
	if _, ok := reg.ByName("Haskell"); ok {
		t.Error("ByName(Haskell) found, want missing")
	}
	if _, ok := reg.ByIndex(4); ok {
		t.Error("ByIndex(4) found, want missing")
	}
	if _, ok := reg.ByIndex(-1); ok {
		t.Error("ByIndex(-1) found, want missing")
	}
}

func TestBuildEmpty(t *testing.T) {
	reg, err := Build(nil)
	if err != nil {
		t.Fatalf("Build(nil) error = %v", err)
	}
	if reg.Len() != 0 || len(reg.Edges()) != 0 {
		t.Errorf("empty registry Len = %d, Edges = %v", reg.Len(), reg.Edges())
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name   string
		inputs []Input
		code   serrors.Code
	}{
		{"duplicate name", []Input{{Name: "Go"}, {Name: "Rust"}, {Name: "Go"}}, serrors.ErrCodeDuplicateName},
		{"empty name", []Input{{Name: "Go"}, {Name: ""}}, serrors.ErrCodeParse},
		{"blank name", []Input{{Name: "  "}}, serrors.ErrCodeParse},
		{"level too high", []Input{{Name: "Go", Level: 101}}, serrors.ErrCodeParse},
		{"negative level", []Input{{Name: "Go", Level: -3}}, serrors.ErrCodeParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg, err := Build(tt.inputs)
			if err == nil {
				t.Fatalf("Build() = %v, want error", reg)
			}
			if reg != nil {
				t.Errorf("Build() registry = %v, want nil", reg)
			}
			if got := serrors.GetCode(err); got != tt.code {
				t.Errorf("GetCode() = %v, want %v", got, tt.code)
			}
		})
	}
}

func TestBuildDuplicateDetail(t *testing.T) {
	_, err := Build([]Input{{Name: "Go"}, {Name: "Rust"}, {Name: "Go"}})
	var dup *serrors.DuplicateNameError
	if !errors.As(err, &dup) {
		t.Fatalf("error %v is not a DuplicateNameError", err)
	}
	if dup.Name != "Go" || dup.First != 0 || dup.Second != 2 {
		t.Errorf("dup = %+v, want Go at 0 and 2", dup)
	}
}

func TestIsConnectedSymmetric(t *testing.T) {
	reg := MustBuild(sample())
	n := reg.Len()
	for a := 0; a < n; a++ {
		for b := 0; b < n; b++ {
			if reg.IsConnected(a, b) != reg.IsConnected(b, a) {
				t.Errorf("IsConnected(%d,%d) != IsConnected(%d,%d)", a, b, b, a)
			}
		}
	}

	tests := []struct {
		a, b string
		want bool
	}{
		{"Go", "Docker", true},
		{"Docker", "Go", true},
		{"PostgreSQL", "Go", true},
		{"Docker", "PostgreSQL", false},
		{"Rust", "WebAssembly", false},
		{"Go", "Go", false},
		{"Go", "Missing", false},
	}
	for _, tt := range tests {
		if got := reg.IsConnectedByName(tt.a, tt.b); got != tt.want {
			t.Errorf("IsConnectedByName(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}

	if reg.IsConnected(-1, 0) || reg.IsConnected(0, 99) {
		t.Error("IsConnected out of range = true, want false")
	}
}

func TestNeighborsAndEdges(t *testing.T) {
	reg := MustBuild(sample())

	if got, want := reg.Neighbors(0), []int{1, 2}; !slices.Equal(got, want) {
		t.Errorf("Neighbors(0) = %v, want %v", got, want)
	}
	if got := reg.Neighbors(3); len(got) != 0 {
		t.Errorf("Neighbors(3) = %v, want none", got)
	}
	if got := reg.Neighbors(10); got != nil {
		t.Errorf("Neighbors(10) = %v, want nil", got)
	}

	// Go->PostgreSQL and PostgreSQL->Go collapse into one edge.
	want := []Edge{{A: 0, B: 1}, {A: 0, B: 2}}
	if got := reg.Edges(); !slices.Equal(got, want) {
		t.Errorf("Edges() = %v, want %v", got, want)
	}
}

func TestDangling(t *testing.T) {
	reg := MustBuild(sample())
	want := []Dangling{{From: 3, To: "WebAssembly"}}
	if got := reg.Dangling(); !slices.Equal(got, want) {
		t.Errorf("Dangling() = %v, want %v", got, want)
	}
}

func TestSelfConnectionIgnored(t *testing.T) {
	reg := MustBuild([]Input{{Name: "Go", Connections: []string{"Go"}}})
	if reg.IsConnected(0, 0) {
		t.Error("IsConnected(0,0) = true, want false")
	}
	if len(reg.Dangling()) != 0 {
		t.Errorf("Dangling() = %v, want none", reg.Dangling())
	}
}

func TestRegistryIsolatedFromInput(t *testing.T) {
	in := sample()
	reg := MustBuild(in)
	in[0].Connections[0] = "Changed"

	s, _ := reg.ByIndex(0)
	if s.Connections[0] != "Docker" {
		t.Errorf("Connections[0] = %q, want Docker", s.Connections[0])
	}

	all := reg.All()
	all[0].Name = "Mutated"
	if s, _ := reg.ByIndex(0); s.Name != "Go" {
		t.Errorf("Name = %q after mutating All(), want Go", s.Name)
	}
}

func TestMustBuildPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustBuild did not panic on duplicate names")
		}
	}()
	MustBuild([]Input{{Name: "Go"}, {Name: "Go"}})
}
