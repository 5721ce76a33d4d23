package nodelink

import (
	"strings"
	"testing"

	"github.com/dav88dev/skillorbit/pkg/skills"
)

func testRegistry() *skills.Registry {
	return skills.MustBuild([]skills.Input{
		{Name: "Go", Category: "Languages", Color: "#00ADD8", Level: 90, Connections: []string{"Docker", "gRPC"}},
		{Name: "Docker", Category: "DevOps", Level: 80, Connections: []string{"Go"}},
		{Name: "Rust", Category: "Languages", Level: 60},
	})
}

func TestToDOT_Basic(t *testing.T) {
	dot := ToDOT(testRegistry(), Options{})

	if !strings.HasPrefix(dot, "graph G {") {
		t.Error("ToDOT() output missing graph declaration")
	}
	for _, name := range []string{`"Go"`, `"Docker"`, `"Rust"`} {
		if !strings.Contains(dot, name) {
			t.Errorf("ToDOT() output missing node %s", name)
		}
	}
	if strings.Count(dot, " -- ") != 1 {
		t.Errorf("ToDOT() should emit the Go/Docker edge once:\n%s", dot)
	}
	if !strings.Contains(dot, `"Go" -- "Docker"`) {
		t.Error("ToDOT() output missing edge")
	}
	if !strings.Contains(dot, `fillcolor="#00ADD8"`) {
		t.Error("ToDOT() output missing skill color")
	}
	if strings.Contains(dot, "gRPC") {
		t.Error("dangling connection drawn without ShowDangling")
	}
}

func TestToDOT_Detailed(t *testing.T) {
	dot := ToDOT(testRegistry(), Options{Detailed: true})
	if !strings.Contains(dot, `Languages\nlevel 90`) {
		t.Errorf("ToDOT() detailed output missing category/level:\n%s", dot)
	}
}

func TestToDOT_Cluster(t *testing.T) {
	dot := ToDOT(testRegistry(), Options{Cluster: true})
	if strings.Count(dot, "subgraph cluster_") != 2 {
		t.Errorf("want 2 clusters:\n%s", dot)
	}
	if !strings.Contains(dot, `label="Languages"`) {
		t.Error("cluster label missing")
	}
}

func TestToDOT_Dangling(t *testing.T) {
	dot := ToDOT(testRegistry(), Options{ShowDangling: true})
	if !strings.Contains(dot, `"Go" -- "gRPC" [style=dashed]`) {
		t.Errorf("dangling edge missing:\n%s", dot)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	out := string(normalizeViewBox(in))
	if !strings.Contains(out, `width="100" height="50"`) {
		t.Errorf("normalizeViewBox() = %s", out)
	}

	plain := []byte(`<svg><g/></svg>`)
	if string(normalizeViewBox(plain)) != string(plain) {
		t.Error("normalizeViewBox() changed svg without viewBox")
	}
}
