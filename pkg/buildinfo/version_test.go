package buildinfo

import (
	"strings"
	"testing"
)

func TestShortCommit(t *testing.T) {
	orig := Commit
	defer func() { Commit = orig }()

	tests := []struct {
		commit string
		want   string
	}{
		{"none", "none"},
		{"3f9c2a1d8e7b6c5a", "3f9c2a1"},
		{"abc", "abc"},
	}
	for _, tt := range tests {
		Commit = tt.commit
		if got := ShortCommit(); got != tt.want {
			t.Errorf("ShortCommit(%q) = %q, want %q", tt.commit, got, tt.want)
		}
	}
}

func TestCacheScope(t *testing.T) {
	orig := Version
	defer func() { Version = orig }()

	tests := []struct {
		version string
		want    string
	}{
		{"dev", "dev"},
		{"v1.2.3", "v1.2.3"},
		{"1.2.3", "v1.2.3"},
	}
	for _, tt := range tests {
		Version = tt.version
		if got := CacheScope(); got != tt.want {
			t.Errorf("CacheScope(%q) = %q, want %q", tt.version, got, tt.want)
		}
	}
}

func TestTemplate(t *testing.T) {
	if !strings.Contains(Template(), "{{.Name}} version "+Version) {
		t.Errorf("Template() = %q", Template())
	}
	if !strings.HasPrefix(String(), "version: ") {
		t.Errorf("String() = %q", String())
	}
}
