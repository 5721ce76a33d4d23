// Package buildinfo provides build-time version information for the
// skillorbit binary.
//
// Variables are set via ldflags during build:
//
//	go build -ldflags "-X github.com/dav88dev/skillorbit/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/dav88dev/skillorbit/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/dav88dev/skillorbit/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" \
//	    ./cmd/skillorbit
package buildinfo

import (
	"fmt"
	"strings"
)

var (
	// Version is the semantic version (e.g., "v1.2.3").
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// String returns the formatted build information.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", Version, Commit, Date)
}

// Template returns the version template string for cobra.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, ShortCommit(), Date)
}

// ShortCommit returns the first seven characters of Commit.
func ShortCommit() string {
	if len(Commit) > 7 && !strings.ContainsAny(Commit[:7], " \t") {
		return Commit[:7]
	}
	return Commit
}

// CacheScope returns the cache key prefix for this build. Development
// builds share one scope; each release gets its own.
func CacheScope() string {
	if Version == "dev" {
		return "dev"
	}
	return "v" + strings.TrimPrefix(Version, "v")
}
