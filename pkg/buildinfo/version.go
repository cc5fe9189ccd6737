// Package buildinfo holds the hexboard release metadata stamped in by the
// linker, for example:
//
//	go build -ldflags "-X github.com/matzehuels/hexboard/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/matzehuels/hexboard/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/matzehuels/hexboard/pkg/buildinfo.Date=$(date -u +%Y-%m-%d)" ./cmd/hexboard
//
// Development builds keep the placeholder values.
package buildinfo

import "fmt"

// Release metadata, overridden with -ldflags "-X".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String returns the metadata as three "key: value" lines.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", Version, Commit, Date)
}

// Template returns a cobra version template printing the command name
// followed by the metadata.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}
