// Package buildinfo carries the includecycle release version, commit and
// build date. They default to development placeholders and are stamped at
// release time with ldflags:
//
//	go build -ldflags "-X github.com/matzehuels/includecycle/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/matzehuels/includecycle/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/matzehuels/includecycle/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
package buildinfo

import "fmt"

var (
	// Version is the semantic version (e.g., "v1.2.3").
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// LogFields returns the build information as key/value pairs for structured
// logging.
func LogFields() []any {
	return []any{"version", Version, "commit", Commit, "built", Date}
}

// Template returns the text printed by --version. {{.Name}} is filled in by
// cobra with the command name.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}
