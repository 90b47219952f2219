// Package buildinfo carries the version stamp that release builds
// inject with ldflags:
//
//	go build -ldflags "-X github.com/matzehuels/colplot/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/matzehuels/colplot/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/matzehuels/colplot/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// Unstamped builds report "dev".
package buildinfo

// Build metadata, overridden at link time. The CLI shows all three via
// --version; the HTTP server reports Version on /healthz.
var (
	Version = "dev"     // semantic version, e.g. "v1.2.3"
	Commit  = "none"    // git commit SHA
	Date    = "unknown" // UTC build timestamp
)
