package app

import "fmt"

// Build metadata, overridden at link time:
//
//	go build -ldflags "-X github.com/heartmarshall/bahr-checker/internal/app.Version=1.2.0"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion formats the build metadata for logs, probes and the CLI.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}
