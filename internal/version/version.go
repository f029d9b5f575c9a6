package version

import "fmt"

// These variables are set at build time using ldflags.
// Example: go build -ldflags "-X github.com/developerashkan/Gantt-Chart-Generator/internal/version.Version=v1.0.0"
var (
	// Version is the semantic version of the application.
	Version = "dev"

	// CommitSHA is the git commit SHA at build time.
	CommitSHA = "unknown"

	// BuildDate is the date when the binary was built.
	BuildDate = "unknown"
)

// String returns the version with build metadata, e.g. "v1.0.0 (abc123, 2026-01-01)".
func String() string {
	return fmt.Sprintf("%s (%s, %s)", Version, CommitSHA, BuildDate)
}
