package version

// Build information set by ldflags
var (
	Version = "dev"     // Set by goreleaser: -X github.com/arthur-debert/gdot/internal/version.Version={{.Version}}
	Commit  = "unknown" // Set by goreleaser: -X github.com/arthur-debert/gdot/internal/version.Commit={{.Commit}}
	Date    = "unknown" // Set by goreleaser: -X github.com/arthur-debert/gdot/internal/version.Date={{.Date}}
)

// String is the one-line form used by --version and the version command
func String() string {
	return Version + " (commit " + Commit + ", built " + Date + ")"
}
