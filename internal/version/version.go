// Package version provides build version information.
// The variables are set at build time via ldflags.
package version

// Build information. Populated at build time via -ldflags:
//
//	go build -ldflags "-X github.com/sfxgrab/sfx-grabber/internal/version.Version=1.2.3 \
//	  -X github.com/sfxgrab/sfx-grabber/internal/version.Commit=abc1234 \
//	  -X github.com/sfxgrab/sfx-grabber/internal/version.BuildTime=2026-01-02T15:04:05Z"
//
//nolint:gochecknoglobals // Build metadata must be package-level variables for ldflags injection.
var (
	// Version is the semantic version of the build.
	Version = "1.0.0"
	// Commit is the git commit hash of the build.
	Commit = "none"
	// BuildTime is when the binary was built.
	BuildTime = "unknown"
)

// Short returns just the version number.
func Short() string {
	return Version
}

// Full returns the complete version information.
func Full() string {
	return "version: " + Version + ", commit: " + Commit + ", built at: " + BuildTime
}
