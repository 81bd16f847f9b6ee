package version

// Version contains the application version information.
// This should be set via build-time ldflags in production:
// go build -ldflags "-X git.home.luguber.info/inful/sitetasks/internal/version.Version=v1.0.0".
var Version = "unknown"

// BuildInfo contains additional build metadata.
var (
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// String renders the version with commit and build time when they are known.
func String() string {
	s := Version
	if GitCommit != "unknown" && GitCommit != "" {
		s += " (" + GitCommit + ")"
	}
	if BuildTime != "unknown" && BuildTime != "" {
		s += " built " + BuildTime
	}
	return s
}
