package hugo

import (
	"context"
	"os/exec"
	"regexp"
	"strings"
)

var (
	taggedVersionRe = regexp.MustCompile(`v(\d+\.\d+\.\d+)`)
	bareVersionRe   = regexp.MustCompile(`(\d+\.\d+\.\d+)`)
)

// DetectVersion attempts to detect the version of binary.
// Returns the version string (e.g., "0.152.2") or empty string if detection fails.
// This is best-effort and will not error if hugo is unavailable.
func DetectVersion(ctx context.Context, binary string) string {
	path, err := LookPath(binary)
	if err != nil {
		return ""
	}

	// #nosec G204 -- path is from exec.LookPath
	output, err := exec.CommandContext(ctx, path, "version").Output()
	if err != nil {
		return ""
	}

	// Expected format examples:
	//   hugo v0.152.2+extended linux/amd64 BuildDate=2024-12-20T08:00:00Z
	//   Hugo Static Site Generator v0.152.2-extended
	return ParseVersion(string(output))
}

// ParseVersion extracts the semantic version from hugo version output.
// Output without an X.Y.Z triple is returned trimmed.
func ParseVersion(output string) string {
	// Prefer the v-prefixed tag so build dates and platform strings never win.
	if m := taggedVersionRe.FindStringSubmatch(output); len(m) >= 2 {
		return m[1]
	}
	if m := bareVersionRe.FindStringSubmatch(output); len(m) >= 2 {
		return m[1]
	}
	return strings.TrimSpace(output)
}
