package domain

import (
	"runtime"
	"strings"

	"go.trai.ch/zerr"
)

// Platform identifies a build target as an opaque "<arch>-<os>" string
// (e.g., "x86_64-linux"). It keys catalog lookups and per-platform outputs.
type Platform string

// String returns the platform identifier.
func (p Platform) String() string {
	return string(p)
}

// IsLinux reports whether the platform belongs to the Linux OS family.
// Only these platforms are enumerated at evaluation time.
func (p Platform) IsLinux() bool {
	return strings.HasSuffix(string(p), "-linux")
}

// FilterLinux returns the subset of candidates that belong to the Linux OS
// family, preserving declaration order. Other platforms are excluded, not
// rejected.
func FilterLinux(candidates []Platform) []Platform {
	var kept []Platform
	for _, c := range candidates {
		if c.IsLinux() {
			kept = append(kept, c)
		}
	}
	return kept
}

// CurrentPlatform maps the running GOOS/GOARCH pair to a platform identifier.
func CurrentPlatform() (Platform, error) {
	switch {
	case runtime.GOOS == "linux" && runtime.GOARCH == "amd64":
		return "x86_64-linux", nil
	case runtime.GOOS == "linux" && runtime.GOARCH == "arm64":
		return "aarch64-linux", nil
	case runtime.GOOS == "darwin" && runtime.GOARCH == "amd64":
		return "x86_64-darwin", nil
	case runtime.GOOS == "darwin" && runtime.GOARCH == "arm64":
		return "aarch64-darwin", nil
	default:
		err := zerr.With(ErrUnsupportedPlatform, "goos", runtime.GOOS)
		return "", zerr.With(err, "goarch", runtime.GOARCH)
	}
}
