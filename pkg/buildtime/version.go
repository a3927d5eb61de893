package buildtime

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var version string

//go:embed revision
var revision string

func init() {
	version = strings.TrimSpace(version)
	revision = strings.TrimSpace(revision)
}

// version of smctl at build time.
func VERSION() string {
	return version
}

func GIT_REVISION() string {
	return revision
}

// VersionString returns "VERSION (commit: REVISION)" followed by a newline.
func VersionString() string {
	return version + " (commit: " + revision + ")\n"
}
