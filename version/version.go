// Package version provides the adfdoc version strings.
package version

import (
	_ "embed"
	"runtime"
	"strings"
)

// buildVersion can be overridden at compile time by using:
//
//	go run -ldflags "-X github.com/adf-tools/adfdoc/version.buildVersion=abc" . --version
//
// On CI, the binaries are always built with the buildVersion variable set.

//go:embed VERSION
var baseVersion string
var buildVersion string

func Version() string {
	return strings.TrimSpace(baseVersion)
}

func BuildVersion() string {
	if buildVersion == "" {
		return "x"
	}
	return buildVersion
}

func FullVersion() string {
	return Version() + "." + BuildVersion() + " (" + runtime.GOOS + "; " + runtime.GOARCH + ")"
}
