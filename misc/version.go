// Package misc exposes build identity helpers used across the program.
package misc

import (
	"runtime/debug"
)

const appName = "uic"

// GetAppName returns the short program name used for log naming and
// temporary files.
func GetAppName() string {
	return appName
}

// GetVersion returns the module version recorded in build info, "devel" for
// local builds.
func GetVersion() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		return bi.Main.Version
	}
	return "devel"
}

// GetGitHash returns the vcs revision recorded in build info, empty when the
// binary was built outside a checkout.
func GetGitHash() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" {
			return s.Value
		}
	}
	return ""
}
