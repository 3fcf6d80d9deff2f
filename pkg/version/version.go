// Package version holds the build version, overridable at link time.
package version

// Version is the current zbminstall version. Set via
// -ldflags "-X github.com/pvermeer/zbminstall/pkg/version.Version=..."
var Version = "0.3.0"
