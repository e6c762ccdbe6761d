// Package version carries the build version, overridden at link time with
// -ldflags "-X oligotile/internal/version.Version=...".
package version

var Version = "dev"
