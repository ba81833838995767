// internal/version/version.go
package version

// Version is reported by --version and embedded in usage output.
var Version = "0.3.0"
