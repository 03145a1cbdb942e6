// Package version holds the CLI version string, overridden at build time
// via -ldflags "-X github.com/ammonelzinga/scripturelens-cli/internal/version.Current=vX.Y.Z".
package version

// Current is the version reported by the version command.
var Current = "v0.1.0"
