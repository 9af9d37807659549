package config

import "fmt"

// ModuleName is this module's path, used as the service identifier.
const ModuleName = "github/cloex/go-exchange"

// The following vars are automatically injected via -ldflags.
var (
	Commit    = "unknown"
	BuildDate = "unknown"
)

// GetFormattedBuildArgs returns "<module-name> @ <commit> (<build-date>)".
func GetFormattedBuildArgs() string {
	return fmt.Sprintf("%v @ %v (%v)", ModuleName, Commit, BuildDate)
}
