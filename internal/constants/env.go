// Where: internal/constants/env.go
// What: Environment variable naming constants.
// Why: Centralize environment variable names to avoid typos and inconsistencies.
package constants

// Suffixes appended to meta.EnvPrefix by envutil.
const (
	HostSuffixOutputDir  = "OUTPUT_DIR"
	HostSuffixStagingDir = "STAGING_DIR"
	HostSuffixCreateDMG  = "CREATE_DMG"
	HostSuffixMacMode    = "MAC_MODE"
	HostSuffixLogLevel   = "LOG_LEVEL"
)

const (
	// EnvOutputDir overrides the default output directory.
	EnvOutputDir = "BRANDGEN_OUTPUT_DIR"
	// EnvStagingDir moves staging directories out of the system temp dir.
	EnvStagingDir = "BRANDGEN_STAGING_DIR"
	// EnvCreateDMG points at the create-dmg script.
	EnvCreateDMG = "BRANDGEN_CREATE_DMG"
	// EnvMacMode sets the default platform mode when --mac is omitted.
	EnvMacMode = "BRANDGEN_MAC_MODE"
	// EnvLogLevel sets the diagnostic log level.
	EnvLogLevel = "BRANDGEN_LOG_LEVEL"
)
