// Where: internal/meta/meta.go
// What: CLI-local metadata constants.
// Why: Keep the binary name, env prefix, and default layout in one place.
package meta

const (
	// Project Identity
	AppName   = "brandgen"
	Slug      = "brandgen"
	EnvPrefix = "BRANDGEN"

	// Directory Layout
	OutputDir      = "dist"
	StagingPrefix  = "brandgen-"
	DefaultEnvFile = ".env"

	// External tooling
	DefaultCreateDMG = "external/create-dmg/create-dmg"
)
