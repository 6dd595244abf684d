// Where: internal/domain/brand/capabilities.go
// What: Capability snapshot and filter options.
// Why: Pass tool availability and run scope explicitly instead of probing inside components.
package brand

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

const (
	ToolIconutil = "iconutil"
	ToolActool   = "actool"
	ToolSips     = "sips"
	ToolHdiutil  = "hdiutil"
)

// MinActoolMajor is the first actool release that compiles layered `.icon` inputs.
const MinActoolMajor = 16

// MinDarwinMajor is the first Darwin kernel whose actool accepts `.icon` inputs.
const MinDarwinMajor = 25

// Capabilities is a read-only snapshot of which external tools are usable.
type Capabilities struct {
	HasIconutil   bool
	HasActool     bool
	HasSips       bool
	HasHdiutil    bool
	ActoolVersion string
	DarwinVersion string
}

// RequiredTools lists the external tools a transformation type depends on.
func RequiredTools(t TypeName) []string {
	switch t {
	case TypeIcns:
		return []string{ToolIconutil}
	case TypeAssetsCar:
		return []string{ToolActool}
	case TypeDsStore:
		return []string{ToolSips, ToolHdiutil, ToolIconutil}
	default:
		return nil
	}
}

// Has reports whether the named tool is available.
func (c Capabilities) Has(tool string) bool {
	switch tool {
	case ToolIconutil:
		return c.HasIconutil
	case ToolActool:
		return c.HasActool
	case ToolSips:
		return c.HasSips
	case ToolHdiutil:
		return c.HasHdiutil
	default:
		return false
	}
}

// MissingTools returns the required tools for t that are not available.
func (c Capabilities) MissingTools(t TypeName) []string {
	var missing []string
	for _, tool := range RequiredTools(t) {
		if !c.Has(tool) {
			missing = append(missing, tool)
		}
	}
	return missing
}

// Supports reports whether every tool needed by t is available.
func (c Capabilities) Supports(t TypeName) bool {
	return len(c.MissingTools(t)) == 0
}

// ValidateActool checks that actool is present and new enough for layered icons.
func (c Capabilities) ValidateActool() error {
	if !c.HasActool {
		return &ToolUnavailableError{Tool: ToolActool}
	}
	if darwin, err := semver.NewVersion(strings.TrimSpace(c.DarwinVersion)); err == nil && darwin.Major() < MinDarwinMajor {
		return &UnsupportedToolVersionError{
			Tool:    "macOS",
			Version: "Darwin " + c.DarwinVersion,
			Message: "actool .icon support requires macOS 15 (Darwin 25.0) or higher",
		}
	}
	raw := strings.TrimSpace(c.ActoolVersion)
	if raw == "" {
		return &UnsupportedToolVersionError{
			Tool:    ToolActool,
			Version: "unknown",
			Message: "Unable to determine actool version. Is Xcode 16 or higher installed?",
		}
	}
	version, err := semver.NewVersion(raw)
	if err != nil {
		return &UnsupportedToolVersionError{
			Tool:    ToolActool,
			Version: raw,
			Message: "Unable to parse actool version. Is Xcode 16 or higher installed?",
		}
	}
	if version.Major() < MinActoolMajor {
		return &UnsupportedToolVersionError{
			Tool:    ToolActool,
			Version: raw,
			Message: fmt.Sprintf(
				"Must be on actool %d.0.0 or higher but found %s. Install Xcode %d or higher to get a supported version of actool.",
				MinActoolMajor, raw, MinActoolMajor,
			),
		}
	}
	return nil
}

// MacMode gates the platform-only transformation types.
type MacMode string

const (
	MacModeNone   MacMode = "none"
	MacModeSimple MacMode = "simple"
	MacModeAll    MacMode = "all"
)

// ParseMacMode validates a mode name.
func ParseMacMode(value string) (MacMode, error) {
	switch mode := MacMode(strings.ToLower(strings.TrimSpace(value))); mode {
	case MacModeNone, MacModeSimple, MacModeAll:
		return mode, nil
	}
	return "", fmt.Errorf("%w: unknown mac mode %q", ErrConfig, value)
}

// Allows reports whether the mode lets t through.
func (m MacMode) Allows(t TypeName) bool {
	switch m {
	case MacModeNone:
		return t != TypeDsStore && t != TypeIcns && t != TypeAssetsCar
	case MacModeSimple:
		return t != TypeDsStore
	default:
		return true
	}
}

// FilterOptions scopes which transformations a run executes.
// A non-nil OnlyTypes overrides Mode entirely.
type FilterOptions struct {
	OnlyTypes map[TypeName]struct{}
	Mode      MacMode
}

// NewFilterOptions returns options that allow everything.
func NewFilterOptions() FilterOptions {
	return FilterOptions{Mode: MacModeAll}
}

// WithTypes restricts the run to the given types.
func (o FilterOptions) WithTypes(types []TypeName) FilterOptions {
	o.OnlyTypes = make(map[TypeName]struct{}, len(types))
	for _, t := range types {
		o.OnlyTypes[t] = struct{}{}
	}
	return o
}

// WithMode sets the platform mode.
func (o FilterOptions) WithMode(mode MacMode) FilterOptions {
	o.Mode = mode
	return o
}
