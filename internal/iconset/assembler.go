// Where: internal/iconset/assembler.go
// What: Tool-backed icon containers and their shared dependencies.
// Why: Stage renditions on disk and hand them to the platform compilers.
package iconset

import (
	"context"

	"github.com/poruru-code/brandgen/internal/domain/brand"
	"github.com/poruru-code/brandgen/internal/infra/staging"
)

// PlatformTools is the subset of platform tooling the assembler drives.
type PlatformTools interface {
	Iconutil(ctx context.Context, iconset, output string) error
	Actool(ctx context.Context, xcassets, icon, outDir string) error
	SetDPI(ctx context.Context, image string, dpi int) error
	Mount(ctx context.Context, dmg string) (string, error)
	Unmount(ctx context.Context, mountPoint string) error
	Unhide(ctx context.Context, path string) error
	CreateDMG(ctx context.Context, dir, script string, args []string) error
}

// Assembler builds .icns, Assets.car, and installer .DS_Store outputs.
type Assembler struct {
	Tools PlatformTools
	Caps  brand.Capabilities
	// CreateDMG is the resolved path of the create-dmg script.
	CreateDMG string
	// Acquire hands out staging directories; defaults to staging.Acquire.
	Acquire func(label string) (*staging.Dir, error)
}

func (a *Assembler) acquire(label string) (*staging.Dir, error) {
	if a.Acquire != nil {
		return a.Acquire(label)
	}
	return staging.Acquire(label)
}

func (a *Assembler) require(tools ...string) error {
	for _, tool := range tools {
		if !a.Caps.Has(tool) {
			return &brand.ToolUnavailableError{Tool: tool}
		}
	}
	return nil
}
