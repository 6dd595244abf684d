// Where: internal/ports/toolchain.go
// What: Platform tooling contracts used by the generate workflow.
// Why: Let the workflow run against fake tools on any host.
package ports

import (
	"context"

	"github.com/poruru-code/brandgen/internal/domain/brand"
	"github.com/poruru-code/brandgen/internal/generator"
)

// CapabilityDetector takes the tool snapshot for one run.
type CapabilityDetector interface {
	Detect(ctx context.Context) brand.Capabilities
}

// AssemblerFactory builds the tool-backed assembler for a run.
type AssemblerFactory func(caps brand.Capabilities, createDMG string) generator.Assembler
