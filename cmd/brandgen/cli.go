// Where: cmd/brandgen/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"io"
	"os"

	"github.com/poruru-code/brandgen/internal/commands"
	"github.com/poruru-code/brandgen/internal/domain/brand"
	"github.com/poruru-code/brandgen/internal/generator"
	"github.com/poruru-code/brandgen/internal/iconset"
	"github.com/poruru-code/brandgen/internal/infra/interaction"
	"github.com/poruru-code/brandgen/internal/infra/toolchain"
)

var (
	stdout    io.Writer = os.Stdout
	stderr    io.Writer = os.Stderr
	newRunner           = func(out, errOut io.Writer) toolchain.CommandRunner {
		return toolchain.ExecRunner{Out: out, ErrOut: errOut}
	}
)

// buildDependencies wires the real platform tooling into the command layer.
// Tool output goes to stderr so stdout stays readable.
func buildDependencies() commands.Dependencies {
	runner := newRunner(stderr, stderr)
	return commands.Dependencies{
		Out:      stdout,
		ErrOut:   stderr,
		Stdin:    os.Stdin,
		Prompter: interaction.HuhPrompter{},
		Detector: toolchain.Detector{Runner: runner},
		NewAssembler: func(caps brand.Capabilities, createDMG string) generator.Assembler {
			return &iconset.Assembler{
				Tools:     toolchain.Tools{Runner: runner},
				Caps:      caps,
				CreateDMG: createDMG,
			}
		},
	}
}
