// Where: internal/commands/generate.go
// What: generate command adapter.
// Why: Translate flags and environment defaults into a GenerateRequest.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/samber/lo"

	"github.com/poruru-code/brandgen/internal/constants"
	"github.com/poruru-code/brandgen/internal/domain/brand"
	"github.com/poruru-code/brandgen/internal/infra/envutil"
	"github.com/poruru-code/brandgen/internal/infra/interaction"
	"github.com/poruru-code/brandgen/internal/infra/ui"
	"github.com/poruru-code/brandgen/internal/meta"
	"github.com/poruru-code/brandgen/internal/ports"
	"github.com/poruru-code/brandgen/internal/workflows"
)

// macModeAsk prompts for the mode when stdin is a terminal.
const macModeAsk = "ask"

// GenerateCmd runs every selected transformation of a config.
type GenerateCmd struct {
	Config    string   `arg:"" name:"config" help:"Transformation config (JSON or YAML)"`
	Source    string   `arg:"" name:"source" help:"Brand-specific source directory"`
	Static    string   `arg:"" name:"static" help:"Shared static directory"`
	Output    string   `short:"o" help:"Output directory (default: $BRANDGEN_OUTPUT_DIR or dist)"`
	Only      []string `sep:"," help:"Only run these transformation types (comma separated)"`
	Mac       string   `help:"Platform mode: none, simple, all or ask (default: $BRANDGEN_MAC_MODE or by host OS)"`
	Report    string   `help:"Write a Markdown run report to this path"`
	Manifest  string   `help:"Write a YAML output manifest to this path"`
	CreateDMG string   `name:"create-dmg" help:"Path to the create-dmg script"`
}

func runGenerate(cli CLI, deps Dependencies, out io.Writer) int {
	console := ui.NewUserInterface(out, !cli.NoEmoji)
	cmd := cli.Generate

	filter, err := resolveFilter(cmd, deps, console)
	if err != nil {
		return exitWithError(out, err)
	}

	req := workflows.GenerateRequest{
		ConfigPath:   cmd.Config,
		SourceDir:    cmd.Source,
		StaticDir:    cmd.Static,
		OutputDir:    firstNonEmpty(cmd.Output, envutil.HostEnvOr(constants.HostSuffixOutputDir, meta.OutputDir)),
		CreateDMG:    firstNonEmpty(cmd.CreateDMG, envutil.HostEnvOr(constants.HostSuffixCreateDMG, meta.DefaultCreateDMG)),
		Filter:       filter,
		ReportPath:   cmd.Report,
		ManifestPath: cmd.Manifest,
	}

	wf := workflows.NewGenerateWorkflow(deps.Detector, deps.NewAssembler, console)
	if _, err := wf.Run(context.Background(), req); err != nil {
		return exitWithError(out, err)
	}
	console.Success("Brand asset generation completed")
	return 0
}

// resolveFilter builds the filter options. An explicit --only list wins over
// the platform mode.
func resolveFilter(cmd GenerateCmd, deps Dependencies, console ports.UserInterface) (brand.FilterOptions, error) {
	opts := brand.NewFilterOptions()
	only := lo.Compact(cmd.Only)
	if len(only) > 0 {
		types := make([]brand.TypeName, 0, len(only))
		for _, raw := range only {
			t, err := brand.ParseTypeName(raw)
			if err != nil {
				return opts, err
			}
			types = append(types, t)
		}
		return opts.WithTypes(lo.Uniq(types)), nil
	}

	mode, err := resolveMacMode(cmd.Mac, deps, console)
	if err != nil {
		return opts, err
	}
	return opts.WithMode(mode), nil
}

func resolveMacMode(flag string, deps Dependencies, console ports.UserInterface) (brand.MacMode, error) {
	raw := firstNonEmpty(flag, envutil.GetHostEnv(constants.HostSuffixMacMode))
	switch raw {
	case "":
		return defaultMacMode(deps.GOOS, console), nil
	case macModeAsk:
		if deps.Prompter == nil || !interaction.IsTerminal(deps.Stdin) {
			return defaultMacMode(deps.GOOS, console), nil
		}
		return promptMacMode(deps.Prompter)
	}
	return brand.ParseMacMode(raw)
}

func defaultMacMode(goos string, console ports.UserInterface) brand.MacMode {
	if goos == "darwin" {
		console.Info("macOS host: running simple platform transformations (use --mac all to include ds-store)")
		return brand.MacModeSimple
	}
	console.Info("Non-macOS host: skipping icns, assets-car and ds-store (use --mac to override)")
	return brand.MacModeNone
}

func promptMacMode(prompter interaction.Prompter) (brand.MacMode, error) {
	selected, err := prompter.SelectValue("Which platform transformations should run?", []interaction.SelectOption{
		{Label: "none: portable types only", Value: string(brand.MacModeNone)},
		{Label: "simple: add icns and assets-car", Value: string(brand.MacModeSimple)},
		{Label: "all: add the ds-store installer layout", Value: string(brand.MacModeAll)},
	})
	if err != nil {
		return "", fmt.Errorf("select mac mode: %w", err)
	}
	return brand.ParseMacMode(selected)
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
