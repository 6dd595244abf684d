// Where: internal/commands/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher.
package commands

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/alecthomas/kong"
	log "github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/poruru-code/brandgen/internal/constants"
	"github.com/poruru-code/brandgen/internal/infra/config"
	"github.com/poruru-code/brandgen/internal/infra/envutil"
	"github.com/poruru-code/brandgen/internal/infra/interaction"
	"github.com/poruru-code/brandgen/internal/infra/ui"
	"github.com/poruru-code/brandgen/internal/meta"
	"github.com/poruru-code/brandgen/internal/ports"
	"github.com/poruru-code/brandgen/internal/version"
)

// Dependencies holds everything a command needs from the outside world.
// Tests swap the detector and assembler factory for fakes.
type Dependencies struct {
	Out          io.Writer
	ErrOut       io.Writer
	Stdin        *os.File
	GOOS         string
	Prompter     interaction.Prompter
	Detector     ports.CapabilityDetector
	NewAssembler ports.AssemblerFactory
}

// CLI defines the command-line interface structure parsed by Kong.
type CLI struct {
	EnvFile    string        `name:"env-file" help:"Path to .env file"`
	Verbose    bool          `short:"v" help:"Enable debug logging on stderr"`
	NoEmoji    bool          `name:"no-emoji" help:"Disable emoji in console output"`
	Generate   GenerateCmd   `cmd:"" help:"Generate brand assets from a transformation config"`
	Types      TypesCmd      `cmd:"" help:"List transformation types and the tools they need"`
	Schema     SchemaCmd     `cmd:"" help:"Print the JSON schema for transformation configs"`
	Completion CompletionCmd `cmd:"" help:"Generate shell completion script"`
	Version    VersionCmd    `cmd:"" help:"Show version information"`
}

type (
	TypesCmd   struct{}
	SchemaCmd  struct{}
	VersionCmd struct{}
)

// Run parses args, dispatches to a handler, and returns the process exit code.
func Run(args []string, deps Dependencies) int {
	if deps.Out == nil {
		deps.Out = os.Stdout
	}
	if deps.ErrOut == nil {
		deps.ErrOut = os.Stderr
	}
	if deps.GOOS == "" {
		deps.GOOS = runtime.GOOS
	}
	out := deps.Out

	if len(args) == 0 {
		return runNoArgs(out)
	}

	cli := CLI{}
	parser, err := kong.New(&cli,
		kong.Name(meta.AppName),
		kong.Description("Generate brand-specific assets from a declarative transformation list."),
		kong.Writers(out, deps.ErrOut),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return exitWithError(out, err)
	}

	// Help is printed by kong itself; the no-op Exit lets parsing fall through.
	ctx, err := parser.Parse(args)
	if isHelpRequest(args) {
		return 0
	}
	if err != nil {
		return exitWithSuggestion(out, err.Error(), []string{meta.AppName + " --help"})
	}

	loadEnvFile(cli.EnvFile, deps.ErrOut)
	configureLogging(deps.ErrOut, cli.Verbose)

	if exitCode, handled := dispatchCommand(ctx.Command(), cli, deps, out); handled {
		return exitCode
	}

	ui.NewWithEmoji(out, !cli.NoEmoji).Warn("unknown command")
	return 1
}

type commandHandler func(CLI, Dependencies, io.Writer) int

func dispatchCommand(command string, cli CLI, deps Dependencies, out io.Writer) (int, bool) {
	exactHandlers := map[string]commandHandler{
		"generate <config> <source> <static>": runGenerate,
		"types":           func(cli CLI, _ Dependencies, out io.Writer) int { return runTypes(cli, out) },
		"schema":          func(_ CLI, _ Dependencies, out io.Writer) int { return runSchema(out) },
		"completion bash": func(cli CLI, _ Dependencies, out io.Writer) int { return runCompletionBash(cli, out) },
		"completion zsh":  func(cli CLI, _ Dependencies, out io.Writer) int { return runCompletionZsh(cli, out) },
		"completion fish": func(cli CLI, _ Dependencies, out io.Writer) int { return runCompletionFish(cli, out) },
		"version":         func(_ CLI, _ Dependencies, out io.Writer) int { return runVersion(out) },
	}

	if handler, ok := exactHandlers[command]; ok {
		return handler(cli, deps, out), true
	}
	return 1, false
}

// loadEnvFile loads the --env-file, or ./.env when present.
// Existing variables win over the file.
func loadEnvFile(path string, errOut io.Writer) {
	if path != "" {
		if err := godotenv.Load(path); err != nil {
			ui.New(errOut).Warn(fmt.Sprintf("failed to load env file %s: %v", path, err))
		}
		return
	}
	if _, err := os.Stat(meta.DefaultEnvFile); err == nil {
		if err := godotenv.Load(meta.DefaultEnvFile); err != nil {
			ui.New(errOut).Warn(fmt.Sprintf("failed to load %s: %v", meta.DefaultEnvFile, err))
		}
	}
}

// configureLogging routes diagnostics to stderr. --verbose forces debug,
// otherwise BRANDGEN_LOG_LEVEL applies and warn is the default.
func configureLogging(errOut io.Writer, verbose bool) {
	log.SetOutput(errOut)
	log.SetReportTimestamp(false)
	level := log.WarnLevel
	if raw := envutil.GetHostEnv(constants.HostSuffixLogLevel); raw != "" {
		if parsed, err := log.ParseLevel(raw); err == nil {
			level = parsed
		} else {
			log.Warn("Ignoring invalid log level", "value", raw)
		}
	}
	if verbose {
		level = log.DebugLevel
	}
	log.SetLevel(level)
}

func runVersion(out io.Writer) int {
	writeLine(out, version.GetVersion())
	return 0
}

func runTypes(cli CLI, out io.Writer) int {
	console := ui.NewWithEmoji(out, !cli.NoEmoji)
	console.Header("🧩", "Transformation types")
	for _, row := range typeRows() {
		console.Item(row.Key, row.Value)
	}
	return 0
}

// runSchema prints the embedded schema so editors can reference it from `$schema`.
func runSchema(out io.Writer) int {
	writeString(out, string(config.Schema()))
	return 0
}

func runNoArgs(out io.Writer) int {
	writeLine(out, "Usage:")
	writeLine(out, fmt.Sprintf("  %s generate <config> <source> <static> [-o dist] [--only types] [--mac none|simple|all|ask]", meta.AppName))
	writeLine(out, "")
	writeLine(out, fmt.Sprintf("Try: %s --help", meta.AppName))
	return 0
}

func isHelpRequest(args []string) bool {
	for _, arg := range args {
		if arg == "--" {
			return false
		}
		if arg == "-h" || arg == "--help" || strings.HasPrefix(arg, "--help=") {
			return true
		}
	}
	return false
}
