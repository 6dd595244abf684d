// Where: internal/infra/toolchain/runner.go
// What: External command execution for platform tools.
// Why: Let components run tools through an interface that tests can fake.
package toolchain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	log "github.com/charmbracelet/log"

	"github.com/poruru-code/brandgen/internal/domain/brand"
)

// CommandRunner defines the interface for executing external commands.
// dir is the working directory; empty means the current one.
type CommandRunner interface {
	Run(ctx context.Context, dir, name string, args ...string) error
	RunOutput(ctx context.Context, dir, name string, args ...string) ([]byte, error)
	RunQuiet(ctx context.Context, dir, name string, args ...string) error
}

// ExecRunner is a concrete implementation of CommandRunner using os/exec.
type ExecRunner struct {
	Out    io.Writer
	ErrOut io.Writer
}

func (r ExecRunner) Run(ctx context.Context, dir, name string, args ...string) error {
	cmd := r.command(ctx, dir, name, args)
	cmd.Stdout = writerOr(r.Out, os.Stdout)
	cmd.Stderr = writerOr(r.ErrOut, os.Stderr)
	return classify(name, cmd.Run())
}

func (r ExecRunner) RunOutput(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	cmd := r.command(ctx, dir, name, args)
	output, err := cmd.CombinedOutput()
	return output, classify(name, err)
}

func (r ExecRunner) RunQuiet(ctx context.Context, dir, name string, args ...string) error {
	cmd := r.command(ctx, dir, name, args)
	return classify(name, cmd.Run())
}

func (r ExecRunner) command(ctx context.Context, dir, name string, args []string) *exec.Cmd {
	log.Debug("Running tool", "tool", name, "args", strings.Join(args, " "), "dir", dir)
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	return cmd
}

func writerOr(w, fallback io.Writer) io.Writer {
	if w == nil {
		return fallback
	}
	return w
}

// classify maps exec failures onto the brand error taxonomy.
func classify(name string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, os.ErrNotExist) {
		return &brand.ToolUnavailableError{Tool: name}
	}
	if code, ok := ExitCode(err); ok {
		return &brand.ToolFailedError{Tool: name, Code: code}
	}
	return fmt.Errorf("run %s: %w", name, err)
}

// ExitCode extracts a process exit status from err.
func ExitCode(err error) (int, bool) {
	var coded interface{ ExitCode() int }
	if errors.As(err, &coded) {
		return coded.ExitCode(), true
	}
	var failed *brand.ToolFailedError
	if errors.As(err, &failed) {
		return failed.Code, true
	}
	return 0, false
}
