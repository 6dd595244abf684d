// Where: internal/infra/toolchain/detect.go
// What: Capability probing for the macOS platform tools.
// Why: Build one immutable snapshot before a run instead of probing per transformation.
package toolchain

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	log "github.com/charmbracelet/log"

	"github.com/poruru-code/brandgen/internal/domain/brand"
)

var lookPath = exec.LookPath

// Detect reports which platform tools are on PATH and which actool is installed.
func Detect(ctx context.Context, runner CommandRunner) brand.Capabilities {
	caps := brand.Capabilities{
		HasIconutil: available(brand.ToolIconutil),
		HasActool:   available(brand.ToolActool),
		HasSips:     available(brand.ToolSips),
		HasHdiutil:  available(brand.ToolHdiutil),
	}
	if runner == nil {
		return caps
	}
	if caps.HasActool {
		version, err := ActoolVersion(ctx, runner)
		if err != nil {
			log.Debug("Unable to read actool version", "error", err)
		}
		caps.ActoolVersion = version
		if out, err := runner.RunOutput(ctx, "", "uname", "-r"); err == nil {
			caps.DarwinVersion = strings.TrimSpace(string(out))
		}
	}
	log.Debug("Detected platform tools",
		"iconutil", caps.HasIconutil,
		"actool", caps.HasActool,
		"actoolVersion", caps.ActoolVersion,
		"sips", caps.HasSips,
		"hdiutil", caps.HasHdiutil,
	)
	return caps
}

func available(tool string) bool {
	_, err := lookPath(tool)
	return err == nil
}

// ActoolVersion runs `actool --version` and parses the short bundle version.
func ActoolVersion(ctx context.Context, runner CommandRunner) (string, error) {
	out, err := runner.RunOutput(ctx, "", brand.ToolActool, "--version")
	if err != nil {
		return "", err
	}
	return ParseActoolVersion(string(out))
}

// ParseActoolVersion extracts the `short-bundle-version` string from the
// `com.apple.actool.version` dictionary of actool's plist output.
func ParseActoolVersion(output string) (string, error) {
	_, section, ok := strings.Cut(output, "com.apple.actool.version")
	if ok {
		_, section, ok = strings.Cut(section, "short-bundle-version")
	}
	if ok {
		_, section, ok = strings.Cut(section, "<string>")
	}
	if ok {
		var value string
		value, _, ok = strings.Cut(section, "</string>")
		if ok {
			return strings.TrimSpace(value), nil
		}
	}
	return "", fmt.Errorf("%w: failed to parse actool version output", brand.ErrConfig)
}

// Detector adapts Detect to a reusable capability source.
type Detector struct {
	Runner CommandRunner
}

func (d Detector) Detect(ctx context.Context) brand.Capabilities {
	return Detect(ctx, d.Runner)
}
