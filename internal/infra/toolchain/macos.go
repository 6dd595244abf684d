// Where: internal/infra/toolchain/macos.go
// What: Typed wrappers around iconutil, actool, sips, hdiutil, chflags, and create-dmg.
// Why: Keep argument lists and output parsing in one place.
package toolchain

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/poruru-code/brandgen/internal/domain/brand"
)

var errRunnerNil = errors.New("command runner is nil")

// MinimumDeploymentTarget is passed to actool when compiling asset catalogs.
const MinimumDeploymentTarget = "26.0"

// BackgroundDPI is the resolution sips stamps onto installer backgrounds.
const BackgroundDPI = 144

// Tools runs the platform tools through a CommandRunner.
type Tools struct {
	Runner CommandRunner
}

func (t Tools) runner() (CommandRunner, error) {
	if t.Runner == nil {
		return nil, errRunnerNil
	}
	return t.Runner, nil
}

// Iconutil converts an `.iconset` directory into an `.icns` file.
func (t Tools) Iconutil(ctx context.Context, iconset, output string) error {
	r, err := t.runner()
	if err != nil {
		return err
	}
	return r.Run(ctx, "", brand.ToolIconutil, "-c", "icns", iconset, "-o", output)
}

// ActoolArgs returns the actool argument list compiling xcassets plus the
// layered icon into outDir.
func ActoolArgs(xcassets, icon, outDir string) []string {
	return []string{
		xcassets,
		icon,
		"--compile", outDir,
		"--target-device", "mac",
		"--platform", "macosx",
		"--minimum-deployment-target", MinimumDeploymentTarget,
		"--enable-on-demand-resources", "NO",
		"--app-icon", "AppIcon",
		"--output-partial-info-plist", filepath.Join(outDir, "partial-info.plist"),
	}
}

// Actool compiles an asset catalog into outDir.
func (t Tools) Actool(ctx context.Context, xcassets, icon, outDir string) error {
	r, err := t.runner()
	if err != nil {
		return err
	}
	return r.Run(ctx, "", brand.ToolActool, ActoolArgs(xcassets, icon, outDir)...)
}

// SetDPI stamps the given resolution onto an image in place.
func (t Tools) SetDPI(ctx context.Context, image string, dpi int) error {
	r, err := t.runner()
	if err != nil {
		return err
	}
	value := strconv.Itoa(dpi)
	return r.Run(ctx, "", brand.ToolSips, "-s", "dpiHeight", value, "-s", "dpiWidth", value, image)
}

// Mount attaches a disk image read-only and returns its mount point.
func (t Tools) Mount(ctx context.Context, dmg string) (string, error) {
	r, err := t.runner()
	if err != nil {
		return "", err
	}
	out, err := r.RunOutput(ctx, "", brand.ToolHdiutil, "mount", dmg, "-readonly")
	if err != nil {
		return "", renameTool(err, "hdiutil mount")
	}
	return ParseMountPoint(string(out))
}

// Unmount detaches a mounted volume.
func (t Tools) Unmount(ctx context.Context, mountPoint string) error {
	r, err := t.runner()
	if err != nil {
		return err
	}
	if err := r.RunQuiet(ctx, "", brand.ToolHdiutil, "unmount", mountPoint); err != nil {
		return renameTool(err, "hdiutil unmount")
	}
	return nil
}

// Unhide clears the hidden flag on path.
func (t Tools) Unhide(ctx context.Context, path string) error {
	r, err := t.runner()
	if err != nil {
		return err
	}
	return r.RunQuiet(ctx, "", "chflags", "nohidden", path)
}

// CreateDMG runs the create-dmg script from dir.
func (t Tools) CreateDMG(ctx context.Context, dir, script string, args []string) error {
	r, err := t.runner()
	if err != nil {
		return err
	}
	return r.Run(ctx, dir, script, args...)
}

// ParseMountPoint finds the `/Volumes/...` path in hdiutil mount output.
// Volume names may contain spaces, so everything from `/Volumes/` to the end
// of the line is kept.
func ParseMountPoint(output string) (string, error) {
	for _, line := range strings.Split(output, "\n") {
		if idx := strings.Index(line, "/Volumes/"); idx >= 0 {
			return strings.TrimSpace(line[idx:]), nil
		}
	}
	return "", fmt.Errorf("%w: could not parse mount point from hdiutil output", brand.ErrTransformation)
}

func renameTool(err error, tool string) error {
	var failed *brand.ToolFailedError
	if errors.As(err, &failed) {
		return &brand.ToolFailedError{Tool: tool, Code: failed.Code}
	}
	return err
}
