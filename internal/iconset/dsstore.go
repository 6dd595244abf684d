// Where: internal/iconset/dsstore.go
// What: Installer-volume .DS_Store extraction through create-dmg and hdiutil.
// Why: Finder only writes window layout into a real volume, so build one and lift the file.
package iconset

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	log "github.com/charmbracelet/log"

	"github.com/poruru-code/brandgen/internal/artwork"
	"github.com/poruru-code/brandgen/internal/domain/brand"
	"github.com/poruru-code/brandgen/internal/infra/fileops"
	"github.com/poruru-code/brandgen/internal/infra/toolchain"
	"github.com/poruru-code/brandgen/internal/meta"
	"github.com/poruru-code/brandgen/internal/preprocess"
)

const (
	defaultWindowPosition      = "200 120"
	defaultWindowSize          = "680 400"
	defaultAppIconPosition     = "209 220"
	defaultAppDropLinkPosition = "472 220"

	volumeIconName     = "disk.icns"
	backgroundName     = "background.png"
	dsStoreName        = ".DS_Store"
	installerIconSize  = "128"
	installerTextSize  = "12"
	installerSourceDir = "src"
)

// VolumeIconSizes are rendered into the installer volume icon.
var VolumeIconSizes = []int{16, 32, 128, 256, 512}

// InstallerInputs are the resolved inputs of one .DS_Store build.
type InstallerInputs struct {
	Spec       brand.DsStore
	Background string
	VolumeIcon *artwork.Source
	Brand      brand.BrandConfig
}

// Point is an x/y pair forwarded to create-dmg.
type Point [2]int

func (p Point) args() []string {
	return []string{strconv.Itoa(p[0]), strconv.Itoa(p[1])}
}

// ParsePoint reads "X Y" or "X,Y"; an empty value falls back to def.
func ParsePoint(value, def string) (Point, error) {
	if strings.TrimSpace(value) == "" {
		value = def
	}
	fields := strings.FieldsFunc(value, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) != 2 {
		return Point{}, fmt.Errorf("%w: expected two integers, got %q", brand.ErrConfig, value)
	}
	var p Point
	for i, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil {
			return Point{}, fmt.Errorf("%w: invalid coordinate %q in %q", brand.ErrConfig, field, value)
		}
		p[i] = n
	}
	return p, nil
}

type installerLayout struct {
	windowPos   Point
	windowSize  Point
	appIcon     Point
	appDropLink Point
}

func parseLayout(spec brand.DsStore) (installerLayout, error) {
	var layout installerLayout
	var err error
	if layout.windowPos, err = ParsePoint(spec.WindowPosition, defaultWindowPosition); err != nil {
		return layout, err
	}
	if layout.windowSize, err = ParsePoint(spec.WindowSize, defaultWindowSize); err != nil {
		return layout, err
	}
	if layout.appIcon, err = ParsePoint(spec.AppIconPosition, defaultAppIconPosition); err != nil {
		return layout, err
	}
	if layout.appDropLink, err = ParsePoint(spec.AppDropLinkPosition, defaultAppDropLinkPosition); err != nil {
		return layout, err
	}
	return layout, nil
}

// resolveName substitutes brand strings and refuses unresolved keys, since a
// literal `{{#str}}` would end up as a file name on the volume.
func resolveName(field, value string, b brand.BrandConfig) (string, error) {
	if missing := preprocess.MissingKeys(value, b.Strings); len(missing) > 0 {
		return "", fmt.Errorf("%w: %s references %s", brand.ErrMissingSubstitutionKey, field, strings.Join(missing, ", "))
	}
	resolved := preprocess.Substitute(value, b.Strings)
	if strings.TrimSpace(resolved) == "" {
		return "", fmt.Errorf("%w: %s is empty", brand.ErrConfig, field)
	}
	return resolved, nil
}

// InstallerDMGName is the scratch image create-dmg writes.
func InstallerDMGName() string {
	return meta.Slug + "-installer.dmg"
}

// CreateDMGArgs lays out the create-dmg invocation for one installer.
func CreateDMGArgs(appName, volumeName string, layout installerLayout) []string {
	args := []string{
		"--volname", volumeName,
		"--volicon", volumeIconName,
		"--background", backgroundName,
	}
	args = append(args, "--window-pos")
	args = append(args, layout.windowPos.args()...)
	args = append(args, "--window-size")
	args = append(args, layout.windowSize.args()...)
	args = append(args,
		"--icon-size", installerIconSize,
		"--text-size", installerTextSize,
		"--icon", appName,
	)
	args = append(args, layout.appIcon.args()...)
	args = append(args, "--app-drop-link")
	args = append(args, layout.appDropLink.args()...)
	return append(args,
		"--app-drop-link-name", " ",
		"--hide-extension", appName,
		"--no-internet-enable",
		InstallerDMGName(),
		installerSourceDir+"/",
	)
}

// BuildDSStore builds a throwaway installer image and copies its .DS_Store to output.
func (a *Assembler) BuildDSStore(ctx context.Context, in InstallerInputs, output string) (err error) {
	if err := a.require(brand.RequiredTools(brand.TypeDsStore)...); err != nil {
		return err
	}
	b := in.Brand.Normalize()
	appName, err := resolveName("appName", in.Spec.AppName, b)
	if err != nil {
		return err
	}
	volumeName, err := resolveName("volumeName", in.Spec.VolumeName, b)
	if err != nil {
		return err
	}
	layout, err := parseLayout(in.Spec)
	if err != nil {
		return err
	}
	script, err := filepath.Abs(a.CreateDMG)
	if err != nil {
		return fmt.Errorf("resolve create-dmg path: %w", err)
	}
	if !fileops.FileExists(script) {
		return &brand.FileNotFoundError{Path: script}
	}

	stage, err := a.acquire("dsstore")
	if err != nil {
		return err
	}
	defer stage.Release()

	if _, err := stage.Mkdir(installerSourceDir, appName); err != nil {
		return err
	}
	background := stage.Join(backgroundName)
	if err := fileops.CopyFile(in.Background, background); err != nil {
		return err
	}
	if err := a.Tools.SetDPI(ctx, background, toolchain.BackgroundDPI); err != nil {
		return err
	}
	if err := a.BuildICNS(ctx, in.VolumeIcon, VolumeIconSizes, stage.Join(volumeIconName)); err != nil {
		return err
	}

	log.Debug("Creating installer image", "volume", volumeName, "app", appName, "dir", stage.Path)
	if err := a.Tools.CreateDMG(ctx, stage.Path, script, CreateDMGArgs(appName, volumeName, layout)); err != nil {
		return renameCreateDMG(err)
	}

	mountPoint, err := a.Tools.Mount(ctx, stage.Join(InstallerDMGName()))
	if err != nil {
		return err
	}
	defer func() {
		if uerr := a.Tools.Unmount(ctx, mountPoint); uerr != nil {
			if err == nil {
				err = uerr
				return
			}
			log.Warn("Failed to unmount installer volume", "mount", mountPoint, "err", uerr)
		}
	}()

	source := filepath.Join(mountPoint, dsStoreName)
	if !fileops.FileExists(source) {
		return fmt.Errorf("%w: %s not found in generated image", brand.ErrTransformation, dsStoreName)
	}
	if err := fileops.CopyFile(source, output); err != nil {
		return err
	}
	if uerr := a.Tools.Unhide(ctx, output); uerr != nil {
		log.Warn("Failed to remove hidden flag", "path", output, "err", uerr)
	}
	if !fileops.FileExists(output) {
		return fmt.Errorf("%w: failed to copy %s to %s", brand.ErrTransformation, dsStoreName, output)
	}
	return nil
}

func renameCreateDMG(err error) error {
	var failed *brand.ToolFailedError
	if errors.As(err, &failed) {
		return &brand.ToolFailedError{Tool: "create-dmg", Code: failed.Code}
	}
	return err
}
