// Where: internal/iconset/catalog.go
// What: Assets.car compilation from an xcassets tree plus a layered .icon.
// Why: actool needs AppIcon/Icon sets and manifests laid out exactly as Xcode writes them.
package iconset

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	log "github.com/charmbracelet/log"

	"github.com/poruru-code/brandgen/internal/artwork"
	"github.com/poruru-code/brandgen/internal/domain/brand"
	"github.com/poruru-code/brandgen/internal/infra/fileops"
)

const (
	catalogDirName   = "Assets.xcassets"
	appIconSetName   = "AppIcon.appiconset"
	iconSetName      = "Icon.iconset"
	layeredIconName  = "AppIcon.icon"
	compiledCatalog  = "Assets.car"
	catalogIdiomMac  = "mac"
	catalogAuthor    = "xcode"
	catalogVersion   = 1
	manifestFileName = "Contents.json"
)

// AppIconEntries are the AppIcon.appiconset renditions.
var AppIconEntries = scaled([]int{16, 32, 128, 256, 512}, 1, 2)

// IconEntries are the Icon.iconset renditions.
var IconEntries = scaled([]int{256}, 1, 2)

func scaled(sizes []int, scales ...int) []Entry {
	entries := make([]Entry, 0, len(sizes)*len(scales))
	for _, size := range sizes {
		for _, scale := range scales {
			entries = append(entries, Entry{Size: size, Scale: scale})
		}
	}
	return entries
}

type catalogInfo struct {
	Author  string `json:"author"`
	Version int    `json:"version"`
}

type catalogImage struct {
	Filename string `json:"filename"`
	Idiom    string `json:"idiom"`
	Scale    string `json:"scale"`
	Size     string `json:"size"`
}

type catalogManifest struct {
	Images []catalogImage `json:"images,omitempty"`
	Info   catalogInfo    `json:"info"`
}

// CatalogInputs are the resolved inputs of one Assets.car build.
type CatalogInputs struct {
	LayeredIcon string
	AppIcon     *artwork.Source
	Icon        *artwork.Source
}

// BuildAssetsCar stages the catalog, runs actool, and moves Assets.car to output.
func (a *Assembler) BuildAssetsCar(ctx context.Context, in CatalogInputs, output string) error {
	if err := a.Caps.ValidateActool(); err != nil {
		return err
	}
	if !fileops.DirExists(in.LayeredIcon) {
		if !fileops.FileOrDirExists(in.LayeredIcon) {
			return &brand.FileNotFoundError{Path: in.LayeredIcon}
		}
		return &brand.InvalidFileTypeError{Expected: ".icon directory", Actual: filepath.Base(in.LayeredIcon)}
	}

	stage, err := a.acquire("assets")
	if err != nil {
		return err
	}
	defer stage.Release()

	xcassets, err := a.stageCatalog(stage.Path, in)
	if err != nil {
		return err
	}

	compileStage, err := a.acquire("actool")
	if err != nil {
		return err
	}
	defer compileStage.Release()

	if err := a.Tools.Actool(ctx, xcassets, stage.Join(layeredIconName), compileStage.Path); err != nil {
		return err
	}
	artifact := compileStage.Join(compiledCatalog)
	if !fileops.FileExists(artifact) {
		return fmt.Errorf("%w: actool did not generate %s", brand.ErrTransformation, compiledCatalog)
	}
	if err := fileops.MoveFile(artifact, output); err != nil {
		return fmt.Errorf("move %s: %w", compiledCatalog, err)
	}
	return nil
}

// stageCatalog writes Assets.xcassets and AppIcon.icon under root and returns
// the xcassets path.
func (a *Assembler) stageCatalog(root string, in CatalogInputs) (string, error) {
	if err := fileops.CopyDir(in.LayeredIcon, filepath.Join(root, layeredIconName)); err != nil {
		return "", err
	}

	xcassets := filepath.Join(root, catalogDirName)
	appIconDir := filepath.Join(xcassets, appIconSetName)
	names, err := writeEntries(in.AppIcon, appIconDir, AppIconEntries)
	if err != nil {
		return "", err
	}
	images := make([]catalogImage, len(AppIconEntries))
	for i, entry := range AppIconEntries {
		images[i] = catalogImage{
			Filename: names[i],
			Idiom:    catalogIdiomMac,
			Scale:    fmt.Sprintf("%dx", entry.Scale),
			Size:     fmt.Sprintf("%dx%d", entry.Size, entry.Size),
		}
	}
	if err := writeManifest(filepath.Join(appIconDir, manifestFileName), catalogManifest{Images: images}); err != nil {
		return "", err
	}

	if _, err := writeEntries(in.Icon, filepath.Join(xcassets, iconSetName), IconEntries); err != nil {
		return "", err
	}
	if err := writeManifest(filepath.Join(xcassets, manifestFileName), catalogManifest{}); err != nil {
		return "", err
	}
	log.Debug("Staged asset catalog", "dir", xcassets)
	return xcassets, nil
}

func writeManifest(path string, manifest catalogManifest) error {
	manifest.Info = catalogInfo{Author: catalogAuthor, Version: catalogVersion}
	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return fileops.WriteFile(path, append(data, '\n'))
}
