// Where: internal/iconset/icns.go
// What: .icns assembly through iconutil.
// Why: iconutil only accepts a populated .iconset directory.
package iconset

import (
	"context"

	log "github.com/charmbracelet/log"

	"github.com/poruru-code/brandgen/internal/artwork"
	"github.com/poruru-code/brandgen/internal/domain/brand"
	"github.com/poruru-code/brandgen/internal/infra/fileops"
)

// retinaAliasSizes get an extra `@2x` copy at half the point size; iconutil
// expects these pairs to be present.
var retinaAliasSizes = map[int]bool{32: true, 64: true, 256: true, 512: true, 1024: true}

// ICNSEntries lists the files written for the requested pixel sizes.
func ICNSEntries(sizes []int) []Entry {
	entries := make([]Entry, 0, len(sizes)*2)
	for _, size := range sizes {
		entries = append(entries, Entry{Size: size, Scale: 1})
		if retinaAliasSizes[size] {
			entries = append(entries, Entry{Size: size / 2, Scale: 2})
		}
	}
	return entries
}

// BuildICNS renders src into an iconset and compiles it to output.
func (a *Assembler) BuildICNS(ctx context.Context, src *artwork.Source, sizes []int, output string) error {
	if err := a.require(brand.ToolIconutil); err != nil {
		return err
	}
	if err := validateSizes(sizes); err != nil {
		return err
	}
	stage, err := a.acquire("icns")
	if err != nil {
		return err
	}
	defer stage.Release()

	iconsetDir, err := stage.Mkdir("icon.iconset")
	if err != nil {
		return err
	}
	names, err := writeEntries(src, iconsetDir, ICNSEntries(sizes))
	if err != nil {
		return err
	}
	log.Debug("Staged iconset", "dir", iconsetDir, "files", len(names))

	if err := fileops.EnsureParent(output); err != nil {
		return err
	}
	return a.Tools.Iconutil(ctx, iconsetDir, output)
}
