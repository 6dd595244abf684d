// Where: internal/generator/generator.go
// What: Sequential dispatcher that routes each transformation to its producer.
// Why: Keep one loop in charge of path resolution, tallying, and skip/fail classification.
package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	log "github.com/charmbracelet/log"

	"github.com/poruru-code/brandgen/internal/artwork"
	"github.com/poruru-code/brandgen/internal/domain/brand"
	"github.com/poruru-code/brandgen/internal/iconset"
	"github.com/poruru-code/brandgen/internal/infra/fileops"
	"github.com/poruru-code/brandgen/internal/preprocess"
)

// Assembler produces the tool-backed containers.
type Assembler interface {
	BuildICNS(ctx context.Context, src *artwork.Source, sizes []int, output string) error
	BuildAssetsCar(ctx context.Context, in iconset.CatalogInputs, output string) error
	BuildDSStore(ctx context.Context, in iconset.InstallerInputs, output string) error
}

// Generator runs filtered transformations against one brand.
type Generator struct {
	Paths     Paths
	Brand     brand.BrandConfig
	Assembler Assembler
	// Warn receives malformed condition expressions from copy-preprocess.
	Warn preprocess.WarnFunc
	// Progress, when set, is called after every item.
	Progress func(ItemResult)

	now func() time.Time
}

var errAssemblerNil = errors.New("assembler not configured")

func (g *Generator) clock() time.Time {
	if g.now != nil {
		return g.now()
	}
	return time.Now()
}

// Run executes items in order and never stops early. The returned error is
// Summary.Err().
func (g *Generator) Run(ctx context.Context, items []Filtered) (Summary, error) {
	var summary Summary
	started := g.clock()
	for _, item := range items {
		result := g.runOne(ctx, item)
		summary.add(result)
		if g.Progress != nil {
			g.Progress(result)
		}
	}
	summary.Duration = g.clock().Sub(started)
	return summary, summary.Err()
}

func (g *Generator) runOne(ctx context.Context, item Filtered) ItemResult {
	t := item.Transformation
	result := ItemResult{Type: t.Type(), Output: t.Output()}
	if item.ShouldWarn {
		result.Status = StatusSkipped
		result.Reason = "required tool not available"
		if len(item.MissingTools) > 0 {
			result.Reason += ": " + strings.Join(item.MissingTools, ", ")
		}
		return result
	}

	started := g.clock()
	err := g.Execute(ctx, t)
	result.Duration = g.clock().Sub(started)
	switch {
	case err == nil:
		result.Status = StatusSucceeded
	case brand.IsSkippable(err):
		result.Status = StatusSkipped
		result.Reason = err.Error()
		result.Err = err
	default:
		result.Status = StatusFailed
		result.Err = err
	}
	log.Debug("Transformation finished", "type", result.Type, "output", result.Output, "status", result.Status, "duration", result.Duration)
	return result
}

// Execute resolves t's paths and runs it.
func (g *Generator) Execute(ctx context.Context, t brand.Transformation) error {
	inputs, err := g.Paths.Inputs(t)
	if err != nil {
		return err
	}
	output := g.Paths.Output(t.Output())

	switch t := t.(type) {
	case brand.Raster:
		return artwork.RasterToFile(t, inputs[0], output)
	case brand.Ico:
		src, err := artwork.Load(inputs[0])
		if err != nil {
			return err
		}
		return iconset.BuildICO(src, t.Sizes, output)
	case brand.Icns:
		if g.Assembler == nil {
			return errAssemblerNil
		}
		src, err := artwork.Load(inputs[0])
		if err != nil {
			return err
		}
		return g.Assembler.BuildICNS(ctx, src, t.Sizes, output)
	case brand.AssetsCar:
		if g.Assembler == nil {
			return errAssemblerNil
		}
		appIcon, err := artwork.Load(inputs[1])
		if err != nil {
			return err
		}
		icon, err := artwork.Load(inputs[2])
		if err != nil {
			return err
		}
		return g.Assembler.BuildAssetsCar(ctx, iconset.CatalogInputs{
			LayeredIcon: inputs[0],
			AppIcon:     appIcon,
			Icon:        icon,
		}, output)
	case brand.Copy:
		if err := fileops.CopyFile(inputs[0], output); err != nil {
			return fmt.Errorf("copy %s: %w", t.InputPath, err)
		}
		return nil
	case brand.CopyPreprocess:
		p := preprocess.New(g.Brand)
		if g.Warn != nil {
			p.Warn = g.Warn
		}
		return p.ProcessFile(inputs[0], output)
	case brand.DsStore:
		if g.Assembler == nil {
			return errAssemblerNil
		}
		volumeIcon, err := artwork.Load(inputs[1])
		if err != nil {
			return err
		}
		return g.Assembler.BuildDSStore(ctx, iconset.InstallerInputs{
			Spec:       t,
			Background: inputs[0],
			VolumeIcon: volumeIcon,
			Brand:      g.Brand,
		}, output)
	default:
		return fmt.Errorf("%w: %s", brand.ErrUnsupportedTransformation, t.Type())
	}
}
