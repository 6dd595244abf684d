// Where: internal/workflows/generate.go
// What: Generate workflow orchestration.
// Why: Keep the CLI adapter minimal while loading, filtering, running, and reporting in one place.
package workflows

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	log "github.com/charmbracelet/log"
	"github.com/samber/lo"

	"github.com/poruru-code/brandgen/internal/domain/brand"
	"github.com/poruru-code/brandgen/internal/generator"
	"github.com/poruru-code/brandgen/internal/infra/config"
	"github.com/poruru-code/brandgen/internal/ports"
)

// GenerateRequest captures the inputs of one generate run.
type GenerateRequest struct {
	ConfigPath   string
	SourceDir    string
	StaticDir    string
	OutputDir    string
	CreateDMG    string
	Filter       brand.FilterOptions
	ReportPath   string
	ManifestPath string
}

// GenerateWorkflow orchestrates a generate request.
type GenerateWorkflow struct {
	Detector      ports.CapabilityDetector
	NewAssembler  ports.AssemblerFactory
	UserInterface ports.UserInterface
	Now           func() time.Time
}

// NewGenerateWorkflow constructs a GenerateWorkflow.
func NewGenerateWorkflow(detector ports.CapabilityDetector, assembler ports.AssemblerFactory, ui ports.UserInterface) GenerateWorkflow {
	return GenerateWorkflow{
		Detector:      detector,
		NewAssembler:  assembler,
		UserInterface: ui,
		Now:           time.Now,
	}
}

func (w GenerateWorkflow) now() time.Time {
	if w.Now != nil {
		return w.Now()
	}
	return time.Now()
}

// Run executes the workflow. The summary is returned even when the run fails.
func (w GenerateWorkflow) Run(ctx context.Context, req GenerateRequest) (generator.Summary, error) {
	if w.Detector == nil {
		return generator.Summary{}, errors.New("capability detector not configured")
	}
	if w.NewAssembler == nil {
		return generator.Summary{}, errors.New("assembler factory not configured")
	}
	if err := requireDir("source", req.SourceDir); err != nil {
		return generator.Summary{}, err
	}
	if err := requireDir("static", req.StaticDir); err != nil {
		return generator.Summary{}, err
	}

	cfg, err := config.LoadConfig(req.ConfigPath)
	if err != nil {
		return generator.Summary{}, err
	}
	brandCfg, err := config.LoadBrandConfig(config.BrandConfigPath(req.SourceDir, cfg.BrandConfigPath))
	if err != nil {
		return generator.Summary{}, err
	}

	caps := w.Detector.Detect(ctx)
	items := generator.Filter(cfg.Transformations, req.Filter, caps)
	w.warnMissingTools(items)

	paths := generator.Paths{
		SourceDir: req.SourceDir,
		StaticDir: req.StaticDir,
		OutputDir: req.OutputDir,
		CreateDMG: req.CreateDMG,
	}
	gen := &generator.Generator{
		Paths:     paths,
		Brand:     brandCfg,
		Assembler: w.NewAssembler(caps, req.CreateDMG),
		Progress:  w.progress,
	}

	w.info(fmt.Sprintf("Generating %d of %d transformation(s) into %s", len(items), len(cfg.Transformations), req.OutputDir))
	summary, runErr := gen.Run(ctx, items)
	w.block(summary)

	finished := w.now()
	if req.ReportPath != "" {
		if err := generator.WriteReport(req.ReportPath, summary, finished); err != nil {
			return summary, errors.Join(runErr, err)
		}
		log.Debug("Wrote report", "path", req.ReportPath)
	}
	if req.ManifestPath != "" {
		manifest, err := generator.BuildManifest(summary, paths, finished)
		if err == nil {
			err = generator.WriteManifest(req.ManifestPath, manifest)
		}
		if err != nil {
			return summary, errors.Join(runErr, err)
		}
		log.Debug("Wrote manifest", "path", req.ManifestPath)
	}
	return summary, runErr
}

func requireDir(label, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%s directory: %w", label, &brand.FileNotFoundError{Path: path})
		}
		return fmt.Errorf("%s directory: %w", label, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s directory %s is not a directory", brand.ErrConfig, label, path)
	}
	return nil
}

func (w GenerateWorkflow) warnMissingTools(items []generator.Filtered) {
	missing := lo.Uniq(lo.FlatMap(items, func(item generator.Filtered, _ int) []string {
		return item.MissingTools
	}))
	for _, tool := range missing {
		w.warn(fmt.Sprintf("%s not found. Transformations that need it will be skipped.", tool))
	}
}

func (w GenerateWorkflow) progress(result generator.ItemResult) {
	if w.UserInterface == nil {
		return
	}
	switch result.Status {
	case generator.StatusSucceeded:
		w.UserInterface.Item(fmt.Sprintf("✓ %s -> %s", result.Type, result.Output))
	case generator.StatusSkipped:
		w.UserInterface.Warn(fmt.Sprintf("Skipping %s transformation for '%s': %s", result.Type, result.Output, result.Reason))
	case generator.StatusFailed:
		w.UserInterface.Error(fmt.Sprintf("%s -> %s: %v", result.Type, result.Output, result.Err))
	}
}

func (w GenerateWorkflow) block(summary generator.Summary) {
	if w.UserInterface == nil {
		return
	}
	w.UserInterface.Block("📦", "Summary", []ports.KeyValue{
		{Key: "Succeeded", Value: summary.Succeeded},
		{Key: "Skipped", Value: summary.Skipped},
		{Key: "Failed", Value: summary.Failed},
		{Key: "Duration", Value: summary.Duration.Round(time.Millisecond)},
	})
	if failures := summary.Failures(); len(failures) > 0 {
		outputs := lo.Map(failures, func(item generator.ItemResult, _ int) string { return item.Output })
		w.UserInterface.Error("Failed outputs: " + strings.Join(outputs, ", "))
	}
}

func (w GenerateWorkflow) info(msg string) {
	if w.UserInterface != nil {
		w.UserInterface.Info(msg)
	}
}

func (w GenerateWorkflow) warn(msg string) {
	if w.UserInterface != nil {
		w.UserInterface.Warn(msg)
	}
}
