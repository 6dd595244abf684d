package workflows

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/poruru-code/brandgen/internal/artwork"
	"github.com/poruru-code/brandgen/internal/domain/brand"
	"github.com/poruru-code/brandgen/internal/generator"
	"github.com/poruru-code/brandgen/internal/iconset"
	"github.com/poruru-code/brandgen/internal/ports"
)

type testBlock struct {
	title string
	rows  []ports.KeyValue
}

type testUI struct {
	infos     []string
	warns     []string
	successes []string
	errors    []string
	items     []string
	blocks    []testBlock
}

func (u *testUI) Info(msg string)    { u.infos = append(u.infos, msg) }
func (u *testUI) Warn(msg string)    { u.warns = append(u.warns, msg) }
func (u *testUI) Success(msg string) { u.successes = append(u.successes, msg) }
func (u *testUI) Error(msg string)   { u.errors = append(u.errors, msg) }
func (u *testUI) Item(msg string)    { u.items = append(u.items, msg) }

func (u *testUI) Block(_, title string, rows []ports.KeyValue) {
	u.blocks = append(u.blocks, testBlock{title: title, rows: rows})
}

type staticDetector brand.Capabilities

func (d staticDetector) Detect(context.Context) brand.Capabilities {
	return brand.Capabilities(d)
}

type recordAssembler struct {
	icns []string
}

func (r *recordAssembler) BuildICNS(_ context.Context, _ *artwork.Source, _ []int, output string) error {
	r.icns = append(r.icns, output)
	if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
		return err
	}
	return os.WriteFile(output, []byte("icns"), 0o644)
}

func (r *recordAssembler) BuildAssetsCar(context.Context, iconset.CatalogInputs, string) error {
	return errors.New("unexpected assets-car")
}

func (r *recordAssembler) BuildDSStore(context.Context, iconset.InstallerInputs, string) error {
	return errors.New("unexpected ds-store")
}

type project struct {
	root, config, source, static, output string
}

func newProject(t *testing.T, config string) project {
	t.Helper()
	root := t.TempDir()
	p := project{
		root:   root,
		config: filepath.Join(root, "config.yaml"),
		source: filepath.Join(root, "source"),
		static: filepath.Join(root, "static"),
		output: filepath.Join(root, "dist"),
	}
	for _, dir := range []string{p.source, p.static} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatal(err)
		}
	}
	write := func(path, content string) {
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	write(p.config, config)
	write(filepath.Join(p.source, "brand.json"), `{"strings": {"appName": "Nightly"}, "env": {"CHANNEL": "nightly"}}`)
	write(filepath.Join(p.source, "logo.svg"),
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 20 10"><rect width="20" height="10" fill="#f00"/></svg>`)
	write(filepath.Join(p.static, "about.txt"), "{{#if CHANNEL == nightly}}\n{{#str appName}}\n{{#endif}}\n")
	return p
}

const projectConfig = `
brandConfigPath: brand.json
transformations:
  - type: raster
    fileType: source
    inputPath: logo.svg
    outputPath: img/logo.png
    outputFileType: png
    width: 40
    height: 40
  - type: copy-preprocess
    fileType: static
    inputPath: about.txt
    outputPath: about.txt
  - type: icns
    fileType: source
    inputPath: logo.svg
    outputPath: mac/app.icns
    sizes: [16, 32]
  - type: ds-store
    outputPath: mac/dsstore
    appName: "{{#str appName}}.app"
    volumeName: Nightly
    backgroundImage: bg.png
    backgroundImageFileType: static
    volumeIcon: logo.svg
    volumeIconFileType: source
`

func (p project) request() GenerateRequest {
	return GenerateRequest{
		ConfigPath:   p.config,
		SourceDir:    p.source,
		StaticDir:    p.static,
		OutputDir:    p.output,
		Filter:       brand.NewFilterOptions().WithMode(brand.MacModeSimple),
		ReportPath:   filepath.Join(p.root, "report.md"),
		ManifestPath: filepath.Join(p.root, "manifest.yaml"),
	}
}

func TestGenerateWorkflowRun(t *testing.T) {
	p := newProject(t, projectConfig)
	ui := &testUI{}
	asm := &recordAssembler{}
	var gotCaps brand.Capabilities
	wf := NewGenerateWorkflow(
		staticDetector{HasIconutil: true},
		func(caps brand.Capabilities, _ string) generator.Assembler {
			gotCaps = caps
			return asm
		},
		ui,
	)
	wf.Now = func() time.Time { return time.Date(2026, 5, 6, 7, 8, 9, 0, time.UTC) }

	summary, err := wf.Run(context.Background(), p.request())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.Succeeded != 3 || summary.Skipped != 0 || summary.Failed != 0 {
		t.Fatalf("summary = %+v", summary)
	}
	if !gotCaps.HasIconutil {
		t.Fatalf("assembler factory did not receive detected caps")
	}
	if len(asm.icns) != 1 || asm.icns[0] != filepath.Join(p.output, "mac", "app.icns") {
		t.Fatalf("icns outputs = %v", asm.icns)
	}
	about, err := os.ReadFile(filepath.Join(p.output, "about.txt"))
	if err != nil || string(about) != "Nightly" {
		t.Fatalf("about.txt = %q, %v", about, err)
	}
	if len(ui.items) != 3 || ui.items[0] != "✓ raster -> img/logo.png" {
		t.Fatalf("items = %v", ui.items)
	}
	if len(ui.blocks) != 1 || ui.blocks[0].title != "Summary" {
		t.Fatalf("blocks = %+v", ui.blocks)
	}
	for _, path := range []string{p.request().ReportPath, p.request().ManifestPath} {
		if _, err := os.Stat(path); err != nil {
			t.Fatalf("expected %s: %v", path, err)
		}
	}
}

func TestGenerateWorkflowWarnsAboutMissingTools(t *testing.T) {
	p := newProject(t, projectConfig)
	ui := &testUI{}
	wf := NewGenerateWorkflow(
		staticDetector{},
		func(brand.Capabilities, string) generator.Assembler { return &recordAssembler{} },
		ui,
	)
	req := p.request()
	req.Filter = brand.NewFilterOptions()

	summary, err := wf.Run(context.Background(), req)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.Skipped != 2 || summary.Succeeded != 2 {
		t.Fatalf("summary = %+v", summary)
	}
	joined := strings.Join(ui.warns, "\n")
	for _, tool := range []string{"iconutil", "sips", "hdiutil"} {
		if !strings.Contains(joined, tool+" not found") {
			t.Errorf("missing warning for %s in %q", tool, joined)
		}
	}
	if !strings.Contains(joined, "Skipping ds-store transformation for 'mac/dsstore'") {
		t.Errorf("missing skip line in %q", joined)
	}
}

func TestGenerateWorkflowFailure(t *testing.T) {
	p := newProject(t, `
transformations:
  - type: copy
    fileType: static
    inputPath: nope.txt
    outputPath: nope.txt
`)
	ui := &testUI{}
	wf := NewGenerateWorkflow(staticDetector{}, func(brand.Capabilities, string) generator.Assembler { return &recordAssembler{} }, ui)
	summary, err := wf.Run(context.Background(), p.request())
	if !errors.Is(err, brand.ErrRunFailed) || summary.Failed != 1 {
		t.Fatalf("summary = %+v, err = %v", summary, err)
	}
	if len(ui.errors) != 2 || !strings.Contains(ui.errors[1], "nope.txt") {
		t.Fatalf("errors = %v", ui.errors)
	}
	if _, statErr := os.Stat(p.request().ReportPath); statErr != nil {
		t.Fatalf("report should be written for failed runs: %v", statErr)
	}
}

func TestGenerateWorkflowInputErrors(t *testing.T) {
	p := newProject(t, projectConfig)
	wf := NewGenerateWorkflow(staticDetector{}, func(brand.Capabilities, string) generator.Assembler { return nil }, nil)

	req := p.request()
	req.SourceDir = filepath.Join(p.root, "missing")
	if _, err := wf.Run(context.Background(), req); !errors.Is(err, brand.ErrFileNotFound) {
		t.Fatalf("missing source: %v", err)
	}

	req = p.request()
	req.ConfigPath = filepath.Join(p.root, "missing.json")
	if _, err := wf.Run(context.Background(), req); !errors.Is(err, brand.ErrFileNotFound) {
		t.Fatalf("missing config: %v", err)
	}

	if _, err := (GenerateWorkflow{}).Run(context.Background(), p.request()); err == nil {
		t.Fatal("expected error for unconfigured workflow")
	}
}
