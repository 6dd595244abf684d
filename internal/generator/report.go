// Where: internal/generator/report.go
// What: Markdown run report rendered from an embedded template.
// Why: Give CI logs and release notes a readable record of each run.
package generator

import (
	"bytes"
	"embed"
	"fmt"
	"sync"
	"text/template"
	"time"

	"github.com/Masterminds/sprig/v3"

	"github.com/poruru-code/brandgen/internal/infra/fileops"
	"github.com/poruru-code/brandgen/internal/meta"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templateCache sync.Map

const reportTemplate = "report.md.tmpl"

type reportRow struct {
	Type     string
	Output   string
	Status   string
	Duration string
	Detail   string
}

type reportData struct {
	Title       string
	GeneratedAt time.Time
	Duration    string
	Summary     Summary
	Rows        []reportRow
	ByType      map[string]any
}

// RenderReport renders summary as Markdown.
func RenderReport(summary Summary, generatedAt time.Time) (string, error) {
	data := reportData{
		Title:       meta.AppName + " run report",
		GeneratedAt: generatedAt,
		Duration:    summary.Duration.Round(time.Millisecond).String(),
		Summary:     summary,
		ByType:      map[string]any{},
	}
	for _, item := range summary.Items {
		row := reportRow{
			Type:     string(item.Type),
			Output:   item.Output,
			Status:   string(item.Status),
			Duration: item.Duration.Round(time.Millisecond).String(),
			Detail:   item.Reason,
		}
		if item.Status == StatusFailed && item.Err != nil {
			row.Detail = item.Err.Error()
		}
		data.Rows = append(data.Rows, row)
	}
	for typ, count := range summary.CountByType() {
		data.ByType[string(typ)] = count
	}
	return renderTemplate(reportTemplate, data)
}

// WriteReport renders summary and writes it to path.
func WriteReport(path string, summary Summary, generatedAt time.Time) error {
	content, err := RenderReport(summary, generatedAt)
	if err != nil {
		return err
	}
	if err := fileops.WriteFile(path, []byte(content)); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func renderTemplate(name string, data any) (string, error) {
	tmpl, err := loadTemplate(name)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}

func loadTemplate(name string) (*template.Template, error) {
	if value, ok := templateCache.Load(name); ok {
		return value.(*template.Template), nil
	}
	tmpl, err := template.New(name).Funcs(sprig.TxtFuncMap()).ParseFS(templateFS, "templates/"+name)
	if err != nil {
		return nil, err
	}
	templateCache.Store(name, tmpl)
	return tmpl, nil
}
