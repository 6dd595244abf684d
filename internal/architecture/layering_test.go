// Where: internal/architecture/layering_test.go
// What: Layer dependency guard tests for internal packages.
// Why: Keep the engine free of CLI concerns and the domain free of everything else.
package architecture

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
)

const internalImportPrefix = "github.com/poruru-code/brandgen/internal/"

func TestLayeringRules(t *testing.T) {
	t.Parallel()

	internalRoot := resolveInternalRoot(t)
	fset := token.NewFileSet()
	violations := []string{}

	err := filepath.WalkDir(internalRoot, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !strings.HasSuffix(d.Name(), ".go") || strings.HasSuffix(d.Name(), "_test.go") {
			return nil
		}
		rel, err := filepath.Rel(internalRoot, path)
		if err != nil {
			return err
		}
		sourceLayer := topLayer(rel)
		if sourceLayer == "" {
			return nil
		}

		file, err := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
		if err != nil {
			return err
		}

		for _, imp := range file.Imports {
			importPath := strings.Trim(imp.Path.Value, "\"")
			importLayer := topLayerFromImport(importPath)
			if importLayer == "" {
				continue
			}
			if violatesRule(sourceLayer, importLayer) {
				violations = append(violations, rel+" -> "+importPath)
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("scan internal packages: %v", err)
	}

	if len(violations) > 0 {
		sort.Strings(violations)
		t.Fatalf("layering rule violations:\n%s", strings.Join(violations, "\n"))
	}
}

func resolveInternalRoot(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	root := filepath.Clean(filepath.Join(wd, "..", ".."))
	return filepath.Join(root, "internal")
}

func topLayer(relPath string) string {
	parts := strings.Split(filepath.ToSlash(relPath), "/")
	if len(parts) == 0 {
		return ""
	}
	return strings.TrimSpace(parts[0])
}

func topLayerFromImport(importPath string) string {
	if !strings.HasPrefix(importPath, internalImportPrefix) {
		return ""
	}
	rest := strings.TrimPrefix(importPath, internalImportPrefix)
	parts := strings.Split(rest, "/")
	if len(parts) == 0 {
		return ""
	}
	return strings.TrimSpace(parts[0])
}

// engineLayers run transformations and must not know how they were requested.
var engineLayers = map[string]struct{}{
	"artwork":    {},
	"preprocess": {},
	"iconset":    {},
	"generator":  {},
}

func violatesRule(sourceLayer, importLayer string) bool {
	if _, ok := engineLayers[sourceLayer]; ok {
		return importLayer == "ports" || importLayer == "workflows" || importLayer == "commands"
	}
	switch sourceLayer {
	case "domain":
		return importLayer != "domain" && importLayer != "meta" && importLayer != "constants"
	case "ports":
		return importLayer == "infra" || importLayer == "workflows" || importLayer == "commands"
	case "infra":
		return importLayer == "workflows" || importLayer == "commands"
	case "workflows":
		return importLayer == "commands"
	default:
		return false
	}
}

func TestViolatesRule(t *testing.T) {
	tests := []struct {
		source, imported string
		want             bool
	}{
		{"domain", "domain", false},
		{"domain", "meta", false},
		{"domain", "infra", true},
		{"domain", "artwork", true},
		{"generator", "iconset", false},
		{"generator", "infra", false},
		{"iconset", "workflows", true},
		{"preprocess", "ports", true},
		{"ports", "generator", false},
		{"ports", "infra", true},
		{"infra", "ports", false},
		{"infra", "commands", true},
		{"workflows", "infra", false},
		{"workflows", "commands", true},
		{"commands", "workflows", false},
	}
	for _, tt := range tests {
		if got := violatesRule(tt.source, tt.imported); got != tt.want {
			t.Errorf("violatesRule(%q, %q) = %v, want %v", tt.source, tt.imported, got, tt.want)
		}
	}
}
