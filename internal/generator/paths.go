// Where: internal/generator/paths.go
// What: Input and output path resolution for one run.
// Why: Transformations carry relative paths; only the dispatcher knows the base directories.
package generator

import (
	"fmt"
	"path/filepath"

	"github.com/poruru-code/brandgen/internal/domain/brand"
	"github.com/poruru-code/brandgen/internal/infra/fileops"
)

// Paths are the base directories of a run.
type Paths struct {
	SourceDir string
	StaticDir string
	OutputDir string
	// CreateDMG is the create-dmg script used for ds-store outputs.
	CreateDMG string
}

// Base returns the directory an input of the given file type resolves against.
func (p Paths) Base(ft brand.FileType) (string, error) {
	switch ft {
	case brand.FileTypeSource:
		return p.SourceDir, nil
	case brand.FileTypeStatic:
		return p.StaticDir, nil
	}
	return "", fmt.Errorf("%w: unknown fileType %q", brand.ErrConfig, ft)
}

// Input resolves in and checks that it exists.
func (p Paths) Input(in brand.Input) (string, error) {
	base, err := p.Base(in.FileType)
	if err != nil {
		return "", err
	}
	path := filepath.Join(base, in.Path)
	if !fileops.FileOrDirExists(path) {
		return "", &brand.FileNotFoundError{Path: path}
	}
	return path, nil
}

// Inputs resolves every input of t in order.
func (p Paths) Inputs(t brand.Transformation) ([]string, error) {
	inputs := t.Inputs()
	resolved := make([]string, len(inputs))
	for i, in := range inputs {
		path, err := p.Input(in)
		if err != nil {
			return nil, err
		}
		resolved[i] = path
	}
	return resolved, nil
}

// Output joins a relative output path onto the output directory.
func (p Paths) Output(rel string) string {
	return filepath.Join(p.OutputDir, rel)
}
