// Where: internal/infra/config/loader.go
// What: Transformation config and brand config loading.
// Why: Accept JSON or YAML, validate against the embedded schema, then decode into domain types.
package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	log "github.com/charmbracelet/log"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"sigs.k8s.io/yaml"

	"github.com/poruru-code/brandgen/internal/domain/brand"
)

const schemaURL = "brandgen.schema.json"

//go:embed schema/brandgen.schema.json
var schemaSource []byte

var (
	schemaOnce     sync.Once
	schemaErr      error
	compiledSchema *jsonschema.Schema
)

func loadSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(schemaURL, bytes.NewReader(schemaSource)); err != nil {
			schemaErr = fmt.Errorf("load config schema: %w", err)
			return
		}
		compiledSchema, schemaErr = compiler.Compile(schemaURL)
	})
	return compiledSchema, schemaErr
}

// Schema returns the embedded JSON schema document.
func Schema() []byte {
	return append([]byte(nil), schemaSource...)
}

// toJSON normalizes a JSON or YAML document to JSON.
func toJSON(content []byte) ([]byte, error) {
	data, err := yaml.YAMLToJSON(content)
	if err != nil {
		return nil, fmt.Errorf("%w: convert yaml to json: %w", brand.ErrConfig, err)
	}
	return data, nil
}

// ValidateConfig checks a config document against the schema and returns it as JSON.
func ValidateConfig(content []byte) ([]byte, error) {
	sch, err := loadSchema()
	if err != nil {
		return nil, err
	}
	data, err := toJSON(content)
	if err != nil {
		return nil, err
	}
	var document any
	if err := json.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("%w: decode json: %w", brand.ErrConfig, err)
	}
	if err := sch.Validate(document); err != nil {
		var verr *jsonschema.ValidationError
		if errors.As(err, &verr) {
			return nil, fmt.Errorf("%w: %s", brand.ErrConfig, describe(verr))
		}
		return nil, fmt.Errorf("%w: %w", brand.ErrConfig, err)
	}
	return data, nil
}

// describe flattens the deepest schema failure into one line.
func describe(verr *jsonschema.ValidationError) string {
	leaf := verr
	for len(leaf.Causes) > 0 {
		leaf = leaf.Causes[0]
	}
	location := leaf.InstanceLocation
	if location == "" {
		location = "/"
	}
	return fmt.Sprintf("%s: %s", location, leaf.Message)
}

// LoadConfig reads, validates, and decodes the transformation config at path.
func LoadConfig(path string) (brand.Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return brand.Config{}, &brand.FileNotFoundError{Path: path}
		}
		return brand.Config{}, fmt.Errorf("read config: %w", err)
	}
	data, err := ValidateConfig(content)
	if err != nil {
		return brand.Config{}, fmt.Errorf("%s: %w", path, err)
	}
	cfg, err := brand.DecodeConfig(data)
	if err != nil {
		return brand.Config{}, fmt.Errorf("%s: %w", path, err)
	}
	log.Debug("Loaded config", "path", path, "transformations", len(cfg.Transformations))
	return cfg, nil
}

// BrandConfigPath resolves the brand config location against the source directory.
// An empty reference resolves to nothing.
func BrandConfigPath(sourceDir, ref string) string {
	if ref == "" {
		return ""
	}
	if filepath.IsAbs(ref) {
		return ref
	}
	return filepath.Join(sourceDir, ref)
}

// LoadBrandConfig reads the brand config at path. A missing file yields an
// empty config, matching a brand that defines no strings or variables.
func LoadBrandConfig(path string) (brand.BrandConfig, error) {
	if path == "" {
		return brand.BrandConfig{}.Normalize(), nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debug("Brand config not found, using empty values", "path", path)
			return brand.BrandConfig{}.Normalize(), nil
		}
		return brand.BrandConfig{}, fmt.Errorf("read brand config: %w", err)
	}
	if len(bytes.TrimSpace(content)) == 0 {
		return brand.BrandConfig{}.Normalize(), nil
	}
	data, err := toJSON(content)
	if err != nil {
		return brand.BrandConfig{}, fmt.Errorf("%s: %w", path, err)
	}
	cfg, err := brand.DecodeBrandConfig(data)
	if err != nil {
		return brand.BrandConfig{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
