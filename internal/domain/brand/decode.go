// Where: internal/domain/brand/decode.go
// What: JSON decoding for the tagged transformation union.
// Why: Dispatch on the `type` tag once so the rest of the engine sees concrete variants.
package brand

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type rawConfig struct {
	Schema          string            `json:"$schema"`
	BrandConfigPath string            `json:"brandConfigPath"`
	Transformations []json.RawMessage `json:"transformations"`
}

type typeTag struct {
	Type string `json:"type"`
}

// assetsCarWire accepts the legacy liquidGlassIcon* names next to inputPath/fileType.
type assetsCarWire struct {
	AssetsCar
	LiquidGlassIconPath     string   `json:"liquidGlassIconPath"`
	LiquidGlassIconFileType FileType `json:"liquidGlassIconFileType"`
}

// DecodeConfig parses a JSON config document.
func DecodeConfig(data []byte) (Config, error) {
	var raw rawConfig
	if err := strictUnmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	cfg := Config{BrandConfigPath: raw.BrandConfigPath}
	for i, entry := range raw.Transformations {
		t, err := DecodeTransformation(entry)
		if err != nil {
			return Config{}, fmt.Errorf("transformations[%d]: %w", i, err)
		}
		cfg.Transformations = append(cfg.Transformations, t)
	}
	return cfg, nil
}

// DecodeTransformation parses one tagged transformation object.
func DecodeTransformation(data []byte) (Transformation, error) {
	var tag typeTag
	if err := json.Unmarshal(data, &tag); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	name, err := ParseTypeName(tag.Type)
	if err != nil {
		return nil, err
	}

	body, err := withoutTag(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	var out Transformation
	switch name {
	case TypeRaster:
		var t Raster
		err = strictUnmarshal(body, &t)
		t.Fit = t.Fit.OrDefault()
		out = t
	case TypeIco:
		var t Ico
		err = strictUnmarshal(body, &t)
		out = t
	case TypeIcns:
		var t Icns
		err = strictUnmarshal(body, &t)
		out = t
	case TypeAssetsCar:
		var w assetsCarWire
		err = strictUnmarshal(body, &w)
		if w.InputPath == "" {
			w.InputPath = w.LiquidGlassIconPath
		}
		if w.FileType == "" {
			w.FileType = w.LiquidGlassIconFileType
		}
		out = w.AssetsCar
	case TypeCopy:
		var t Copy
		err = strictUnmarshal(body, &t)
		out = t
	case TypeCopyPreprocess:
		var t CopyPreprocess
		err = strictUnmarshal(body, &t)
		out = t
	case TypeDsStore:
		var t DsStore
		err = strictUnmarshal(body, &t)
		out = t
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedTransformation, name)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConfig, name, err)
	}
	return out, nil
}

// DecodeBrandConfig parses a brand config document.
func DecodeBrandConfig(data []byte) (BrandConfig, error) {
	var cfg BrandConfig
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg.Normalize(), nil
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return BrandConfig{}, fmt.Errorf("%w: brand config: %w", ErrConfig, err)
	}
	return cfg.Normalize(), nil
}

// withoutTag drops the `type` discriminator so variants can be decoded strictly.
func withoutTag(data []byte) ([]byte, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	delete(fields, "type")
	return json.Marshal(fields)
}

func strictUnmarshal(data []byte, target any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(target)
}
