// Where: internal/domain/brand/types.go
// What: Transformation model, brand values, and filter options.
// Why: Keep the parsed configuration shape pure and free of I/O.
package brand

import (
	"fmt"
	"strings"
)

// TypeName is the wire tag identifying a transformation variant.
type TypeName string

const (
	TypeRaster         TypeName = "raster"
	TypeIco            TypeName = "ico"
	TypeIcns           TypeName = "icns"
	TypeAssetsCar      TypeName = "assets-car"
	TypeCopy           TypeName = "copy"
	TypeCopyPreprocess TypeName = "copy-preprocess"
	TypeDsStore        TypeName = "ds-store"
)

// AllTypes lists every transformation type in documentation order.
var AllTypes = []TypeName{
	TypeRaster,
	TypeIco,
	TypeIcns,
	TypeAssetsCar,
	TypeCopy,
	TypeCopyPreprocess,
	TypeDsStore,
}

// ParseTypeName validates a user-supplied transformation type.
func ParseTypeName(value string) (TypeName, error) {
	candidate := TypeName(strings.ToLower(strings.TrimSpace(value)))
	for _, known := range AllTypes {
		if candidate == known {
			return known, nil
		}
	}
	return "", fmt.Errorf("%w: unknown transformation type %q", ErrConfig, value)
}

// FileType selects which base directory resolves an input path.
type FileType string

const (
	FileTypeSource FileType = "source"
	FileTypeStatic FileType = "static"
)

func (f *FileType) UnmarshalText(text []byte) error {
	switch FileType(text) {
	case FileTypeSource, FileTypeStatic:
		*f = FileType(text)
		return nil
	}
	return fmt.Errorf("%w: unknown fileType %q", ErrConfig, string(text))
}

// FitStrategy maps a source image into a target box.
type FitStrategy string

const (
	FitFill      FitStrategy = "fill"
	FitContain   FitStrategy = "contain"
	FitCover     FitStrategy = "cover"
	FitScaleDown FitStrategy = "scale-down"
)

func (f *FitStrategy) UnmarshalText(text []byte) error {
	switch FitStrategy(text) {
	case "":
		*f = FitContain
		return nil
	case FitFill, FitContain, FitCover, FitScaleDown:
		*f = FitStrategy(text)
		return nil
	}
	return fmt.Errorf("%w: unknown fit %q", ErrConfig, string(text))
}

// OrDefault returns Contain when the strategy was omitted.
func (f FitStrategy) OrDefault() FitStrategy {
	if f == "" {
		return FitContain
	}
	return f
}

// OutputFormat is the encoding of a raster output.
type OutputFormat string

const (
	FormatPNG  OutputFormat = "png"
	FormatJPG  OutputFormat = "jpg"
	FormatBMP  OutputFormat = "bmp"
	FormatTIFF OutputFormat = "tiff"
	FormatGIF  OutputFormat = "gif"
)

func (o *OutputFormat) UnmarshalText(text []byte) error {
	switch OutputFormat(text) {
	case FormatPNG, FormatJPG, FormatBMP, FormatTIFF, FormatGIF:
		*o = OutputFormat(text)
		return nil
	}
	return fmt.Errorf("%w: unknown outputFileType %q", ErrConfig, string(text))
}

// Input is a relative path plus the base directory it resolves against.
type Input struct {
	Path     string
	FileType FileType
}

// Transformation is the closed set of supported transformations.
// Only types declared in this package implement it.
type Transformation interface {
	Type() TypeName
	Output() string
	Inputs() []Input
	isTransformation()
}

// Raster resizes one image into a target box.
type Raster struct {
	FileType      FileType     `json:"fileType"`
	InputPath     string       `json:"inputPath"`
	OutputPath    string       `json:"outputPath"`
	Format        OutputFormat `json:"outputFileType"`
	Width         int          `json:"width"`
	Height        int          `json:"height"`
	PaddingWidth  *int         `json:"paddingPixelsWidth,omitempty"`
	PaddingHeight *int         `json:"paddingPixelsHeight,omitempty"`
	OffsetX       *int         `json:"offsetX,omitempty"`
	OffsetY       *int         `json:"offsetY,omitempty"`
	Fit           FitStrategy  `json:"fit,omitempty"`
}

// Ico writes a multi-image .ico container.
type Ico struct {
	FileType   FileType `json:"fileType"`
	InputPath  string   `json:"inputPath"`
	OutputPath string   `json:"outputPath"`
	Sizes      []int    `json:"sizes"`
}

// Icns compiles an .icns file through iconutil.
type Icns struct {
	FileType   FileType `json:"fileType"`
	InputPath  string   `json:"inputPath"`
	OutputPath string   `json:"outputPath"`
	Sizes      []int    `json:"sizes"`
}

// AssetsCar compiles an asset catalog through actool.
// InputPath points at the layered `.icon` directory.
type AssetsCar struct {
	FileType        FileType `json:"fileType"`
	InputPath       string   `json:"inputPath"`
	OutputPath      string   `json:"outputPath"`
	AppIconInput    string   `json:"appIconInput"`
	AppIconFileType FileType `json:"appIconFileType"`
	IconInput       string   `json:"iconInput"`
	IconFileType    FileType `json:"iconFileType"`
}

// Copy duplicates a file byte for byte.
type Copy struct {
	FileType   FileType `json:"fileType"`
	InputPath  string   `json:"inputPath"`
	OutputPath string   `json:"outputPath"`
}

// CopyPreprocess copies a text file through the template preprocessor.
type CopyPreprocess struct {
	FileType   FileType `json:"fileType"`
	InputPath  string   `json:"inputPath"`
	OutputPath string   `json:"outputPath"`
}

// DsStore produces an installer-volume .DS_Store. The geometry strings are
// forwarded verbatim to the disk-image tooling.
type DsStore struct {
	OutputPath              string   `json:"outputPath"`
	AppName                 string   `json:"appName"`
	VolumeName              string   `json:"volumeName"`
	BackgroundImage         string   `json:"backgroundImage"`
	BackgroundImageFileType FileType `json:"backgroundImageFileType"`
	VolumeIcon              string   `json:"volumeIcon"`
	VolumeIconFileType      FileType `json:"volumeIconFileType"`
	WindowPosition          string   `json:"windowPosition"`
	WindowSize              string   `json:"windowSize"`
	AppIconPosition         string   `json:"appIconPosition"`
	AppDropLinkPosition     string   `json:"appDropLinkPosition"`
}

func (Raster) Type() TypeName         { return TypeRaster }
func (Ico) Type() TypeName            { return TypeIco }
func (Icns) Type() TypeName           { return TypeIcns }
func (AssetsCar) Type() TypeName      { return TypeAssetsCar }
func (Copy) Type() TypeName           { return TypeCopy }
func (CopyPreprocess) Type() TypeName { return TypeCopyPreprocess }
func (DsStore) Type() TypeName        { return TypeDsStore }

func (t Raster) Output() string         { return t.OutputPath }
func (t Ico) Output() string            { return t.OutputPath }
func (t Icns) Output() string           { return t.OutputPath }
func (t AssetsCar) Output() string      { return t.OutputPath }
func (t Copy) Output() string           { return t.OutputPath }
func (t CopyPreprocess) Output() string { return t.OutputPath }
func (t DsStore) Output() string        { return t.OutputPath }

func (t Raster) Inputs() []Input { return []Input{{Path: t.InputPath, FileType: t.FileType}} }
func (t Ico) Inputs() []Input    { return []Input{{Path: t.InputPath, FileType: t.FileType}} }
func (t Icns) Inputs() []Input   { return []Input{{Path: t.InputPath, FileType: t.FileType}} }
func (t Copy) Inputs() []Input   { return []Input{{Path: t.InputPath, FileType: t.FileType}} }

func (t CopyPreprocess) Inputs() []Input {
	return []Input{{Path: t.InputPath, FileType: t.FileType}}
}

// Inputs returns the layered icon, the app icon source, and the icon source, in that order.
func (t AssetsCar) Inputs() []Input {
	return []Input{
		{Path: t.InputPath, FileType: t.FileType},
		{Path: t.AppIconInput, FileType: t.AppIconFileType},
		{Path: t.IconInput, FileType: t.IconFileType},
	}
}

// Inputs returns the background image followed by the volume icon.
func (t DsStore) Inputs() []Input {
	return []Input{
		{Path: t.BackgroundImage, FileType: t.BackgroundImageFileType},
		{Path: t.VolumeIcon, FileType: t.VolumeIconFileType},
	}
}

func (Raster) isTransformation()         {}
func (Ico) isTransformation()            {}
func (Icns) isTransformation()           {}
func (AssetsCar) isTransformation()      {}
func (Copy) isTransformation()           {}
func (CopyPreprocess) isTransformation() {}
func (DsStore) isTransformation()        {}

// Config is the parsed transformation list.
type Config struct {
	BrandConfigPath string
	Transformations []Transformation
}

// BrandConfig carries substitution strings and condition variables.
type BrandConfig struct {
	Strings map[string]string `json:"strings"`
	Env     map[string]string `json:"env"`
}

// Normalize replaces nil maps with empty ones.
func (b BrandConfig) Normalize() BrandConfig {
	if b.Strings == nil {
		b.Strings = map[string]string{}
	}
	if b.Env == nil {
		b.Env = map[string]string{}
	}
	return b
}
