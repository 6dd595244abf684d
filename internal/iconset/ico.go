// Where: internal/iconset/ico.go
// What: Windows .ico container writer with PNG-encoded entries.
// Why: Build multi-resolution icons without any platform tool.
package iconset

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"io"
	"math"

	"github.com/poruru-code/brandgen/internal/artwork"
	"github.com/poruru-code/brandgen/internal/domain/brand"
	"github.com/poruru-code/brandgen/internal/infra/fileops"
)

const (
	icoHeaderSize = 6
	icoEntrySize  = 16
	icoTypeIcon   = 1
	icoBitCount   = 32
)

type icoDir struct {
	Reserved uint16
	Type     uint16
	Count    uint16
}

type icoDirEntry struct {
	Width      uint8
	Height     uint8
	ColorCount uint8
	Reserved   uint8
	Planes     uint16
	BitCount   uint16
	BytesInRes uint32
	Offset     uint32
}

// icoDimension encodes an edge length; 0 stands for 256 and above.
func icoDimension(px int) uint8 {
	if px >= 256 {
		return 0
	}
	return uint8(px)
}

// WriteICO writes images as a single .ico stream, one PNG entry per image,
// in the given order.
func WriteICO(w io.Writer, images []image.Image) error {
	if len(images) == 0 {
		return fmt.Errorf("%w: ico needs at least one image", brand.ErrTransformation)
	}
	if len(images) > math.MaxUint16 {
		return fmt.Errorf("%w: too many ico entries", brand.ErrTransformation)
	}

	payloads := make([][]byte, len(images))
	for i, img := range images {
		data, err := artwork.Encode(img, brand.FormatPNG)
		if err != nil {
			return err
		}
		payloads[i] = data
	}

	var buf bytes.Buffer
	header := icoDir{Type: icoTypeIcon, Count: uint16(len(images))}
	if err := binary.Write(&buf, binary.LittleEndian, header); err != nil {
		return err
	}
	offset := uint32(icoHeaderSize + icoEntrySize*len(images))
	for i, img := range images {
		b := img.Bounds()
		entry := icoDirEntry{
			Width:      icoDimension(b.Dx()),
			Height:     icoDimension(b.Dy()),
			Planes:     1,
			BitCount:   icoBitCount,
			BytesInRes: uint32(len(payloads[i])),
			Offset:     offset,
		}
		if err := binary.Write(&buf, binary.LittleEndian, entry); err != nil {
			return err
		}
		offset += entry.BytesInRes
	}
	for _, data := range payloads {
		buf.Write(data)
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// BuildICO renders src at each size and writes the container to output.
func BuildICO(src *artwork.Source, sizes []int, output string) error {
	if err := validateSizes(sizes); err != nil {
		return err
	}
	images := make([]image.Image, 0, len(sizes))
	for _, size := range sizes {
		img, err := renderSquare(src, size)
		if err != nil {
			return err
		}
		images = append(images, img)
	}
	var buf bytes.Buffer
	if err := WriteICO(&buf, images); err != nil {
		return err
	}
	if err := fileops.WriteFile(output, buf.Bytes()); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	return nil
}
