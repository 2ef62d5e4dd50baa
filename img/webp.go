package img

import (
	"bytes"
	"encoding/binary"
	"image/color"

	"golang.org/x/image/webp"
)

// WebP decodes with the pure Go decoder from golang.org/x/image.
type WebP struct{}

func (WebP) Features(data []byte) (Features, error) {
	c, err := webp.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Features{}, err
	}

	f := Features{Width: c.Width, Height: c.Height}
	switch c.ColorModel {
	case color.YCbCrModel:
	case color.NRGBAModel:
		// Simple lossless files always decode to NRGBA, the header
		// says whether any pixel is not opaque.
		f.HasAlpha = losslessAlpha(data)
	default:
		f.HasAlpha = true
	}

	return f, nil
}

func (WebP) Decode(data []byte, f Features) ([]byte, error) {
	m, err := webp.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	return Pack(m, f.HasAlpha), nil
}

const (
	vp8lChunkOffset  = 12
	vp8lHeaderOffset = 21
	vp8lAlphaBit     = 1 << 28
)

// losslessAlpha reports the alpha_is_used bit of a simple VP8L file, true
// when data has a different layout.
func losslessAlpha(data []byte) bool {
	if len(data) < vp8lHeaderOffset+4 ||
		!bytes.Equal(data[vp8lChunkOffset:vp8lChunkOffset+4], []byte("VP8L")) {
		return true
	}

	bits := binary.LittleEndian.Uint32(data[vp8lHeaderOffset:])
	return bits&vp8lAlphaBit != 0
}
