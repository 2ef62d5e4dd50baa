//go:build libwebp

package img

import (
	"github.com/chai2010/webp"
)

func init() { DefaultCodec = LibWebP{} }

// LibWebP decodes through libwebp (cgo).
type LibWebP struct{}

func (LibWebP) Features(data []byte) (Features, error) {
	w, h, alpha, err := webp.GetInfo(data)
	if err != nil {
		return Features{}, err
	}

	return Features{Width: w, Height: h, HasAlpha: alpha}, nil
}

// Decode keeps libwebp's straight alpha as is, the RGBA result is not
// premultiplied.
func (LibWebP) Decode(data []byte, f Features) ([]byte, error) {
	m, err := webp.DecodeRGBA(data)
	if err != nil {
		return nil, err
	}

	b := m.Bounds()
	ch := f.Channels()
	dst := make([]byte, b.Dx()*b.Dy()*ch)
	o := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		s := m.PixOffset(b.Min.X, y)
		for x := b.Min.X; x < b.Max.X; x++ {
			copy(dst[o:o+ch], m.Pix[s:s+ch])
			s += 4
			o += ch
		}
	}

	return dst, nil
}
