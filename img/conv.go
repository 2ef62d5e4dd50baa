package img

import (
	"image"
	"image/color"
)

// Pack copies src into a tightly packed, top row first buffer of RGBA
// (alpha true) or RGB pixels. Alpha is kept straight, not premultiplied.
func Pack(src image.Image, alpha bool) []byte {
	b := src.Bounds()
	ch := 3
	if alpha {
		ch = 4
	}
	dst := make([]byte, b.Dx()*b.Dy()*ch)

	// Fast path
	switch v := src.(type) {
	case *image.YCbCr:
		packYCbCr(dst, v, b, ch)
		return dst
	case *image.NYCbCrA:
		packYCbCr(dst, &v.YCbCr, b, ch)
		if ch == 4 {
			packA(dst, v, b)
		}
		return dst
	case *image.NRGBA:
		packNRGBA(dst, v, b, ch)
		return dst
	case *image.RGBA:
		packRGBA(dst, v, b, ch)
		return dst
	}

	// Slow path
	o := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
			dst[o+0] = c.R
			dst[o+1] = c.G
			dst[o+2] = c.B
			if ch == 4 {
				dst[o+3] = c.A
			}
			o += ch
		}
	}
	return dst
}

func clamp(v float32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func packYCbCr(dst []byte, src *image.YCbCr, b image.Rectangle, ch int) {
	o := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			yo := src.YOffset(x, y)
			co := src.COffset(x, y)
			_y := float32(src.Y[yo])
			cr := float32(src.Cr[co]) - 128
			cb := float32(src.Cb[co]) - 128
			dst[o+0] = clamp(_y + 1.40200*cr)
			dst[o+1] = clamp(_y - 0.34414*cb - 0.71414*cr)
			dst[o+2] = clamp(_y + 1.77200*cb)
			if ch == 4 {
				dst[o+3] = 255
			}
			o += ch
		}
	}
}

// packA overwrites the alpha byte of each RGBA pixel in dst.
func packA(dst []byte, src *image.NYCbCrA, b image.Rectangle) {
	o := 3
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			dst[o] = src.A[src.AOffset(x, y)]
			o += 4
		}
	}
}

func packNRGBA(dst []byte, src *image.NRGBA, b image.Rectangle, ch int) {
	o := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		s := src.PixOffset(b.Min.X, y)
		for x := b.Min.X; x < b.Max.X; x++ {
			copy(dst[o:o+ch], src.Pix[s:s+ch])
			s += 4
			o += ch
		}
	}
}

func packRGBA(dst []byte, src *image.RGBA, b image.Rectangle, ch int) {
	o := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		s := src.PixOffset(b.Min.X, y)
		for x := b.Min.X; x < b.Max.X; x++ {
			a := uint32(src.Pix[s+3])
			for i := 0; i < 3; i++ {
				v := uint32(src.Pix[s+i])
				if a != 0xff {
					if v > a {
						v = a
					}
					if a != 0 {
						v = v * 0xff / a
					}
				}
				dst[o+i] = uint8(v)
			}
			if ch == 4 {
				dst[o+3] = uint8(a)
			}
			s += 4
			o += ch
		}
	}
}
