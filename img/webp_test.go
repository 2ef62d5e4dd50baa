package img

import (
	"encoding/binary"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebPFeaturesTruncated(t *testing.T) {
	_, err := Decode([]byte("RIFF\x08\x00\x00\x00WEBPVP8 "), WebP{})
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestWebPDecode(t *testing.T) {
	type pixel struct {
		x, y int
		want []byte
	}
	cases := []struct {
		file   string
		w, h   int
		alpha  bool
		pixels []pixel
	}{
		{
			file: "blue-purple-pink.lossy.webp",
			w:    150, h: 100,
			pixels: []pixel{
				{75, 50, []byte{167, 153, 164}},
				{40, 30, []byte{37, 66, 109}},
			},
		},
		{
			file: "gopher-doc.8bpp.lossless.webp",
			w:    75, h: 100,
			pixels: []pixel{
				{0, 0, []byte{255, 255, 255}},
				{38, 41, []byte{131, 131, 131}},
			},
		},
		{
			file: "yellow_rose.lossy-with-alpha.webp",
			w:    400, h: 301,
			alpha: true,
			pixels: []pixel{
				{200, 150, []byte{148, 81, 16, 255}},
				{0, 0, []byte{87, 91, 52, 0}},
			},
		},
		{
			file: "tux.lossless.webp",
			w:    386, h: 395,
			alpha: true,
			pixels: []pixel{
				{193, 197, []byte{162, 116, 0, 255}},
				{193, 300, []byte{202, 202, 202, 255}},
			},
		},
	}

	for _, c := range cases {
		t.Run(c.file, func(t *testing.T) {
			i, err := Load(filepath.Join("testdata", c.file), WebP{})
			require.NoError(t, err)

			assert.Equal(t, c.w, i.Width)
			assert.Equal(t, c.h, i.Height)
			assert.Equal(t, c.alpha, i.HasAlpha)
			require.Len(t, i.Pix, i.Size())

			ch := i.Channels()
			for _, p := range c.pixels {
				o := (p.y*i.Width + p.x) * ch
				assert.Equal(t, p.want, i.Pix[o:o+ch], "pixel %d,%d", p.x, p.y)
			}
		})
	}
}

func TestWebPTransparentPixels(t *testing.T) {
	i, err := Load(filepath.Join("testdata", "tux.lossless.webp"), WebP{})
	require.NoError(t, err)
	require.True(t, i.HasAlpha)

	assert.Equal(t, byte(0), i.Pix[3])
}

func TestLosslessAlpha(t *testing.T) {
	header := func(alpha bool) []byte {
		d := []byte("RIFF\x00\x00\x00\x00WEBPVP8L\x00\x00\x00\x00\x2f\x00\x00\x00\x00")
		var bits uint32 = 9 | 9<<14
		if alpha {
			bits |= 1 << 28
		}
		binary.LittleEndian.PutUint32(d[21:], bits)
		return d
	}

	assert.False(t, losslessAlpha(header(false)))
	assert.True(t, losslessAlpha(header(true)))
	assert.True(t, losslessAlpha([]byte("RIFF\x00\x00\x00\x00WEBPVP8X")))
}
