package glw

import (
	"errors"
	"fmt"

	"github.com/frizinak/webpview/img"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// pixelFormat returns the internal and client formats for decoded pixels.
func pixelFormat(alpha bool) (internal int32, format uint32) {
	if alpha {
		return gl.RGBA8, gl.RGBA
	}
	return gl.RGB8, gl.RGB
}

func filters(smooth bool) (minify, magnify int32) {
	if smooth {
		return gl.LINEAR_MIPMAP_LINEAR, gl.LINEAR
	}
	return gl.NEAREST, gl.NEAREST
}

// Upload copies the decoded pixels into the window's texture. The image
// may be released afterwards.
func (w *Window) Upload(i *img.Image) error {
	if len(i.Pix) == 0 {
		return errors.New("image has no pixel data")
	}

	if w.texture == 0 {
		gl.GenTextures(1, &w.texture)
	}

	minify, magnify := filters(w.c.Smooth)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, w.texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, minify)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, magnify)

	// RGB rows are not 4 byte aligned for most widths.
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	internal, format := pixelFormat(i.HasAlpha)
	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		internal,
		int32(i.Width),
		int32(i.Height),
		0,
		format,
		gl.UNSIGNED_BYTE,
		gl.Ptr(i.Pix),
	)
	if w.c.Smooth {
		gl.GenerateMipmap(gl.TEXTURE_2D)
	}

	if i.HasAlpha {
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	} else {
		gl.Disable(gl.BLEND)
	}

	if e := gl.GetError(); e != gl.NO_ERROR {
		return fmt.Errorf("texture upload %dx%d: gl error 0x%x", i.Width, i.Height, e)
	}

	w.log.Debug(
		"texture uploaded",
		"width", i.Width,
		"height", i.Height,
		"alpha", i.HasAlpha,
	)

	return nil
}
