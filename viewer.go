package webpview

import (
	"fmt"
	"log/slog"

	"github.com/frizinak/webpview/img"
)

// Surface is the window and GPU side of the viewer.
type Surface interface {
	// Upload copies decoded pixels into the texture.
	Upload(*img.Image) error
	// SetQuad replaces the vertex positions, see Quad.
	SetQuad([12]float32)
	SetViewport(w, h int)
	// OnResize registers the framebuffer resize handler, invoked from Poll.
	OnResize(func(w, h int))
	// Size returns the current framebuffer size.
	Size() (w, h int)
	Draw()
	Poll()
	ShouldClose() bool
	Close()
}

// Opener creates a Surface of the given initial size.
type Opener func(size Dimensions) (Surface, error)

type Options struct {
	Codec img.Codec
	Size  Dimensions
	Log   *slog.Logger
}

var DefaultSize = Dimensions{W: 800, H: 600}

// Viewer owns a surface and keeps its quad in sync with the viewport.
type Viewer struct {
	s   Surface
	log *slog.Logger

	image    Dimensions
	viewport Dimensions
	quad     Quad
}

// Run decodes the image at path and shows it until the surface is closed.
// No surface is opened when decoding fails.
func Run(path string, o Options, open Opener) error {
	i, err := img.Load(path, o.Codec)
	if err != nil {
		return err
	}

	v, err := New(i, o, open)
	if err != nil {
		return err
	}
	defer v.Close()

	v.Loop()
	return nil
}

// New opens a surface, uploads i and releases its pixels.
func New(i *img.Image, o Options, open Opener) (*Viewer, error) {
	if o.Log == nil {
		o.Log = slog.Default()
	}
	if o.Size == (Dimensions{}) {
		o.Size = DefaultSize
	}

	v := &Viewer{
		log:      o.Log,
		image:    Dimensions{W: i.Width, H: i.Height},
		viewport: o.Size,
	}

	quad, err := ComputeQuad(v.viewport, v.image)
	if err != nil {
		return nil, err
	}
	v.quad = quad

	s, err := open(o.Size)
	if err != nil {
		return nil, err
	}
	v.s = s

	if err := s.Upload(i); err != nil {
		s.Close()
		return nil, fmt.Errorf("upload: %w", err)
	}
	i.Release()

	s.OnResize(v.Resize)
	s.SetQuad(v.quad)
	if w, h := s.Size(); w > 0 && h > 0 {
		v.Resize(w, h)
	} else {
		s.SetViewport(v.viewport.W, v.viewport.H)
	}

	return v, nil
}

// Resize recomputes the quad for a new viewport and pushes it to the
// surface. Zero sized viewports, e.g. a minimized window, are ignored.
func (v *Viewer) Resize(w, h int) {
	d := Dimensions{W: w, H: h}
	if !d.Valid() {
		v.log.Debug("ignoring resize", "width", w, "height", h)
		return
	}

	quad, err := ComputeQuad(d, v.image)
	if err != nil {
		v.log.Error("resize", "err", err)
		return
	}

	v.viewport = d
	v.quad = quad
	v.s.SetQuad(quad)
	v.s.SetViewport(w, h)
	v.log.Debug("resized", "width", w, "height", h)
}

// Loop draws and polls events until the surface wants to close.
func (v *Viewer) Loop() {
	for !v.s.ShouldClose() {
		v.s.Draw()
		v.s.Poll()
	}
}

func (v *Viewer) Viewport() Dimensions { return v.viewport }
func (v *Viewer) Quad() Quad           { return v.quad }

// Close releases the surface.
func (v *Viewer) Close() {
	if v.s == nil {
		return
	}
	v.s.Close()
	v.s = nil
}
