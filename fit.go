package webpview

import (
	"errors"
	"fmt"
)

var ErrInvalidDimension = errors.New("invalid dimension")

type Dimensions struct {
	W, H int
}

func (d Dimensions) Valid() bool { return d.W > 0 && d.H > 0 }

// Quad holds two triangles in normalized device coordinates as x,y pairs
// in the order bottom-left, top-left, top-right, top-right, bottom-right,
// bottom-left.
type Quad [12]float32

// TexCoords maps the corners of a Quad onto the full texture. Decoded
// images are top row first, so v is flipped relative to y.
var TexCoords = [12]float32{
	0, 1,
	0, 0,
	1, 0,
	1, 0,
	1, 1,
	0, 1,
}

// ComputeQuad returns the largest quad with the aspect ratio of image that
// fits a viewport, centered, letterboxed on one axis.
func ComputeQuad(viewport, image Dimensions) (Quad, error) {
	if !viewport.Valid() || !image.Valid() {
		return Quad{}, fmt.Errorf(
			"%w: viewport %dx%d, image %dx%d",
			ErrInvalidDimension,
			viewport.W, viewport.H,
			image.W, image.H,
		)
	}

	wr := float32(viewport.W) / float32(viewport.H)
	ir := float32(image.W) / float32(image.H)

	var x, y float32 = 1, 1
	if ir > wr {
		y = wr / ir
	} else {
		x = ir / wr
	}

	return Quad{
		-x, -y,
		-x, y,
		x, y,
		x, y,
		x, -y,
		-x, -y,
	}, nil
}

// Vertex returns the i-th point of the quad.
func (q Quad) Vertex(i int) (x, y float32) { return q[i*2], q[i*2+1] }

// Extent returns the half width and half height of the quad.
func (q Quad) Extent() (x, y float32) { return q[4], q[5] }
