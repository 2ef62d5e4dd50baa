package webpview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-6

func TestComputeQuadEqualAspect(t *testing.T) {
	q, err := ComputeQuad(Dimensions{800, 600}, Dimensions{800, 600})
	require.NoError(t, err)

	assert.Equal(t, Quad{
		-1, -1,
		-1, 1,
		1, 1,
		1, 1,
		1, -1,
		-1, -1,
	}, q)

	q, err = ComputeQuad(Dimensions{800, 600}, Dimensions{400, 300})
	require.NoError(t, err)
	x, y := q.Extent()
	assert.Equal(t, float32(1), x)
	assert.Equal(t, float32(1), y)
}

func TestComputeQuadWideImage(t *testing.T) {
	q, err := ComputeQuad(Dimensions{800, 600}, Dimensions{1600, 600})
	require.NoError(t, err)

	x, y := q.Extent()
	assert.Equal(t, float32(1), x)
	assert.InDelta(t, 0.5, y, tol)
}

func TestComputeQuadTallImage(t *testing.T) {
	q, err := ComputeQuad(Dimensions{600, 800}, Dimensions{600, 1600})
	require.NoError(t, err)

	x, y := q.Extent()
	assert.InDelta(t, 0.5, x, tol)
	assert.Equal(t, float32(1), y)

	wide, err := ComputeQuad(Dimensions{800, 600}, Dimensions{1600, 600})
	require.NoError(t, err)
	wx, wy := wide.Extent()
	assert.InDelta(t, wy, x, tol)
	assert.InDelta(t, wx, y, tol)
}

func TestComputeQuadWinding(t *testing.T) {
	q, err := ComputeQuad(Dimensions{1024, 768}, Dimensions{300, 500})
	require.NoError(t, err)
	x, y := q.Extent()

	want := [6][2]float32{
		{-x, -y}, // bottom left
		{-x, y},  // top left
		{x, y},   // top right
		{x, y},
		{x, -y}, // bottom right
		{-x, -y},
	}
	for i, w := range want {
		vx, vy := q.Vertex(i)
		assert.Equal(t, w[0], vx, "vertex %d x", i)
		assert.Equal(t, w[1], vy, "vertex %d y", i)
	}
}

func TestComputeQuadFits(t *testing.T) {
	sizes := []int{1, 2, 3, 7, 16, 99, 600, 800, 1080, 1920, 4096}
	for _, vw := range sizes {
		for _, vh := range sizes {
			for _, iw := range sizes {
				for _, ih := range sizes {
					q, err := ComputeQuad(Dimensions{vw, vh}, Dimensions{iw, ih})
					require.NoError(t, err)

					x, y := q.Extent()
					assert.True(t, x > 0 && x <= 1, "x %v for %d %d %d %d", x, vw, vh, iw, ih)
					assert.True(t, y > 0 && y <= 1, "y %v for %d %d %d %d", y, vw, vh, iw, ih)

					wr := float64(vw) / float64(vh)
					ir := float64(iw) / float64(ih)
					if ir > wr {
						assert.Equal(t, float32(1), x)
					} else {
						assert.Equal(t, float32(1), y)
					}

					// x and y are fractions of the viewport, in pixels the
					// quad must have the image's aspect ratio.
					got := float64(x) * float64(vw) / (float64(y) * float64(vh))
					assert.InEpsilon(t, ir, got, 1e-5)
				}
			}
		}
	}
}

func TestComputeQuadIdempotent(t *testing.T) {
	a, err := ComputeQuad(Dimensions{1366, 768}, Dimensions{333, 777})
	require.NoError(t, err)
	b, err := ComputeQuad(Dimensions{1366, 768}, Dimensions{333, 777})
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestComputeQuadInvalid(t *testing.T) {
	cases := [][4]int{
		{0, 600, 10, 10},
		{800, 0, 10, 10},
		{800, 600, 0, 10},
		{800, 600, 10, 0},
		{-800, 600, 10, 10},
		{800, 600, 10, -1},
	}
	for _, c := range cases {
		q, err := ComputeQuad(Dimensions{c[0], c[1]}, Dimensions{c[2], c[3]})
		assert.ErrorIs(t, err, ErrInvalidDimension, "%v", c)
		assert.Equal(t, Quad{}, q)
	}
}

func TestTexCoordsFlip(t *testing.T) {
	q, err := ComputeQuad(Dimensions{10, 10}, Dimensions{10, 10})
	require.NoError(t, err)

	for i := 0; i < 6; i++ {
		x, y := q.Vertex(i)
		u, v := TexCoords[i*2], TexCoords[i*2+1]

		wantU := float32(0)
		if x > 0 {
			wantU = 1
		}
		// The first image row sits at v = 0 and belongs at the top.
		wantV := float32(1)
		if y > 0 {
			wantV = 0
		}
		assert.Equal(t, wantU, u, "vertex %d u", i)
		assert.Equal(t, wantV, v, "vertex %d v", i)
	}
}
