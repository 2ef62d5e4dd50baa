package glw

import (
	"testing"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/stretchr/testify/assert"
)

func TestPixelFormat(t *testing.T) {
	internal, format := pixelFormat(true)
	assert.Equal(t, int32(gl.RGBA8), internal)
	assert.Equal(t, uint32(gl.RGBA), format)

	internal, format = pixelFormat(false)
	assert.Equal(t, int32(gl.RGB8), internal)
	assert.Equal(t, uint32(gl.RGB), format)
}

func TestFilters(t *testing.T) {
	minify, magnify := filters(true)
	assert.Equal(t, int32(gl.LINEAR_MIPMAP_LINEAR), minify)
	assert.Equal(t, int32(gl.LINEAR), magnify)

	minify, magnify = filters(false)
	assert.Equal(t, int32(gl.NEAREST), minify)
	assert.Equal(t, int32(gl.NEAREST), magnify)
}
