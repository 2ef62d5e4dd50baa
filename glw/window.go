// Package glw renders a single texture onto a quad in a GLFW window using
// an OpenGL 4.1 core context.
//
// All functions must be called from the main thread.
package glw

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

var ErrGraphicsInit = errors.New("graphics init failed")

type Config struct {
	Title         string
	Width, Height int

	// UV holds the texture coordinate of each of the six quad vertices.
	UV [12]float32

	// Smooth enables mipmapped linear filtering, nearest otherwise.
	Smooth bool

	SwapInterval int
	Log          *slog.Logger
}

type state byte

const (
	stateGLFW state = 1 << iota
	stateGL
)

type Window struct {
	c     Config
	log   *slog.Logger
	state state

	glw      *glfw.Window
	program  uint32
	vao      uint32
	vbo      [2]uint32
	texture  uint32
	onResize func(w, h int)
}

// New creates the window, its context and all GPU objects apart from the
// texture. Nothing is left allocated when an error is returned.
func New(c Config) (w *Window, err error) {
	if c.Log == nil {
		c.Log = slog.Default()
	}
	w = &Window{c: c, log: c.Log}
	defer func() {
		if err != nil {
			w.Close()
			w = nil
		}
	}()

	if err = glfw.Init(); err != nil {
		return w, fmt.Errorf("%w: %v", ErrGraphicsInit, err)
	}
	w.state |= stateGLFW

	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	w.glw, err = glfw.CreateWindow(c.Width, c.Height, c.Title, nil, nil)
	if err != nil {
		return w, fmt.Errorf("%w: create window: %v", ErrGraphicsInit, err)
	}

	w.glw.MakeContextCurrent()
	if err = gl.Init(); err != nil {
		return w, fmt.Errorf("%w: load gl: %v", ErrGraphicsInit, err)
	}
	w.state |= stateGL
	glfw.SwapInterval(c.SwapInterval)

	w.log.Debug("gl context", "version", gl.GoStr(gl.GetString(gl.VERSION)))

	if w.program, err = newProgram(); err != nil {
		return w, fmt.Errorf("%w: %v", ErrGraphicsInit, err)
	}

	w.initBuffers()
	gl.ClearColor(0, 0, 0, 0)

	w.glw.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		if w.onResize != nil {
			w.onResize(width, height)
		}
	})
	w.glw.SetKeyCallback(func(gw *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		switch key {
		case glfw.KeyEscape, glfw.KeyQ:
			gw.SetShouldClose(true)
		}
	})

	return w, nil
}

func (w *Window) initBuffers() {
	gl.GenVertexArrays(1, &w.vao)
	gl.GenBuffers(int32(len(w.vbo)), &w.vbo[0])
	gl.BindVertexArray(w.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, w.vbo[0])
	gl.BufferData(gl.ARRAY_BUFFER, 12*4, nil, gl.DYNAMIC_DRAW)
	gl.VertexAttribPointer(attrPos, 2, gl.FLOAT, false, 2*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(attrPos)

	uv := w.c.UV
	gl.BindBuffer(gl.ARRAY_BUFFER, w.vbo[1])
	gl.BufferData(gl.ARRAY_BUFFER, len(uv)*4, gl.Ptr(&uv[0]), gl.STATIC_DRAW)
	gl.VertexAttribPointer(attrUV, 2, gl.FLOAT, false, 2*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(attrUV)
}

// OnResize registers fn to be called from Poll whenever the framebuffer
// changes size. Sizes may be zero while the window is minimized.
func (w *Window) OnResize(fn func(w, h int)) { w.onResize = fn }

// Size returns the framebuffer size in pixels.
func (w *Window) Size() (int, int) { return w.glw.GetFramebufferSize() }

// SetQuad replaces the vertex positions.
func (w *Window) SetQuad(q [12]float32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, w.vbo[0])
	gl.BufferData(gl.ARRAY_BUFFER, len(q)*4, gl.Ptr(&q[0]), gl.DYNAMIC_DRAW)
}

func (w *Window) SetViewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (w *Window) Draw() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.UseProgram(w.program)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, w.texture)
	gl.BindVertexArray(w.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	w.glw.SwapBuffers()
}

// Poll processes pending window events without blocking.
func (w *Window) Poll() { glfw.PollEvents() }

func (w *Window) ShouldClose() bool { return w.glw.ShouldClose() }

// Close releases all GPU objects, the window and glfw. It is safe to call
// on a partially initialized window and more than once.
func (w *Window) Close() {
	if w.state&stateGL != 0 {
		if w.program != 0 {
			gl.DeleteProgram(w.program)
		}
		if w.texture != 0 {
			gl.DeleteTextures(1, &w.texture)
		}
		if w.vao != 0 {
			gl.DeleteVertexArrays(1, &w.vao)
		}
		gl.DeleteBuffers(int32(len(w.vbo)), &w.vbo[0])
		w.program, w.texture, w.vao = 0, 0, 0
		w.vbo = [2]uint32{}
		w.state &= ^stateGL
	}

	if w.glw != nil {
		w.glw.Destroy()
		w.glw = nil
	}

	if w.state&stateGLFW != 0 {
		glfw.Terminate()
		w.state &= ^stateGLFW
	}
}
