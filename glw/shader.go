package glw

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

const (
	attrPos = 0
	attrUV  = 1
)

const vertexSrc = `#version 410 core

layout(location = 0) in vec2 pos;
layout(location = 1) in vec2 uv;

out vec2 texUV;

void main()
{
	gl_Position = vec4(pos, 0.0, 1.0);
	texUV = uv;
}
` + "\x00"

const fragmentSrc = `#version 410 core

in vec2 texUV;
out vec4 color;

uniform sampler2D tex;

void main()
{
	color = texture(tex, texUV);
}
` + "\x00"

func compileShader(typ uint32, src string) (uint32, error) {
	handle := gl.CreateShader(typ)

	csources, free := gl.Strs(src)
	gl.ShaderSource(handle, 1, csources, nil)
	free()
	gl.CompileShader(handle)

	var status int32
	gl.GetShaderiv(handle, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(handle, gl.INFO_LOG_LENGTH, &logLength)

		msg := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(handle, logLength, nil, gl.Str(msg))
		gl.DeleteShader(handle)

		return 0, fmt.Errorf("failed to compile shader: %s", strings.TrimRight(msg, "\x00"))
	}

	return handle, nil
}

// newProgram compiles and links the textured quad program. The shader
// objects are released once linked.
func newProgram() (uint32, error) {
	vs, err := compileShader(gl.VERTEX_SHADER, vertexSrc)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vs)

	fs, err := compileShader(gl.FRAGMENT_SHADER, fragmentSrc)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fs)

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLength)

		msg := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(prog, logLength, nil, gl.Str(msg))
		gl.DeleteProgram(prog)

		return 0, fmt.Errorf("failed to link program: %s", strings.TrimRight(msg, "\x00"))
	}

	gl.UseProgram(prog)
	gl.Uniform1i(gl.GetUniformLocation(prog, gl.Str("tex\x00")), 0)

	return prog, nil
}
