// Package ui implements nes.Renderer and nes.JoypadSource with an OpenGL
// texture blit and glfw keyboard polling.
// Grounded on jyane-jnes/ui/ui.go and ui/utils.go (shader compile/link,
// updateTexture, getKeys) -- the teacher's copy had the shader/texture
// helpers declared twice (once in each file, see DESIGN.md), so this
// package keeps one copy and folds updateTexture into Render, uploading the
// raw 256x240x3 Frame buffer in place of *image.RGBA.
package ui

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/golang/glog"

	"github.com/kohei-sano/nesgo/nes"
)

const (
	vertexShader = `
  #version 330

  attribute vec3 position;
  attribute vec2 uv;
  varying vec2 vuv;
  void main(void){
    gl_Position = vec4(position, 1.0);
    vuv = uv;
  }
  ` + "\x00"

	fragmentShader = `
  #version 330

  varying vec2 vuv;
  uniform sampler2D texture;
  void main(void){
    gl_FragColor = texture2D(texture, vuv);
  }
  ` + "\x00"
)

var vertexPosition = []float32{
	1, 1,
	-1, 1,
	-1, -1,
	1, -1,
}
var vertexUV = []float32{
	1, 0,
	0, 0,
	0, 1,
	1, 1,
}

func compileShader(code string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	ccode := gl.Str(code)
	gl.ShaderSource(shader, 1, &ccode, nil)
	gl.CompileShader(shader)
	var result int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &result)
	if result == gl.FALSE {
		var length int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &length)
		log := strings.Repeat("\x00", int(length+1))
		gl.GetShaderInfoLog(shader, length, nil, gl.Str(log))
		return 0, fmt.Errorf("failed to compile a shader: %v\n %v", code, log)
	}
	return shader, nil
}

func newProgram() (uint32, error) {
	vs, err := compileShader(vertexShader, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := compileShader(fragmentShader, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}
	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)
	var result int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &result)
	if result == gl.FALSE {
		var length int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &length)
		log := strings.Repeat("\x00", int(length+1))
		gl.GetProgramInfoLog(program, length, nil, gl.Str(log))
		return 0, fmt.Errorf("failed to link a program: %v", log)
	}
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)
	return program, nil
}

// Window is a glfw/OpenGL nes.Renderer and nes.JoypadSource.
type Window struct {
	win     *glfw.Window
	program uint32
}

// NewWindow creates and shows a width x height window with the 2D blit
// program ready to receive Render calls.
func NewWindow(width, height int) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	win, err := glfw.CreateWindow(width, height, "nesgo", nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	win.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("gl init: %w", err)
	}
	program, err := newProgram()
	if err != nil {
		return nil, err
	}
	gl.UseProgram(program)
	return &Window{win: win, program: program}, nil
}

// ShouldClose reports whether the user asked to close the window.
func (w *Window) ShouldClose() bool { return w.win.ShouldClose() }

// Close terminates glfw. Safe to call once, after the event loop exits.
func (w *Window) Close() { glfw.Terminate() }

// Render uploads frame as a 256x240 RGB texture and draws it as a
// full-viewport quad. Implements nes.Renderer.
func (w *Window) Render(frame *nes.Frame) {
	var textureId uint32
	gl.GenTextures(1, &textureId)
	gl.BindTexture(gl.TEXTURE_2D, textureId)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGB,
		nes.FrameWidth, nes.FrameHeight,
		0, gl.RGB, gl.UNSIGNED_BYTE, gl.Ptr(&frame.Pixels[0]))
	gl.BindTexture(gl.TEXTURE_2D, 0)

	positionLocation := uint32(gl.GetAttribLocation(w.program, gl.Str("position\x00")))
	uvLocation := uint32(gl.GetAttribLocation(w.program, gl.Str("uv\x00")))
	textureLocation := gl.GetUniformLocation(w.program, gl.Str("texture\x00"))
	gl.EnableVertexAttribArray(positionLocation)
	gl.EnableVertexAttribArray(uvLocation)
	gl.Uniform1i(textureLocation, 0)
	gl.VertexAttribPointer(positionLocation, 2, gl.FLOAT, false, 0, gl.Ptr(vertexPosition))
	gl.VertexAttribPointer(uvLocation, 2, gl.FLOAT, false, 0, gl.Ptr(vertexUV))
	gl.BindTexture(gl.TEXTURE_2D, textureId)
	gl.DrawArrays(gl.TRIANGLE_FAN, 0, 4)
	gl.DeleteTextures(1, &textureId)

	w.win.SwapBuffers()
	glfw.PollEvents()
	if w.win.ShouldClose() {
		glog.Info("window close requested")
	}
}

// Refresh polls WASD + F/G/H/J into the joypad's 8-button layout.
// Implements nes.JoypadSource.
func (w *Window) Refresh(j *nes.Joypad) {
	var keys [8]bool
	keys[nes.ButtonRight] = w.win.GetKey(glfw.KeyD) == glfw.Press
	keys[nes.ButtonLeft] = w.win.GetKey(glfw.KeyA) == glfw.Press
	keys[nes.ButtonDown] = w.win.GetKey(glfw.KeyS) == glfw.Press
	keys[nes.ButtonUp] = w.win.GetKey(glfw.KeyW) == glfw.Press
	keys[nes.ButtonStart] = w.win.GetKey(glfw.KeyG) == glfw.Press
	keys[nes.ButtonSelect] = w.win.GetKey(glfw.KeyF) == glfw.Press
	keys[nes.ButtonB] = w.win.GetKey(glfw.KeyH) == glfw.Press
	keys[nes.ButtonA] = w.win.GetKey(glfw.KeyJ) == glfw.Press
	j.SetButtons(keys)
}
