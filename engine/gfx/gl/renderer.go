package glbackend

import (
	"fmt"
	"image"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/hubastard/thicket/engine/colors"
	"github.com/hubastard/thicket/engine/core"
	"github.com/hubastard/thicket/engine/profiler"
	"github.com/hubastard/thicket/engine/text"
	"github.com/hubastard/thicket/engine/ui"
)

// labels not drawn for this many frames release their texture
const labelIdleFrames = 120

type labelKey struct {
	text  string
	color colors.Color
}

type labelTexture struct {
	tex    uint32
	w, h   float32
	usedAt uint64
}

// RendererGL replays UI draw lists with an OpenGL 3.3 core context. All
// geometry goes through one textured-quad program; labels are rasterized
// once per (text, color) and cached as textures.
type RendererGL struct {
	win  core.Window
	face *text.Face

	program uint32
	vao     uint32
	vbo     uint32
	uProj   int32
	uTex    int32
	white   uint32

	width, height int
	frame         uint64
	batch         batcher
	labels        map[labelKey]*labelTexture
}

var _ core.Renderer = (*RendererGL)(nil)

func NewRendererGL(win core.Window, _ core.Config, face *text.Face) (*RendererGL, error) {
	r := &RendererGL{win: win, face: face, labels: make(map[labelKey]*labelTexture, 64)}
	if err := r.Init(); err != nil {
		r.Shutdown()
		return nil, err
	}
	return r, nil
}

func (r *RendererGL) Init() error {
	var err error
	r.program, err = makeProgram(vertexSource, fragmentSource)
	if err != nil {
		return err
	}
	r.uProj = gl.GetUniformLocation(r.program, gl.Str("uProj\x00"))
	r.uTex = gl.GetUniformLocation(r.program, gl.Str("uTex\x00"))

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	// layout(location = 0) in vec2 aPos;
	// layout(location = 1) in vec2 aUV;
	// layout(location = 2) in vec4 aColor;
	const stride = vertexFloats * 4 // bytes
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(0)))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(2*4)))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(4*4)))

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	white := image.NewRGBA(image.Rect(0, 0, 1, 1))
	copy(white.Pix, []uint8{255, 255, 255, 255})
	r.white = r.CreateTexture(white)
	r.batch = batcher{white: r.white, labels: r}

	core.Logger().Info("GL renderer",
		"vendor", gl.GoStr(gl.GetString(gl.VENDOR)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)),
	)
	return nil
}

func (r *RendererGL) Shutdown() {
	for k, l := range r.labels {
		gl.DeleteTextures(1, &l.tex)
		delete(r.labels, k)
	}
	if r.white != 0 {
		gl.DeleteTextures(1, &r.white)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

func (r *RendererGL) Resize(w, h int) {
	r.width, r.height = w, h
	gl.Viewport(0, 0, int32(w), int32(h))
}

func (r *RendererGL) Clear(rf, gf, bf, af float32) {
	gl.ClearColor(rf, gf, bf, af)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// CreateTexture uploads a tightly packed RGBA image and returns its handle
// for ui.Command texture draws.
func (r *RendererGL) CreateTexture(img *image.RGBA) uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	b := img.Bounds()
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(b.Dx()), int32(b.Dy()), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex
}

func (r *RendererGL) DeleteTexture(tex uint32) {
	gl.DeleteTextures(1, &tex)
}

// Label returns the cached texture for a label, rasterizing it on first use.
func (r *RendererGL) Label(s string, c colors.Color, size float32) (uint32, float32, float32) {
	key := labelKey{s, c}
	l, ok := r.labels[key]
	if !ok {
		img := r.face.Rasterize(s, c)
		b := img.Bounds()
		l = &labelTexture{tex: r.CreateTexture(img), w: float32(b.Dx()), h: float32(b.Dy())}
		r.labels[key] = l
	}
	l.usedAt = r.frame
	scale := float32(1)
	if size > 0 && r.face.SizePx > 0 {
		scale = size / r.face.SizePx
	}
	return l.tex, l.w * scale, l.h * scale
}

// Render draws the lists bottom to top in one vertex upload.
func (r *RendererGL) Render(lists []*ui.DrawList) {
	defer profiler.Start("gl.render")()
	r.frame++
	r.batch.build(lists)
	if len(r.batch.batches) > 0 {
		r.draw()
	}
	r.evictLabels()
}

func (r *RendererGL) draw() {
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.DEPTH_TEST)

	gl.UseProgram(r.program)
	proj := ortho(float32(r.width), float32(r.height))
	gl.UniformMatrix4fv(r.uProj, 1, false, &proj[0])
	gl.Uniform1i(r.uTex, 0)
	gl.ActiveTexture(gl.TEXTURE0)

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(r.batch.verts)*4, gl.Ptr(r.batch.verts), gl.STREAM_DRAW)

	for _, b := range r.batch.batches {
		if b.clipped {
			gl.Enable(gl.SCISSOR_TEST)
			x, y, w, h := scissorBox(b.clip, r.height)
			gl.Scissor(x, y, w, h)
		} else {
			gl.Disable(gl.SCISSOR_TEST)
		}
		gl.BindTexture(gl.TEXTURE_2D, b.texture)
		gl.DrawArrays(gl.TRIANGLES, b.first, b.count)
	}

	gl.Disable(gl.SCISSOR_TEST)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

func (r *RendererGL) evictLabels() {
	for k, l := range r.labels {
		if r.frame-l.usedAt > labelIdleFrames {
			gl.DeleteTextures(1, &l.tex)
			delete(r.labels, k)
		}
	}
}

// scissorBox converts a top-left origin rect into GL's bottom-left scissor box.
func scissorBox(c ui.Rect, fbHeight int) (x, y, w, h int32) {
	w = int32(max(c.W, 0))
	h = int32(max(c.H, 0))
	return int32(c.X), int32(fbHeight) - int32(c.Y) - h, w, h
}

// ortho maps pixel coordinates with a top-left origin to clip space.
func ortho(w, h float32) [16]float32 {
	if w <= 0 || h <= 0 {
		w, h = 1, 1
	}
	return [16]float32{
		2 / w, 0, 0, 0,
		0, -2 / h, 0, 0,
		0, 0, -1, 0,
		-1, 1, 0, 1,
	}
}

// --- Shader utilities ---

const vertexSource = `
#version 330 core
layout(location=0) in vec2 aPos;
layout(location=1) in vec2 aUV;
layout(location=2) in vec4 aColor;
uniform mat4 uProj;
out vec2 vUV;
out vec4 vColor;
void main() {
    vUV = aUV;
    vColor = aColor;
    gl_Position = uProj * vec4(aPos, 0.0, 1.0);
}
` + "\x00"

const fragmentSource = `
#version 330 core
in vec2 vUV;
in vec4 vColor;
uniform sampler2D uTex;
out vec4 FragColor;
void main() {
    FragColor = texture(uTex, vUV) * vColor;
}
` + "\x00"

func makeShader(src string, shaderType uint32) (uint32, error) {
	sh := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	defer free()
	gl.ShaderSource(sh, 1, csrc, nil)
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen))
		gl.GetShaderInfoLog(sh, logLen, nil, gl.Str(log))
		gl.DeleteShader(sh)
		return 0, fmt.Errorf("shader compile error: %s", log)
	}
	return sh, nil
}

func makeProgram(vsSrc, fsSrc string) (uint32, error) {
	vs, err := makeShader(vsSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := makeShader(fsSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}
	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		gl.DeleteProgram(prog)
		return 0, fmt.Errorf("program link error: %s", log)
	}
	return prog, nil
}
