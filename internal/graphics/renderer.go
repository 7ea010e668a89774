package graphics

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"voxelview/internal/mesher"
)

// VertexFloats is the number of float32 per vertex: position xyz + uv.
const VertexFloats = 5

const blockVertexShader = `#version 410 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec2 aUV;

uniform mat4 uView;
uniform mat4 uProj;

out vec2 vUV;

void main() {
	vUV = aUV;
	gl_Position = uProj * uView * vec4(aPos, 1.0);
}
`

const blockFragmentShader = `#version 410 core
in vec2 vUV;

uniform sampler2D uAtlas;

out vec4 fragColor;

void main() {
	fragColor = texture(uAtlas, vUV);
}
`

type cubeVertex struct {
	offset [3]float32
	corner int // index into the instance UV quad
}

// cubeFaces lists each face as quad corners in bottom-left, bottom-right,
// top-right, top-left order, offsets relative to the block center. The UV
// quad is ordered top-left first, so corners map to UV indices 3,2,1,0.
var cubeFaces = [6][4]cubeVertex{
	{ // north (+z)
		{[3]float32{-0.5, -0.5, 0.5}, 3},
		{[3]float32{0.5, -0.5, 0.5}, 2},
		{[3]float32{0.5, 0.5, 0.5}, 1},
		{[3]float32{-0.5, 0.5, 0.5}, 0},
	},
	{ // south (-z)
		{[3]float32{0.5, -0.5, -0.5}, 3},
		{[3]float32{-0.5, -0.5, -0.5}, 2},
		{[3]float32{-0.5, 0.5, -0.5}, 1},
		{[3]float32{0.5, 0.5, -0.5}, 0},
	},
	{ // west (-x)
		{[3]float32{-0.5, -0.5, -0.5}, 3},
		{[3]float32{-0.5, -0.5, 0.5}, 2},
		{[3]float32{-0.5, 0.5, 0.5}, 1},
		{[3]float32{-0.5, 0.5, -0.5}, 0},
	},
	{ // east (+x)
		{[3]float32{0.5, -0.5, 0.5}, 3},
		{[3]float32{0.5, -0.5, -0.5}, 2},
		{[3]float32{0.5, 0.5, -0.5}, 1},
		{[3]float32{0.5, 0.5, 0.5}, 0},
	},
	{ // top (+y)
		{[3]float32{-0.5, 0.5, 0.5}, 3},
		{[3]float32{0.5, 0.5, 0.5}, 2},
		{[3]float32{0.5, 0.5, -0.5}, 1},
		{[3]float32{-0.5, 0.5, -0.5}, 0},
	},
	{ // bottom (-y)
		{[3]float32{-0.5, -0.5, -0.5}, 3},
		{[3]float32{0.5, -0.5, -0.5}, 2},
		{[3]float32{0.5, -0.5, 0.5}, 1},
		{[3]float32{-0.5, -0.5, 0.5}, 0},
	},
}

// Two triangles per quad.
var quadOrder = [6]int{0, 1, 2, 2, 3, 0}

// BuildVertexData flattens cube instances into an interleaved pos+uv
// triangle list, 36 vertices per cube. Per-face UVs come straight from the
// instance quad; nothing is patched after construction.
func BuildVertexData(instances []mesher.CubeInstance) []float32 {
	data := make([]float32, 0, len(instances)*36*VertexFloats)
	for _, inst := range instances {
		for _, face := range cubeFaces {
			for _, idx := range quadOrder {
				v := face[idx]
				uv := inst.UVs[v.corner]
				data = append(data,
					inst.Position.X()+v.offset[0],
					inst.Position.Y()+v.offset[1],
					inst.Position.Z()+v.offset[2],
					uv.X(),
					uv.Y(),
				)
			}
		}
	}
	return data
}

// Renderer draws a static cube list with one shader, one VBO and one
// atlas texture.
type Renderer struct {
	program     uint32
	vao         uint32
	vbo         uint32
	texture     uint32
	vertexCount int32
	viewLoc     int32
	projLoc     int32
}

// NewRenderer compiles the block shader and prepares the vertex stream.
// The atlas texture must already be uploaded.
func NewRenderer(texture uint32) (*Renderer, error) {
	program, err := CompileProgram(blockVertexShader, blockFragmentShader)
	if err != nil {
		return nil, err
	}

	r := &Renderer{
		program: program,
		texture: texture,
		viewLoc: gl.GetUniformLocation(program, gl.Str("uView\x00")),
		projLoc: gl.GetUniformLocation(program, gl.Str("uProj\x00")),
	}

	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.vbo)

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	stride := int32(VertexFloats * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, gl.PtrOffset(3*4))

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)

	return r, nil
}

// Submit uploads the cube list. The mesh is static; Submit runs once at
// startup and again only if the world is ever rebuilt.
func (r *Renderer) Submit(instances []mesher.CubeInstance) error {
	data := BuildVertexData(instances)

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	if len(data) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
	} else {
		gl.BufferData(gl.ARRAY_BUFFER, 0, nil, gl.STATIC_DRAW)
	}
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	r.vertexCount = int32(len(data) / VertexFloats)
	return nil
}

// Render clears the frame and draws the submitted cubes with the given
// camera matrices.
func (r *Renderer) Render(view, proj mgl32.Mat4) {
	gl.ClearColor(0.53, 0.71, 0.92, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	if r.vertexCount == 0 {
		return
	}

	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.viewLoc, 1, false, &view[0])
	gl.UniformMatrix4fv(r.projLoc, 1, false, &proj[0])

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.texture)

	gl.BindVertexArray(r.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, r.vertexCount)
	gl.BindVertexArray(0)
}

// SetViewport resizes the GL viewport.
func (r *Renderer) SetViewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Dispose releases GL resources.
func (r *Renderer) Dispose() {
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
