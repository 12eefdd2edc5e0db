package meshing

import (
	"math"
	"testing"

	"mini-hud/internal/item"

	"github.com/go-gl/mathgl/mgl32"
)

func vec3At(data []float32, vertex, stride, offset int) mgl32.Vec3 {
	i := vertex*stride + offset
	return mgl32.Vec3{data[i], data[i+1], data[i+2]}
}

func TestCubeVertexCount(t *testing.T) {
	verts := Cube(nil, item.Uniform(0), mgl32.Vec3{}, 1, mgl32.Ident4(), 0, 0.5)
	want := CubeVertices * LayoutLit.Stride()
	if len(verts) != want {
		t.Fatalf("cube: got %d floats, want %d", len(verts), want)
	}
}

func TestCubeWindingAndNormals(t *testing.T) {
	center := mgl32.Vec3{2.5, 1.5, 0}
	for _, rot := range []mgl32.Mat4{mgl32.Ident4(), Rotation(-20, 30)} {
		verts := Cube(nil, item.Uniform(3), center, 0.35, rot, 0, 0.5)
		stride := LayoutLit.Stride()
		for tri := 0; tri < CubeVertices/3; tri++ {
			a := vec3At(verts, tri*3, stride, 0)
			b := vec3At(verts, tri*3+1, stride, 0)
			c := vec3At(verts, tri*3+2, stride, 0)
			n := vec3At(verts, tri*3, stride, 3)

			face := b.Sub(a).Cross(c.Sub(a))
			if face.Dot(n) <= 0 {
				t.Fatalf("triangle %d is not CCW around its normal", tri)
			}
			if a.Sub(center).Dot(n) <= 0 {
				t.Fatalf("triangle %d normal points inwards", tri)
			}
		}
	}
}

func TestCubeExtent(t *testing.T) {
	verts := Cube(nil, item.Uniform(0), mgl32.Vec3{1, 1, 0}, 0.5, mgl32.Ident4(), 0, 0)
	stride := LayoutLit.Stride()
	for v := 0; v < CubeVertices; v++ {
		p := vec3At(verts, v, stride, 0)
		for i, c := range []float32{1, 1, 0} {
			if d := math.Abs(float64(p[i] - c)); math.Abs(d-0.5) > 1e-6 {
				t.Fatalf("vertex %d axis %d at distance %v from centre, want 0.5", v, i, d)
			}
		}
	}
}

func TestCubeUVsStayInTile(t *testing.T) {
	tile := 17 // second row, second column
	verts := Cube(nil, item.Uniform(tile), mgl32.Vec3{}, 1, mgl32.Ident4(), 0.25, 0.5)
	stride := LayoutLit.Stride()
	u0, v0 := float32(1)/16, float32(1)/16
	for v := 0; v < CubeVertices; v++ {
		i := v*stride + 6
		u, vv := verts[i], verts[i+1]
		if u <= u0 || u >= u0+tileSize || vv <= v0 || vv >= v0+tileSize {
			t.Fatalf("vertex %d uv (%v,%v) outside tile %d", v, u, vv, tile)
		}
		if verts[i+2] != 0.25 || verts[i+3] != 0.5 {
			t.Fatalf("vertex %d ao/light: got (%v,%v)", v, verts[i+2], verts[i+3])
		}
	}
}

func TestCharacter(t *testing.T) {
	verts := Character(nil, 1, 1, 0.15, 0.2, 'A', 0)
	stride := LayoutTextured.Stride()
	if len(verts) != QuadVertices*stride {
		t.Fatalf("character: got %d floats, want %d", len(verts), QuadVertices*stride)
	}
	// 'A' is glyph 33: column 1, row 2
	wantU, wantV := float32(1)/16, 1-2*glyphV-glyphV
	minU, minV := float32(2), float32(2)
	for v := 0; v < QuadVertices; v++ {
		minU = min(minU, verts[v*stride+3])
		minV = min(minV, verts[v*stride+4])
	}
	if minU != wantU || math.Abs(float64(minV-wantV)) > 1e-6 {
		t.Errorf("uv origin: got (%v,%v), want (%v,%v)", minU, minV, wantU, wantV)
	}
}

func TestCharacterOutOfRange(t *testing.T) {
	space := Character(nil, 0, 0, 1, 1, ' ', 0)
	bad := Character(nil, 0, 0, 1, 1, 200, 0)
	for i := range space {
		if space[i] != bad[i] {
			t.Fatalf("out-of-range byte should render as a space")
		}
	}
}

func TestQuadNormal(t *testing.T) {
	flat := Quad(nil, 0, 0, 1, 1, 0, 0, 0, 1, 1, false)
	lit := Quad(nil, 0, 0, 1, 1, 0, 0, 0, 1, 1, true)
	if len(flat) != QuadVertices*LayoutTextured.Stride() {
		t.Errorf("flat quad: got %d floats", len(flat))
	}
	if len(lit) != QuadVertices*LayoutLit.Stride() {
		t.Errorf("lit quad: got %d floats", len(lit))
	}
	stride := LayoutLit.Stride()
	for v := 0; v < QuadVertices; v++ {
		if n := vec3At(lit, v, stride, 3); n != (mgl32.Vec3{0, 1, 0}) {
			t.Fatalf("vertex %d normal: got %v, want +Y", v, n)
		}
	}
}

func TestGeometryLifecycle(t *testing.T) {
	empty := NewGeometry(LayoutLit, 0)
	if !empty.Empty() || empty.Data != nil {
		t.Errorf("zero-vertex geometry should not reserve storage")
	}
	empty.Release()
	empty.Release()

	g := NewGeometry(LayoutTextured, 6)
	if cap(g.Data) < 6*LayoutTextured.Stride() || len(g.Data) != 0 {
		t.Fatalf("reserved: len %d cap %d", len(g.Data), cap(g.Data))
	}
	g.Data = Quad(g.Data, 0, 0, 1, 1, 0, 0, 0, 1, 1, false)
	if !g.Complete() {
		t.Errorf("geometry should be complete after one quad")
	}
	g.Release()
	if g.Data != nil {
		t.Errorf("released geometry still references its buffer")
	}
	g.Release()
}

func TestLayout(t *testing.T) {
	if LayoutLit.Stride() != 10 || LayoutTextured.Stride() != 7 {
		t.Fatalf("strides: lit %d textured %d", LayoutLit.Stride(), LayoutTextured.Stride())
	}
	if LayoutLit.Offset(2) != 6 || LayoutTextured.Offset(1) != 3 {
		t.Errorf("uv offsets wrong")
	}
	if LayoutTextured.Index("normal") != -1 || LayoutLit.Index("normal") != 1 {
		t.Errorf("normal index wrong")
	}
}
