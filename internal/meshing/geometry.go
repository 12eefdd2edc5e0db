package meshing

import "sync"

// Attribute is one interleaved vertex attribute
type Attribute struct {
	Name string
	Size int // float32 components
}

// Layout describes the interleaved attributes of a vertex buffer
type Layout []Attribute

// Stride returns the number of float32 per vertex
func (l Layout) Stride() int {
	n := 0
	for _, a := range l {
		n += a.Size
	}
	return n
}

// Offset returns the float32 offset of attribute i within a vertex
func (l Layout) Offset(i int) int {
	n := 0
	for _, a := range l[:i] {
		n += a.Size
	}
	return n
}

// Index returns the position of the named attribute, or -1
func (l Layout) Index(name string) int {
	for i, a := range l {
		if a.Name == name {
			return i
		}
	}
	return -1
}

var (
	// Position(3) + UV(4)
	LayoutTextured = Layout{{"position", 3}, {"uv", 4}}
	// Position(3) + Normal(3) + UV(4); uv.z carries ambient occlusion and uv.w light
	LayoutLit = Layout{{"position", 3}, {"normal", 3}, {"uv", 4}}
)

// Vertices per emitted primitive
const (
	QuadVertices = 6
	CubeVertices = 6 * QuadVertices
)

// Geometry is an exactly sized, interleaved triangle list for one draw call
type Geometry struct {
	Data     []float32
	Layout   Layout
	Vertices int

	scratch *[]float32
}

var scratchPool = sync.Pool{
	New: func() any {
		b := make([]float32, 0, 4096)
		return &b
	},
}

// NewGeometry reserves space for exactly vertices vertices of layout.
// Builders append into Data; Release must be called once the geometry has
// been drawn, including when it is empty.
func NewGeometry(layout Layout, vertices int) *Geometry {
	g := &Geometry{Layout: layout, Vertices: vertices}
	if vertices == 0 {
		return g
	}

	need := vertices * layout.Stride()
	buf := scratchPool.Get().(*[]float32)
	if cap(*buf) < need {
		*buf = make([]float32, 0, need)
	}
	g.scratch = buf
	g.Data = (*buf)[:0]
	return g
}

// Empty reports whether the geometry has nothing to draw
func (g *Geometry) Empty() bool {
	return g == nil || g.Vertices == 0
}

// Complete reports whether the builders filled exactly the reserved vertices
func (g *Geometry) Complete() bool {
	return len(g.Data) == g.Vertices*g.Layout.Stride()
}

// Release hands the host buffer back for reuse. The geometry must not be
// used afterwards. Releasing twice is harmless.
func (g *Geometry) Release() {
	if g == nil || g.scratch == nil {
		return
	}
	*g.scratch = g.Data[:0]
	scratchPool.Put(g.scratch)
	g.scratch = nil
	g.Data = nil
}
