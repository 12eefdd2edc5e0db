package meshing

import (
	"mini-hud/internal/item"

	"github.com/go-gl/mathgl/mgl32"
)

// Item atlas: 16x16 tiles
const (
	atlasTiles = 16
	tileSize   = float32(1.0) / atlasTiles
	// keep samples off tile borders
	tileInset = float32(1.0) / 2048
)

type cubeFace struct {
	normal mgl32.Vec3
	// corners of the unit cube seen from outside: top-left, bottom-left,
	// bottom-right, top-right
	corners [4]mgl32.Vec3
}

// cubeFaces is indexed by item.Face*
var cubeFaces = [item.FaceCount]cubeFace{
	item.FaceLeft: {
		normal:  mgl32.Vec3{-1, 0, 0},
		corners: [4]mgl32.Vec3{{-1, 1, -1}, {-1, -1, -1}, {-1, -1, 1}, {-1, 1, 1}},
	},
	item.FaceRight: {
		normal:  mgl32.Vec3{1, 0, 0},
		corners: [4]mgl32.Vec3{{1, 1, 1}, {1, -1, 1}, {1, -1, -1}, {1, 1, -1}},
	},
	item.FaceTop: {
		normal:  mgl32.Vec3{0, 1, 0},
		corners: [4]mgl32.Vec3{{-1, 1, -1}, {-1, 1, 1}, {1, 1, 1}, {1, 1, -1}},
	},
	item.FaceBottom: {
		normal:  mgl32.Vec3{0, -1, 0},
		corners: [4]mgl32.Vec3{{-1, -1, 1}, {-1, -1, -1}, {1, -1, -1}, {1, -1, 1}},
	},
	item.FaceFront: {
		normal:  mgl32.Vec3{0, 0, -1},
		corners: [4]mgl32.Vec3{{1, 1, -1}, {1, -1, -1}, {-1, -1, -1}, {-1, 1, -1}},
	},
	item.FaceBack: {
		normal:  mgl32.Vec3{0, 0, 1},
		corners: [4]mgl32.Vec3{{-1, 1, 1}, {-1, -1, 1}, {1, -1, 1}, {1, 1, 1}},
	},
}

// uv corner per quad corner, matching cubeFace.corners order
var cornerUVs = [4][2]float32{{0, 1}, {0, 0}, {1, 0}, {1, 1}}

// two CCW triangles per quad
var quadIndices = [QuadVertices]int{0, 1, 2, 0, 2, 3}

// Cube appends the 36 LayoutLit vertices of a cube centred at center with
// half-extent size. rotation turns the cube around its centre; pass
// mgl32.Ident4() for an axis-aligned cube. ao and light land in uv.z and uv.w.
func Cube(dst []float32, faces item.FaceTiles, center mgl32.Vec3, size float32, rotation mgl32.Mat4, ao, light float32) []float32 {
	for i, f := range cubeFaces {
		tile := faces[i]
		du := float32(tile%atlasTiles) * tileSize
		dv := float32(tile/atlasTiles) * tileSize

		n := rotation.Mul4x1(f.normal.Vec4(0)).Vec3()

		for _, idx := range quadIndices {
			p := rotation.Mul4x1(f.corners[idx].Mul(size).Vec4(1)).Vec3().Add(center)
			uv := cornerUVs[idx]
			dst = append(dst,
				p.X(), p.Y(), p.Z(),
				n.X(), n.Y(), n.Z(),
				du+insetUV(uv[0]), dv+insetUV(uv[1]),
				ao, light,
			)
		}
	}
	return dst
}

func insetUV(c float32) float32 {
	if c > 0 {
		return tileSize - tileInset
	}
	return tileInset
}

// Rotation builds the pitch (around X) then yaw (around Y) rotation, in degrees
func Rotation(pitch, yaw float32) mgl32.Mat4 {
	return mgl32.HomogRotate3DX(mgl32.DegToRad(pitch)).Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(yaw)))
}
