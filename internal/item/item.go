package item

// Type identifies an item kind. The HUD does not interpret it beyond looking
// up its face tiles in an AtlasLayout.
type Type int

// ItemStack represents a stack of items
type ItemStack struct {
	Type   Type
	Amount int
}

// NewItemStack creates a new item stack
func NewItemStack(t Type, amount int) ItemStack {
	return ItemStack{
		Type:   t,
		Amount: amount,
	}
}

// HasCount reports whether the stack shows a count label.
// A zero amount still occupies its slot but renders without digits.
func (s ItemStack) HasCount() bool {
	return s.Amount > 0
}

// Face indices into a FaceTiles entry
const (
	FaceLeft = iota
	FaceRight
	FaceTop
	FaceBottom
	FaceFront
	FaceBack
	FaceCount
)

// FaceTiles holds the item atlas tile for each cube face
type FaceTiles [FaceCount]int

// AtlasLayout maps an item type to the atlas tiles of its cube faces
type AtlasLayout map[Type]FaceTiles

// Faces returns the tiles for t. Unknown types render with tile 0 on every
// face; the atlas owner is expected to have validated them.
func (a AtlasLayout) Faces(t Type) FaceTiles {
	if f, ok := a[t]; ok {
		return f
	}
	return FaceTiles{}
}

// Uniform returns a FaceTiles using the same tile on all six faces
func Uniform(tile int) FaceTiles {
	var f FaceTiles
	for i := range f {
		f[i] = tile
	}
	return f
}
