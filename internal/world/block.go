package world

// BlockType identifies the material stored in one voxel cell.
type BlockType uint8

const (
	Air BlockType = iota
	Grass
	Dirt
	Stone

	// NumBlockTypes is a sentinel for iteration and validation.
	NumBlockTypes
)

// String returns the lowercase block name for logs and test output.
func (t BlockType) String() string {
	switch t {
	case Air:
		return "air"
	case Grass:
		return "grass"
	case Dirt:
		return "dirt"
	case Stone:
		return "stone"
	default:
		return "unknown"
	}
}

// Solid reports whether the block produces geometry. Air never does.
func (t BlockType) Solid() bool {
	return t != Air && t < NumBlockTypes
}
