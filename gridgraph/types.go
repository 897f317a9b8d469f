package gridgraph

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional (Moore) connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// String returns "orthogonal" or "moore".
func (c Connectivity) String() string {
	if c == Conn4 {
		return "orthogonal"
	}

	return "moore"
}

// Point addresses a cell by column X and row Y.
type Point struct {
	X, Y int
}

// Add returns p shifted by (dx, dy).
func (p Point) Add(dx, dy int) Point { return Point{X: p.X + dx, Y: p.Y + dy} }

// Neighbour is one neighbourhood slot of a cell together with its current state.
// Slots outside the grid are reported with Active == false.
type Neighbour struct {
	Point
	Active bool
}

// GridOptions contains tunable parameters for building and parsing grids.
type GridOptions struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// Active is the character Parse reads as an active cell and String writes back.
	Active rune
	// Inactive is the character for an empty cell.
	Inactive rune
}

// DefaultGridOptions returns GridOptions with Conn8, '@' active and '.' inactive.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		Conn:     Conn8,
		Active:   '@',
		Inactive: '.',
	}
}

// Grid is a dense occupancy map. Width and Height are fixed at construction;
// the cell states change through Set and Remove.
type Grid struct {
	Width, Height   int
	Conn            Connectivity
	cells           []bool // row-major, len == Width*Height
	neighborOffsets [][2]int
	active          rune
	inactive        rune
}
