package gridgraph

import "fmt"

var (
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
)

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice indexed [y][x].
// It copies the input, so later changes to cells do not leak into the Grid.
// Returns ErrEmptyGrid if cells has no rows or no columns,
// ErrNonRectangular if any row length differs, ErrSameRunes if opts uses one
// character for both cell states.
// Complexity: O(W×H) time and memory.
func NewGrid(cells [][]bool, opts GridOptions) (*Grid, error) {
	opts, err := resolveRunes(opts)
	if err != nil {
		return nil, err
	}
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(cells), len(cells[0])
	for _, row := range cells {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	g := newEmpty(w, h, opts)
	for y := 0; y < h; y++ {
		copy(g.cells[y*w:(y+1)*w], cells[y])
	}

	return g, nil
}

// resolveRunes fills unset runes from DefaultGridOptions and rejects a pair
// that could not tell the two cell states apart.
func resolveRunes(opts GridOptions) (GridOptions, error) {
	def := DefaultGridOptions()
	if opts.Active == 0 {
		opts.Active = def.Active
	}
	if opts.Inactive == 0 {
		opts.Inactive = def.Inactive
	}
	if opts.Active == opts.Inactive {
		return opts, fmt.Errorf("%w: %q", ErrSameRunes, opts.Active)
	}

	return opts, nil
}

// newEmpty allocates a w×h grid with every cell inactive. opts must already
// be resolved.
func newEmpty(w, h int, opts GridOptions) *Grid {
	offsets := offsets4
	if opts.Conn == Conn8 {
		offsets = offsets8
	}

	return &Grid{
		Width:           w,
		Height:          h,
		Conn:            opts.Conn,
		cells:           make([]bool, w*h),
		neighborOffsets: offsets,
		active:          opts.Active,
		inactive:        opts.Inactive,
	}
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// NeighborOffsets returns the precomputed (dx,dy) offsets for g.Conn.
func (g *Grid) NeighborOffsets() [][2]int {
	return g.neighborOffsets
}

// MaxDegree is the largest possible neighbour count: 8 for Conn8, 4 for Conn4.
func (g *Grid) MaxDegree() int {
	return len(g.neighborOffsets)
}

// Get reports whether (x,y) is active. Out-of-range reads return false.
func (g *Grid) Get(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}

	return g.cells[g.index(x, y)]
}

// At is Get for a Point.
func (g *Grid) At(p Point) bool {
	return g.Get(p.X, p.Y)
}

// Set marks p active or inactive. Out-of-range writes are ignored.
func (g *Grid) Set(p Point, active bool) {
	if !g.InBounds(p.X, p.Y) {
		return
	}
	g.cells[g.index(p.X, p.Y)] = active
}

// Neighbours lists every neighbourhood slot of p, in offset order, with its state.
// Complexity: O(d).
func (g *Grid) Neighbours(p Point) []Neighbour {
	out := make([]Neighbour, len(g.neighborOffsets))
	for i, d := range g.neighborOffsets {
		q := p.Add(d[0], d[1])
		out[i] = Neighbour{Point: q, Active: g.At(q)}
	}

	return out
}

// ActiveNeighbourCount counts the active cells around p.
// Complexity: O(d).
func (g *Grid) ActiveNeighbourCount(p Point) int {
	n := 0
	for _, d := range g.neighborOffsets {
		if g.Get(p.X+d[0], p.Y+d[1]) {
			n++
		}
	}

	return n
}

// ActivePoints returns every active cell in row-major order.
// Complexity: O(W×H).
func (g *Grid) ActivePoints() []Point {
	var pts []Point
	for i, on := range g.cells {
		if on {
			x, y := g.Coordinate(i)
			pts = append(pts, Point{X: x, Y: y})
		}
	}

	return pts
}

// ActiveCount returns the number of active cells.
func (g *Grid) ActiveCount() int {
	n := 0
	for _, on := range g.cells {
		if on {
			n++
		}
	}

	return n
}

// Clone returns an independent copy of g.
func (g *Grid) Clone() *Grid {
	c := *g
	c.cells = make([]bool, len(g.cells))
	copy(c.cells, g.cells)

	return &c
}

// Nodes returns the active cells; together with ActiveNeighbours and Remove it
// lets a Grid be peeled as a graph.
func (g *Grid) Nodes() []Point {
	return g.ActivePoints()
}

// ActiveNeighbours returns only the active neighbours of p.
func (g *Grid) ActiveNeighbours(p Point) []Point {
	out := make([]Point, 0, len(g.neighborOffsets))
	for _, d := range g.neighborOffsets {
		q := p.Add(d[0], d[1])
		if g.At(q) {
			out = append(out, q)
		}
	}

	return out
}

// IsNil reports whether g is a nil *Grid, so a typed nil stored in an
// interface can still be rejected.
func (g *Grid) IsNil() bool {
	return g == nil
}

// Remove marks p inactive.
func (g *Grid) Remove(p Point) {
	g.Set(p, false)
}

// index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.Width, idx / g.Width
}
