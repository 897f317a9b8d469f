package gridgraph

// ConnectedComponents finds all contiguous regions ("islands") of active
// cells according to g.Conn connectivity.
// Components are discovered in row-major order of their first cell; cells
// inside a component appear in BFS order.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (g *Grid) ConnectedComponents() [][]Point {
	seen := make([]bool, len(g.cells))
	var comps [][]Point

	for i0, on := range g.cells {
		if !on || seen[i0] {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		var comp []Point

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			ux, uy := g.Coordinate(u)
			comp = append(comp, Point{X: ux, Y: uy})
			for _, d := range g.neighborOffsets {
				vx, vy := ux+d[0], uy+d[1]
				if !g.Get(vx, vy) {
					continue
				}
				vi := g.index(vx, vy)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, comp)
	}

	return comps
}
