// Package gridgraph treats a 2D occupancy grid as a bounded-degree graph:
// every active cell is a node, and its neighbours are the active cells around it.
//
// What:
//
//   - Grid stores a rectangular, row-major []bool of active/inactive cells.
//   - Conn8 (Moore, the default) or Conn4 (von Neumann) neighbourhoods.
//   - Reads outside the grid default to "inactive"; writes outside are ignored.
//   - Parse/String convert to and from the '@' (active) / '.' (inactive) text form.
//   - ConnectedComponents finds the surviving "islands" of active cells.
//   - Nodes / ActiveNeighbours / Remove let a Grid drive the peel engine directly.
//
// Why:
//
//   - Cascading-removal puzzles, erosion and k-core style analysis on raster maps.
//   - Degree is bounded by MaxDegree() (8 or 4), which is what lets a bucket
//     queue order cells by live-neighbour count.
//
// Complexity:
//
//   - Get / At / Set:        O(1).
//   - Neighbours:            O(d), d = 4 or 8.
//   - ActivePoints / Clone:  O(W×H).
//   - ConnectedComponents:   O(W×H×d), Memory: O(W×H).
//   - Parse / String:        O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid:      input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadCell:        Parse met a character that is neither active nor inactive.
//   - ErrSameRunes:      GridOptions uses one character for both cell states.
//
// Grid is not safe for concurrent mutation.
package gridgraph
