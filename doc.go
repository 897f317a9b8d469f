// Package lvpeel peels bounded-degree graphs: it removes nodes in order of how
// many live neighbours they have, and lets every removal make its neighbours
// easier to remove.
//
// What is in the box:
//
//   - bucketqueue/ — bounded min-priority queue with O(1) PopMin and DecreaseKey
//   - heapqueue/   — keyed binary heap with the same contract and no bound
//   - gridgraph/   — occupancy grids (Moore or 4-neighbour), text parsing and islands
//   - peel/        — the cascading removal engine (Run, Peel, PeelInPlace, CountEligible)
//   - config/      — YAML run configuration
//   - cmd/lvpeel/  — command-line front end
//
// Quick ASCII example (threshold 3, Moore neighbourhood):
//
//	@@@      ...
//	@@@  ->  ...
//	@@@      ...
//
// The four corners start with 3 live neighbours and go first; that leaves each
// edge cell with 3, and once the edges are gone the centre has none.
//
//	go get github.com/katalvlaran/lvpeel
package lvpeel
