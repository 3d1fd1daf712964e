package agglo

import "math"

// proximityMatrix stores pairwise cluster proximities in the upper triangle
// of a square table indexed by stable cluster ID. Only cells (i, j) with
// i < j are stored, in compact triangular layout.
//
// Cells start as NaN, an explicit "unset" marker. This keeps a genuine 0.0
// proximity (duplicate points) distinguishable from a cell that was never
// computed, so zero-distance pairs remain eligible for selection.
type proximityMatrix struct {
	ids   int
	cells []float64
}

// newProximityMatrix allocates a matrix for the given number of cluster IDs,
// with every cell unset. For n input points the caller sizes it to 2n-1 IDs:
// the n singletons plus the n-1 clusters that merging can create.
func newProximityMatrix(ids int) *proximityMatrix {
	cells := make([]float64, ids*(ids-1)/2)
	for i := range cells {
		cells[i] = math.NaN()
	}
	return &proximityMatrix{ids: ids, cells: cells}
}

// cell maps the unordered pair {i, j} to its triangular index.
// i and j must be distinct and within range.
func (m *proximityMatrix) cell(i, j int) int {
	if i > j {
		i, j = j, i
	}
	return j*(j-1)/2 + i
}

// at returns the proximity between clusters i and j, or NaN if unset.
func (m *proximityMatrix) at(i, j int) float64 {
	return m.cells[m.cell(i, j)]
}

// set records the proximity between clusters i and j.
func (m *proximityMatrix) set(i, j int, v float64) {
	m.cells[m.cell(i, j)] = v
}

// isSet reports whether the proximity between clusters i and j has been
// computed.
func (m *proximityMatrix) isSet(i, j int) bool {
	return !math.IsNaN(m.at(i, j))
}
