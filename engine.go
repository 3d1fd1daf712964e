package agglo

// engine holds the state of one fit: the input points, the cluster arena,
// the proximity matrix, and the merge history. All state is rebuilt from
// scratch at the start of every run.
type engine struct {
	cfg     Config
	linkage linkageFunc

	points   [][]float64
	clusters []*Cluster
	prox     *proximityMatrix
	active   int

	history    [][2]int
	dendrogram [][4]float64
}

func newEngine(points [][]float64, cfg Config, linkage linkageFunc) *engine {
	return &engine{cfg: cfg, linkage: linkage, points: points}
}

// run executes the full fit: initialize, merge until the target count is
// reached, then extract the result.
func (e *engine) run() (*Result, error) {
	e.init()

	// A target at or above n means nothing to merge; n < 2 likewise.
	for e.active > e.cfg.NumClusters {
		p, q, ok := e.findMerge()
		if !ok {
			return nil, ErrNoEligiblePair
		}
		dist := e.prox.at(p, q)
		id := e.merge(p, q)
		e.updateProximity(id)
		e.history = append(e.history, [2]int{p, q})
		e.dendrogram = append(e.dendrogram, [4]float64{
			float64(p), float64(q), dist, float64(e.clusters[id].Size()),
		})
	}

	return e.result(), nil
}

// init builds one singleton active cluster per input point and bootstraps
// the proximity matrix with raw point distances. For singletons either
// linkage degenerates to the point distance, so the configured linkage is
// not consulted here.
func (e *engine) init() {
	n := len(e.points)
	arena := 2*n - 1
	if arena < 1 {
		arena = 1
	}
	e.clusters = make([]*Cluster, 0, arena)
	for i := range e.points {
		c := newCluster()
		c.Append(i)
		e.clusters = append(e.clusters, c)
	}
	e.active = n
	e.history = make([][2]int, 0, n)
	e.dendrogram = make([][4]float64, 0, n)

	// 2n-1 IDs: every input point plus every cluster merging can create.
	e.prox = newProximityMatrix(arena)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			e.prox.set(i, j, euclideanDistance(e.points[i], e.points[j]))
		}
	}
}

// activeIDs returns the IDs of all active clusters, ascending.
func (e *engine) activeIDs() []int {
	ids := make([]int, 0, e.active)
	for i, c := range e.clusters {
		if c.Active() {
			ids = append(ids, i)
		}
	}
	return ids
}

// findMerge scans every pair of active clusters and returns the pair with
// the smallest computed proximity. The scan runs in ascending (row, column)
// ID order with a strict < comparison, so the first minimal pair wins ties.
// Unset cells are skipped. ok is false only if no pair has a computed
// proximity, which cannot happen with a correctly maintained matrix.
func (e *engine) findMerge() (p, q int, ok bool) {
	ids := e.activeIDs()
	best := 0.0
	for a := 0; a < len(ids); a++ {
		for b := a + 1; b < len(ids); b++ {
			i, j := ids[a], ids[b]
			if !e.prox.isSet(i, j) {
				continue
			}
			if v := e.prox.at(i, j); !ok || v < best {
				p, q, best = i, j, v
				ok = true
			}
		}
	}
	return p, q, ok
}

// merge creates a new cluster holding p's members followed by q's members,
// releases p and q, and returns the new cluster's ID.
func (e *engine) merge(p, q int) int {
	c := newCluster()
	c.Extend(e.clusters[p].Members())
	c.Extend(e.clusters[q].Members())
	e.clusters[p].Release()
	e.clusters[q].Release()
	e.clusters = append(e.clusters, c)
	e.active-- // two released, one created
	return len(e.clusters) - 1
}

// updateProximity computes the proximity between every other active cluster
// and the newly created cluster id, storing each at (other, id). The new
// cluster has the highest ID, so these writes stay in the upper triangle.
func (e *engine) updateProximity(id int) {
	others := make([]int, 0, e.active-1)
	for _, i := range e.activeIDs() {
		if i != id {
			others = append(others, i)
		}
	}
	e.updateProximityParallel(id, others, e.cfg.Workers)
}

// result extracts the final partition from the arena. Surviving clusters are
// numbered 0..k-1 in ascending ID order.
func (e *engine) result() *Result {
	labels := make([]int, len(e.points))
	var groups [][]int
	for _, id := range e.activeIDs() {
		members := e.clusters[id].Members()
		for _, pt := range members {
			labels[pt] = len(groups)
		}
		group := make([]int, len(members))
		copy(group, members)
		groups = append(groups, group)
	}
	return &Result{
		History:    e.history,
		Dendrogram: e.dendrogram,
		Labels:     labels,
		Clusters:   groups,
	}
}
