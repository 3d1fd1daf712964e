package agglo

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// linkageFunc computes a scalar proximity between the active clusters p and q
// given the full point set and cluster arena. Both clusters must be non-empty.
type linkageFunc func(points [][]float64, clusters []*Cluster, p, q int) float64

// euclideanDistance returns the Euclidean (L2) distance between two points.
func euclideanDistance(a, b []float64) float64 {
	return floats.Distance(a, b, 2)
}

// singleLinkage returns the minimum Euclidean distance over all pairs of
// points drawn from clusters p and q.
func singleLinkage(points [][]float64, clusters []*Cluster, p, q int) float64 {
	best := math.Inf(1)
	for _, i := range clusters[p].Members() {
		for _, j := range clusters[q].Members() {
			if d := euclideanDistance(points[i], points[j]); d < best {
				best = d
			}
		}
	}
	return best
}

// completeLinkage returns the maximum Euclidean distance over all pairs of
// points drawn from clusters p and q.
func completeLinkage(points [][]float64, clusters []*Cluster, p, q int) float64 {
	best := math.Inf(-1)
	for _, i := range clusters[p].Members() {
		for _, j := range clusters[q].Members() {
			if d := euclideanDistance(points[i], points[j]); d > best {
				best = d
			}
		}
	}
	return best
}

// linkageFuncFor maps a Linkage name to its implementation. Returns nil for
// unknown names; New turns that into ErrUnknownLinkage.
func linkageFuncFor(l Linkage) linkageFunc {
	switch l {
	case LinkageSingle:
		return singleLinkage
	case LinkageComplete:
		return completeLinkage
	default:
		return nil
	}
}
