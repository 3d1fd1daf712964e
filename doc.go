// Package agglo implements hierarchical agglomerative clustering.
//
// Starting from one singleton cluster per input point, the algorithm
// repeatedly merges the two closest clusters, as measured by the configured
// linkage, until the target number of clusters remains, recording the order
// in which cluster IDs were merged.
//
// Basic usage:
//
//	cfg := agglo.DefaultConfig()
//	cfg.NumClusters = 3
//	cfg.Linkage = agglo.LinkageComplete
//	result, err := agglo.Fit(data, cfg)
//	// result.History[m] is the pair of cluster IDs merged at step m
//	// result.Labels[i] is the final cluster index for point i
//	// result.Dendrogram[m] is [p, q, distance, size] for step m
//
// # Cluster identifiers
//
// Cluster IDs are stable: points 0..n-1 are the initial singleton clusters,
// and each merge creates a new cluster with the next unused ID, up to 2n-2.
// Merged clusters are deactivated but never removed, so every ID appearing
// in the history refers to a well-defined set of points.
//
// # Linkage
//
// Two linkage rules are supported: LinkageSingle (minimum pairwise Euclidean
// distance between members) and LinkageComplete (maximum pairwise distance).
// An unknown linkage name is rejected by New, before any fitting happens.
package agglo
