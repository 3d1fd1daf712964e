package agglo

import (
	"errors"
	"fmt"
	"runtime"
)

// Linkage selects the rule defining proximity between two clusters.
type Linkage string

const (
	// LinkageSingle uses the minimum pairwise point distance between clusters.
	LinkageSingle Linkage = "single"

	// LinkageComplete uses the maximum pairwise point distance between clusters.
	LinkageComplete Linkage = "complete"
)

var (
	// ErrUnknownLinkage is returned by New for a linkage name outside the
	// supported set.
	ErrUnknownLinkage = errors.New("agglo: unknown linkage")

	// ErrInvalidClusterCount is returned by New when NumClusters < 1.
	ErrInvalidClusterCount = errors.New("agglo: NumClusters must be >= 1")

	// ErrNoEligiblePair indicates the nearest-pair search found no computed
	// proximity between active clusters while more merges were still needed.
	// It signals a bug in matrix maintenance, not a usage error.
	ErrNoEligiblePair = errors.New("agglo: no eligible pair in proximity matrix")
)

// Config controls agglomerative clustering behavior.
// Start with [DefaultConfig] and override the fields you need.
type Config struct {
	// NumClusters is the number of clusters to stop at. Merging continues
	// until exactly this many active clusters remain. If NumClusters >= len(data)
	// no merges happen and the history is empty. Must be >= 1. Default: 1.
	NumClusters int

	// Linkage selects how cluster proximity is computed: LinkageSingle
	// (minimum pairwise distance) or LinkageComplete (maximum pairwise
	// distance). Default: LinkageSingle.
	Linkage Linkage

	// Workers controls the number of goroutines used to recompute proximities
	// against a newly merged cluster. The merge loop itself is sequential;
	// only the per-merge update step parallelizes. 0 means runtime.NumCPU().
	// Default: 0 (auto).
	Workers int
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		NumClusters: 1,
		Linkage:     LinkageSingle,
	}
}

// applyDefaults fills in zero-valued config fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.Linkage == "" {
		cfg.Linkage = LinkageSingle
	}
	if cfg.NumClusters == 0 {
		cfg.NumClusters = 1
	}
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}
}

// validateConfig checks that cfg fields are valid and returns a descriptive
// error if not.
func validateConfig(cfg *Config) error {
	if cfg.NumClusters < 1 {
		return fmt.Errorf("%w, got %d", ErrInvalidClusterCount, cfg.NumClusters)
	}
	if linkageFuncFor(cfg.Linkage) == nil {
		return fmt.Errorf("%w %q (supported: %q, %q)",
			ErrUnknownLinkage, cfg.Linkage, LinkageSingle, LinkageComplete)
	}
	return nil
}

// Result contains the output of one fit.
type Result struct {
	// History lists the cluster ID pairs merged, in chronological order.
	// History[m] = [p, q] means clusters p and q were merged at step m into
	// a new cluster with ID n+m (for n input points).
	History [][2]int

	// Dendrogram has one row per merge in scipy linkage format:
	// [p, q, distance, size], where distance is the proximity at which the
	// merge occurred and size is the member count of the new cluster.
	Dendrogram [][4]float64

	// Labels assigns each point the index of its final cluster, with clusters
	// numbered 0..k-1 in ascending cluster-ID order.
	Labels []int

	// Clusters holds the member point indices of each final cluster, in
	// ascending cluster-ID order. Together they partition 0..n-1.
	Clusters [][]int
}

// Clusterer runs agglomerative clustering with a fixed configuration.
// A single Clusterer may be reused: each Fit call re-initializes all state.
type Clusterer struct {
	cfg     Config
	linkage linkageFunc
}

// New validates cfg and returns a Clusterer. Configuration problems (unknown
// linkage, non-positive NumClusters) are reported here, never during Fit.
func New(cfg Config) (*Clusterer, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	return &Clusterer{
		cfg:     cfg,
		linkage: linkageFuncFor(cfg.Linkage),
	}, nil
}

// Fit clusters the given data. Each element is a point (float64 slice); all
// points must have the same dimensionality. The run is deterministic: ties in
// the nearest-pair search are broken by ascending (row, column) cluster ID.
//
// Fit either completes the full merge sequence or returns an error with no
// partial history.
func (c *Clusterer) Fit(data [][]float64) (*Result, error) {
	e := newEngine(data, c.cfg, c.linkage)
	return e.run()
}

// Fit is a convenience wrapper: validate cfg and run a single fit.
func Fit(data [][]float64, cfg Config) (*Result, error) {
	c, err := New(cfg)
	if err != nil {
		return nil, err
	}
	return c.Fit(data)
}
