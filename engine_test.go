package agglo

import (
	"math/rand"
	"testing"
)

// randomPoints generates n deterministic pseudo-random points in dims dimensions.
func randomPoints(n, dims int, seed int64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	points := make([][]float64, n)
	for i := range points {
		p := make([]float64, dims)
		for d := range p {
			p[d] = rng.Float64() * 100
		}
		points[i] = p
	}
	return points
}

func TestHistoryLengthInvariant(t *testing.T) {
	tests := []struct {
		n, k int
	}{
		{1, 1},
		{2, 1},
		{2, 2},
		{7, 1},
		{7, 3},
		{7, 7},
		{20, 5},
	}

	for _, tc := range tests {
		data := randomPoints(tc.n, 3, 42)
		result, err := Fit(data, Config{NumClusters: tc.k, Linkage: LinkageSingle})
		if err != nil {
			t.Fatalf("n=%d k=%d: unexpected error: %v", tc.n, tc.k, err)
		}
		if len(result.History) != tc.n-tc.k {
			t.Errorf("n=%d k=%d: history length = %d, expected %d",
				tc.n, tc.k, len(result.History), tc.n-tc.k)
		}
		if len(result.Clusters) != tc.k {
			t.Errorf("n=%d k=%d: %d clusters remain, expected %d",
				tc.n, tc.k, len(result.Clusters), tc.k)
		}
	}
}

func TestPartitionCompleteness(t *testing.T) {
	const n = 25
	data := randomPoints(n, 2, 7)

	for _, k := range []int{1, 3, 10, n} {
		for _, linkage := range []Linkage{LinkageSingle, LinkageComplete} {
			result, err := Fit(data, Config{NumClusters: k, Linkage: linkage})
			if err != nil {
				t.Fatalf("k=%d %s: unexpected error: %v", k, linkage, err)
			}

			seen := make([]bool, n)
			for _, cluster := range result.Clusters {
				for _, pt := range cluster {
					if pt < 0 || pt >= n {
						t.Fatalf("k=%d %s: point index %d out of range", k, linkage, pt)
					}
					if seen[pt] {
						t.Fatalf("k=%d %s: point %d appears in two clusters", k, linkage, pt)
					}
					seen[pt] = true
				}
			}
			for pt, ok := range seen {
				if !ok {
					t.Errorf("k=%d %s: point %d missing from the partition", k, linkage, pt)
				}
			}
		}
	}
}

func TestLabelsMatchClusters(t *testing.T) {
	data := randomPoints(12, 2, 3)
	result, err := Fit(data, Config{NumClusters: 4, Linkage: LinkageComplete})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for idx, cluster := range result.Clusters {
		for _, pt := range cluster {
			if result.Labels[pt] != idx {
				t.Errorf("point %d: label = %d, but it is a member of cluster %d",
					pt, result.Labels[pt], idx)
			}
		}
	}
}

func TestSingleLinkageMonotoneMergeDistances(t *testing.T) {
	// Classic agglomerative property: under single linkage the merge
	// distances are non-decreasing. Small tolerance for FP accumulation.
	const tol = 1e-9

	for seed := int64(0); seed < 5; seed++ {
		data := randomPoints(30, 3, seed)
		result, err := Fit(data, Config{NumClusters: 1, Linkage: LinkageSingle})
		if err != nil {
			t.Fatalf("seed %d: unexpected error: %v", seed, err)
		}

		prev := 0.0
		for m, row := range result.Dendrogram {
			if row[2] < prev-tol {
				t.Errorf("seed %d: merge %d distance %v below previous %v",
					seed, m, row[2], prev)
			}
			if row[2] > prev {
				prev = row[2]
			}
		}
	}
}

func TestDendrogramRows(t *testing.T) {
	const n = 10
	data := randomPoints(n, 2, 11)
	result, err := Fit(data, Config{NumClusters: 1, Linkage: LinkageSingle})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Dendrogram) != len(result.History) {
		t.Fatalf("dendrogram rows = %d, history = %d", len(result.Dendrogram), len(result.History))
	}
	for m, row := range result.Dendrogram {
		if int(row[0]) != result.History[m][0] || int(row[1]) != result.History[m][1] {
			t.Errorf("row %d IDs = (%v, %v), history = %v", m, row[0], row[1], result.History[m])
		}
		if row[2] < 0 {
			t.Errorf("row %d distance = %v, expected non-negative", m, row[2])
		}
		if row[3] < 2 || row[3] > n {
			t.Errorf("row %d size = %v, expected within [2, %d]", m, row[3], n)
		}
	}
	// The final merge produces the cluster containing every point.
	if last := result.Dendrogram[len(result.Dendrogram)-1]; last[3] != n {
		t.Errorf("final merge size = %v, expected %d", last[3], n)
	}
}

func TestMergedClusterIDsAreSequential(t *testing.T) {
	const n = 8
	data := randomPoints(n, 2, 5)
	result, err := Fit(data, Config{NumClusters: 1, Linkage: LinkageComplete})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Step m merges two previously created IDs into cluster n+m.
	for m, pair := range result.History {
		newID := n + m
		for _, id := range pair {
			if id < 0 || id >= newID {
				t.Errorf("step %d: merged ID %d, expected an ID below %d", m, id, newID)
			}
		}
	}
}
