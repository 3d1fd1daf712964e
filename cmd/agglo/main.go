// Command agglo clusters points from a CSV file and prints the merge history.
//
// Usage:
//
//	agglo -input points.csv [-linkage single|complete] [-clusters k] [-ref history.csv]
//
// With -ref, the produced history is compared against the reference file and
// the verdict is printed.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/clustergo/agglo"
)

func main() {
	input := flag.String("input", "", "CSV file of points, one comma-delimited row per point")
	linkage := flag.String("linkage", "single", "linkage rule: single or complete")
	clusters := flag.Int("clusters", 1, "number of clusters to stop at")
	ref := flag.String("ref", "", "optional CSV reference history to compare against")
	flag.Parse()

	if *input == "" {
		flag.Usage()
		os.Exit(2)
	}

	points, err := agglo.LoadPoints(*input)
	if err != nil {
		fatal(err)
	}
	fmt.Printf("Loaded %d points from %s. Clustering with %s linkage...\n",
		len(points), *input, *linkage)

	result, err := agglo.Fit(points, agglo.Config{
		NumClusters: *clusters,
		Linkage:     agglo.Linkage(*linkage),
	})
	if err != nil {
		fatal(err)
	}

	for m, pair := range result.History {
		fmt.Printf("step %d: merge %d + %d (distance %g)\n",
			m+1, pair[0], pair[1], result.Dendrogram[m][2])
	}
	fmt.Printf("Done: %d merges, %d clusters remain.\n",
		len(result.History), len(result.Clusters))

	if *ref != "" {
		want, err := agglo.LoadHistory(*ref)
		if err != nil {
			fatal(err)
		}
		if agglo.CompareHistories(result.History, want) {
			fmt.Printf("History matches %s.\n", *ref)
		} else {
			fmt.Printf("History does NOT match %s.\n", *ref)
			os.Exit(1)
		}
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
