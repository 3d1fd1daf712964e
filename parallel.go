package agglo

import "sync"

// updateProximityParallel recomputes the proximity of each cluster in others
// against the new cluster id, using multiple goroutines. Each worker handles
// a contiguous range of others; every target writes a distinct matrix cell,
// so no synchronization is needed beyond the final wait.
//
// The result is bitwise identical to the sequential update: each cell is
// produced by the same linkage call either way.
func (e *engine) updateProximityParallel(id int, others []int, numWorkers int) {
	if numWorkers <= 1 || len(others) <= 1 {
		for _, i := range others {
			e.prox.set(i, id, e.linkage(e.points, e.clusters, i, id))
		}
		return
	}

	var wg sync.WaitGroup

	perWorker := (len(others) + numWorkers - 1) / numWorkers

	for w := 0; w < numWorkers; w++ {
		start := w * perWorker
		end := start + perWorker
		if end > len(others) {
			end = len(others)
		}
		if start >= len(others) {
			break
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for _, i := range others[start:end] {
				e.prox.set(i, id, e.linkage(e.points, e.clusters, i, id))
			}
		}(start, end)
	}

	wg.Wait()
}
