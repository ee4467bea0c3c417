package gemmbench

import "sync"

// PartitionRange returns the half-open range [start, end) of work units
// assigned to workerIndex when totalUnits units are split across numWorkers
// contiguous, non-overlapping chunks. Every chunk is ⌈totalUnits/numWorkers⌉
// units except possibly the last, which is clamped to totalUnits. Unioned
// over all workerIndex in [0, numWorkers) the ranges cover [0, totalUnits)
// exactly once. A worker whose computed start is at or past totalUnits
// receives an empty range.
func PartitionRange(totalUnits, numWorkers, workerIndex int) (start, end int) {
	if totalUnits <= 0 || numWorkers < 1 {
		return 0, 0
	}
	chunk := (totalUnits + numWorkers - 1) / numWorkers
	start = workerIndex * chunk
	if start > totalUnits {
		start = totalUnits
	}
	end = start + chunk
	if end > totalUnits {
		end = totalUnits
	}
	return start, end
}

// parallelRows runs fn over [0, total) split across workers contiguous
// ranges, one goroutine per non-empty range, and returns only after every
// goroutine has finished. The workers are created and joined per call; there
// is no pool reuse, no cancellation, and no partial-completion semantics.
func parallelRows(total, workers int, fn func(start, end int)) {
	if total <= 0 {
		return
	}
	if workers < 1 {
		workers = 1
	}
	if workers == 1 {
		fn(0, total)
		return
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start, end := PartitionRange(total, workers, w)
		if start >= end {
			break
		}
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}
