package fluid

import (
	"runtime"
	"sync"
)

// parallelColumns calls fn for every column x in [start,end), handing each
// worker a contiguous run of columns. fn must only write cells of its own
// column. workers <= 0 means one worker per available CPU.
func parallelColumns(workers, start, end int, fn func(x int)) {
	total := end - start
	if total <= 0 {
		return
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, total)
	if workers == 1 {
		for x := start; x < end; x++ {
			fn(x)
		}
		return
	}

	chunk := (total + workers - 1) / workers
	var wg sync.WaitGroup
	for lo := start; lo < end; lo += chunk {
		lo := lo
		hi := min(lo+chunk, end)
		wg.Add(1)
		go func() {
			defer wg.Done()
			for x := lo; x < hi; x++ {
				fn(x)
			}
		}()
	}
	wg.Wait()
}
