package main

import (
	"container/heap"
	"runtime"
	"sync"
	"time"

	"github.com/wrenfield/satcore"

	"github.com/wrenfield/satcore/internal/queue"
)

// maxRaceWorkers bounds how many configurations run at once; racing more
// than this many still completes, just with workers pulling a second
// configuration off the dispatch queue once their first finishes.
var maxRaceWorkers = runtime.NumCPU()

// raceResult is one configuration's outcome, timestamped so finishers can be
// ordered by arrival even though they are delivered over an unordered
// channel (spec §5: "ordering between racers is nondeterministic; the
// driver must record which configuration produced the reported result").
type raceResult struct {
	cfg      satcore.Configuration
	result   satcore.Result
	model    []bool
	arrivedAt time.Time
}

// arrivalQueue is a min-heap of raceResult ordered by arrival time, letting
// the racer report ties in a deterministic (first-pushed-first-popped)
// order instead of whichever happened to win the channel receive.
type arrivalQueue []raceResult

func (q arrivalQueue) Len() int            { return len(q) }
func (q arrivalQueue) Less(i, j int) bool  { return q[i].arrivedAt.Before(q[j].arrivedAt) }
func (q arrivalQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *arrivalQueue) Push(x interface{}) { *q = append(*q, x.(raceResult)) }
func (q *arrivalQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// race runs every configuration in cfgs against inst (spec §5: "the driver
// may spawn multiple solver configurations on independent instance
// copies") and reports whichever finishes first. Configurations are fed to
// a fixed-size worker pool through a shared dispatch queue rather than one
// goroutine per configuration, so a --solver list longer than the machine's
// parallelism doesn't oversubscribe it. Losing workers are not canceled —
// the core has no cooperative cancellation hook below the conflict loop
// boundary — so any worker still solving once a winner is reported is
// simply abandoned.
func race(inst *satcore.Instance, cfgs []satcore.Configuration, timeout time.Duration) (string, satcore.Result, []bool) {
	dispatch := queue.New[satcore.Configuration](len(cfgs))
	for _, cfg := range cfgs {
		dispatch.Push(cfg)
	}
	var dispatchMu sync.Mutex

	results := make(chan raceResult, len(cfgs))
	workers := len(cfgs)
	if workers > maxRaceWorkers {
		workers = maxRaceWorkers
	}
	for i := 0; i < workers; i++ {
		go func() {
			for {
				dispatchMu.Lock()
				if dispatch.IsEmpty() {
					dispatchMu.Unlock()
					return
				}
				cfg := dispatch.Pop()
				dispatchMu.Unlock()

				result, model, err := satcore.Solve(inst, cfg)
				if err != nil {
					continue
				}
				results <- raceResult{cfg: cfg, result: result, model: model, arrivedAt: time.Now()}
			}
		}()
	}

	var deadline <-chan time.Time
	if timeout > 0 {
		deadline = time.After(timeout)
	}

	pending := &arrivalQueue{}
	heap.Init(pending)

	select {
	case r := <-results:
		heap.Push(pending, r)
	case <-deadline:
		return "", satcore.Unknown, nil
	}
	// Drain any other configuration that finished in the same instant, so a
	// near-simultaneous tie is still broken by arrival time rather than by
	// channel-receive luck.
	for drained := true; drained; {
		select {
		case r := <-results:
			heap.Push(pending, r)
		default:
			drained = false
		}
	}

	best := heap.Pop(pending).(raceResult)
	return string(best.cfg), best.result, best.model
}
