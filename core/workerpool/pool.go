package workerpool

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"games-in-common/core/failure"

	"golang.org/x/sync/errgroup"
)

// DefaultWorkers is used when a non-positive worker count is given.
const DefaultWorkers = 6

// ErrAlreadyRunning is returned when a Pool is reused while a batch is in flight.
var ErrAlreadyRunning = errors.New("worker pool is already running a batch")

// Func is the work applied to each queued input.
type Func[In, Out any] func(ctx context.Context, in In) (Out, error)

// Result is the outcome for a single input. Exactly one of Output or Err is meaningful.
type Result[In, Out any] struct {
	Input  In
	Output Out
	Err    error
}

// Pool drains a queue with a bounded number of workers.
type Pool[In, Out any] struct {
	workers int
	fn      Func[In, Out]
	running atomic.Bool
}

// New creates a pool with the given worker count and work function.
func New[In, Out any](workers int, fn Func[In, Out]) *Pool[In, Out] {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	return &Pool[In, Out]{
		workers: workers,
		fn:      fn,
	}
}

// Workers returns the configured worker count.
func (p *Pool[In, Out]) Workers() int {
	return p.workers
}

// Run processes a fixed batch of items and blocks until all of them are done.
// An empty batch returns immediately without starting workers.
func (p *Pool[In, Out]) Run(ctx context.Context, items []In) (*Batch[In, Out], error) {
	if p.running.Load() {
		return nil, ErrAlreadyRunning
	}
	if len(items) == 0 {
		return &Batch[In, Out]{}, nil
	}

	queue := make(chan In, len(items))
	for _, item := range items {
		queue <- item
	}
	close(queue)

	return p.drain(ctx, queue, min(p.workers, len(items)))
}

// Drain processes items from queue until the producer closes it, then returns.
// The producer may keep sending while workers are draining.
func (p *Pool[In, Out]) Drain(ctx context.Context, queue <-chan In) (*Batch[In, Out], error) {
	return p.drain(ctx, queue, p.workers)
}

func (p *Pool[In, Out]) drain(ctx context.Context, queue <-chan In, workers int) (*Batch[In, Out], error) {
	if !p.running.CompareAndSwap(false, true) {
		return nil, ErrAlreadyRunning
	}
	defer p.running.Store(false)

	// One slot per worker, merged after the join.
	slots := make([][]Result[In, Out], workers)

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for in := range queue {
				slots[w] = append(slots[w], p.process(ctx, in))
			}
			return nil
		})
	}
	_ = g.Wait()

	total := 0
	for _, s := range slots {
		total += len(s)
	}
	results := make([]Result[In, Out], 0, total)
	for _, s := range slots {
		results = append(results, s...)
	}

	return &Batch[In, Out]{Results: results}, nil
}

func (p *Pool[In, Out]) process(ctx context.Context, in In) (res Result[In, Out]) {
	res.Input = in
	defer func() {
		if r := recover(); r != nil {
			res.Err = fmt.Errorf("panic while processing %v: %v", in, r)
		}
	}()

	if err := ctx.Err(); err != nil {
		res.Err = err
		return res
	}

	res.Output, res.Err = p.fn(ctx, in)
	return res
}

// Batch is the joined outcome of one Run or Drain call. Results are unordered.
type Batch[In, Out any] struct {
	Results []Result[In, Out]
}

// Len returns the number of processed items, successes and failures together.
func (b *Batch[In, Out]) Len() int {
	return len(b.Results)
}

// Succeeded returns the results whose work function returned no error.
func (b *Batch[In, Out]) Succeeded() []Result[In, Out] {
	var out []Result[In, Out]
	for _, r := range b.Results {
		if r.Err == nil {
			out = append(out, r)
		}
	}
	return out
}

// Outputs returns the outputs of successful items.
func (b *Batch[In, Out]) Outputs() []Out {
	var out []Out
	for _, r := range b.Results {
		if r.Err == nil {
			out = append(out, r.Output)
		}
	}
	return out
}

// Failures returns the results whose work function returned an error.
func (b *Batch[In, Out]) Failures() []Result[In, Out] {
	var out []Result[In, Out]
	for _, r := range b.Results {
		if r.Err != nil {
			out = append(out, r)
		}
	}
	return out
}

// Err folds all failures into a *failure.MultiFailure, or returns nil when there are none.
func (b *Batch[In, Out]) Err() error {
	var mf failure.MultiFailure
	for _, r := range b.Results {
		mf.Append(r.Err)
	}
	return mf.ErrOrNil()
}
