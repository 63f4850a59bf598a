// Package search implements the vanity-address search engine: a
// coordinator owning a fixed pool of worker goroutines that draw
// candidates from a keypair provider and match them against a compiled
// pattern, with throttled progress reporting, cooperative cancellation
// and at-most-one concurrent search.
package search

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/vanityforge/vanityforge/internal/logger"
	"github.com/vanityforge/vanityforge/pkg/keypair"
	"github.com/vanityforge/vanityforge/pkg/pattern"
	"github.com/vanityforge/vanityforge/pkg/persist"
)

// DefaultInterval is the progress emission cadence.
const DefaultInterval = 250 * time.Millisecond

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithWorkers sets the worker pool size. Values <= 0 keep the default
// (number of CPU cores).
func WithWorkers(n int) Option {
	return func(c *Coordinator) {
		if n > 0 {
			c.workers = n
		}
	}
}

// WithInterval sets the progress emission cadence.
func WithInterval(d time.Duration) Option {
	return func(c *Coordinator) {
		if d > 0 {
			c.interval = d
		}
	}
}

// WithLogger sets the logger the coordinator reports lifecycle events to.
func WithLogger(l *logger.Logger) Option {
	return func(c *Coordinator) {
		if l != nil {
			c.log = l
		}
	}
}

// Coordinator owns the worker pool and the per-search state. It enforces
// at most one active search via an atomic running flag; Start and Cancel
// are safe to call from any goroutine.
type Coordinator struct {
	provider keypair.Provider
	workers  int
	interval time.Duration
	log      *logger.Logger

	running atomic.Bool

	mu        sync.Mutex
	listeners []Listener
	cur       *state
}

// state is the mutable state of one search. Workers only touch the
// atomics; the terminal result is installed exactly once through
// finishOnce before done is closed.
type state struct {
	req       Request
	pat       *pattern.Pattern
	startedAt time.Time

	attempts atomic.Uint64
	relaxed  atomic.Uint64
	cancel   atomic.Bool

	finishOnce sync.Once
	result     Result
	done       chan struct{} // closed on the terminal transition; stops workers
	finished   chan struct{} // closed once the result is fully populated
}

// finish performs the single terminal transition. Only the first caller
// installs the outcome; everyone else observes done and exits.
func (st *state) finish(r Result) {
	st.finishOnce.Do(func() {
		st.result = r
		close(st.done)
	})
}

// snapshot reads the counters without blocking workers.
func (st *state) snapshot() Snapshot {
	attempts := st.attempts.Load()
	elapsed := time.Since(st.startedAt)
	var rate float64
	if secs := elapsed.Seconds(); secs > 0 {
		rate = float64(attempts) / secs
	}
	return Snapshot{
		Attempts:       attempts,
		RelaxedMatches: st.relaxed.Load(),
		Duration:       elapsed,
		Rate:           rate,
	}
}

// New creates a coordinator drawing candidates from provider.
func New(provider keypair.Provider, opts ...Option) *Coordinator {
	c := &Coordinator{
		provider: provider,
		workers:  runtime.NumCPU(),
		interval: DefaultInterval,
		log:      logger.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Subscribe registers a progress listener. Listeners registered while a
// search runs receive the remaining snapshots.
func (c *Coordinator) Subscribe(fn Listener) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, fn)
}

// Running reports whether a search is active.
func (c *Coordinator) Running() bool { return c.running.Load() }

// Start accepts the request and spawns the worker pool. It rejects
// synchronously with ErrAlreadyRunning when a search is active and with
// *pattern.InvalidPatternError before any worker starts.
func (c *Coordinator) Start(req Request) error {
	_, err := c.start(req)
	return err
}

// Run is the blocking form: Start plus waiting for the terminal result.
func (c *Coordinator) Run(req Request) (Result, error) {
	st, err := c.start(req)
	if err != nil {
		return Result{}, err
	}
	<-st.finished
	return st.result, nil
}

// Cancel requests termination of the active search. Idempotent and a
// no-op when nothing is running; workers observe the flag at their next
// loop iteration, so an attempt already in flight completes first.
func (c *Coordinator) Cancel() {
	c.mu.Lock()
	st := c.cur
	c.mu.Unlock()
	if st == nil {
		return
	}
	st.cancel.Store(true)
}

func (c *Coordinator) start(req Request) (*state, error) {
	if !c.running.CompareAndSwap(false, true) {
		return nil, ErrAlreadyRunning
	}

	pat, err := pattern.Compile(req.Pattern, c.provider.Alphabet())
	if err != nil {
		c.running.Store(false)
		return nil, err
	}
	if req.SubmittedAt.IsZero() {
		req.SubmittedAt = time.Now()
	}

	st := &state{
		req:       req,
		pat:       pat,
		startedAt: time.Now(),
		done:      make(chan struct{}),
		finished:  make(chan struct{}),
	}
	c.mu.Lock()
	c.cur = st
	c.mu.Unlock()

	c.log.Printf("search started: pattern=%q anchor=%s network=%s workers=%d",
		pat.Raw, pat.Anchor, c.provider.Name(), c.workers)

	var wg sync.WaitGroup
	for i := 0; i < c.workers; i++ {
		wg.Add(1)
		go c.worker(st, &wg)
	}
	go c.report(st)
	go c.supervise(st, &wg)

	return st, nil
}

// worker is the hot loop, identical for every pool member: check for
// termination, draw a candidate, bump the counters, try the relaxed and
// full predicates. Only a full match (or a provider failure) triggers
// the terminal transition.
func (c *Coordinator) worker(st *state, wg *sync.WaitGroup) {
	defer wg.Done()
	for {
		select {
		case <-st.done:
			return
		default:
		}
		if st.cancel.Load() {
			return
		}

		cand, err := c.provider.Generate()
		if err != nil {
			st.finish(Result{
				Outcome: OutcomeError,
				Err:     fmt.Errorf("%w: %v", ErrProvider, err),
			})
			return
		}

		st.attempts.Add(1)
		if st.pat.MatchesRelaxed(cand.Search) {
			st.relaxed.Add(1)
		}
		if st.pat.MatchesFull(cand.Search) {
			st.finish(Result{
				Outcome:    OutcomeFound,
				Address:    cand.Address,
				PrivateKey: cand.PrivateKey,
			})
			return
		}
	}
}

// supervise waits for the pool to drain, resolves the terminal outcome
// (cancellation when no worker won), stamps the converged counters and
// persists the keypair when requested. Persistence failures are attached
// to the result, never fatal.
func (c *Coordinator) supervise(st *state, wg *sync.WaitGroup) {
	wg.Wait()

	// Only fires when every worker exited via the cancel flag.
	st.finish(Result{Outcome: OutcomeCancelled})

	r := st.result
	r.Attempts = st.attempts.Load()
	r.RelaxedMatches = st.relaxed.Load()
	r.Duration = time.Since(st.startedAt)

	if r.Outcome == OutcomeFound && st.req.SavePath != "" {
		store := persist.NewStore(st.req.SavePath)
		path, err := store.Save(persist.Record{
			Address:    r.Address,
			PrivateKey: r.PrivateKey,
			Pattern:    st.req.Pattern,
		})
		if err != nil {
			r.SaveErr = err
			c.log.Printf("warning: could not persist result: %v", err)
		} else {
			r.SavedTo = path
		}
	}

	st.result = r
	close(st.finished)
	c.running.Store(false)

	switch r.Outcome {
	case OutcomeFound:
		c.log.Printf("search finished: address=%s attempts=%d duration=%v",
			r.Address, r.Attempts, r.Duration.Round(time.Millisecond))
	case OutcomeCancelled:
		c.log.Printf("search cancelled after %d attempts (%v)",
			r.Attempts, r.Duration.Round(time.Millisecond))
	case OutcomeError:
		c.log.Printf("search failed after %d attempts: %v", r.Attempts, r.Err)
	}
}

// report emits snapshots on the configured cadence while the search
// runs. Listener reads are lock-free with respect to the workers; no
// snapshot is emitted after the result is finalized.
func (c *Coordinator) report(st *state) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()
	for {
		select {
		case <-st.finished:
			return
		case <-ticker.C:
			select {
			case <-st.finished:
				return
			default:
			}
			snap := st.snapshot()
			c.mu.Lock()
			listeners := make([]Listener, len(c.listeners))
			copy(listeners, c.listeners)
			c.mu.Unlock()
			for _, fn := range listeners {
				fn(snap)
			}
		}
	}
}
