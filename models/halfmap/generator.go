package halfmap

import (
	"context"
	"errors"
	"iter"
	"log"
	"runtime"
	"strings"
	"sync"

	"github.com/google/uuid"
	cerr "github.com/saeidalz13/halfmap/internal/error"
	"github.com/saeidalz13/halfmap/internal/rng"
	"golang.org/x/sync/errgroup"
)

const (
	// Unbounded lets a search run until a candidate passes or the
	// context is done. Termination is not guaranteed.
	Unbounded          = 0
	DefaultMaxAttempts = 1000
)

var (
	errBudgetSpent    = errors.New("attempt budget spent")
	errCandidateFound = errors.New("candidate found")
)

type MapGenerator interface {
	GenerateMap(ctx context.Context) (Grid, error)
	GenerateHalfMap(ctx context.Context) (HalfMap, error)
	Maps(ctx context.Context) iter.Seq[Grid]
	HalfMaps(ctx context.Context) iter.Seq[HalfMap]
}

type Stats struct {
	Examined int
	Accepted int
}

// Generator runs the synthesize-then-filter search. Every search takes
// its own RNG split from the generator's, so a Generator is safe for
// concurrent use.
type Generator struct {
	maxAttempts int
	workers     int
	rng         *rng.RNG
	logger      *log.Logger

	mu    sync.Mutex
	stats Stats
}

var _ MapGenerator = (*Generator)(nil)

type Option func(*Generator) error

func NewGenerator(optFuncs ...Option) (*Generator, error) {
	g := Generator{
		maxAttempts: DefaultMaxAttempts,
		workers:     runtime.NumCPU(),
	}
	for _, opt := range optFuncs {
		if err := opt(&g); err != nil {
			return nil, err
		}
	}
	if g.rng == nil {
		g.rng = rng.NewUnseeded()
	}
	if g.logger == nil {
		g.logger = log.Default()
	}

	return &g, nil
}

// WithMaxAttempts caps the candidates examined per search; Unbounded
// removes the cap.
func WithMaxAttempts(n int) Option {
	return func(g *Generator) error {
		if n < 0 {
			return cerr.ErrInvalidMaxAttempts(n)
		}
		g.maxAttempts = n
		return nil
	}
}

func WithWorkers(n int) Option {
	return func(g *Generator) error {
		if n < 1 {
			return cerr.ErrInvalidWorkers(n)
		}
		g.workers = n
		return nil
	}
}

// WithSeed makes the output reproducible when used with a single worker.
func WithSeed(seed uint64) Option {
	return func(g *Generator) error {
		g.rng = rng.New(seed)
		return nil
	}
}

func WithLogger(logger *log.Logger) Option {
	return func(g *Generator) error {
		g.logger = logger
		return nil
	}
}

func (g *Generator) Stats() Stats {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.stats
}

func (g *Generator) GenerateMap(ctx context.Context) (Grid, error) {
	if g.workers == 1 {
		return g.searchSequential(ctx)
	}
	return g.searchParallel(ctx)
}

func (g *Generator) GenerateHalfMap(ctx context.Context) (HalfMap, error) {
	grid, err := g.GenerateMap(ctx)
	if err != nil {
		return HalfMap{}, err
	}

	r := g.splitRNG()
	halfMap, err := PlaceCastle(grid, r)
	if err != nil {
		return HalfMap{}, err
	}

	id, err := uuid.NewRandomFromReader(r)
	if err != nil {
		return HalfMap{}, err
	}
	halfMap.Uuid = id.String()

	return halfMap, nil
}

// Maps yields accepted grids until the consumer stops or a search fails.
// Ranging over the returned sequence again starts a fresh run.
func (g *Generator) Maps(ctx context.Context) iter.Seq[Grid] {
	return func(yield func(Grid) bool) {
		for {
			grid, err := g.GenerateMap(ctx)
			if err != nil || !yield(grid) {
				return
			}
		}
	}
}

func (g *Generator) HalfMaps(ctx context.Context) iter.Seq[HalfMap] {
	return func(yield func(HalfMap) bool) {
		for {
			halfMap, err := g.GenerateHalfMap(ctx)
			if err != nil || !yield(halfMap) {
				return
			}
		}
	}
}

func (g *Generator) splitRNG() *rng.RNG {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Split()
}

func (g *Generator) record(examined int, accepted bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.stats.Examined += examined
	if accepted {
		g.stats.Accepted++
	}
}

func (g *Generator) searchSequential(ctx context.Context) (Grid, error) {
	grid, attempts, err := search(ctx, g.splitRNG(), g.maxAttempts)
	g.record(attempts, err == nil)
	if err != nil {
		return Grid{}, g.searchFailed(attempts, grid, err)
	}
	return grid, nil
}

// searchParallel splits the attempt budget across the workers. The first
// worker to find a candidate cancels the others; they notice at their
// next attempt.
func (g *Generator) searchParallel(ctx context.Context) (Grid, error) {
	eg, egCtx := errgroup.WithContext(ctx)
	found := make(chan Grid, 1)
	attempts := make([]int, g.workers)
	rejected := make([]Grid, g.workers)

	for w := 0; w < g.workers; w++ {
		budget := g.maxAttempts
		if budget != Unbounded {
			budget = budgetShare(g.maxAttempts, g.workers, w)
			if budget == 0 {
				continue
			}
		}

		r := g.splitRNG()
		eg.Go(func() error {
			grid, n, err := search(egCtx, r, budget)
			attempts[w] = n
			if errors.Is(err, errBudgetSpent) {
				rejected[w] = grid
				return nil
			}
			if err != nil {
				return err
			}

			select {
			case found <- grid:
			default:
			}
			return errCandidateFound
		})
	}

	err := eg.Wait()
	total := 0
	for _, n := range attempts {
		total += n
	}

	if errors.Is(err, errCandidateFound) {
		g.record(total, true)
		return <-found, nil
	}
	g.record(total, false)
	if err == nil {
		err = errBudgetSpent
	}
	// worker 0 always gets a share of the budget
	return Grid{}, g.searchFailed(total, rejected[0], err)
}

// searchFailed logs why a search ended. last is the final rejected
// candidate when the budget ran out.
func (g *Generator) searchFailed(attempts int, last Grid, err error) error {
	if errors.Is(err, errBudgetSpent) {
		g.logger.Printf("no half map accepted after %d attempts, last candidate failed: %s\n",
			attempts, strings.Join(Rejections(last), ", "))
		return cerr.ErrAttemptsExhausted(attempts)
	}
	g.logger.Printf("half map search stopped after %d attempts: %v\n", attempts, err)
	return cerr.ErrCancelled(attempts, err)
}

// search synthesizes and filters candidates until one is accepted, the
// budget is spent or ctx is done. When the budget is spent the last
// rejected candidate is returned with errBudgetSpent.
func search(ctx context.Context, r *rng.RNG, budget int) (Grid, int, error) {
	attempts := 0
	var candidate Grid
	for budget == Unbounded || attempts < budget {
		if err := ctx.Err(); err != nil {
			return Grid{}, attempts, err
		}

		candidate = Synthesize(r)
		attempts++
		if Accept(candidate) {
			return candidate, attempts, nil
		}
	}
	return candidate, attempts, errBudgetSpent
}

func budgetShare(total, workers, w int) int {
	share := total / workers
	if w < total%workers {
		share++
	}
	return share
}
