// Package analysis runs the single-piece generator over whole teams.
package analysis

import (
	"context"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/hailam/chessmoves/internal/board"
)

// Cache stores generated move lists keyed by board placement and origin.
// storage.Storage satisfies it.
type Cache interface {
	GetMoves(key uint64) ([]board.Move, bool, error)
	PutMoves(key uint64, moves []board.Move) error
}

// KeyFunc derives the cache key for one generation call.
type KeyFunc func(g *board.Grid, origin board.Position) uint64

// Analyzer generates moves for many squares of one board concurrently.
// It holds no per-call state and is safe for concurrent use.
type Analyzer struct {
	workers int
	cache   Cache
	key     KeyFunc
	logger  zerolog.Logger
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithWorkers bounds the number of squares generated in parallel.
func WithWorkers(n int) Option {
	return func(a *Analyzer) {
		if n > 0 {
			a.workers = n
		}
	}
}

// WithCache consults c before generating and stores results after.
// The option is ignored if c or key is nil.
func WithCache(c Cache, key KeyFunc) Option {
	return func(a *Analyzer) {
		if c == nil || key == nil {
			return
		}
		a.cache = c
		a.key = key
	}
}

// WithLogger sets the logger used for cache diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(a *Analyzer) {
		a.logger = l
	}
}

// New creates an Analyzer. By default it uses one worker per CPU, no cache
// and a disabled logger.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		workers: runtime.NumCPU(),
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Moves returns the pseudo-legal moves of the piece on origin.
func (a *Analyzer) Moves(ctx context.Context, g *board.Grid, origin board.Position) ([]board.Move, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if a.cache == nil {
		return board.Generate(g, origin), nil
	}

	key := a.key(g, origin)
	moves, ok, err := a.cache.GetMoves(key)
	if err != nil {
		return nil, err
	}
	if ok {
		a.logger.Debug().Str("origin", origin.String()).Int("moves", len(moves)).Msg("cache hit")
		return moves, nil
	}

	moves = board.Generate(g, origin)
	if err := a.cache.PutMoves(key, moves); err != nil {
		return nil, err
	}
	a.logger.Debug().Str("origin", origin.String()).Int("moves", len(moves)).Msg("cache miss")
	return moves, nil
}

// Side returns the pseudo-legal moves of every piece of color c, grouped by
// origin square in row-major order from a1.
func (a *Analyzer) Side(ctx context.Context, g *board.Grid, c board.Color) ([]board.Move, error) {
	perSquare, err := a.perSquare(ctx, g, c)
	if err != nil {
		return nil, err
	}
	return lo.Flatten(perSquare), nil
}

// Mobility returns the number of destinations available to each piece of color c.
// Pieces with no moves are included with a count of zero.
func (a *Analyzer) Mobility(ctx context.Context, g *board.Grid, c board.Color) (map[board.Position]int, error) {
	origins := g.Squares(c)
	perSquare, err := a.perSquare(ctx, g, c)
	if err != nil {
		return nil, err
	}

	out := make(map[board.Position]int, len(origins))
	for i, origin := range origins {
		dests := lo.Uniq(lo.Map(perSquare[i], func(m board.Move, _ int) board.Position {
			return m.To
		}))
		out[origin] = len(dests)
	}
	return out, nil
}

func (a *Analyzer) perSquare(ctx context.Context, g *board.Grid, c board.Color) ([][]board.Move, error) {
	origins := g.Squares(c)
	results := make([][]board.Move, len(origins))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(a.workers)
	for i, origin := range origins {
		i, origin := i, origin
		eg.Go(func() error {
			moves, err := a.Moves(ctx, g, origin)
			if err != nil {
				return err
			}
			results[i] = moves
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
