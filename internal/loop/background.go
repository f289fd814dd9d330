package loop

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/tomz197/among-the-stars/internal/physics"
	"golang.org/x/sync/errgroup"
)

// Star is a decorative background point inside one starfield tile.
type Star struct {
	Pos    physics.Vector2
	Bright bool
}

// Starfield is a tile of stars repeated across the plane.
type Starfield struct {
	Tile  float64
	Stars []Star
}

// starsPerChunk is the unit of work handed to a generator goroutine.
const starsPerChunk = 256

// GenerateStarfield fills a tile with count stars using at most workers
// goroutines. Each chunk has its own source derived from seed, so the result
// does not depend on scheduling. It returns only after every worker is done.
func GenerateStarfield(ctx context.Context, count, workers int, seed uint64, tile float64) (*Starfield, error) {
	if count < 0 || workers < 1 || tile <= 0 {
		return nil, fmt.Errorf("starfield: count %d workers %d tile %v", count, workers, tile)
	}

	stars := make([]Star, count)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for start := 0; start < count; start += starsPerChunk {
		end := min(start+starsPerChunk, count)
		chunk := uint64(start / starsPerChunk)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rng := rand.New(rand.NewPCG(seed, chunk))
			for i := start; i < end; i++ {
				stars[i] = Star{
					Pos:    physics.Vector2{X: rng.Float64() * tile, Y: rng.Float64() * tile},
					Bright: rng.IntN(8) == 0,
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("starfield: %w", err)
	}
	return &Starfield{Tile: tile, Stars: stars}, nil
}
