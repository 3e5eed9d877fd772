package qsynth

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/qsynth/encode"
	"github.com/hupe1980/qsynth/gate"
)

// PrepareStates synthesizes preparation circuits for independent vectors
// concurrently. Each call owns its own tree and budget, so this is safe by
// construction; the first error cancels the remaining work.
func (s *Synthesizer) PrepareStates(ctx context.Context, vectors [][]complex128, opts ...CallOption) ([]*gate.Circuit, error) {
	circuits := make([]*gate.Circuit, len(vectors))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, v := range vectors {
		i, v := i, v
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			c, err := s.PrepareState(v, opts...)
			if err != nil {
				return err
			}
			circuits[i] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return circuits, nil
}

// EncodeMatrices synthesizes block encodings for independent matrices
// concurrently.
func (s *Synthesizer) EncodeMatrices(ctx context.Context, matrices [][][]complex128, opts ...CallOption) ([]*encode.Result, error) {
	results := make([]*encode.Result, len(matrices))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, m := range matrices {
		i, m := i, m
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := s.EncodeMatrix(m, opts...)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
