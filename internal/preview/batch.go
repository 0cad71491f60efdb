package preview

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
)

// Outcome is the result of resolving one term in a batch.
type Outcome struct {
	Term  string
	Track Track
	Err   error
}

// Found reports whether the term resolved to a playable preview.
func (o Outcome) Found() bool { return o.Err == nil && o.Track.PreviewURL != "" }

// Missing reports whether the catalog answered but had no match.
func (o Outcome) Missing() bool { return errors.Is(o.Err, ErrNoResults) }

// Resolve looks up every term with at most limit requests in flight. done,
// if set, is called once per finished term from the worker goroutine.
// Outcomes are returned in input order. Per-term failures are reported in
// the outcome; the returned error is only the context's.
func Resolve(ctx context.Context, s Searcher, terms []string, limit int, done func(Outcome)) ([]Outcome, error) {
	out := make([]Outcome, len(terms))
	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, term := range terms {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			track, err := s.Search(gctx, term)
			out[i] = Outcome{Term: term, Track: track, Err: err}
			if done != nil {
				done(out[i])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return out, err
	}
	return out, ctx.Err()
}
