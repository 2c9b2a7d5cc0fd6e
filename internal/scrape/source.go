package scrape

import (
	"context"
	"time"
)

// Source fetches the current participant list from somewhere outside the
// process. Implementations return an error on any failure; the Bridge turns
// errors into empty responses.
type Source interface {
	Name() string
	Fetch(ctx context.Context) (Response, error)
}

// SourceFunc adapts a function to Source
type SourceFunc func(ctx context.Context) (Response, error)

func (f SourceFunc) Name() string { return "func" }

func (f SourceFunc) Fetch(ctx context.Context) (Response, error) { return f(ctx) }

// StaticSource always returns the same participants
type StaticSource struct {
	Names  []string
	Images []string
}

// DemoSource returns a StaticSource with a handful of made up participants
func DemoSource() *StaticSource {
	return &StaticSource{Names: []string{"Aiko", "Ben", "Chiara", "Dmitri", "Esi", "Farid"}}
}

func (s *StaticSource) Name() string { return "static" }

func (s *StaticSource) Fetch(ctx context.Context) (Response, error) {
	if err := ctx.Err(); err != nil {
		return Response{}, err
	}
	return Response{
		Names:  append([]string(nil), s.Names...),
		Images: append([]string(nil), s.Images...),
	}, nil
}

// withTimeout bounds ctx by d when d is positive
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
