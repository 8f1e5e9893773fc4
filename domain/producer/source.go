package producer

import (
	"context"
	"errors"
)

// ErrNoFrame is returned by a Source that has nothing to show right now. The
// worker retries after a short delay.
var ErrNoFrame = errors.New("no frame available")

// ErrEmptyPayload marks a source that produced zero bytes.
var ErrEmptyPayload = errors.New("empty frame payload")

// Source produces one encoded image per call.
type Source interface {
	Frame(ctx context.Context) ([]byte, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context) ([]byte, error)

func (f SourceFunc) Frame(ctx context.Context) ([]byte, error) { return f(ctx) }
