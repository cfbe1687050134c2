package content

import (
	"context"
	"time"
)

// FetchRecorder receives the outcome of every content fetch.
type FetchRecorder interface {
	ObserveFetch(path string, ok bool, elapsed time.Duration)
}

// Instrumented wraps a Source and reports fetch outcomes to a recorder.
type Instrumented struct {
	src Source
	rec FetchRecorder
}

func Instrument(src Source, rec FetchRecorder) *Instrumented {
	return &Instrumented{src: src, rec: rec}
}

func (s *Instrumented) Fetch(ctx context.Context, path string) ([]byte, error) {
	start := time.Now()
	data, err := s.src.Fetch(ctx, path)
	s.rec.ObserveFetch(path, err == nil, time.Since(start))
	return data, err
}
