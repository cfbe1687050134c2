package content

import (
	"context"
	"errors"
)

// The two content documents live at fixed relative paths, whichever
// source backs them.
const (
	EventsPath = "data/events.json"
	VideosPath = "data/videos.txt"
)

// ErrNotFound reports a document missing from the source.
var ErrNotFound = errors.New("content not found")

// Source fetches a content document by its relative path. Documents are
// fetched fresh on every use: no caching, no retries.
type Source interface {
	Fetch(ctx context.Context, path string) ([]byte, error)
}
