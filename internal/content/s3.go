package content

import (
	"context"
	"errors"
	"fmt"

	"github.com/sofienekhiari/midlandproject/internal/storage"
)

// ObjectGetter is the read surface S3Source needs from the storage layer.
type ObjectGetter interface {
	GetObject(ctx context.Context, key string) ([]byte, error)
}

// S3Source reads documents from the site's object storage bucket. This is
// the production mode: content sits in the same bucket as the media files.
type S3Source struct {
	store ObjectGetter
}

func NewS3Source(store ObjectGetter) *S3Source {
	return &S3Source{store: store}
}

func (s *S3Source) Fetch(ctx context.Context, path string) ([]byte, error) {
	data, err := s.store.GetObject(ctx, path)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("fetch %s: %w", path, ErrNotFound)
		}
		return nil, fmt.Errorf("fetch %s: %w", path, err)
	}
	return data, nil
}
