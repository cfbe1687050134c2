package video

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"google.golang.org/api/youtube/v3"

	"github.com/sofienekhiari/midlandproject/internal/content"
)

// titleTable holds titles resolved from the YouTube Data API for entries
// the curated list leaves untitled.
type titleTable struct {
	mu     sync.RWMutex
	titles map[string]string
}

func newTitleTable() *titleTable {
	return &titleTable{titles: make(map[string]string)}
}

func (t *titleTable) get(id string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.titles[id]
}

func (t *titleTable) put(resolved map[string]string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for id, title := range resolved {
		t.titles[id] = title
	}
}

func (t *titleTable) missing(videos []Video) []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	var ids []string
	for _, v := range videos {
		if v.Title != "" {
			continue
		}
		if _, ok := t.titles[v.ID]; ok {
			continue
		}
		ids = append(ids, v.ID)
	}
	return ids
}

// The videos.list endpoint accepts at most 50 ids per call.
const titleBatchSize = 50

// StartTitleWorker resolves missing titles through the YouTube Data API on
// an interval. Without the worker untitled entries simply render with an
// empty caption, which the list format allows.
func (h *Handler) StartTitleWorker(ctx context.Context, yt *youtube.Service, interval time.Duration) {
	go func() {
		h.resolveTitles(ctx, yt)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				slog.Info("videos: title worker shutting down")
				return
			case <-ticker.C:
				h.resolveTitles(ctx, yt)
			}
		}
	}()
}

func (h *Handler) resolveTitles(ctx context.Context, yt *youtube.Service) {
	data, err := h.src.Fetch(ctx, content.VideosPath)
	if err != nil {
		slog.Error("videos: title worker fetch failed", "error", err)
		return
	}

	ids := h.titles.missing(ParseList(data))
	if len(ids) == 0 {
		return
	}

	for start := 0; start < len(ids); start += titleBatchSize {
		end := start + titleBatchSize
		if end > len(ids) {
			end = len(ids)
		}
		batch := ids[start:end]

		resp, err := yt.Videos.List([]string{"snippet"}).Id(strings.Join(batch, ",")).Context(ctx).Do()
		if err != nil {
			slog.Error("videos: title lookup failed", "count", len(batch), "error", err)
			return
		}

		resolved := make(map[string]string, len(resp.Items))
		for _, item := range resp.Items {
			resolved[item.Id] = item.Snippet.Title
		}
		h.titles.put(resolved)
		slog.Info("videos: resolved titles", "count", len(resolved))
	}
}
