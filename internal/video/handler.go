package video

import (
	"context"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/sofienekhiari/midlandproject/internal/content"
	"github.com/sofienekhiari/midlandproject/internal/httputil"
)

type Handler struct {
	src    content.Source
	titles *titleTable
}

func NewHandler(src content.Source) *Handler {
	return &Handler{src: src, titles: newTitleTable()}
}

func (h *Handler) load(ctx context.Context) ([]Video, error) {
	data, err := h.src.Fetch(ctx, content.VideosPath)
	if err != nil {
		return nil, err
	}

	videos := ParseList(data)
	for i, v := range videos {
		if v.Title == "" {
			videos[i].Title = h.titles.get(v.ID)
		}
	}
	return videos, nil
}

// Fragment fetches and renders the videos section body. Load failures and
// an empty list both yield the fallback message.
func (h *Handler) Fragment(ctx context.Context) template.HTML {
	videos, err := h.load(ctx)
	if err != nil {
		slog.Error("videos: fetch failed", "error", err)
		return messageFragment(FallbackNone)
	}
	if len(videos) == 0 {
		return messageFragment(FallbackNone)
	}

	html, err := RenderCards(videos)
	if err != nil {
		slog.Error("videos: render failed", "error", err)
		return messageFragment(FallbackNone)
	}
	return html
}

// List handles GET /api/videos.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	videos, err := h.load(r.Context())
	if err != nil {
		slog.Error("videos: fetch failed", "error", err)
		httputil.WriteError(w, http.StatusBadGateway, "videos are currently unavailable")
		return
	}
	httputil.WriteJSON(w, http.StatusOK, videos)
}
