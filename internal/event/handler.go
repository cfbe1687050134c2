package event

import (
	"context"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/sofienekhiari/midlandproject/internal/content"
	"github.com/sofienekhiari/midlandproject/internal/httputil"
)

type Handler struct {
	src content.Source
}

func NewHandler(src content.Source) *Handler {
	return &Handler{src: src}
}

// Fragment fetches and renders the events section body. It never fails:
// load and parse errors become the unavailable message, an empty upcoming
// list becomes the no-events message.
func (h *Handler) Fragment(ctx context.Context) template.HTML {
	data, err := h.src.Fetch(ctx, content.EventsPath)
	if err != nil {
		slog.Error("events: fetch failed", "error", err)
		return messageFragment(FallbackUnavailable)
	}

	events, err := ParseFeed(data)
	if err != nil {
		slog.Error("events: parse failed", "error", err)
		return messageFragment(FallbackUnavailable)
	}

	upcoming := Upcoming(events, time.Now())
	if len(upcoming) == 0 {
		return messageFragment(FallbackNone)
	}

	html, err := RenderRows(upcoming)
	if err != nil {
		slog.Error("events: render failed", "error", err)
		return messageFragment(FallbackUnavailable)
	}
	return html
}

// List handles GET /api/events.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	data, err := h.src.Fetch(r.Context(), content.EventsPath)
	if err != nil {
		slog.Error("events: fetch failed", "error", err)
		httputil.WriteError(w, http.StatusBadGateway, "events are currently unavailable")
		return
	}

	events, err := ParseFeed(data)
	if err != nil {
		slog.Error("events: parse failed", "error", err)
		httputil.WriteError(w, http.StatusBadGateway, "events are currently unavailable")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, Upcoming(events, time.Now()))
}
