package content

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sofienekhiari/midlandproject/internal/httputil"
)

// ObjectPutter is the write surface the publish handler needs from the
// storage layer.
type ObjectPutter interface {
	PutObject(ctx context.Context, key string, data []byte, contentType string) error
}

const maxDocumentBytes = 1 << 20

// PublishHandler replaces a content document in object storage. It is only
// wired up when the site runs on the S3 content source.
type PublishHandler struct {
	store          ObjectPutter
	validateEvents func([]byte) error
}

func NewPublishHandler(store ObjectPutter, validateEvents func([]byte) error) *PublishHandler {
	return &PublishHandler{store: store, validateEvents: validateEvents}
}

func (h *PublishHandler) Update(w http.ResponseWriter, r *http.Request) {
	doc := chi.URLParam(r, "doc")

	var path, contentType string
	switch doc {
	case "events":
		path, contentType = EventsPath, "application/json"
	case "videos":
		path, contentType = VideosPath, "text/plain; charset=utf-8"
	default:
		httputil.WriteError(w, http.StatusNotFound, "unknown content document")
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxDocumentBytes+1))
	if err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "failed to read request body")
		return
	}
	if len(body) > maxDocumentBytes {
		httputil.WriteError(w, http.StatusRequestEntityTooLarge, "document too large")
		return
	}

	// A broken events document would take the whole section down on the
	// next render, so reject it here.
	if doc == "events" && h.validateEvents != nil {
		if err := h.validateEvents(body); err != nil {
			httputil.WriteError(w, http.StatusUnprocessableEntity, fmt.Sprintf("invalid events document: %v", err))
			return
		}
	}

	if err := h.store.PutObject(r.Context(), path, body, contentType); err != nil {
		slog.Error("content: publish failed", "doc", doc, "error", err)
		httputil.WriteError(w, http.StatusInternalServerError, "failed to store document")
		return
	}

	slog.Info("content: document published", "doc", doc, "bytes", len(body))
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "published"})
}
