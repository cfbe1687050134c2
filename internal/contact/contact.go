package contact

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"github.com/sofienekhiari/midlandproject/internal/httputil"
	"github.com/sofienekhiari/midlandproject/internal/validate"
)

// Message is one submitted contact form entry.
type Message struct {
	Name    string
	Email   string
	Message string
}

// Notifier delivers a contact message to one channel.
type Notifier interface {
	SendContactMessage(ctx context.Context, msg Message) error
}

type Handler struct {
	notifier Notifier
}

// NewHandler returns a Handler delivering through notifier. A nil
// notifier leaves messages in the server log only.
func NewHandler(notifier Notifier) *Handler {
	return &Handler{notifier: notifier}
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Submit handles POST /api/contact. Delivery runs detached; the sender
// gets an answer as soon as the message is accepted.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	msg := Message{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Message: strings.TrimSpace(req.Message),
	}

	if msg.Name == "" || msg.Email == "" || msg.Message == "" {
		httputil.WriteError(w, http.StatusBadRequest, "name, email, and message are required")
		return
	}

	if _, err := mail.ParseAddress(msg.Email); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "invalid email address")
		return
	}

	for _, check := range []string{
		validate.ContactName(msg.Name),
		validate.ContactEmail(msg.Email),
		validate.ContactMessage(msg.Message),
	} {
		if check != "" {
			httputil.WriteError(w, http.StatusBadRequest, check)
			return
		}
	}

	if h.notifier == nil {
		slog.Info("contact: no notifier configured, message logged only",
			"name", msg.Name, "email", msg.Email)
	} else {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := h.notifier.SendContactMessage(ctx, msg); err != nil {
				slog.Error("contact: failed to deliver message", "email", msg.Email, "error", err)
			}
		}()
	}

	httputil.WriteJSON(w, http.StatusAccepted, map[string]string{"status": "accepted"})
}
