package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/sofienekhiari/midlandproject/internal/contact"
)

// Config points at a Listmonk instance. Recipient is the inbox that
// receives contact form messages, usually the band's address from the
// site configuration.
type Config struct {
	BaseURL    string
	Username   string
	Password   string
	TemplateID int
	Recipient  string
}

type Client struct {
	config Config
	http   *http.Client
}

func New(cfg Config) *Client {
	return &Client{
		config: cfg,
		http:   &http.Client{Timeout: 10 * time.Second},
	}
}

type txRequest struct {
	SubscriberEmail string            `json:"subscriber_email"`
	TemplateID      int               `json:"template_id"`
	Data            map[string]string `json:"data"`
	ContentType     string            `json:"content_type"`
}

// SendContactMessage forwards a contact form entry to the configured
// recipient through the Listmonk transactional API.
func (c *Client) SendContactMessage(ctx context.Context, msg contact.Message) error {
	if c.config.BaseURL == "" {
		log.Printf("email not configured — contact message from %s <%s>: %s", msg.Name, msg.Email, msg.Message)
		return nil
	}

	body := txRequest{
		SubscriberEmail: c.config.Recipient,
		TemplateID:      c.config.TemplateID,
		Data: map[string]string{
			"name":    msg.Name,
			"email":   msg.Email,
			"message": msg.Message,
		},
		ContentType: "html",
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal email request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+"/api/tx", bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Errorf("create email request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.config.Username, c.config.Password)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("listmonk returned status %d", resp.StatusCode)
	}

	return nil
}
