package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/sofienekhiari/midlandproject/internal/contact"
)

// Client posts contact messages to a Slack incoming webhook.
type Client struct {
	webhookURL string
	http       *http.Client
}

// New creates a Slack webhook client. An empty URL disables delivery.
func New(webhookURL string) *Client {
	return &Client{
		webhookURL: webhookURL,
		http:       &http.Client{Timeout: 10 * time.Second},
	}
}

type block struct {
	Type     string `json:"type"`
	Text     *text  `json:"text,omitempty"`
	Elements []text `json:"elements,omitempty"`
}

type text struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type payload struct {
	Blocks []block `json:"blocks"`
}

func (c *Client) postMessage(ctx context.Context, p payload) error {
	body, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal slack payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create slack request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("send slack message: %w", err)
	}
	_ = resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("slack returned status %d", resp.StatusCode)
	}

	return nil
}

// SendContactMessage posts the contact form entry to the webhook channel.
func (c *Client) SendContactMessage(ctx context.Context, msg contact.Message) error {
	if c.webhookURL == "" {
		log.Printf("slack not configured — contact message from %s <%s>", msg.Name, msg.Email)
		return nil
	}

	quoted := "> " + strings.ReplaceAll(msg.Message, "\n", "\n> ")

	p := payload{
		Blocks: []block{
			{
				Type: "section",
				Text: &text{
					Type: "mrkdwn",
					Text: fmt.Sprintf(":email: *Neue Kontaktanfrage*\n*%s* <%s>", msg.Name, msg.Email),
				},
			},
			{
				Type: "section",
				Text: &text{
					Type: "mrkdwn",
					Text: quoted,
				},
			},
		},
	}

	return c.postMessage(ctx, p)
}
