package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/agromaps/agromaps-go/internal/client/domain"
)

// Assistant endpoints. Conversations live server-side; the client only posts
// messages and reads history.

// SendMessage posts a message to the assistant and returns its reply.
func (c *Client) SendMessage(ctx context.Context, req SendMessageRequest) (*SendMessageResponse, error) {
	var out SendMessageResponse
	if err := c.doJSON(ctx, http.MethodPost, "/chatbot/message/", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetConversation fetches a conversation with its messages.
func (c *Client) GetConversation(ctx context.Context, id string) (*domain.Conversation, error) {
	var out domain.Conversation
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/chatbot/conversation/%s/", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteConversation removes a conversation.
func (c *Client) DeleteConversation(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/chatbot/conversation/%s/", id), nil, nil)
}

// SoilContext returns the grounding summary the assistant derives from a
// soil study.
func (c *Client) SoilContext(ctx context.Context, studyID int64) (*SoilContextResponse, error) {
	var out SoilContextResponse
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/chatbot/soil-context/%d/", studyID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ChatHealth reports whether the assistant backend is reachable.
func (c *Client) ChatHealth(ctx context.Context) (*ChatHealthResponse, error) {
	var out ChatHealthResponse
	if err := c.doJSON(ctx, http.MethodGet, "/chatbot/health/", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
