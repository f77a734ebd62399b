package domain

// ChatMessage is a single message in an assistant conversation.
type ChatMessage struct {
	Role      string `json:"role"` // "user" or "assistant"
	Content   string `json:"content"`
	CreatedAt string `json:"created_at,omitempty"`
}

// Conversation is a stored assistant conversation with its messages.
type Conversation struct {
	ID       string        `json:"id"`
	Title    string        `json:"title,omitempty"`
	Messages []ChatMessage `json:"messages,omitempty"`
}
