package model

// ChatMessage is a single message in the chat transcript. The assistant only
// acts on the last message's content; earlier messages are accepted and
// ignored so the frontend can post the whole transcript.
type ChatMessage struct {
	Role    string `json:"role,omitempty"`
	Content string `json:"content" binding:"required"`
}

// ChatRequest represents a chat completion request
type ChatRequest struct {
	Messages []ChatMessage `json:"messages" binding:"required,min=1"`
}

// ChatResponse represents the assistant reply
type ChatResponse struct {
	Message string `json:"message"`
}
