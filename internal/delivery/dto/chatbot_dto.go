package dto

// ChatRequest is sent to POST /chatbot/chat.
type ChatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"sessionId"`
}

type ChatMessageResponse struct {
	Role      string `json:"role"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// ChatResponse wraps the assistant's reply.
type ChatResponse struct {
	Message ChatMessageResponse `json:"message"`
}
