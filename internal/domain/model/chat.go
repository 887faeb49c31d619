package model

import "time"

// Sender identifies who produced a chat message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderAI   Sender = "ai"
)

// ChatMessage is a single message in an assistant conversation.
type ChatMessage struct {
	ID        int64     `json:"id"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Sender    Sender    `json:"sender"`
}

// SendMessageRequest carries a user message to the assistant.
type SendMessageRequest struct {
	Message string `json:"message"`
}
