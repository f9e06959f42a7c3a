package model

import "github.com/twkim02/todoc-chat-ai/internal/chat"

type SendMessageRequest struct {
	Persona string `json:"persona" binding:"required"`
	Content string `json:"content" binding:"required"`
}

type ImportRecordsRequest struct {
	Persona string `json:"persona" binding:"required"`
}

// SessionResponse flattens a chat session with its per-persona threads.
type SessionResponse struct {
	ID          string                        `json:"id"`
	Name        string                        `json:"name"`
	LastMessage string                        `json:"last_message,omitempty"`
	Threads     map[chat.Persona][]chat.Message `json:"threads"`
}

// NewSessionResponse snapshots a session for the API.
func NewSessionResponse(s *chat.Session) SessionResponse {
	threads := make(map[chat.Persona][]chat.Message, len(chat.Personas()))
	for _, p := range chat.Personas() {
		threads[p] = s.Messages(p)
	}
	return SessionResponse{
		ID:          s.ID,
		Name:        s.Name,
		LastMessage: s.LastMessage(),
		Threads:     threads,
	}
}
