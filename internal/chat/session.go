package chat

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Role marks who produced a message.
type Role string

const (
	RoleUser   Role = "user"
	RoleAI     Role = "ai"
	RoleSystem Role = "system"
)

// Message is one chat line inside a persona thread.
type Message struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Session holds one thread per persona, each seeded with that persona's
// greeting. Threads are guarded by the session's own lock so reads stay safe
// while the hub appends to them.
type Session struct {
	ID        string
	Name      string
	CreatedAt time.Time

	mu          sync.RWMutex
	lastMessage string
	threads     map[Persona][]Message
}

// Messages returns a snapshot of the thread for a persona.
func (s *Session) Messages(p Persona) []Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Message, len(s.threads[p]))
	copy(out, s.threads[p])
	return out
}

// LastMessage returns the content of the most recent reply in any thread.
func (s *Session) LastMessage() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastMessage
}

var (
	ErrSessionNotFound = errors.New("chat session not found")
	ErrUnknownPersona  = errors.New("unknown persona")
)

// Hub owns the chat sessions of the process lifetime. Session state is
// client-local by design; nothing here is persisted.
type Hub struct {
	mu       sync.Mutex
	sessions []*Session
}

// NewHub returns a hub with no sessions.
func NewHub() *Hub {
	return &Hub{}
}

// CreateSession opens a new conversation with every persona thread seeded by
// its greeting.
func (h *Hub) CreateSession() *Session {
	h.mu.Lock()
	defer h.mu.Unlock()

	now := time.Now()
	s := &Session{
		ID:        uuid.NewString(),
		Name:      fmt.Sprintf("Conversation %d", len(h.sessions)+1),
		CreatedAt: now,
		threads:   make(map[Persona][]Message),
	}
	for _, p := range Personas() {
		s.threads[p] = []Message{{
			ID:        uuid.NewString(),
			Role:      RoleAI,
			Content:   Greeting(p),
			CreatedAt: now,
		}}
	}
	h.sessions = append(h.sessions, s)
	return s
}

// Sessions lists conversations newest-first.
func (h *Hub) Sessions() []*Session {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]*Session, len(h.sessions))
	for i, s := range h.sessions {
		out[len(h.sessions)-1-i] = s
	}
	return out
}

// Session returns a conversation by id.
func (h *Hub) Session(sessionID string) (*Session, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, s := range h.sessions {
		if s.ID == sessionID {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
}

// Send appends the user's question and the canned persona answer to the
// session's thread and returns the answer message.
func (h *Hub) Send(sessionID string, p Persona, content string) (Message, error) {
	if !p.Valid() {
		return Message{}, fmt.Errorf("%w: %q", ErrUnknownPersona, p)
	}

	s, err := h.Session(sessionID)
	if err != nil {
		return Message{}, err
	}

	now := time.Now()
	user := Message{ID: uuid.NewString(), Role: RoleUser, Content: content, CreatedAt: now}
	reply := Message{ID: uuid.NewString(), Role: RoleAI, Content: Respond(p, content), CreatedAt: now}

	s.mu.Lock()
	s.threads[p] = append(s.threads[p], user, reply)
	s.lastMessage = reply.Content
	s.mu.Unlock()
	return reply, nil
}

// ImportRecords drops a system note into the persona thread telling the user
// their latest records are now part of the conversation context.
func (h *Hub) ImportRecords(sessionID string, p Persona) (Message, error) {
	if !p.Valid() {
		return Message{}, fmt.Errorf("%w: %q", ErrUnknownPersona, p)
	}

	s, err := h.Session(sessionID)
	if err != nil {
		return Message{}, err
	}

	msg := Message{
		ID:        uuid.NewString(),
		Role:      RoleSystem,
		Content:   "✅ Successfully imported the latest growth and health records. The AI will now answer based on this data.",
		CreatedAt: time.Now(),
	}
	s.mu.Lock()
	s.threads[p] = append(s.threads[p], msg)
	s.mu.Unlock()
	return msg, nil
}
