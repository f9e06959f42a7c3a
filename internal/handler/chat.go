package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/twkim02/todoc-chat-ai/internal/chat"
	"github.com/twkim02/todoc-chat-ai/pkg/model"
	"github.com/twkim02/todoc-chat-ai/pkg/response"
)

// ListPersonas returns the available advisors with their greeting and the
// suggested quick questions the client renders as tappable chips.
// GET /api/v1/chat/personas
func (app *Application) ListPersonas(c *gin.Context) {
	out := make([]gin.H, 0, len(chat.Personas()))
	for _, p := range chat.Personas() {
		out = append(out, gin.H{
			"persona":         p,
			"greeting":        chat.Greeting(p),
			"quick_questions": chat.QuickQuestions(p),
		})
	}
	response.OK(c, out)
}

// CreateChatSession opens a conversation seeded with every persona's greeting.
// POST /api/v1/chat/sessions
func (app *Application) CreateChatSession(c *gin.Context) {
	s := app.Chat.CreateSession()
	response.Created(c, model.NewSessionResponse(s))
}

// ListChatSessions lists conversations newest-first.
// GET /api/v1/chat/sessions
func (app *Application) ListChatSessions(c *gin.Context) {
	sessions := app.Chat.Sessions()
	out := make([]model.SessionResponse, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, model.NewSessionResponse(s))
	}
	response.OK(c, out)
}

// GetChatSession returns one conversation with all persona threads.
// GET /api/v1/chat/sessions/:id
func (app *Application) GetChatSession(c *gin.Context) {
	s, err := app.Chat.Session(c.Param("id"))
	if err != nil {
		response.NotFound(c, "chat session not found")
		return
	}
	response.OK(c, model.NewSessionResponse(s))
}

// SendChatMessage appends the user's question and the canned persona reply.
// POST /api/v1/chat/sessions/:id/messages
func (app *Application) SendChatMessage(c *gin.Context) {
	var req model.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	reply, err := app.Chat.Send(c.Param("id"), chat.Persona(req.Persona), req.Content)
	if err != nil {
		app.chatError(c, err)
		return
	}
	response.OK(c, reply)
}

// ImportChatRecords drops the "records imported" system note into a thread.
// POST /api/v1/chat/sessions/:id/import-records
func (app *Application) ImportChatRecords(c *gin.Context) {
	var req model.ImportRecordsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	msg, err := app.Chat.ImportRecords(c.Param("id"), chat.Persona(req.Persona))
	if err != nil {
		app.chatError(c, err)
		return
	}
	response.OK(c, msg)
}

func (app *Application) chatError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, chat.ErrSessionNotFound):
		response.NotFound(c, "chat session not found")
	case errors.Is(err, chat.ErrUnknownPersona):
		response.BadRequest(c, err.Error())
	default:
		app.Logger.Sugar().Errorw("chat error", "err", err)
		response.InternalError(c, "")
	}
}
