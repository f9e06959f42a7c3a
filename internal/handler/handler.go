package handler

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/twkim02/todoc-chat-ai/internal/auth"
	"github.com/twkim02/todoc-chat-ai/internal/chat"
	"github.com/twkim02/todoc-chat-ai/internal/children"
	"github.com/twkim02/todoc-chat-ai/internal/journal"
	"github.com/twkim02/todoc-chat-ai/pkg/model"
)

// UserStore is what the auth handlers need from user persistence.
type UserStore interface {
	Create(ctx context.Context, email, passwordHash string) (string, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
	GetByID(ctx context.Context, id string) (model.User, error)
}

// ChildStore resolves children for ownership checks.
type ChildStore interface {
	GetByID(ctx context.Context, id string) (children.Child, error)
}

// EntryStore is the durable persistence collaborator for journal entries.
type EntryStore interface {
	Create(ctx context.Context, childID string, e journal.Entry) (journal.Entry, error)
	ListByChild(ctx context.Context, childID string, limit, offset int) ([]journal.Entry, int, error)
}

// PostStore is the durable home of community posts.
type PostStore interface {
	Create(ctx context.Context, p *model.Post) error
	List(ctx context.Context, category string, limit, offset int) ([]model.Post, int, error)
	Like(ctx context.Context, id string) (int, error)
}

// Application bundles everything the HTTP handlers need.
type Application struct {
	Logger     *zap.Logger
	UserRepo   UserStore
	ChildRepo  ChildStore
	EntryRepo  EntryStore
	PostRepo   PostStore
	TokenMaker *auth.JWTMaker
	TokenTTL   time.Duration
	Children   *children.Service
	Recents    *journal.Stores
	Chat       *chat.Hub
}

// GetClaimsFromContext retrieves the verified token claims set by the auth
// middleware, or nil outside a protected route.
func (app *Application) GetClaimsFromContext(c *gin.Context) *auth.UserClaims {
	v, exists := c.Get("claims")
	if !exists {
		return nil
	}
	claims, ok := v.(*auth.UserClaims)
	if !ok {
		return nil
	}
	return claims
}
