package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/twkim02/todoc-chat-ai/internal/children"
	"github.com/twkim02/todoc-chat-ai/pkg/model"
	"github.com/twkim02/todoc-chat-ai/pkg/response"
)

// RegisterChild completes onboarding for the current user.
// POST /api/v1/children
func (app *Application) RegisterChild(c *gin.Context) {
	claims := app.GetClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "")
		return
	}

	var req model.RegisterChildRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		app.Logger.Sugar().Warnw("register child bad request", "err", err)
		response.BadRequest(c, err.Error())
		return
	}

	child, err := app.Children.Register(c.Request.Context(), claims.UserID, req.Name, req.BirthDate, req.Gender)
	if err != nil {
		if isRegistrationError(err) {
			response.ValidationError(c, err.Error())
			return
		}
		app.Logger.Sugar().Errorw("register child failed", "user", claims.UserID, "err", err)
		response.InternalError(c, "could not register child")
		return
	}

	response.Created(c, child)
}

// Onboarding answers the login-time branch: main app or registration screen.
// GET /api/v1/children/onboarding
func (app *Application) Onboarding(c *gin.Context) {
	claims := app.GetClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "")
		return
	}

	has := app.Children.HasChildRegistered(c.Request.Context(), claims.UserID)
	response.OK(c, model.OnboardingResponse{HasChild: has})
}

// ListChildren returns the user's registered children.
// GET /api/v1/children
func (app *Application) ListChildren(c *gin.Context) {
	claims := app.GetClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "")
		return
	}

	kids, err := app.Children.List(c.Request.Context(), claims.UserID)
	if err != nil {
		app.Logger.Sugar().Errorw("list children failed", "user", claims.UserID, "err", err)
		response.InternalError(c, "")
		return
	}
	response.OK(c, kids)
}

func isRegistrationError(err error) bool {
	return errors.Is(err, children.ErrNameRequired) ||
		errors.Is(err, children.ErrDateRequired) ||
		errors.Is(err, children.ErrDateFormat) ||
		errors.Is(err, children.ErrDateInFuture) ||
		errors.Is(err, children.ErrGenderRequired)
}
