package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/twkim02/todoc-chat-ai/internal/repository"
	"github.com/twkim02/todoc-chat-ai/pkg"
	"github.com/twkim02/todoc-chat-ai/pkg/model"
	"github.com/twkim02/todoc-chat-ai/pkg/response"
)

// SignUp creates a new user.
// POST /api/v1/signup
func (app *Application) SignUp(c *gin.Context) {
	var req model.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		app.Logger.Sugar().Warnw("signup bad request", "err", err)
		response.BadRequest(c, err.Error())
		return
	}

	pwHash, err := pkg.HashPassword(req.Password)
	if err != nil {
		app.Logger.Sugar().Errorw("failed to hash password", "err", err)
		response.InternalError(c, "")
		return
	}

	userID, err := app.UserRepo.Create(c.Request.Context(), req.Email, pwHash)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			response.Conflict(c, "email already registered")
			return
		}
		app.Logger.Sugar().Errorw("user create failed", "email", req.Email, "err", err)
		response.InternalError(c, "could not create user")
		return
	}

	response.Created(c, model.UserResponse{UserID: userID, Email: req.Email})
}

// Login verifies credentials and returns a JWT.
// POST /api/v1/login
func (app *Application) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		app.Logger.Sugar().Warnw("login bad request", "err", err)
		response.BadRequest(c, err.Error())
		return
	}

	ctx := c.Request.Context()
	user, err := app.UserRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		app.Logger.Sugar().Warnw("login user not found", "email", req.Email, "err", err)
		response.Unauthorized(c, "invalid credentials")
		return
	}
	if err := pkg.ComparePassword(user.PasswordHash, req.Password); err != nil {
		app.Logger.Sugar().Warnw("login password mismatch", "email", req.Email)
		response.Unauthorized(c, "invalid credentials")
		return
	}

	token, claims, err := app.TokenMaker.GenerateToken(user.UserID, user.Email, app.TokenTTL)
	if err != nil {
		app.Logger.Sugar().Errorw("error creating token", "err", err)
		response.InternalError(c, "could not generate token")
		return
	}

	response.OK(c, model.TokenResponse{
		AccessToken: token,
		ExpiresAt:   claims.ExpiresAt.Unix(),
		User:        model.UserResponse{UserID: user.UserID, Email: user.Email},
	})
}

// Me returns the current user profile.
// GET /api/v1/me
func (app *Application) Me(c *gin.Context) {
	claims := app.GetClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "")
		return
	}

	user, err := app.UserRepo.GetByID(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Unauthorized(c, "")
		return
	}

	response.OK(c, model.UserResponse{UserID: user.UserID, Email: user.Email})
}

// Logout tears down the session-local state. Tokens are stateless; the client
// drops its copy, and the per-child recent-entry stores are cleared here.
// POST /api/v1/logout
func (app *Application) Logout(c *gin.Context) {
	app.Recents.Clear()
	response.Message(c, "logged out")
}
