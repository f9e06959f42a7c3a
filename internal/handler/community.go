package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/twkim02/todoc-chat-ai/internal/community"
	"github.com/twkim02/todoc-chat-ai/pkg"
	"github.com/twkim02/todoc-chat-ai/pkg/model"
	"github.com/twkim02/todoc-chat-ai/pkg/response"
)

// CreatePost publishes a community post. The feed preview is extracted from
// the content server-side so clients never render raw HTML in the list view.
// POST /api/v1/community/posts
func (app *Application) CreatePost(c *gin.Context) {
	claims := app.GetClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "")
		return
	}

	var req model.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		app.Logger.Sugar().Warnw("create post bad request", "err", err)
		response.BadRequest(c, err.Error())
		return
	}

	preview, err := community.Preview(req.Content, community.PreviewLength)
	if err != nil {
		app.Logger.Sugar().Warnw("post preview failed", "err", err)
		response.BadRequest(c, "could not parse post content")
		return
	}

	post := model.Post{
		UserID:   claims.UserID,
		Author:   claims.Email,
		Category: req.Category,
		Title:    req.Title,
		Content:  req.Content,
		Preview:  preview,
		Tags:     community.NormalizeTags(req.Tags, pkg.Slugify),
	}
	if err := app.PostRepo.Create(c.Request.Context(), &post); err != nil {
		app.Logger.Sugar().Errorw("post create failed", "user", claims.UserID, "err", err)
		response.InternalError(c, "could not create post")
		return
	}

	response.Created(c, post)
}

// ListPosts returns the community feed, newest first.
// GET /api/v1/community/posts
func (app *Application) ListPosts(c *gin.Context) {
	var q model.ListPostsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 || q.PageSize > 100 {
		q.PageSize = 20
	}

	limit := q.PageSize
	offset := (q.Page - 1) * q.PageSize
	posts, total, err := app.PostRepo.List(c.Request.Context(), q.Category, limit, offset)
	if err != nil {
		app.Logger.Sugar().Errorw("list posts repo error", "err", err)
		response.InternalError(c, "")
		return
	}

	response.OKWithMeta(c, posts, &response.Meta{
		Page:     q.Page,
		PageSize: q.PageSize,
		Total:    total,
		HasNext:  offset+len(posts) < total,
	})
}

// LikePost bumps a post's like counter.
// POST /api/v1/community/posts/:id/like
func (app *Application) LikePost(c *gin.Context) {
	likes, err := app.PostRepo.Like(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.NotFound(c, "post not found")
		return
	}
	response.OK(c, gin.H{"likes": likes})
}
