package main

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

func (app *application) routes() http.Handler {
	if !app.Config.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())

	// simple logger middleware that uses zap
	r.Use(func(c *gin.Context) {
		start := time.Now()
		c.Next()
		app.Logger.Sugar().Infow("http", "method", c.Request.Method, "path", c.Request.URL.Path, "status", c.Writer.Status(), "duration", time.Since(start))
	})

	// CORS Middleware
	trusted := strings.Join(app.Config.GetCORSOrigins(), ", ")
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", trusted)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	v1 := r.Group("/api/v1")
	{
		v1.POST("/signup", app.Handler.SignUp)
		v1.POST("/login", app.Handler.Login)
	}

	protected := v1.Group("/")
	protected.Use(app.AuthMiddleware())
	{
		protected.GET("/me", app.Handler.Me)
		protected.POST("/logout", app.Handler.Logout)

		// journal routes
		protected.GET("/categories", app.Handler.ListCategories)
		protected.POST("/children", app.Handler.RegisterChild)
		protected.GET("/children", app.Handler.ListChildren)
		protected.GET("/children/onboarding", app.Handler.Onboarding)
		protected.POST("/children/:id/entries", app.Handler.CreateEntry)
		protected.GET("/children/:id/entries", app.Handler.ListEntries)
		protected.GET("/children/:id/entries/recent", app.Handler.RecentEntries)

		// chat routes
		protected.GET("/chat/personas", app.Handler.ListPersonas)
		protected.POST("/chat/sessions", app.Handler.CreateChatSession)
		protected.GET("/chat/sessions", app.Handler.ListChatSessions)
		protected.GET("/chat/sessions/:id", app.Handler.GetChatSession)
		protected.POST("/chat/sessions/:id/messages", app.Handler.SendChatMessage)
		protected.POST("/chat/sessions/:id/import-records", app.Handler.ImportChatRecords)

		// community routes
		protected.POST("/community/posts", app.Handler.CreatePost)
		protected.GET("/community/posts", app.Handler.ListPosts)
		protected.POST("/community/posts/:id/like", app.Handler.LikePost)
	}

	return r
}
