package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func (app *application) routes() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery())

	// request logging via zap
	r.Use(func(c *gin.Context) {
		start := time.Now()
		c.Next()
		app.Logger.Sugar().Infow("http",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	})

	trusted := map[string]bool{}
	for _, origin := range app.Config.GetCORSOrigins() {
		trusted[origin] = true
	}
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if trusted[origin] {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
			c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, PATCH, DELETE")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	v1 := r.Group("/api/v1")
	{
		v1.POST("/signup", app.Handler.SignUp)
		v1.POST("/login", app.Handler.Login)

		v1.GET("/categories", app.Handler.ListCategories)
		v1.GET("/categories/:name/template", app.Handler.CategoryTemplate)

		v1.GET("/posts", app.Handler.ListPosts)
		v1.GET("/posts/:id", app.Handler.GetPost)
		v1.GET("/posts/:id/comments", app.Handler.ListPostComments)

		v1.GET("/news", app.Handler.ListNews)
		v1.GET("/news/:id", app.Handler.GetNews)
	}

	protected := v1.Group("/")
	protected.Use(app.AuthMiddleware())
	{
		protected.GET("/me", app.Handler.Me)

		protected.POST("/posts", app.Handler.CreatePost)
		protected.PUT("/posts/:id", app.Handler.UpdatePost)
		protected.DELETE("/posts/:id", app.Handler.DeletePost)
		protected.POST("/posts/:id/comments", app.Handler.CreatePostComment)

		protected.POST("/news/:id/comments", app.Handler.CreateNewsComment)

		// guided interview wizard
		protected.POST("/chat/sessions", app.Handler.StartChat)
		protected.POST("/chat/scam-reports", app.Handler.StartScamReport)
		protected.GET("/chat/sessions/:id", app.Handler.GetChatState)
		protected.POST("/chat/sessions/:id/category", app.Handler.ChatSelectCategory)
		protected.POST("/chat/sessions/:id/answers", app.Handler.ChatAnswer)
	}

	admin := v1.Group("/admin")
	admin.Use(app.AdminMiddleware())
	{
		admin.GET("/users", app.Handler.ListProfiles)
		admin.GET("/users/:id/activity", app.Handler.GetUserActivity)
		admin.PUT("/users/:id/role", app.Handler.UpdateRole)
		admin.PUT("/users/:id/persona-memo", app.Handler.SavePersonaMemo)

		admin.POST("/proxy-publish", app.Handler.ProxyPublish)

		admin.GET("/questions", app.Handler.ListQuestions)
		admin.POST("/questions", app.Handler.AddQuestion)
		admin.PUT("/questions/:id", app.Handler.UpdateQuestionText)
		admin.DELETE("/questions/:id", app.Handler.DeleteQuestion)
		admin.POST("/questions/move", app.Handler.MoveQuestion)

		admin.POST("/news", app.Handler.CreateNews)
		admin.POST("/news/import", app.Handler.ImportNews)
		admin.PUT("/news/:id", app.Handler.UpdateNews)
		admin.DELETE("/news/:id", app.Handler.DeleteNews)

		admin.DELETE("/comments/:id", app.Handler.DeletePostComment)
		admin.DELETE("/news-comments/:id", app.Handler.DeleteNewsComment)
	}

	return r
}
