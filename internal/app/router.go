package app

import (
	"talkify_backend/docs"
	"talkify_backend/internal/config"
	"talkify_backend/internal/middleware"
	"talkify_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c)
	a.registerAuthRoutes(router, c, cfg)
	a.registerAdminRoutes(router, c, cfg)
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	public.Use(middleware.RequireJSON())
	{
		public.GET("/health", c.health.Health)

		public.POST("/auth/register", c.auth.Register)
		public.POST("/auth/login", c.auth.Login)

		public.GET("/words", c.word.List)
		public.GET("/words/daily", c.word.Daily)
		public.GET("/words/categories", c.word.Categories)
		public.GET("/words/levels", c.word.Levels)
		public.GET("/words/:id", c.word.Get)

		public.GET("/quizzes", c.quiz.List)
		public.GET("/quizzes/:id", c.quiz.Get)
		public.GET("/quizzes/:id/questions", c.quiz.Questions)

		public.GET("/grammar", c.grammar.List)
		public.GET("/grammar/:id", c.grammar.Get)
	}
}

func (a *App) registerAuthRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	authorized := router.Group("/api")
	authorized.Use(middleware.RequireJSON(), middleware.AuthMiddleware(cfg))
	{
		authorized.GET("/auth/me", c.auth.Me)
		authorized.PUT("/auth/profile", c.auth.UpdateProfile)
		authorized.POST("/auth/avatar", c.auth.UploadAvatar)

		authorized.POST("/words/progress", c.word.RecordProgress)
		authorized.GET("/words/progress", c.word.ListProgress)

		authorized.POST("/quizzes/submit", c.quiz.Submit)
		authorized.GET("/quizzes/history", c.quiz.History)
		authorized.GET("/quizzes/stats", c.quiz.Stats)
		authorized.POST("/sync-results", c.quiz.SyncResults)

		authorized.GET("/progress/stats", c.progress.Stats)
		authorized.GET("/progress/words", c.progress.Words)
		authorized.GET("/progress/daily", c.progress.Daily)
		authorized.GET("/progress/sessions", c.progress.ListSessions)
		authorized.POST("/progress/sessions", c.progress.StartSession)
		authorized.PUT("/progress/sessions/:id", c.progress.CompleteSession)

		authorized.GET("/gamification/achievements", c.gamification.Achievements)
		authorized.GET("/gamification/my-achievements", c.gamification.MyAchievements)
		authorized.GET("/gamification/streak", c.gamification.Streak)
		authorized.POST("/gamification/activity", c.gamification.LogActivity)

		authorized.GET("/chat/conversations", c.chat.ListConversations)
		authorized.POST("/chat/conversations", c.chat.CreateConversation)
		authorized.GET("/chat/conversations/:id/messages", c.chat.ListMessages)
		authorized.POST("/chat/conversations/:id/messages", c.chat.AddMessage)
	}
}

func (a *App) registerAdminRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	admin := router.Group("/api/admin")
	admin.Use(middleware.RequireJSON(), middleware.AdminMiddleware(middleware.SharedKeyAuthorizer(cfg.Admin.SecretKey)))
	{
		admin.GET("/dashboard", c.admin.Dashboard)

		admin.GET("/users", c.admin.ListUsers)
		admin.GET("/users/:id", c.admin.GetUser)
		admin.DELETE("/users/:id", c.admin.DeleteUser)

		admin.GET("/words", c.admin.ListWords)
		admin.POST("/words", c.admin.CreateWord)
		admin.PUT("/words/:id", c.admin.UpdateWord)
		admin.DELETE("/words/:id", c.admin.DeleteWord)

		admin.GET("/quizzes", c.admin.ListQuizzes)
		admin.POST("/quizzes", c.admin.CreateQuiz)
		admin.GET("/quizzes/:id", c.admin.GetQuiz)
		admin.PUT("/quizzes/:id", c.admin.UpdateQuiz)
		admin.DELETE("/quizzes/:id", c.admin.DeleteQuiz)

		admin.GET("/grammar", c.admin.ListGrammar)
		admin.POST("/grammar", c.admin.CreateGrammar)
		admin.PUT("/grammar/:id", c.admin.UpdateGrammar)
		admin.DELETE("/grammar/:id", c.admin.DeleteGrammar)

		admin.GET("/achievements", c.admin.ListAchievements)
		admin.POST("/achievements/seed", c.admin.SeedAchievements)
	}
}
