package router

import (
	"net/http"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/learnflow/gateway/internal/config"
	"github.com/learnflow/gateway/internal/handler"
	"github.com/learnflow/gateway/internal/middleware"
	"github.com/learnflow/gateway/internal/response"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth      *handler.AuthHandler
	Page      *handler.PageHandler
	Exercise  *handler.ExerciseHandler
	Quiz      *handler.QuizHandler
	Chat      *handler.ChatHandler
	Analytics *handler.AnalyticsHandler
	WS        *handler.WSHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(handlers *Handlers, cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
		corsConfig.AllowCredentials = true
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Session-ID", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Apply brotli middleware globally.
	router.Use(middleware.Brotli(brotli.DefaultCompression))

	// Resolve the session identity (header or cookie) on every request, then
	// gate protected navigation paths on cookie presence.
	router.Use(middleware.Identity())
	router.Use(middleware.RouteGuard())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// ─── 1. Navigation (guarded by RouteGuard above) ───────────────────
	router.GET("/", handlers.Page.Home)
	router.GET("/login", handlers.Page.Login)
	router.GET("/register", handlers.Page.Register)
	router.GET("/exercises", handlers.Page.Exercises)
	router.GET("/exercises/:id", handlers.Page.Exercise)
	router.GET("/quizzes", handlers.Page.Quizzes)
	router.GET("/quizzes/:id", handlers.Page.Quiz)
	router.GET("/chat", handlers.Page.Chat)
	router.GET("/analytics", handlers.Page.Analytics)
	router.GET("/profile", handlers.Page.Profile)
	router.GET("/settings", handlers.Page.Settings)
	router.GET("/teacher-dashboard", middleware.RequireTeacher(), handlers.Page.TeacherDashboard)
	router.GET("/create-quiz", middleware.RequireTeacher(), handlers.Page.CreateQuizPage)
	router.GET("/create-exercise", middleware.RequireTeacher(), handlers.Page.CreateExercisePage)

	// Rate limiter for auth routes (30 requests per minute per IP).
	authLimiter := middleware.NewRateLimiter(30, time.Minute)

	// ─── 2. Auth API (public, rate limited) ────────────────────────────
	auth := router.Group("/api/auth")
	auth.Use(authLimiter.Middleware())
	{
		auth.POST("/login", handlers.Auth.Login)
		auth.POST("/register", handlers.Auth.Register)
		auth.POST("/logout", handlers.Auth.Logout)
		auth.POST("/set-session", handlers.Auth.SetSession)
		auth.GET("/me", middleware.RequireIdentity(), handlers.Auth.Me)
		auth.PUT("/me", middleware.RequireIdentity(), handlers.Auth.UpdateMe)
		auth.POST("/change-password", middleware.RequireIdentity(), handlers.Auth.ChangePassword)
	}

	// ─── 3. Data API (token required) ──────────────────────────────────
	api := router.Group("/api")
	api.Use(middleware.RequireIdentity())
	{
		api.GET("/exercises", handlers.Exercise.List)
		api.GET("/exercises/:id", handlers.Exercise.Get)
		api.POST("/exercises", middleware.RequireTeacher(), handlers.Exercise.Create)
		api.GET("/topics", handlers.Exercise.Topics)
		api.GET("/topics/levels", handlers.Exercise.Levels)

		api.GET("/quizzes", handlers.Quiz.List)
		api.POST("/quizzes", middleware.RequireTeacher(), handlers.Quiz.Create)
		api.GET("/quizzes/teacher", middleware.RequireTeacher(), handlers.Quiz.TeacherList)
		api.POST("/quizzes/:id/start", handlers.Quiz.Start)
		api.POST("/quizzes/:id/submissions/:sid/answer", handlers.Quiz.Answer)
		api.POST("/quizzes/:id/submissions/:sid/complete", handlers.Quiz.Complete)
		api.GET("/quizzes/:id/submissions/:sid", handlers.Quiz.Submission)

		api.POST("/chat/sessions", handlers.Chat.CreateSession)
		api.GET("/chat/sessions/:id/messages", handlers.Chat.Messages)
		api.POST("/chat/sessions/:id/messages", handlers.Chat.SendMessage)
		api.GET("/chat/sessions/:id/stream", handlers.WS.ChatStream)

		api.GET("/analytics/student/:id/stats", handlers.Analytics.Stats)
		api.GET("/analytics/student/:id/progress", handlers.Analytics.Progress)
		api.GET("/analytics/students", middleware.RequireTeacher(), handlers.Analytics.Students)
	}

	return router
}
