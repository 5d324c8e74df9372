// Package router wires middleware and routes into the gin engine.
package router

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	"github.com/cargolink/backend/internal/infrastructure/auth"
	"github.com/cargolink/backend/internal/infrastructure/config"
	"github.com/cargolink/backend/internal/infrastructure/logger"
	"github.com/cargolink/backend/internal/interfaces/http/handler"
	"github.com/cargolink/backend/internal/interfaces/http/middleware"
)

// Handlers collects every route handler the router mounts.
type Handlers struct {
	System    *handler.SystemHandler
	Tracking  *handler.TrackingHandler
	Carrier   *handler.CarrierHandler
	Quiz      *handler.QuizHandler
	Auth      *handler.AuthHandler
	Insight   *handler.InsightHandler
	Community *handler.CommunityHandler
	Feedback  *handler.FeedbackHandler
	Surcharge *handler.SurchargeHandler
}

// New builds the gin engine with the full middleware chain and all routes
// mounted under /api/v1.
func New(cfg *config.Config, log *zap.Logger, jwtService *auth.JWTService, h Handlers) *gin.Engine {
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		_ = engine.SetTrustedProxies(cfg.HTTP.TrustedProxies)
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.GinMiddleware(log))
	engine.Use(logger.Recovery(log))
	engine.Use(otelgin.Middleware(cfg.Telemetry.ServiceName))
	engine.Use(middleware.Secure())
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsCfg.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsCfg.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}
	engine.Use(middleware.CORSWithConfig(corsCfg))

	if cfg.HTTP.RateLimitEnabled {
		engine.Use(middleware.RateLimit(
			middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)))
	}

	// Anonymous write endpoints get their own stricter limiter.
	var writeLimit gin.HandlerFunc
	if cfg.HTTP.WriteRateLimitEnabled {
		writeLimit = middleware.RateLimit(
			middleware.NewRateLimiter(cfg.HTTP.WriteRateLimitCount, cfg.HTTP.WriteRateLimitWindow))
	} else {
		writeLimit = func(c *gin.Context) { c.Next() }
	}

	api := engine.Group("/api/v1")

	system := api.Group("/system")
	{
		system.GET("/ping", h.System.Ping)
		system.GET("/info", h.System.Info)
		system.GET("/health", h.System.Health)
	}

	carriers := api.Group("/carriers")
	{
		carriers.GET("", h.Carrier.List)
		carriers.GET("/categories", h.Carrier.Categories)
	}

	api.POST("/tracking/detect", h.Tracking.Detect)

	quiz := api.Group("/quiz")
	{
		quiz.GET("/questions", h.Quiz.Questions)
		quiz.POST("/score", h.Quiz.Score)
		quiz.GET("/profiles", h.Quiz.Profiles)
		quiz.GET("/profiles/:code", h.Quiz.Profile)
	}

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", h.Auth.Login)
		authGroup.POST("/refresh", h.Auth.Refresh)
		authGroup.GET("/me", middleware.JWTAuth(jwtService), h.Auth.Me)
		authGroup.POST("/editors",
			middleware.JWTAuth(jwtService), middleware.RequireRole("admin"), h.Auth.CreateEditor)
	}

	insights := api.Group("/insights")
	{
		insights.GET("", h.Insight.ListPublished)
		insights.GET("/:slug", h.Insight.Read)
	}

	community := api.Group("/community")
	{
		community.GET("/posts", h.Community.ListPosts)
		community.POST("/posts", writeLimit, h.Community.CreatePost)
		community.GET("/posts/:id", h.Community.GetPost)
		community.PUT("/posts/:id", h.Community.UpdatePost)
		community.DELETE("/posts/:id", h.Community.DeletePost)
		community.POST("/posts/:id/verify", h.Community.VerifyPost)
		community.GET("/posts/:id/comments", h.Community.ListComments)
		community.POST("/posts/:id/comments", writeLimit, h.Community.CreateComment)
		community.DELETE("/comments/:id", h.Community.DeleteComment)
	}

	api.POST("/feedback", writeLimit, h.Feedback.Submit)

	surcharges := api.Group("/surcharges")
	{
		surcharges.GET("", h.Surcharge.Effective)
		surcharges.GET("/:carrier_code/history", h.Surcharge.History)
	}

	admin := api.Group("/admin", middleware.JWTAuth(jwtService))
	{
		adminInsights := admin.Group("/insights")
		{
			adminInsights.GET("", h.Insight.List)
			adminInsights.POST("", h.Insight.Create)
			adminInsights.GET("/:id", h.Insight.Get)
			adminInsights.PUT("/:id", h.Insight.Update)
			adminInsights.DELETE("/:id", h.Insight.Delete)
			adminInsights.POST("/:id/publish", h.Insight.Publish)
			adminInsights.POST("/:id/unpublish", h.Insight.Unpublish)
		}

		adminOnly := admin.Group("", middleware.RequireRole("admin"))
		{
			adminOnly.GET("/feedback", h.Feedback.List)
			adminOnly.POST("/feedback/:id/review", h.Feedback.MarkReviewed)

			adminOnly.GET("/surcharges", h.Surcharge.List)
			adminOnly.PUT("/surcharges/:carrier_code", h.Surcharge.Announce)
			adminOnly.PUT("/surcharges/id/:id", h.Surcharge.Revise)
			adminOnly.DELETE("/surcharges/id/:id", h.Surcharge.Delete)
		}
	}

	return engine
}
