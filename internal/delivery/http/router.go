package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gdugdh24/matrimony-backend/internal/delivery/http/handler"
	"github.com/gdugdh24/matrimony-backend/internal/delivery/http/middleware"
)

type Router struct {
	authHandler     *handler.AuthHandler
	profileHandler  *handler.ProfileHandler
	matchHandler    *handler.MatchHandler
	interestHandler *handler.InterestHandler
	authMiddleware  *middleware.AuthMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	profileHandler *handler.ProfileHandler,
	matchHandler *handler.MatchHandler,
	interestHandler *handler.InterestHandler,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		authHandler:     authHandler,
		profileHandler:  profileHandler,
		matchHandler:    matchHandler,
		interestHandler: interestHandler,
		authMiddleware:  authMiddleware,
	}
}

func (r *Router) Setup() (*gin.Engine, error) {
	if err := handler.RegisterValidators(); err != nil {
		return nil, err
	}

	var router *gin.Engine
	if gin.Mode() == gin.ReleaseMode {
		router = gin.New()
		router.Use(gin.Recovery())
	} else {
		router = gin.Default()
	}
	router.Use(middleware.RequestID(), middleware.Metrics())

	// Health check (supports both GET and HEAD)
	healthHandler := func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", r.authHandler.Register)
			auth.POST("/login", r.authHandler.Login)
			auth.GET("/me", r.authMiddleware.RequireAuth(), r.authHandler.Me)
		}

		// Protected routes
		protected := v1.Group("")
		protected.Use(r.authMiddleware.RequireAuth())
		{
			profile := protected.Group("/profile")
			{
				profile.GET("/me", r.profileHandler.GetMyProfile)
				profile.PUT("/me", r.profileHandler.UpsertMyProfile)
				profile.PUT("/me/education", r.profileHandler.UpsertEducation)
				profile.PUT("/me/career", r.profileHandler.UpsertCareer)
				profile.PUT("/me/family", r.profileHandler.UpsertFamily)
				profile.GET("/me/preferences", r.profileHandler.GetMyPreferences)
				profile.PUT("/me/preferences", r.profileHandler.UpsertPreferences)
				profile.GET("/me/horoscope", r.profileHandler.GetMyHoroscope)
				profile.PUT("/me/horoscope", r.profileHandler.UpsertHoroscope)
				profile.GET("/:user_id", r.profileHandler.GetProfileByUserID)
			}
			protected.GET("/complete-profile/:user_id", r.profileHandler.GetCompleteProfile)
			protected.GET("/my-profile", r.profileHandler.GetMyCompleteProfile)

			matches := protected.Group("/matches")
			{
				matches.GET("", r.matchHandler.GetMatches)
				matches.GET("/:user_id/compatibility", r.matchHandler.GetCompatibility)
				matches.GET("/:user_id/insight", r.matchHandler.GetInsight)
			}
			protected.GET("/search", r.matchHandler.Search)

			interests := protected.Group("/interests")
			{
				interests.POST("", r.interestHandler.Send)
				interests.PUT("/:id", r.interestHandler.Respond)
				interests.GET("/sent", r.interestHandler.ListSent)
				interests.GET("/received", r.interestHandler.ListReceived)
			}
		}
	}

	return router, nil
}
