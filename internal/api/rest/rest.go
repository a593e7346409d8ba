package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/suitter-labs/suitter-indexer/internal/api/middleware"
	"github.com/suitter-labs/suitter-indexer/internal/domain"
	"github.com/suitter-labs/suitter-indexer/internal/suitter"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, service suitter.Service, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	v1 := router.Group("/api/v1")

	// Read endpoints (public)
	v1.GET("/account", handler.GetAccount)
	v1.GET("/posts", handler.ListPosts)
	v1.GET("/posts/:id", handler.GetPost)
	v1.GET("/posts/:id/comments", handler.ListComments)
	v1.GET("/posts/:id/likes/:address", handler.HasLiked)
	v1.GET("/profiles/:address", handler.GetProfile)
	v1.GET("/profiles/:address/posts", handler.ListPostsByAuthor)

	// Write endpoints sign with the service wallet
	writes := v1.Group("", middleware.Auth(authCfg))
	writes.POST("/profiles", handler.CreateProfile)
	writes.POST("/posts", handler.CreatePost)
	writes.POST("/posts/:id/likes", handler.LikePost)
	writes.POST("/posts/:id/comments", handler.CommentOnPost)
	writes.POST("/gas/estimate", handler.EstimateGas)
	writes.DELETE("/index", handler.ClearIndex)

	// Operations the contract has no capability for
	writes.PUT("/profiles", handler.Unsupported(func(c *gin.Context) error {
		_, err := service.UpdateProfile(c.Request.Context(), "", "", "")
		return err
	}))
	writes.DELETE("/posts/:id", handler.Unsupported(func(c *gin.Context) error {
		_, err := service.DeletePost(c.Request.Context(), domain.ObjectID(c.Param("id")))
		return err
	}))
	writes.DELETE("/posts/:id/likes", handler.Unsupported(func(c *gin.Context) error {
		_, err := service.UnlikePost(c.Request.Context(), domain.ObjectID(c.Param("id")))
		return err
	}))
	writes.POST("/posts/:id/reshares", handler.Unsupported(func(c *gin.Context) error {
		_, err := service.ResharePost(c.Request.Context(), domain.ObjectID(c.Param("id")))
		return err
	}))
	writes.POST("/follows/:address", handler.Unsupported(func(c *gin.Context) error {
		_, err := service.FollowUser(c.Request.Context(), domain.ObjectID(c.Param("address")))
		return err
	}))
	writes.DELETE("/follows/:address", handler.Unsupported(func(c *gin.Context) error {
		_, err := service.UnfollowUser(c.Request.Context(), domain.ObjectID(c.Param("address")))
		return err
	}))
	writes.POST("/notifications/:id/read", handler.Unsupported(func(c *gin.Context) error {
		_, err := service.MarkNotificationRead(c.Request.Context(), c.Param("id"))
		return err
	}))
	v1.GET("/profiles/:address/followers", handler.Unsupported(func(c *gin.Context) error {
		_, err := service.GetFollowers(c.Request.Context(), domain.ObjectID(c.Param("address")), 0, 0)
		return err
	}))
	v1.GET("/profiles/:address/following", handler.Unsupported(func(c *gin.Context) error {
		_, err := service.GetFollowing(c.Request.Context(), domain.ObjectID(c.Param("address")), 0, 0)
		return err
	}))
	v1.GET("/notifications", handler.Unsupported(func(c *gin.Context) error {
		_, err := service.GetNotifications(c.Request.Context(), 0, 0)
		return err
	}))
}
