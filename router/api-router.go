package router

import (
	"github.com/rtaylor52242/logo-animator-studio/controller"
	"github.com/rtaylor52242/logo-animator-studio/middleware"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

func SetApiRouter(router *gin.Engine) {
	router.Use(middleware.CORS())
	apiRouter := router.Group("/api")
	// Streaming endpoints must not pass through the gzip buffer.
	apiRouter.Use(gzip.Gzip(gzip.DefaultCompression,
		gzip.WithExcludedPaths([]string{"/api/animate/progress", "/api/animate/ws", "/api/video"})))
	apiRouter.Use(middleware.StudioSession())
	{
		apiRouter.GET("/status", controller.GetStatus)

		apiRouter.GET("/session", controller.GetSession)
		apiRouter.POST("/session/reset", controller.ResetSession)

		apiRouter.GET("/credential", controller.GetCredential)
		apiRouter.POST("/credential/select", controller.SelectCredential)

		apiRouter.POST("/generate", controller.GenerateLogo)

		apiRouter.POST("/animate", controller.AnimateLogo)
		apiRouter.GET("/animate/progress", controller.AnimateProgress)
		apiRouter.GET("/animate/ws", controller.AnimateProgressWS)

		apiRouter.GET("/video/:id", controller.GetVideo)

		apiRouter.GET("/monitor/health", controller.GetHealth)
	}
}
