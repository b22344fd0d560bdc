package router

import (
	"embed"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rtaylor52242/logo-animator-studio/common/logger"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetRouter(router *gin.Engine, buildFS embed.FS) {
	SetApiRouter(router)

	swaggerURL := os.Getenv("SWAGGER_JSON_URL")
	if swaggerURL != "" {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(
			swaggerFiles.Handler,
			ginSwagger.URL(swaggerURL),
		))
		logger.SysLog(fmt.Sprintf("Swagger UI enabled at /swagger/index.html (doc: %s)", swaggerURL))
	}

	SetWebRouter(router, buildFS)
}
