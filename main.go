package main

import (
	"embed"
	"fmt"
	"os"
	"strconv"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/rtaylor52242/logo-animator-studio/common"
	"github.com/rtaylor52242/logo-animator-studio/common/config"
	"github.com/rtaylor52242/logo-animator-studio/common/logger"
	"github.com/rtaylor52242/logo-animator-studio/middleware"
	"github.com/rtaylor52242/logo-animator-studio/monitor"
	"github.com/rtaylor52242/logo-animator-studio/router"
	"github.com/rtaylor52242/logo-animator-studio/studio"
)

//go:embed web/build/*
var buildFS embed.FS

func main() {
	common.Init()
	logger.SetupLogger()
	logger.SysLog(fmt.Sprintf("Logo Animator Studio %s started", common.Version))
	if os.Getenv("GIN_MODE") != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	if config.DebugEnabled {
		logger.SysLog("running in debug mode")
	}
	if config.GeminiAPIKey == "" && config.KeySelectorURL == "" {
		logger.SysLog("no GEMINI_API_KEY or KEY_SELECTOR_URL configured, generation will be gated until one is provided")
	}

	studio.Sessions.StartJanitor()
	monitor.StartGoroutineMonitor()

	// Initialize HTTP server
	server := gin.New()
	server.Use(gin.Recovery())
	server.Use(middleware.RequestId())
	server.Use(middleware.StudioPanicRecover())
	middleware.SetUpLogger(server)
	// Initialize session store
	store := cookie.NewStore([]byte(config.SessionSecret))
	server.Use(sessions.Sessions("session", store))

	router.SetRouter(server, buildFS)

	var port = os.Getenv("PORT")
	if port == "" {
		port = strconv.Itoa(*common.Port)
	}
	err := server.Run(":" + port)
	if err != nil {
		logger.FatalLog("failed to start HTTP server: " + err.Error())
	}
}
