package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rtaylor52242/logo-animator-studio/common"
	"github.com/rtaylor52242/logo-animator-studio/common/config"
	"github.com/rtaylor52242/logo-animator-studio/relay/channel/gemini"
	relaymodel "github.com/rtaylor52242/logo-animator-studio/relay/model"
)

func GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "",
		"data": gin.H{
			"version":        common.Version,
			"start_time":     common.StartTime,
			"service_name":   config.ServiceName,
			"default_prompt": config.DefaultPrompt,
			"aspect_ratios":  []string{relaymodel.AspectLandscape, relaymodel.AspectPortrait},
			"image_model":    config.ImageModel,
			"video_model":    config.VideoModel,
			"image_models":   gemini.ImageModelList,
			"video_models":   gemini.VideoModelList,
		},
	})
}

// writeError emits the standard error envelope.
func writeError(c *gin.Context, wireErr *relaymodel.ErrorWithStatusCode) {
	c.JSON(wireErr.StatusCode, gin.H{
		"error": wireErr.Error,
	})
}
