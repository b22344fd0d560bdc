package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rtaylor52242/logo-animator-studio/relay/model"
	"github.com/rtaylor52242/logo-animator-studio/studio"
)

// GetVideo handles GET /api/video/:id and serves the downloaded
// animation bytes straight from the in-memory store.
func GetVideo(c *gin.Context) {
	id := c.Param("id")
	data, mimeType, ok := studio.Sessions.Videos.Get(id)
	if !ok {
		writeError(c, &model.ErrorWithStatusCode{
			StatusCode: http.StatusNotFound,
			Error: model.Error{
				Message: "video not found",
				Type:    model.ErrTypeValidation,
				Code:    "video_not_found",
			},
		})
		return
	}
	c.Header("Cache-Control", "private, max-age=86400")
	c.Data(http.StatusOK, mimeType, data)
}
