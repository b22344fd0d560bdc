package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rtaylor52242/logo-animator-studio/middleware"
	"github.com/rtaylor52242/logo-animator-studio/studio"
)

// currentSession resolves the caller's state machine instance from
// the cookie-bound session id.
func currentSession(c *gin.Context) *studio.Session {
	id := c.GetString(middleware.StudioSessionKey)
	return studio.Sessions.GetOrCreate(id)
}

func GetSession(c *gin.Context) {
	session := currentSession(c)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "",
		"data":    session.Snapshot(),
	})
}

// ResetSession returns the session to idle from any stage, canceling
// an in-flight animation and releasing the stored video bytes.
func ResetSession(c *gin.Context) {
	session := currentSession(c)
	droppedVideoId := session.Reset()
	studio.Sessions.Videos.Delete(droppedVideoId)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "",
		"data":    session.Snapshot(),
	})
}
