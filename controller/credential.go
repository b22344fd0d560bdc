package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rtaylor52242/logo-animator-studio/common/config"
	"github.com/rtaylor52242/logo-animator-studio/studio"
)

func GetCredential(c *gin.Context) {
	session := currentSession(c)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "",
		"data": gin.H{
			"state":              session.Snapshot().Credential,
			"selector_available": config.KeySelectorURL != "" || config.GeminiAPIKey != "",
			"selector_url":       config.KeySelectorURL,
		},
	})
}

// SelectCredential hands off to the external key chooser and marks
// the credential present optimistically; a later invalid-key error is
// what actually confirms or revokes the selection.
func SelectCredential(c *gin.Context) {
	session := currentSession(c)
	if err := session.RequestCredential(); err != nil {
		if te, ok := err.(*studio.TransitionError); ok {
			writeError(c, te.Wire())
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "",
		"data":    session.Snapshot(),
	})
}
