package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/rtaylor52242/logo-animator-studio/common/helper"
)

const StudioSessionKey = "studio_session_id"

// StudioSession binds the browser to its server-side state machine:
// every caller gets a stable session id via the cookie store.
func StudioSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		id, _ := session.Get(StudioSessionKey).(string)
		if id == "" {
			id = helper.GenSessionID()
			session.Set(StudioSessionKey, id)
			if err := session.Save(); err != nil {
				abortWithMessage(c, http.StatusInternalServerError, "failed to persist session cookie")
				return
			}
		}
		c.Set(StudioSessionKey, id)
		c.Next()
	}
}
