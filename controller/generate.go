package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rtaylor52242/logo-animator-studio/common"
	"github.com/rtaylor52242/logo-animator-studio/relay/channel/gemini"
	relaycontroller "github.com/rtaylor52242/logo-animator-studio/relay/controller"
	relaymodel "github.com/rtaylor52242/logo-animator-studio/relay/model"
	"github.com/rtaylor52242/logo-animator-studio/relay/util"
)

// GenerateLogo handles POST /api/generate: one prompt in, one still
// logo out, synchronously.
func GenerateLogo(c *gin.Context) {
	var request relaymodel.GenerateRequest
	if err := common.UnmarshalBodyReusable(c, &request); err != nil {
		writeError(c, util.ErrorWrapper(err, "invalid_generate_request", http.StatusBadRequest))
		return
	}

	session := currentSession(c)
	if wireErr := relaycontroller.GenerateLogo(c.Request.Context(), gemini.NewClient(), session, request.Prompt); wireErr != nil {
		writeError(c, wireErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "",
		"data":    session.Snapshot(),
	})
}
