package controller

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rtaylor52242/logo-animator-studio/common"
	"github.com/rtaylor52242/logo-animator-studio/common/logger"
	"github.com/rtaylor52242/logo-animator-studio/relay/channel/gemini"
	relaycontroller "github.com/rtaylor52242/logo-animator-studio/relay/controller"
	relaymodel "github.com/rtaylor52242/logo-animator-studio/relay/model"
	"github.com/rtaylor52242/logo-animator-studio/relay/util"
	"github.com/rtaylor52242/logo-animator-studio/studio"
)

// AnimateLogo handles POST /api/animate: it starts the background
// polling loop and returns immediately. Progress arrives over the
// progress stream; the session snapshot reflects the busy flag.
func AnimateLogo(c *gin.Context) {
	var request relaymodel.AnimateRequest
	if err := common.UnmarshalBodyReusable(c, &request); err != nil {
		writeError(c, util.ErrorWrapper(err, "invalid_animate_request", http.StatusBadRequest))
		return
	}

	session := currentSession(c)
	if wireErr := relaycontroller.StartAnimation(gemini.NewClient(), studio.Sessions, session, request.AspectRatio); wireErr != nil {
		writeError(c, wireErr)
		return
	}

	snap := session.Snapshot()
	c.JSON(http.StatusAccepted, gin.H{
		"success": true,
		"message": "",
		"data": relaymodel.AnimateResponse{
			Started:     true,
			AspectRatio: snap.AspectRatio,
		},
	})
}

// AnimateProgress handles GET /api/animate/progress as an SSE stream:
// one event per rotating status message, then a terminal done or
// error event.
func AnimateProgress(c *gin.Context) {
	session := currentSession(c)
	events := session.Subscribe()
	defer session.Unsubscribe(events)

	common.SetEventStreamHeaders(c)

	// A subscriber that arrives after the job settled still gets one
	// terminal event instead of hanging forever.
	if terminal, ok := terminalEventFor(session.Snapshot()); ok {
		c.SSEvent("progress", terminal)
		return
	}

	clientGone := c.Request.Context().Done()
	c.Stream(func(w io.Writer) bool {
		select {
		case <-clientGone:
			return false
		case event, ok := <-events:
			if !ok {
				return false
			}
			c.SSEvent("progress", event)
			return event.Kind == relaymodel.ProgressStatus
		}
	})
}

var wsUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// AnimateProgressWS is the websocket twin of AnimateProgress for
// clients that prefer a socket over SSE.
func AnimateProgressWS(c *gin.Context) {
	session := currentSession(c)

	conn, err := wsUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Errorf(c.Request.Context(), "websocket upgrade failed: %s", err.Error())
		return
	}
	defer conn.Close()

	if terminal, ok := terminalEventFor(session.Snapshot()); ok {
		payload, _ := json.Marshal(terminal)
		_ = conn.WriteMessage(websocket.TextMessage, payload)
		return
	}

	events := session.Subscribe()
	defer session.Unsubscribe(events)

	// Pump the read side so a vanished client unblocks the event loop
	// below instead of leaking it.
	clientGone := make(chan struct{})
	common.SafeGoroutine(func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				close(clientGone)
				return
			}
		}
	})

	for {
		select {
		case <-clientGone:
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			payload, err := json.Marshal(event)
			if err != nil {
				continue
			}
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
			if event.Kind != relaymodel.ProgressStatus {
				return
			}
		}
	}
}

// terminalEventFor reports the already-settled outcome of the last
// animation, if there is one to report.
func terminalEventFor(snap studio.Snapshot) (relaymodel.ProgressEvent, bool) {
	if snap.IsGeneratingVideo {
		return relaymodel.ProgressEvent{}, false
	}
	if snap.Stage == studio.StageVideoReady && snap.VideoURL != "" {
		return relaymodel.ProgressEvent{Kind: relaymodel.ProgressDone, VideoURL: snap.VideoURL}, true
	}
	if snap.LastError != nil {
		return relaymodel.ProgressEvent{Kind: relaymodel.ProgressError, Error: snap.LastError}, true
	}
	return relaymodel.ProgressEvent{}, false
}
