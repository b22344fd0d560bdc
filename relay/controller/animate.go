package controller

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rtaylor52242/logo-animator-studio/common"
	"github.com/rtaylor52242/logo-animator-studio/common/config"
	"github.com/rtaylor52242/logo-animator-studio/common/logger"
	"github.com/rtaylor52242/logo-animator-studio/relay/channel/gemini"
	relaymodel "github.com/rtaylor52242/logo-animator-studio/relay/model"
	"github.com/rtaylor52242/logo-animator-studio/relay/util"
	"github.com/rtaylor52242/logo-animator-studio/studio"
)

// VideoAnimator is what the animation flow needs from the provider
// client: submit a job, re-poll its operation, fetch the result.
type VideoAnimator interface {
	SubmitAnimation(ctx context.Context, imageDataURL string, aspectRatio string) (*gemini.Operation, error)
	PollOperation(ctx context.Context, op *gemini.Operation) (*gemini.Operation, error)
	DownloadVideo(ctx context.Context, uri string) (data []byte, mimeType string, err error)
}

// StartAnimation moves the session into the generating-video stage
// and runs the polling loop in the background. The returned error is
// only a rejection of the transition itself; the loop settles the
// session on its own when the remote job finishes.
func StartAnimation(client VideoAnimator, manager *studio.Manager, session *studio.Session, aspectRatio string) *relaymodel.ErrorWithStatusCode {
	runCtx, seq, err := session.BeginAnimate(aspectRatio)
	if err != nil {
		if te, ok := err.(*studio.TransitionError); ok {
			return te.Wire()
		}
		return &relaymodel.ErrorWithStatusCode{
			Error:      relaymodel.Error{Message: err.Error(), Type: relaymodel.ErrTypeAPI},
			StatusCode: http.StatusInternalServerError,
		}
	}

	snap := session.Snapshot()
	common.AnimateCtxGo(runCtx, func() {
		RunAnimation(runCtx, client, manager, session, seq, snap.Image, snap.AspectRatio)
	})
	return nil
}

// RunAnimation is the long-running-operation loop: submit once, then
// poll the operation snapshot until the remote side reports done,
// emitting a rotating progress message before every unconditional
// delay. No backoff, no iteration cap; only completion, a remote
// error, or cancellation (reset) ends it.
func RunAnimation(ctx context.Context, client VideoAnimator, manager *studio.Manager, session *studio.Session, seq uint64, imageDataURL string, aspectRatio string) {
	op, err := client.SubmitAnimation(ctx, imageDataURL, aspectRatio)

	messageIdx := 0
	for err == nil && !op.Done {
		session.SetStatus(seq, gemini.ProgressMessages[messageIdx%len(gemini.ProgressMessages)])
		messageIdx++

		select {
		case <-ctx.Done():
			logger.Infof(ctx, "animation loop for session %s canceled", session.Id)
			return
		case <-time.After(config.PollInterval):
		}

		op, err = client.PollOperation(ctx, op)
	}

	if err != nil {
		settleAnimationFailure(ctx, session, seq, err)
		return
	}

	resultURI := op.ResultURI()
	if resultURI == "" {
		settleAnimationFailure(ctx, session, seq, errors.New(relaymodel.MsgNoDownloadLink))
		return
	}

	data, mimeType, err := client.DownloadVideo(ctx, resultURI)
	if err != nil {
		settleAnimationFailure(ctx, session, seq, err)
		return
	}

	videoId := manager.Videos.Put(data, mimeType)
	if !session.CompleteAnimate(seq, videoId, "/api/video/"+videoId) {
		// The session moved on (reset) while we were downloading.
		manager.Videos.Delete(videoId)
		return
	}
	logger.Infof(ctx, "animation finished for session %s, %d bytes stored", session.Id, len(data))
}

// settleAnimationFailure classifies the error per the studio's rules:
// not-found is surfaced verbatim, an invalid credential downgrades
// the gate, everything else collapses into the one generic message.
func settleAnimationFailure(ctx context.Context, session *studio.Session, seq uint64, err error) {
	if errors.Is(err, context.Canceled) {
		return
	}
	logger.Errorf(ctx, "animation failed for session %s: %s", session.Id, err.Error())

	wireErr := &relaymodel.Error{
		Type: relaymodel.ErrTypeAnimation,
		Code: "animation_failed",
	}
	credentialRelated := false
	switch {
	case err.Error() == relaymodel.MsgNoDownloadLink:
		wireErr.Message = relaymodel.MsgNoDownloadLink
		wireErr.Code = "no_download_link"
	case strings.HasPrefix(err.Error(), "video download failed:"):
		// Transfer failures keep the status text so the user sees why
		// the finished job could not be fetched.
		wireErr.Message = err.Error()
		wireErr.Code = "download_failed"
	case util.IsNotFoundError(err):
		wireErr.Message = relaymodel.MsgEntityNotFound
		wireErr.Code = "entity_not_found"
	case util.IsInvalidKeyError(err):
		wireErr.Message = err.Error()
		wireErr.Type = relaymodel.ErrTypeCredential
		wireErr.Code = "invalid_api_key"
		credentialRelated = true
	default:
		wireErr.Message = relaymodel.MsgAnimateFailed
	}
	session.FailAnimate(seq, wireErr, credentialRelated)
}
