package controller

import (
	"context"
	"net/http"

	img "github.com/rtaylor52242/logo-animator-studio/common/image"
	"github.com/rtaylor52242/logo-animator-studio/common/logger"
	relaymodel "github.com/rtaylor52242/logo-animator-studio/relay/model"
	"github.com/rtaylor52242/logo-animator-studio/relay/util"
	"github.com/rtaylor52242/logo-animator-studio/studio"
)

// ImageGenerator is what the generation flow needs from the provider
// client. *gemini.Client satisfies it; tests substitute fakes.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt string) (string, error)
}

// GenerateLogo runs one synchronous still generation for the session.
// Provider failures of any kind are normalized to the one fixed
// generation error; the cause is logged, not shown.
func GenerateLogo(ctx context.Context, client ImageGenerator, session *studio.Session, prompt string) *relaymodel.ErrorWithStatusCode {
	if err := session.BeginGenerate(prompt); err != nil {
		if te, ok := err.(*studio.TransitionError); ok {
			return te.Wire()
		}
		return &relaymodel.ErrorWithStatusCode{
			Error:      relaymodel.Error{Message: err.Error(), Type: relaymodel.ErrTypeAPI},
			StatusCode: http.StatusInternalServerError,
		}
	}

	imageDataURL, err := client.GenerateImage(ctx, prompt)
	if err != nil {
		logger.Errorf(ctx, "logo generation failed: %s", err.Error())
		wireErr := &relaymodel.Error{
			Message: relaymodel.MsgGenerateFailed,
			Type:    relaymodel.ErrTypeGeneration,
			Code:    "generation_failed",
		}
		statusCode := http.StatusBadGateway
		if util.IsInvalidKeyError(err) {
			wireErr = &relaymodel.Error{
				Message: err.Error(),
				Type:    relaymodel.ErrTypeCredential,
				Code:    "invalid_api_key",
			}
			statusCode = http.StatusUnauthorized
			session.FailGenerate(wireErr)
			session.DowngradeCredential()
			return &relaymodel.ErrorWithStatusCode{Error: *wireErr, StatusCode: statusCode}
		}
		session.FailGenerate(wireErr)
		return &relaymodel.ErrorWithStatusCode{Error: *wireErr, StatusCode: statusCode}
	}

	session.CompleteGenerate(imageDataURL)
	if mimeType, raw, decodeErr := img.FromDataURL(imageDataURL); decodeErr == nil {
		if width, height, sizeErr := img.GetImageSize(raw); sizeErr == nil {
			logger.Infof(ctx, "logo generated for session %s: %s %dx%d", session.Id, mimeType, width, height)
			return nil
		}
	}
	logger.Infof(ctx, "logo generated for session %s (%d bytes encoded)", session.Id, len(imageDataURL))
	return nil
}
