package studio

import (
	"net/http"

	relaymodel "github.com/rtaylor52242/logo-animator-studio/relay/model"
)

// TransitionError is a state machine rejection: the requested action
// is not legal from the session's current state. It maps directly to
// the wire error form.
type TransitionError struct {
	Type       string
	Message    string
	StatusCode int
}

func (e *TransitionError) Error() string {
	return e.Message
}

func (e *TransitionError) Wire() *relaymodel.ErrorWithStatusCode {
	return &relaymodel.ErrorWithStatusCode{
		Error: relaymodel.Error{
			Message: e.Message,
			Type:    e.Type,
			Code:    "invalid_transition",
		},
		StatusCode: e.StatusCode,
	}
}

var (
	ErrEmptyPrompt = &TransitionError{
		Type:       relaymodel.ErrTypeValidation,
		Message:    relaymodel.MsgEmptyPrompt,
		StatusCode: http.StatusBadRequest,
	}
	ErrNoCredential = &TransitionError{
		Type:       relaymodel.ErrTypeCredential,
		Message:    "No API credential is available. Select a key first.",
		StatusCode: http.StatusUnauthorized,
	}
	ErrSelectorUnavailable = &TransitionError{
		Type:       relaymodel.ErrTypeCredential,
		Message:    "Key selection is not available in this environment.",
		StatusCode: http.StatusNotImplemented,
	}
	ErrGenerateBusy = &TransitionError{
		Type:       relaymodel.ErrTypeGeneration,
		Message:    "A logo is already being generated.",
		StatusCode: http.StatusConflict,
	}
	ErrAnimateBusy = &TransitionError{
		Type:       relaymodel.ErrTypeAnimation,
		Message:    "An animation is already running.",
		StatusCode: http.StatusConflict,
	}
	ErrNoImage = &TransitionError{
		Type:       relaymodel.ErrTypeAnimation,
		Message:    "Generate a logo before animating it.",
		StatusCode: http.StatusConflict,
	}
	ErrInvalidAspectRatio = &TransitionError{
		Type:       relaymodel.ErrTypeValidation,
		Message:    "Aspect ratio must be 16:9 or 9:16.",
		StatusCode: http.StatusBadRequest,
	}
)
