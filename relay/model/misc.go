package model

// Error is the wire form every failure is reduced to, OpenAI style so
// browser clients and proxies all parse it the same way.
type Error struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Param   string `json:"param"`
	Code    any    `json:"code"`
}

type ErrorWithStatusCode struct {
	Error
	StatusCode int `json:"status_code"`
}

// Error types, one per failure class in the studio.
const (
	ErrTypeValidation = "validation_error"
	ErrTypeCredential = "credential_error"
	ErrTypeGeneration = "generation_error"
	ErrTypeAnimation  = "animation_error"
	ErrTypeAPI        = "api_error"
)

// Fixed user-facing messages. Cause detail is logged, never shown,
// except for the not-found special case which is surfaced verbatim.
const (
	MsgEmptyPrompt    = "Please enter a prompt to generate a logo."
	MsgGenerateFailed = "Failed to generate logo. Please try a different prompt."
	MsgAnimateFailed  = "Failed to animate logo. Please try again."
	MsgNoDownloadLink = "no download link"
	MsgEntityNotFound = "Requested entity was not found."
)
