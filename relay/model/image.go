package model

// GenerateRequest is the browser's request for one still logo image.
// The generated still comes back inside the session snapshot.
type GenerateRequest struct {
	Prompt string `json:"prompt"`
}
