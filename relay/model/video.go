package model

// Aspect ratios the animation endpoint accepts. The still image is
// always generated square; the ratio only shapes the video.
const (
	AspectLandscape = "16:9"
	AspectPortrait  = "9:16"
)

func IsValidAspectRatio(ratio string) bool {
	return ratio == AspectLandscape || ratio == AspectPortrait
}

// AnimateRequest starts one animation job for the session's image.
type AnimateRequest struct {
	AspectRatio string `json:"aspect_ratio,omitempty" binding:"omitempty,aspect_ratio"`
}

// AnimateResponse acknowledges that the background job started.
type AnimateResponse struct {
	Started     bool   `json:"started"`
	AspectRatio string `json:"aspect_ratio"`
}

// Progress event kinds streamed while an animation runs.
const (
	ProgressStatus = "status"
	ProgressDone   = "done"
	ProgressError  = "error"
)

// ProgressEvent is one frame of the animation progress stream (SSE or
// websocket). Status events carry cosmetic text only; the terminal
// event carries either the playable video URL or the surfaced error.
type ProgressEvent struct {
	Kind     string `json:"kind"`
	Message  string `json:"message,omitempty"`
	VideoURL string `json:"video_url,omitempty"`
	Error    *Error `json:"error,omitempty"`
}
