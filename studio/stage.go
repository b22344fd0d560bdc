package studio

// Stage is the single discrete state of a browser session. Exactly
// one stage is active at a time.
type Stage string

const (
	StageAwaitingCredential Stage = "awaiting_credential"
	StageNoCredential       Stage = "no_credential"
	StageIdle               Stage = "idle"
	StageGeneratingImage    Stage = "generating_image"
	StageImageReady         Stage = "image_ready"
	StageGeneratingVideo    Stage = "generating_video"
	StageVideoReady         Stage = "video_ready"
)

// CredentialState is the gate's tri-state view of whether a usable
// API credential exists.
type CredentialState string

const (
	CredentialUnknown CredentialState = "unknown"
	CredentialAbsent  CredentialState = "absent"
	CredentialPresent CredentialState = "present"
)
