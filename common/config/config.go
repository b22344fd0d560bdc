package config

import (
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rtaylor52242/logo-animator-studio/common/env"
)

var ServiceName = "logo-animator-studio"
var InstanceId = uuid.New().String()[:8]

var SessionSecret = uuid.New().String()

var DebugEnabled = strings.ToLower(os.Getenv("DEBUG")) == "true"

// Gemini provider settings. A single provider by design; there is no
// channel abstraction here.
var GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
var GeminiBaseURL = env.String("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com")
var GeminiVersion = env.String("GEMINI_API_VERSION", "v1beta")

var ImageModel = env.String("IMAGE_MODEL", "imagen-3.0-generate-002")
var VideoModel = env.String("VIDEO_MODEL", "veo-2.0-generate-001")

// VideoResolution is the fixed target resolution sent with every
// animation job.
var VideoResolution = env.String("VIDEO_RESOLUTION", "720p")

// PollInterval is the unconditional delay between operation polls.
// There is deliberately no backoff and no poll cap; the remote
// operation owns completion timing.
var PollInterval = time.Duration(env.Int("POLL_INTERVAL", 8)) * time.Second

var RelayTimeout = env.Int("RELAY_TIMEOUT", 0) // unit is second
var UpstreamProxy = os.Getenv("UPSTREAM_PROXY")

// KeySelectorURL, when set, names the external key chooser surface the
// credential gate hands off to. When empty, requesting a credential
// fails and the session stays without one.
var KeySelectorURL = os.Getenv("KEY_SELECTOR_URL")

// SessionTTL bounds how long an idle browser session's in-memory state
// is retained before the janitor drops it.
var SessionTTL = time.Duration(env.Int("SESSION_TTL", 3600)) * time.Second

var DefaultPrompt = env.String("DEFAULT_PROMPT", "A robot holding a red skateboard")

// ImagePromptPrefix is prepended to the user prompt for every still
// generation so results come back as clean logo marks.
var ImagePromptPrefix = env.String("IMAGE_PROMPT_PREFIX",
	"A professional, modern, minimalist vector logo design of ")

// AnimationPrompt is the fixed style prompt sent with every animation
// job; the user never edits it.
var AnimationPrompt = env.String("ANIMATION_PROMPT",
	"Animate this logo: make it come alive with smooth, professional motion graphics, subtle shine and depth, looping seamlessly")

// InvalidKeyKeywords classifies upstream errors that mean the
// configured credential is unusable. Matching any of these downgrades
// the session's credential state so the next attempt re-acquires one.
// One keyword per line.
var InvalidKeyKeywords = `api key not valid
api_key_invalid
invalid api key
invalid_api_key
permission denied
permission_denied
unauthenticated`
