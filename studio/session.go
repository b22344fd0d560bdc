package studio

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/jinzhu/copier"
	"github.com/rtaylor52242/logo-animator-studio/common/config"
	relaymodel "github.com/rtaylor52242/logo-animator-studio/relay/model"
)

// Session is the whole in-memory state of one browser session: the
// user's prompt, generated artifacts, busy flags and the last error.
// Every mutation goes through a transition method; there are no
// ambient globals behind it.
//
// Invariants held by the transitions: StageGeneratingVideo implies
// Image is set; StageVideoReady implies VideoId is set; the error
// slot is cleared at the start of every new action and set only when
// an action settles with a failure.
type Session struct {
	mu sync.Mutex

	Id                string
	Stage             Stage
	Credential        CredentialState
	Prompt            string
	AspectRatio       string
	Image             string // data URL of the generated still
	VideoId           string // key into the video store
	StatusMessage     string
	IsGeneratingImage bool
	IsGeneratingVideo bool
	LastError         *relaymodel.Error

	lastSeen time.Time

	// animSeq guards against a stale animation loop settling a session
	// that was reset (or re-animated) while the loop was in flight.
	animSeq         uint64
	cancelAnimation context.CancelFunc

	subscribers map[chan relaymodel.ProgressEvent]struct{}
}

// Snapshot is the race-free copy of a session handed to HTTP
// handlers.
type Snapshot struct {
	Id                string                 `json:"session_id"`
	Stage             Stage                  `json:"stage"`
	Credential        CredentialState        `json:"credential"`
	Prompt            string                 `json:"prompt"`
	AspectRatio       string                 `json:"aspect_ratio"`
	Image             string                 `json:"image,omitempty"`
	VideoURL          string                 `json:"video_url,omitempty"`
	StatusMessage     string                 `json:"status_message,omitempty"`
	IsGeneratingImage bool                   `json:"is_generating_image"`
	IsGeneratingVideo bool                   `json:"is_generating_video"`
	LastError         *relaymodel.Error      `json:"error,omitempty"`
}

func newSession(id string) *Session {
	return &Session{
		Id:          id,
		Stage:       StageAwaitingCredential,
		Credential:  CredentialUnknown,
		Prompt:      config.DefaultPrompt,
		AspectRatio: relaymodel.AspectLandscape,
		lastSeen:    time.Now(),
		subscribers: make(map[chan relaymodel.ProgressEvent]struct{}),
	}
}

// ResolveCredential moves the session out of the awaiting stage once
// the gate has answered.
func (s *Session) ResolveCredential(state CredentialState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Credential = state
	if s.Stage != StageAwaitingCredential {
		return
	}
	if state == CredentialPresent {
		s.Stage = StageIdle
	} else {
		s.Stage = StageNoCredential
	}
}

// RequestCredential hands off to the external key chooser. The
// selection is recorded optimistically: there is no server-side
// confirmation, a later invalid-credential error is the actual
// confirmation path and downgrades the state again.
func (s *Session) RequestCredential() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.LastError = nil
	if config.KeySelectorURL == "" && config.GeminiAPIKey == "" {
		s.setErrorLocked(ErrSelectorUnavailable)
		return ErrSelectorUnavailable
	}
	s.Credential = CredentialPresent
	if s.Stage == StageNoCredential || s.Stage == StageAwaitingCredential {
		s.Stage = StageIdle
	}
	return nil
}

// DowngradeCredential revokes the optimistic credential after the
// provider rejected the key outright.
func (s *Session) DowngradeCredential() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Credential = CredentialAbsent
	if !s.IsGeneratingImage && !s.IsGeneratingVideo {
		s.Stage = StageNoCredential
	}
}

// BeginGenerate validates the prompt and marks the session busy
// generating a still. An empty prompt never reaches the provider.
func (s *Session) BeginGenerate(prompt string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.LastError = nil
	if s.Credential != CredentialPresent {
		s.setErrorLocked(ErrNoCredential)
		return ErrNoCredential
	}
	if s.IsGeneratingImage {
		return ErrGenerateBusy
	}
	if s.IsGeneratingVideo {
		return ErrAnimateBusy
	}
	if strings.TrimSpace(prompt) == "" {
		s.setErrorLocked(ErrEmptyPrompt)
		return ErrEmptyPrompt
	}
	s.Prompt = prompt
	s.IsGeneratingImage = true
	s.Stage = StageGeneratingImage
	return nil
}

// CompleteGenerate stores the generated still. Previous artifacts are
// only dropped on explicit reset, never on a new generation.
func (s *Session) CompleteGenerate(imageDataURL string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Image = imageDataURL
	s.IsGeneratingImage = false
	s.Stage = StageImageReady
}

func (s *Session) FailGenerate(wireErr *relaymodel.Error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.IsGeneratingImage = false
	s.Stage = StageIdle
	s.LastError = wireErr
}

// BeginAnimate marks the session busy animating and returns the
// context the loop must run under plus the sequence token it must
// settle with. Reset cancels the context; a canceled loop's settle
// calls are ignored via the token.
func (s *Session) BeginAnimate(aspectRatio string) (context.Context, uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.LastError = nil
	if s.Credential != CredentialPresent {
		s.setErrorLocked(ErrNoCredential)
		return nil, 0, ErrNoCredential
	}
	if s.IsGeneratingVideo {
		return nil, 0, ErrAnimateBusy
	}
	if s.IsGeneratingImage {
		return nil, 0, ErrGenerateBusy
	}
	if s.Image == "" {
		s.setErrorLocked(ErrNoImage)
		return nil, 0, ErrNoImage
	}
	if aspectRatio != "" {
		if !relaymodel.IsValidAspectRatio(aspectRatio) {
			s.setErrorLocked(ErrInvalidAspectRatio)
			return nil, 0, ErrInvalidAspectRatio
		}
		s.AspectRatio = aspectRatio
	}
	s.IsGeneratingVideo = true
	s.Stage = StageGeneratingVideo
	s.StatusMessage = ""
	s.animSeq++
	ctx, cancel := context.WithCancel(context.Background())
	s.cancelAnimation = cancel
	return ctx, s.animSeq, nil
}

// SetStatus records the rotating progress text and fans it out to
// stream subscribers. Stale loops are ignored.
func (s *Session) SetStatus(seq uint64, message string) {
	s.mu.Lock()
	if seq != s.animSeq || !s.IsGeneratingVideo {
		s.mu.Unlock()
		return
	}
	s.StatusMessage = message
	s.mu.Unlock()
	s.publish(relaymodel.ProgressEvent{Kind: relaymodel.ProgressStatus, Message: message})
}

func (s *Session) CompleteAnimate(seq uint64, videoId string, videoURL string) bool {
	s.mu.Lock()
	if seq != s.animSeq || !s.IsGeneratingVideo {
		s.mu.Unlock()
		return false
	}
	s.VideoId = videoId
	s.IsGeneratingVideo = false
	s.Stage = StageVideoReady
	s.StatusMessage = ""
	s.cancelAnimation = nil
	s.mu.Unlock()
	s.publish(relaymodel.ProgressEvent{Kind: relaymodel.ProgressDone, VideoURL: videoURL})
	return true
}

// FailAnimate settles a failed animation. A credential-related
// failure additionally downgrades the gate so the next attempt has to
// re-acquire a key.
func (s *Session) FailAnimate(seq uint64, wireErr *relaymodel.Error, credentialRelated bool) bool {
	s.mu.Lock()
	if seq != s.animSeq || !s.IsGeneratingVideo {
		s.mu.Unlock()
		return false
	}
	s.IsGeneratingVideo = false
	s.StatusMessage = ""
	s.LastError = wireErr
	s.cancelAnimation = nil
	if credentialRelated {
		s.Credential = CredentialAbsent
		s.Stage = StageNoCredential
	} else {
		s.Stage = StageImageReady
	}
	s.mu.Unlock()
	s.publish(relaymodel.ProgressEvent{Kind: relaymodel.ProgressError, Error: wireErr})
	return true
}

// Reset returns the session to idle with the default prompt, dropping
// both artifacts and canceling any in-flight animation. The previous
// video id is returned so the caller can release the stored bytes.
func (s *Session) Reset() (droppedVideoId string) {
	s.mu.Lock()
	canceled := false
	if s.cancelAnimation != nil {
		s.cancelAnimation()
		s.cancelAnimation = nil
		canceled = true
	}
	s.animSeq++
	droppedVideoId = s.VideoId
	s.Prompt = config.DefaultPrompt
	s.AspectRatio = relaymodel.AspectLandscape
	s.Image = ""
	s.VideoId = ""
	s.StatusMessage = ""
	s.IsGeneratingImage = false
	s.IsGeneratingVideo = false
	s.LastError = nil
	switch s.Credential {
	case CredentialPresent:
		s.Stage = StageIdle
	case CredentialUnknown:
		s.Stage = StageAwaitingCredential
	default:
		s.Stage = StageNoCredential
	}
	s.mu.Unlock()
	if canceled {
		// Terminal event so progress stream readers do not hang on a
		// loop that will never settle.
		s.publish(relaymodel.ProgressEvent{Kind: relaymodel.ProgressError, Error: &relaymodel.Error{
			Message: "animation canceled",
			Type:    relaymodel.ErrTypeAnimation,
			Code:    "canceled",
		}})
	}
	return droppedVideoId
}

func (s *Session) CurrentVideoId() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.VideoId
}

func (s *Session) Touch() {
	s.mu.Lock()
	s.lastSeen = time.Now()
	s.mu.Unlock()
}

func (s *Session) expired(ttl time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return time.Since(s.lastSeen) > ttl && !s.IsGeneratingVideo && !s.IsGeneratingImage
}

// Snapshot copies the session for handlers; the live struct never
// leaves this package.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	var snap Snapshot
	_ = copier.Copy(&snap, s)
	if s.VideoId != "" {
		snap.VideoURL = "/api/video/" + s.VideoId
	}
	return snap
}

// setErrorLocked records a transition rejection in the error slot.
// Callers hold s.mu.
func (s *Session) setErrorLocked(te *TransitionError) {
	s.LastError = &relaymodel.Error{
		Message: te.Message,
		Type:    te.Type,
		Code:    "invalid_transition",
	}
}

// Subscribe attaches a progress stream reader. The channel is
// buffered; slow readers miss events rather than stall the loop.
func (s *Session) Subscribe() chan relaymodel.ProgressEvent {
	ch := make(chan relaymodel.ProgressEvent, 16)
	s.mu.Lock()
	s.subscribers[ch] = struct{}{}
	s.mu.Unlock()
	return ch
}

// Unsubscribe detaches and closes ch. Safe to call after the session
// was swept; only a still-registered channel is closed.
func (s *Session) Unsubscribe(ch chan relaymodel.ProgressEvent) {
	s.mu.Lock()
	_, registered := s.subscribers[ch]
	delete(s.subscribers, ch)
	s.mu.Unlock()
	if registered {
		close(ch)
	}
}

// closeSubscribers drops every attached progress reader. Called when
// the janitor retires the session so abandoned streams unblock.
func (s *Session) closeSubscribers() {
	s.mu.Lock()
	subscribers := s.subscribers
	s.subscribers = make(map[chan relaymodel.ProgressEvent]struct{})
	s.mu.Unlock()
	for ch := range subscribers {
		close(ch)
	}
}

func (s *Session) SubscriberCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subscribers)
}

func (s *Session) publish(event relaymodel.ProgressEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for ch := range s.subscribers {
		select {
		case ch <- event:
		default:
		}
	}
}
