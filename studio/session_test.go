package studio

import (
	"testing"

	"github.com/rtaylor52242/logo-animator-studio/common/config"
	relaymodel "github.com/rtaylor52242/logo-animator-studio/relay/model"
)

func newTestSession(state CredentialState) *Session {
	s := newSession("test-session")
	s.ResolveCredential(state)
	return s
}

func TestResolveCredential(t *testing.T) {
	tests := []struct {
		name  string
		state CredentialState
		want  Stage
	}{
		{"present goes idle", CredentialPresent, StageIdle},
		{"absent goes no_credential", CredentialAbsent, StageNoCredential},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(tt.state)
			if s.Stage != tt.want {
				t.Errorf("Stage = %v, want %v", s.Stage, tt.want)
			}
		})
	}
}

func TestBeginGeneratePromptValidation(t *testing.T) {
	tests := []struct {
		name   string
		prompt string
		want   error
	}{
		{"empty", "", ErrEmptyPrompt},
		{"whitespace only", "   \t\n", ErrEmptyPrompt},
		{"valid", "a fox logo", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(CredentialPresent)
			err := s.BeginGenerate(tt.prompt)
			if err != tt.want {
				t.Fatalf("BeginGenerate(%q) = %v, want %v", tt.prompt, err, tt.want)
			}
			if tt.want != nil {
				if s.Stage != StageIdle {
					t.Errorf("Stage = %v, want %v after rejected prompt", s.Stage, StageIdle)
				}
				if s.Snapshot().LastError == nil {
					t.Error("LastError not set after rejected prompt")
				}
			} else if s.Stage != StageGeneratingImage {
				t.Errorf("Stage = %v, want %v", s.Stage, StageGeneratingImage)
			}
		})
	}
}

func TestBeginGenerateWithoutCredential(t *testing.T) {
	s := newTestSession(CredentialAbsent)
	if err := s.BeginGenerate("a fox logo"); err != ErrNoCredential {
		t.Fatalf("BeginGenerate() = %v, want %v", err, ErrNoCredential)
	}
}

func TestGenerateKeepsPreviousVideo(t *testing.T) {
	s := newTestSession(CredentialPresent)
	s.CompleteGenerate("data:image/png;base64,AAAA")
	_, seq, err := s.BeginAnimate("")
	if err != nil {
		t.Fatalf("BeginAnimate() = %v", err)
	}
	s.CompleteAnimate(seq, "vid-1", "/api/video/vid-1")

	// A new generation replaces the still but leaves the video alone
	// until the next explicit reset.
	if err := s.BeginGenerate("another fox"); err != nil {
		t.Fatalf("BeginGenerate() = %v", err)
	}
	s.CompleteGenerate("data:image/png;base64,BBBB")
	if got := s.CurrentVideoId(); got != "vid-1" {
		t.Errorf("CurrentVideoId() = %q, want %q", got, "vid-1")
	}
	if s.Stage != StageImageReady {
		t.Errorf("Stage = %v, want %v", s.Stage, StageImageReady)
	}
}

func TestBeginAnimateGuards(t *testing.T) {
	t.Run("requires image", func(t *testing.T) {
		s := newTestSession(CredentialPresent)
		if _, _, err := s.BeginAnimate(""); err != ErrNoImage {
			t.Fatalf("BeginAnimate() = %v, want %v", err, ErrNoImage)
		}
	})
	t.Run("rejects bad aspect ratio", func(t *testing.T) {
		s := newTestSession(CredentialPresent)
		s.CompleteGenerate("data:image/png;base64,AAAA")
		if _, _, err := s.BeginAnimate("4:3"); err != ErrInvalidAspectRatio {
			t.Fatalf("BeginAnimate(4:3) = %v, want %v", err, ErrInvalidAspectRatio)
		}
	})
	t.Run("empty ratio keeps previous", func(t *testing.T) {
		s := newTestSession(CredentialPresent)
		s.CompleteGenerate("data:image/png;base64,AAAA")
		if _, _, err := s.BeginAnimate(relaymodel.AspectPortrait); err != nil {
			t.Fatalf("BeginAnimate() = %v", err)
		}
		s.Reset()
		s.CompleteGenerate("data:image/png;base64,AAAA")
		if _, _, err := s.BeginAnimate(""); err != nil {
			t.Fatalf("BeginAnimate() = %v", err)
		}
		if got := s.Snapshot().AspectRatio; got != relaymodel.AspectLandscape {
			t.Errorf("AspectRatio = %q, want reset default %q", got, relaymodel.AspectLandscape)
		}
	})
	t.Run("aspect ratio change never touches the image", func(t *testing.T) {
		s := newTestSession(CredentialPresent)
		s.CompleteGenerate("data:image/png;base64,AAAA")
		_, seq, err := s.BeginAnimate(relaymodel.AspectPortrait)
		if err != nil {
			t.Fatalf("BeginAnimate() = %v", err)
		}
		s.FailAnimate(seq, &relaymodel.Error{Message: relaymodel.MsgAnimateFailed}, false)
		if _, _, err := s.BeginAnimate(relaymodel.AspectLandscape); err != nil {
			t.Fatalf("BeginAnimate() = %v", err)
		}
		if got := s.Snapshot().Image; got != "data:image/png;base64,AAAA" {
			t.Errorf("Image = %q, changed by aspect ratio switch", got)
		}
	})
	t.Run("busy animation rejects re-entry", func(t *testing.T) {
		s := newTestSession(CredentialPresent)
		s.CompleteGenerate("data:image/png;base64,AAAA")
		if _, _, err := s.BeginAnimate(""); err != nil {
			t.Fatalf("BeginAnimate() = %v", err)
		}
		if _, _, err := s.BeginAnimate(""); err != ErrAnimateBusy {
			t.Errorf("second BeginAnimate() = %v, want %v", err, ErrAnimateBusy)
		}
		if err := s.BeginGenerate("x"); err != ErrAnimateBusy {
			t.Errorf("BeginGenerate() while animating = %v, want %v", err, ErrAnimateBusy)
		}
	})
}

func TestStaleLoopCannotSettle(t *testing.T) {
	s := newTestSession(CredentialPresent)
	s.CompleteGenerate("data:image/png;base64,AAAA")
	ctx, seq, err := s.BeginAnimate("")
	if err != nil {
		t.Fatalf("BeginAnimate() = %v", err)
	}

	s.Reset()
	if ctx.Err() == nil {
		t.Error("Reset() did not cancel the animation context")
	}
	if s.CompleteAnimate(seq, "vid-stale", "/api/video/vid-stale") {
		t.Error("stale CompleteAnimate() settled a reset session")
	}
	if s.FailAnimate(seq, &relaymodel.Error{Message: "late"}, false) {
		t.Error("stale FailAnimate() settled a reset session")
	}
	snap := s.Snapshot()
	if snap.Stage != StageIdle || snap.VideoURL != "" || snap.LastError != nil {
		t.Errorf("session disturbed by stale settle: %+v", snap)
	}
}

func TestResetFromEveryStage(t *testing.T) {
	build := []struct {
		name  string
		setup func(s *Session)
	}{
		{"idle", func(s *Session) {}},
		{"generating image", func(s *Session) { _ = s.BeginGenerate("x") }},
		{"image ready", func(s *Session) { s.CompleteGenerate("data:image/png;base64,AAAA") }},
		{"generating video", func(s *Session) {
			s.CompleteGenerate("data:image/png;base64,AAAA")
			_, _, _ = s.BeginAnimate("")
		}},
		{"video ready", func(s *Session) {
			s.CompleteGenerate("data:image/png;base64,AAAA")
			_, seq, _ := s.BeginAnimate("")
			s.CompleteAnimate(seq, "vid-1", "/api/video/vid-1")
		}},
	}
	for _, tt := range build {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(CredentialPresent)
			tt.setup(s)
			s.Reset()
			snap := s.Snapshot()
			if snap.Stage != StageIdle {
				t.Errorf("Stage = %v, want %v", snap.Stage, StageIdle)
			}
			if snap.Image != "" || snap.VideoURL != "" {
				t.Errorf("artifacts survived reset: %+v", snap)
			}
			if snap.Prompt != config.DefaultPrompt {
				t.Errorf("Prompt = %q, want default %q", snap.Prompt, config.DefaultPrompt)
			}
			if snap.IsGeneratingImage || snap.IsGeneratingVideo {
				t.Error("busy flags survived reset")
			}
		})
	}
}

func TestResetWithoutCredentialStaysGated(t *testing.T) {
	s := newTestSession(CredentialAbsent)
	s.Reset()
	if s.Stage != StageNoCredential {
		t.Errorf("Stage = %v, want %v", s.Stage, StageNoCredential)
	}
}

func TestFailAnimateCredentialDowngrade(t *testing.T) {
	s := newTestSession(CredentialPresent)
	s.CompleteGenerate("data:image/png;base64,AAAA")
	_, seq, err := s.BeginAnimate("")
	if err != nil {
		t.Fatalf("BeginAnimate() = %v", err)
	}
	wireErr := &relaymodel.Error{Message: "API key not valid", Type: relaymodel.ErrTypeCredential}
	if !s.FailAnimate(seq, wireErr, true) {
		t.Fatal("FailAnimate() did not settle")
	}
	snap := s.Snapshot()
	if snap.Credential != CredentialAbsent {
		t.Errorf("Credential = %v, want %v", snap.Credential, CredentialAbsent)
	}
	if snap.Stage != StageNoCredential {
		t.Errorf("Stage = %v, want %v", snap.Stage, StageNoCredential)
	}
	if snap.LastError == nil || snap.LastError.Message != "API key not valid" {
		t.Errorf("LastError = %+v, want the upstream message", snap.LastError)
	}
}

func TestFailAnimateKeepsImage(t *testing.T) {
	s := newTestSession(CredentialPresent)
	s.CompleteGenerate("data:image/png;base64,AAAA")
	_, seq, _ := s.BeginAnimate("")
	s.FailAnimate(seq, &relaymodel.Error{Message: relaymodel.MsgAnimateFailed}, false)
	snap := s.Snapshot()
	if snap.Stage != StageImageReady {
		t.Errorf("Stage = %v, want %v", snap.Stage, StageImageReady)
	}
	if snap.Image == "" {
		t.Error("image dropped on animation failure")
	}
}

func TestProgressSubscription(t *testing.T) {
	s := newTestSession(CredentialPresent)
	s.CompleteGenerate("data:image/png;base64,AAAA")
	_, seq, _ := s.BeginAnimate("")

	ch := s.Subscribe()
	defer s.Unsubscribe(ch)

	s.SetStatus(seq, "Warming up")
	s.CompleteAnimate(seq, "vid-1", "/api/video/vid-1")

	first := <-ch
	if first.Kind != relaymodel.ProgressStatus || first.Message != "Warming up" {
		t.Errorf("first event = %+v, want status Warming up", first)
	}
	second := <-ch
	if second.Kind != relaymodel.ProgressDone || second.VideoURL != "/api/video/vid-1" {
		t.Errorf("second event = %+v, want done with video url", second)
	}
}

func TestStaleStatusIgnored(t *testing.T) {
	s := newTestSession(CredentialPresent)
	s.CompleteGenerate("data:image/png;base64,AAAA")
	_, seq, _ := s.BeginAnimate("")
	s.Reset()
	s.SetStatus(seq, "too late")
	if got := s.Snapshot().StatusMessage; got != "" {
		t.Errorf("StatusMessage = %q, want empty after reset", got)
	}
}
