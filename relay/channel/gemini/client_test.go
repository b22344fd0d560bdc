package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestClient(serverURL string) *Client {
	return &Client{
		BaseURL:    serverURL,
		Version:    "v1beta",
		APIKey:     "test-key",
		ImageModel: "imagen-3.0-generate-002",
		VideoModel: "veo-2.0-generate-001",
		HTTPClient: http.DefaultClient,
	}
}

func TestGenerateImageTakesFirstPrediction(t *testing.T) {
	var gotPath, gotKey string
	var gotRequest PredictRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotRequest))
		_ = json.NewEncoder(w).Encode(PredictResponse{
			Predictions: []Prediction{
				{BytesBase64Encoded: "Zmlyc3Q=", MimeType: "image/png"},
				{BytesBase64Encoded: "c2Vjb25k", MimeType: "image/png"},
			},
		})
	}))
	defer server.Close()

	dataURL, err := newTestClient(server.URL).GenerateImage(context.Background(), "a fox")
	require.NoError(t, err)
	require.Equal(t, "data:image/png;base64,Zmlyc3Q=", dataURL)

	require.Equal(t, "/v1beta/models/imagen-3.0-generate-002:predict", gotPath)
	require.Equal(t, "test-key", gotKey)
	require.Len(t, gotRequest.Instances, 1)
	require.True(t, strings.HasSuffix(gotRequest.Instances[0].Prompt, "a fox"))
	require.Equal(t, 1, gotRequest.Parameters.SampleCount)
	require.Equal(t, "image/png", gotRequest.Parameters.OutputMimeType)
	require.Equal(t, "1:1", gotRequest.Parameters.AspectRatio)
}

func TestGenerateImageEmptyPredictionList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(PredictResponse{})
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).GenerateImage(context.Background(), "a fox")
	require.Error(t, err)
}

func TestGenerateImageUpstreamErrorMessageSurfaces(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":"API key not valid. Please pass a valid API key.","status":"INVALID_ARGUMENT"}}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).GenerateImage(context.Background(), "a fox")
	require.Error(t, err)
	require.Contains(t, err.Error(), "API key not valid")
}

func TestSubmitAnimationRequestShape(t *testing.T) {
	var gotPath string
	var gotRequest PredictRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotRequest))
		_ = json.NewEncoder(w).Encode(Operation{Name: "operations/abc123"})
	}))
	defer server.Close()

	op, err := newTestClient(server.URL).SubmitAnimation(context.Background(), "data:image/png;base64,Zmlyc3Q=", "16:9")
	require.NoError(t, err)
	require.Equal(t, "operations/abc123", op.Name)
	require.False(t, op.Done)

	require.Equal(t, "/v1beta/models/veo-2.0-generate-001:predictLongRunning", gotPath)
	require.Len(t, gotRequest.Instances, 1)
	require.NotNil(t, gotRequest.Instances[0].Image)
	require.Equal(t, "Zmlyc3Q=", gotRequest.Instances[0].Image.BytesBase64Encoded)
	require.Equal(t, "image/png", gotRequest.Instances[0].Image.MimeType)
	require.Equal(t, "16:9", gotRequest.Parameters.AspectRatio)
}

func TestSubmitAnimationImmediateRemoteError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(Operation{
			Name:  "operations/abc123",
			Done:  true,
			Error: &OperationError{Code: 9, Message: "prompt violates usage policy"},
		})
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).SubmitAnimation(context.Background(), "data:image/png;base64,Zmlyc3Q=", "16:9")
	require.Error(t, err)
	require.Contains(t, err.Error(), "prompt violates usage policy")
}

func TestSubmitAnimationRejectsBadImage(t *testing.T) {
	_, err := newTestClient("http://unused").SubmitAnimation(context.Background(), "not a data url", "16:9")
	require.Error(t, err)
}

func TestPollOperationPathAndResult(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewEncoder(w).Encode(Operation{
			Name: "operations/abc123",
			Done: true,
			Response: &OperationResult{
				GenerateVideoResponse: &GenerateVideoResponse{
					GeneratedSamples: []GeneratedSample{
						{Video: &VideoRef{URI: "https://files.example/video.mp4"}},
					},
				},
			},
		})
	}))
	defer server.Close()

	fresh, err := newTestClient(server.URL).PollOperation(context.Background(), &Operation{Name: "operations/abc123"})
	require.NoError(t, err)
	require.True(t, fresh.Done)
	require.Equal(t, "https://files.example/video.mp4", fresh.ResultURI())
	require.Equal(t, "/v1beta/operations/abc123", gotPath)
}

func TestPollOperationRemoteError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(Operation{
			Name:  "operations/abc123",
			Done:  true,
			Error: &OperationError{Code: 3, Message: "video generation failed upstream"},
		})
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).PollOperation(context.Background(), &Operation{Name: "operations/abc123"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "video generation failed upstream")
}

func TestDownloadVideoAppendsKey(t *testing.T) {
	var gotKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.URL.Query().Get("key")
		w.Header().Set("Content-Type", "video/mp4")
		_, _ = w.Write([]byte("mp4 bytes"))
	}))
	defer server.Close()

	data, mimeType, err := newTestClient(server.URL).DownloadVideo(context.Background(), server.URL+"/files/video.mp4")
	require.NoError(t, err)
	require.Equal(t, "test-key", gotKey)
	require.Equal(t, "video/mp4", mimeType)
	require.Equal(t, []byte("mp4 bytes"), data)
}

func TestDownloadVideoNonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	_, _, err := newTestClient(server.URL).DownloadVideo(context.Background(), server.URL+"/files/video.mp4")
	require.Error(t, err)
	require.True(t, strings.HasPrefix(err.Error(), "video download failed:"))
}
