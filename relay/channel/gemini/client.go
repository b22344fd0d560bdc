package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pkg/errors"
	"github.com/rtaylor52242/logo-animator-studio/common/config"
	"github.com/rtaylor52242/logo-animator-studio/relay/util"
)

// Client talks to the Gemini generative media endpoints. It is the
// only upstream this service knows; provider abstraction is a
// declared non-goal.
type Client struct {
	BaseURL    string
	Version    string
	APIKey     string
	ImageModel string
	VideoModel string
	HTTPClient *http.Client
	// PollClient serves the small operation-status GETs; a stuck poll
	// should fail fast instead of holding the relay timeout.
	PollClient *http.Client
}

func NewClient() *Client {
	return &Client{
		BaseURL:    config.GeminiBaseURL,
		Version:    config.GeminiVersion,
		APIKey:     config.GeminiAPIKey,
		ImageModel: config.ImageModel,
		VideoModel: config.VideoModel,
		HTTPClient: util.GetHttpClient(),
		PollClient: util.ImpatientHTTPClient,
	}
}

func (cl *Client) modelURL(model string, action string) string {
	return fmt.Sprintf("%s/%s/models/%s:%s?key=%s", cl.BaseURL, cl.Version, model, action, cl.APIKey)
}

// postJSON sends one request and decodes the 2xx response into out.
// Non-2xx responses come back as an error carrying the upstream
// message so callers can classify it.
func (cl *Client) postJSON(ctx context.Context, url string, in any, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return errors.Wrap(err, "marshal request")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := cl.HTTPClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "send request")
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		wireErr := util.RelayErrorHandler(resp)
		return errors.New(wireErr.Message)
	}
	defer resp.Body.Close()
	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "decode response")
	}
	return nil
}

func (cl *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	client := cl.PollClient
	if client == nil {
		client = cl.HTTPClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return errors.Wrap(err, "send request")
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		wireErr := util.RelayErrorHandler(resp)
		return errors.New(wireErr.Message)
	}
	defer resp.Body.Close()
	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "decode response")
	}
	return nil
}
