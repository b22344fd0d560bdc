package gemini

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"github.com/rtaylor52242/logo-animator-studio/common/config"
	img "github.com/rtaylor52242/logo-animator-studio/common/image"
)

// SubmitAnimation starts a long-running video job for the given still
// and returns the initial operation snapshot.
func (cl *Client) SubmitAnimation(ctx context.Context, imageDataURL string, aspectRatio string) (*Operation, error) {
	if !img.IsDataURL(imageDataURL) {
		return nil, errors.New("input image is not a data URL")
	}
	mimeType, data, err := img.FromDataURL(imageDataURL)
	if err != nil {
		return nil, errors.Wrap(err, "decode input image")
	}

	request := PredictRequest{
		Instances: []Instance{
			{
				Prompt: config.AnimationPrompt,
				Image: &InlineImage{
					BytesBase64Encoded: img.ToBase64(data),
					MimeType:           mimeType,
				},
			},
		},
		Parameters: Parameters{
			SampleCount: 1,
			Resolution:  config.VideoResolution,
			AspectRatio: aspectRatio,
		},
	}

	var op Operation
	url := cl.modelURL(cl.VideoModel, "predictLongRunning")
	if err := cl.postJSON(ctx, url, &request, &op); err != nil {
		return nil, err
	}
	if op.Done && op.Error != nil {
		return nil, errors.New(op.Error.Message)
	}
	if op.Name == "" {
		return nil, errors.New("provider returned an operation without a name")
	}
	return &op, nil
}

// PollOperation fetches a fresh snapshot for the operation, keyed by
// the previous snapshot's name. The returned snapshot replaces the
// old one wholesale.
func (cl *Client) PollOperation(ctx context.Context, op *Operation) (*Operation, error) {
	if op == nil || op.Name == "" {
		return nil, errors.New("no operation to poll")
	}
	url := fmt.Sprintf("%s/%s/%s?key=%s", cl.BaseURL, cl.Version, op.Name, cl.APIKey)

	var fresh Operation
	if err := cl.getJSON(ctx, url, &fresh); err != nil {
		return nil, err
	}
	if fresh.Done && fresh.Error != nil {
		return nil, errors.New(fresh.Error.Message)
	}
	return &fresh, nil
}

// DownloadVideo fetches the bytes behind a completed operation's
// result URI, appending the credential as a query parameter the way
// the file endpoint expects. A non-success transfer status is
// returned as an error carrying the status text.
func (cl *Client) DownloadVideo(ctx context.Context, uri string) (data []byte, mimeType string, err error) {
	sep := "?"
	if strings.Contains(uri, "?") {
		sep = "&"
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri+sep+"key="+cl.APIKey, nil)
	if err != nil {
		return nil, "", errors.Wrap(err, "build download request")
	}
	resp, err := cl.HTTPClient.Do(req)
	if err != nil {
		return nil, "", errors.Wrap(err, "download video")
	}
	defer resp.Body.Close()
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, "", errors.Errorf("video download failed: %s", resp.Status)
	}
	data, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", errors.Wrap(err, "read video bytes")
	}
	mimeType = resp.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "video/mp4"
	}
	return data, mimeType, nil
}
