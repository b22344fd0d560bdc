package gemini

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rtaylor52242/logo-animator-studio/common/config"
)

// GenerateImage produces one still logo for the prompt and returns it
// as a PNG data URL. One request, one image, no retry: the first
// prediction is taken and everything else is an error.
func (cl *Client) GenerateImage(ctx context.Context, prompt string) (string, error) {
	request := PredictRequest{
		Instances: []Instance{
			{Prompt: config.ImagePromptPrefix + prompt},
		},
		Parameters: Parameters{
			SampleCount:    1,
			OutputMimeType: "image/png",
			AspectRatio:    "1:1",
		},
	}

	var response PredictResponse
	url := cl.modelURL(cl.ImageModel, "predict")
	if err := cl.postJSON(ctx, url, &request, &response); err != nil {
		return "", err
	}
	if len(response.Predictions) == 0 {
		return "", errors.New("provider returned an empty prediction list")
	}

	prediction := response.Predictions[0]
	if prediction.BytesBase64Encoded == "" {
		return "", errors.New("provider returned a prediction without image bytes")
	}
	mimeType := prediction.MimeType
	if mimeType == "" {
		mimeType = "image/png"
	}
	return "data:" + mimeType + ";base64," + prediction.BytesBase64Encoded, nil
}
