package gemini

// PredictRequest is the body for both :predict (stills) and
// :predictLongRunning (video jobs).
type PredictRequest struct {
	Instances  []Instance `json:"instances"`
	Parameters Parameters `json:"parameters"`
}

type Instance struct {
	Prompt string       `json:"prompt"`
	Image  *InlineImage `json:"image,omitempty"`
}

type InlineImage struct {
	BytesBase64Encoded string `json:"bytesBase64Encoded"`
	MimeType           string `json:"mimeType"`
}

type Parameters struct {
	SampleCount    int    `json:"sampleCount,omitempty"`
	OutputMimeType string `json:"outputMimeType,omitempty"`
	AspectRatio    string `json:"aspectRatio,omitempty"`
	Resolution     string `json:"resolution,omitempty"`
}

type PredictResponse struct {
	Predictions []Prediction `json:"predictions"`
}

type Prediction struct {
	BytesBase64Encoded string `json:"bytesBase64Encoded"`
	MimeType           string `json:"mimeType"`
}

// Operation is one point-in-time snapshot of a long-running video
// job. Polling replaces the whole snapshot; nothing mutates one in
// place.
type Operation struct {
	Name     string           `json:"name"`
	Done     bool             `json:"done"`
	Response *OperationResult `json:"response,omitempty"`
	Error    *OperationError  `json:"error,omitempty"`
}

type OperationError struct {
	Code    int    `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
	Status  string `json:"status,omitempty"`
}

type OperationResult struct {
	GenerateVideoResponse *GenerateVideoResponse `json:"generateVideoResponse,omitempty"`
}

type GenerateVideoResponse struct {
	GeneratedSamples []GeneratedSample `json:"generatedSamples,omitempty"`
}

type GeneratedSample struct {
	Video *VideoRef `json:"video,omitempty"`
}

type VideoRef struct {
	URI string `json:"uri,omitempty"`
}

// ResultURI returns the download link of a completed operation, or ""
// when the snapshot carries none.
func (op *Operation) ResultURI() string {
	if op == nil || op.Response == nil || op.Response.GenerateVideoResponse == nil {
		return ""
	}
	for _, sample := range op.Response.GenerateVideoResponse.GeneratedSamples {
		if sample.Video != nil && sample.Video.URI != "" {
			return sample.Video.URI
		}
	}
	return ""
}
