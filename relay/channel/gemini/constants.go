package gemini

// https://ai.google.dev/api/generate-images
// https://ai.google.dev/api/video

var ImageModelList = []string{
	"imagen-3.0-generate-002", "imagen-4.0-generate-001",
}

var VideoModelList = []string{
	"veo-2.0-generate-001", "veo-3.0-generate-preview",
}

// ProgressMessages rotate on the animation progress stream while an
// operation is pending. Purely cosmetic; the order is fixed and the
// list wraps around.
var ProgressMessages = []string{
	"Warming up the animation engine...",
	"Choreographing your logo's moves...",
	"Rendering motion frames...",
	"Adding a touch of cinematic flair...",
	"Polishing the final cut...",
	"Almost there, syncing the last frames...",
}
