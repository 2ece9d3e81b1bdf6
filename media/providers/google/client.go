package google

import (
	"context"

	"github.com/deepnoodle-ai/veo/media"
	"google.golang.org/genai"
)

// VideoService is the slice of the genai SDK the provider depends on. The
// indirection keeps the submit/poll flow testable against a scripted
// sequence of operation states.
type VideoService interface {
	// GenerateVideos submits a generation request and returns the
	// long-running operation handle
	GenerateVideos(ctx context.Context, model, prompt string, image *genai.Image, config *genai.GenerateVideosConfig) (*genai.GenerateVideosOperation, error)

	// GetVideosOperation re-fetches the state of an operation handle
	GetVideosOperation(ctx context.Context, operation *genai.GenerateVideosOperation) (*genai.GenerateVideosOperation, error)
}

// genaiService implements VideoService on a real *genai.Client.
type genaiService struct {
	client *genai.Client
}

func (s *genaiService) GenerateVideos(ctx context.Context, model, prompt string, image *genai.Image, config *genai.GenerateVideosConfig) (*genai.GenerateVideosOperation, error) {
	return s.client.Models.GenerateVideos(ctx, model, prompt, image, config)
}

func (s *genaiService) GetVideosOperation(ctx context.Context, operation *genai.GenerateVideosOperation) (*genai.GenerateVideosOperation, error) {
	return s.client.Operations.GetVideosOperation(ctx, operation, nil)
}

func toGenAIImage(image *media.Image) *genai.Image {
	if image == nil {
		return nil
	}
	return &genai.Image{
		ImageBytes: image.Data,
		MIMEType:   image.MIMEType,
	}
}

func backendName(backend genai.Backend) string {
	if backend == genai.BackendVertexAI {
		return "vertex-ai"
	}
	return "gemini-api"
}
