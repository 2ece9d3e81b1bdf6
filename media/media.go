package media

import (
	"context"
	"strings"
)

// Aspect ratios accepted by the Veo API.
const (
	AspectRatioLandscape = "16:9"
	AspectRatioPortrait  = "9:16"
)

// Bounds on video generation parameters.
const (
	MinDurationSeconds     = 5
	MaxDurationSeconds     = 8
	DefaultDurationSeconds = 8
	MaxVideosPerRequest    = 4
	MaxReferenceImages     = 3
)

// ReferenceType indicates how a reference image should bias generation.
type ReferenceType string

const (
	// ReferenceTypeAsset biases generation toward a specific subject or object.
	ReferenceTypeAsset ReferenceType = "asset"

	// ReferenceTypeStyle biases generation toward a visual style.
	ReferenceTypeStyle ReferenceType = "style"
)

// Image holds raw image bytes plus their mime type.
type Image struct {
	Data     []byte `json:"-"`
	MIMEType string `json:"mime_type"`
}

// ReferenceImage is a still image supplied to bias generated content.
type ReferenceImage struct {
	Image *Image        `json:"image"`
	Type  ReferenceType `json:"type"`
}

// VideoGenerationRequest represents a request to generate one or more videos
type VideoGenerationRequest struct {
	// Prompt is the text description of the desired video
	Prompt string `json:"prompt"`

	// Model is a model alias or concrete model identifier
	Model string `json:"model,omitempty"`

	// DurationSeconds specifies the length of each video (5-8)
	DurationSeconds int `json:"duration_seconds,omitempty"`

	// AspectRatio is "16:9" or "9:16"
	AspectRatio string `json:"aspect_ratio,omitempty"`

	// NegativePrompt describes what to avoid in the video
	NegativePrompt string `json:"negative_prompt,omitempty"`

	// Seed makes generation reproducible when set
	Seed *int32 `json:"seed,omitempty"`

	// Count specifies how many videos to generate (1-4)
	Count int `json:"count,omitempty"`

	// Image is an optional starting image for image-to-video generation
	Image *Image `json:"image,omitempty"`

	// LastFrame is an optional final frame. Vertex AI backend only.
	LastFrame *Image `json:"last_frame,omitempty"`

	// Resolution of the output video. Vertex AI backend only.
	Resolution string `json:"resolution,omitempty"`

	// ReferenceImages bias generation toward specific assets or styles
	ReferenceImages []ReferenceImage `json:"reference_images,omitempty"`
}

// GeneratedVideo represents a single generated video
type GeneratedVideo struct {
	// URI is the remote location of the video, when not returned inline
	URI string `json:"uri,omitempty"`

	// VideoBytes holds the video content when returned inline
	VideoBytes []byte `json:"-"`

	// MIMEType of the video content
	MIMEType string `json:"mime_type,omitempty"`
}

// VideoGenerationResponse represents the response from video generation
type VideoGenerationResponse struct {
	// OperationID identifies the server-side long-running operation
	OperationID string `json:"operation_id"`

	// Status of the operation at the time of the response
	Status OperationState `json:"status"`

	// Videos contains the generated videos once the operation completes
	Videos []GeneratedVideo `json:"videos,omitempty"`
}

// OperationState is the lifecycle state of a generation operation.
type OperationState string

const (
	StatePending   OperationState = "pending"
	StateRunning   OperationState = "running"
	StateCompleted OperationState = "completed"
	StateFailed    OperationState = "failed"
)

// OperationStatus is a snapshot of a long-running video generation operation.
// It is only ever updated by re-fetching from the remote service and is
// terminal once the state reaches completed or failed.
type OperationStatus struct {
	// ID of the operation
	ID string `json:"id"`

	// State of the operation
	State OperationState `json:"state"`

	// Error message if the operation failed
	Error string `json:"error,omitempty"`

	// Result contains the final result once completed
	Result *VideoGenerationResponse `json:"result,omitempty"`
}

// Terminal reports whether the operation has finished, successfully or not.
func (s *OperationStatus) Terminal() bool {
	return s.State == StateCompleted || s.State == StateFailed
}

// VideoGenerator provides an interface for generating videos from text prompts
type VideoGenerator interface {
	// GenerateVideo submits a video generation request and returns the
	// resulting operation, which may or may not already be complete
	GenerateVideo(ctx context.Context, req *VideoGenerationRequest) (*VideoGenerationResponse, error)

	// SupportedModels returns a list of supported models for this provider
	SupportedModels() []string

	// ProviderName returns the name of the provider
	ProviderName() string
}

// VideoOperationChecker provides an interface for checking video generation status
type VideoOperationChecker interface {
	// CheckVideoOperation re-fetches the status of a generation operation
	CheckVideoOperation(ctx context.Context, operationID string) (*OperationStatus, error)
}

// VideoDownloader retrieves the content of a generated video.
type VideoDownloader interface {
	DownloadVideo(ctx context.Context, video GeneratedVideo) ([]byte, error)
}

// ValidateVideoGenerationRequest validates a video generation request. All
// failures are *InvalidParameterError; validation never performs I/O.
func ValidateVideoGenerationRequest(req *VideoGenerationRequest) error {
	if req == nil {
		return &InvalidParameterError{Param: "request", Reason: "cannot be nil"}
	}
	if strings.TrimSpace(req.Prompt) == "" {
		return &InvalidParameterError{Param: "prompt", Reason: "is required and cannot be empty"}
	}
	if req.DurationSeconds != 0 && (req.DurationSeconds < MinDurationSeconds || req.DurationSeconds > MaxDurationSeconds) {
		return &InvalidParameterError{
			Param:  "duration",
			Reason: "must be between 5 and 8 seconds",
		}
	}
	if req.AspectRatio != "" && req.AspectRatio != AspectRatioLandscape && req.AspectRatio != AspectRatioPortrait {
		return &InvalidParameterError{
			Param:  "aspect-ratio",
			Reason: `must be "16:9" or "9:16"`,
		}
	}
	if req.Count < 0 || req.Count > MaxVideosPerRequest {
		return &InvalidParameterError{
			Param:  "count",
			Reason: "must be between 1 and 4",
		}
	}
	if req.Resolution != "" && req.Resolution != "720p" && req.Resolution != "1080p" {
		return &InvalidParameterError{
			Param:  "resolution",
			Reason: `must be "720p" or "1080p"`,
		}
	}
	if len(req.ReferenceImages) > MaxReferenceImages {
		return &InvalidParameterError{
			Param:  "reference images",
			Reason: "at most 3 may be supplied",
		}
	}
	for _, ref := range req.ReferenceImages {
		if ref.Image == nil || len(ref.Image.Data) == 0 {
			return &InvalidParameterError{Param: "reference image", Reason: "has no data"}
		}
		if ref.Type != ReferenceTypeAsset && ref.Type != ReferenceTypeStyle {
			return &InvalidParameterError{
				Param:  "reference type",
				Reason: `must be "asset" or "style"`,
			}
		}
	}
	return nil
}
