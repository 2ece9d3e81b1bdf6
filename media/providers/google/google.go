// Package google implements video generation with Google Veo models through
// the google.golang.org/genai SDK. A request is submitted as a long-running
// operation, polled at a fixed interval until it reaches a terminal state,
// and the resulting videos are then downloaded.
package google

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/deepnoodle-ai/veo/log"
	"github.com/deepnoodle-ai/veo/media"
	"github.com/deepnoodle-ai/wonton/retry"
	"google.golang.org/genai"
)

const ProviderName = "google"

var (
	DefaultPollInterval  = 10 * time.Second
	DefaultMaxWait       = 15 * time.Minute
	DefaultMaxRetries    = 3
	DefaultRetryBaseWait = 2 * time.Second
)

var _ media.VideoGenerator = &Provider{}
var _ media.VideoOperationChecker = &Provider{}
var _ media.VideoDownloader = &Provider{}

// Provider implements the media video generation interfaces for Google Veo.
type Provider struct {
	service       VideoService
	apiKey        string
	backend       genai.Backend
	httpClient    *http.Client
	pollInterval  time.Duration
	maxWait       time.Duration
	maxRetries    int
	retryBaseWait time.Duration
	logger        log.Logger
}

// New creates a Veo provider. Credentials resolve in order: the WithAPIKey
// option, then GEMINI_API_KEY, then GOOGLE_API_KEY. A missing key is an
// *media.AuthenticationError raised before any network call.
func New(ctx context.Context, opts ...Option) (*Provider, error) {
	p := &Provider{
		httpClient:    http.DefaultClient,
		pollInterval:  DefaultPollInterval,
		maxWait:       DefaultMaxWait,
		maxRetries:    DefaultMaxRetries,
		retryBaseWait: DefaultRetryBaseWait,
		logger:        log.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.apiKey == "" {
		if value := os.Getenv("GEMINI_API_KEY"); value != "" {
			p.apiKey = value
		} else if value := os.Getenv("GOOGLE_API_KEY"); value != "" {
			p.apiKey = value
		}
	}
	if p.backend == genai.BackendUnspecified {
		if os.Getenv("GOOGLE_GENAI_USE_VERTEXAI") == "true" && os.Getenv("GOOGLE_CLOUD_PROJECT") != "" {
			p.backend = genai.BackendVertexAI
		} else {
			p.backend = genai.BackendGeminiAPI
		}
	}
	if p.service == nil {
		if p.backend == genai.BackendGeminiAPI && p.apiKey == "" {
			return nil, &media.AuthenticationError{
				Reason: "no API key provided (use --api-key or set GEMINI_API_KEY)",
			}
		}
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  p.apiKey,
			Backend: p.backend,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create google genai client: %w", err)
		}
		p.service = &genaiService{client: client}
	}
	return p, nil
}

// ProviderName returns the name of this provider
func (p *Provider) ProviderName() string {
	return ProviderName
}

// SupportedModels returns the list of supported video models
func (p *Provider) SupportedModels() []string {
	models := media.KnownModels()
	ids := make([]string, len(models))
	for i, m := range models {
		ids[i] = m.ID
	}
	return ids
}

// GenerateVideo validates and submits a video generation request. The
// returned response carries the operation ID; unless the operation was
// already done, the caller follows up with WaitForVideoGeneration.
func (p *Provider) GenerateVideo(ctx context.Context, req *media.VideoGenerationRequest) (*media.VideoGenerationResponse, error) {
	if err := media.ValidateVideoGenerationRequest(req); err != nil {
		return nil, err
	}
	model, err := media.ResolveModel(req.Model)
	if err != nil {
		return nil, err
	}
	if err := p.checkBackendSupport(req); err != nil {
		return nil, err
	}

	config := p.buildConfig(req)
	p.logger.Info("submitting video generation",
		"model", model,
		"duration_seconds", config.DurationSeconds,
		"aspect_ratio", config.AspectRatio,
		"count", config.NumberOfVideos,
		"reference_images", len(config.ReferenceImages))

	operation, err := p.service.GenerateVideos(ctx, model, req.Prompt, toGenAIImage(req.Image), config)
	if err != nil {
		return nil, wrapRemoteError(err)
	}

	status := statusFromOperation(operation)
	p.logger.Debug("video generation submitted", "operation_id", status.ID, "state", status.State)
	if status.State == media.StateFailed {
		return nil, fmt.Errorf("video generation failed: %s", status.Error)
	}
	if status.State == media.StateCompleted {
		return status.Result, nil
	}
	return &media.VideoGenerationResponse{
		OperationID: status.ID,
		Status:      status.State,
	}, nil
}

func (p *Provider) buildConfig(req *media.VideoGenerationRequest) *genai.GenerateVideosConfig {
	count := req.Count
	if count == 0 {
		count = 1
	}
	duration := int32(req.DurationSeconds)
	if duration == 0 {
		duration = media.DefaultDurationSeconds
	}
	aspect := req.AspectRatio
	if aspect == "" {
		aspect = media.AspectRatioLandscape
	}

	config := &genai.GenerateVideosConfig{
		NumberOfVideos:  int32(count),
		DurationSeconds: &duration,
		AspectRatio:     aspect,
		NegativePrompt:  req.NegativePrompt,
		Seed:            req.Seed,
		Resolution:      req.Resolution,
		LastFrame:       toGenAIImage(req.LastFrame),
	}
	for _, ref := range req.ReferenceImages {
		referenceType := genai.VideoGenerationReferenceTypeAsset
		if ref.Type == media.ReferenceTypeStyle {
			referenceType = genai.VideoGenerationReferenceTypeStyle
		}
		config.ReferenceImages = append(config.ReferenceImages, &genai.VideoGenerationReferenceImage{
			Image:         toGenAIImage(ref.Image),
			ReferenceType: referenceType,
		})
	}
	return config
}

// checkBackendSupport rejects parameters the active backend does not
// accept. Only the Vertex AI backend honors last frames and explicit
// resolutions; forwarding them to the Gemini API would silently change
// the request.
func (p *Provider) checkBackendSupport(req *media.VideoGenerationRequest) error {
	if p.backend == genai.BackendVertexAI {
		return nil
	}
	if req.LastFrame != nil {
		return &media.UnsupportedOnBackendError{Param: "last-frame", Backend: backendName(p.backend)}
	}
	if req.Resolution != "" {
		return &media.UnsupportedOnBackendError{Param: "resolution", Backend: backendName(p.backend)}
	}
	return nil
}

// CheckVideoOperation re-fetches the status of a video generation operation.
// Transient fetch failures are retried a bounded number of times; exhausting
// the retries surfaces a *media.PollingFailedError.
func (p *Provider) CheckVideoOperation(ctx context.Context, operationID string) (*media.OperationStatus, error) {
	handle := &genai.GenerateVideosOperation{Name: operationID}

	var operation *genai.GenerateVideosOperation
	err := retry.DoSimple(ctx, func() error {
		var fetchErr error
		operation, fetchErr = p.service.GetVideosOperation(ctx, handle)
		if fetchErr != nil {
			if status, ok := apiErrorStatus(fetchErr); ok && !isTransientStatus(status) {
				return retry.MarkPermanent(fetchErr)
			}
			return fetchErr
		}
		return nil
	}, retry.WithMaxAttempts(p.maxRetries+1), retry.WithBackoff(p.retryBaseWait, time.Minute))
	if err != nil {
		return nil, &media.PollingFailedError{OperationID: operationID, Err: err}
	}
	return statusFromOperation(operation), nil
}

// WaitForVideoGeneration polls an operation at the configured interval until
// it reaches a terminal state, the configured maximum wait elapses, or the
// context is canceled. Canceling leaves the remote operation to finish or
// expire server-side; no local state needs rollback.
func (p *Provider) WaitForVideoGeneration(ctx context.Context, operationID string) (*media.VideoGenerationResponse, error) {
	ticker := time.NewTicker(p.pollInterval)
	defer ticker.Stop()

	var timeout <-chan time.Time
	if p.maxWait > 0 {
		timer := time.NewTimer(p.maxWait)
		defer timer.Stop()
		timeout = timer.C
	}

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timeout:
			return nil, &media.TimeoutError{OperationID: operationID, Waited: p.maxWait}
		case <-ticker.C:
			status, err := p.CheckVideoOperation(ctx, operationID)
			if err != nil {
				return nil, err
			}
			p.logger.Debug("video operation polled", "operation_id", operationID, "state", status.State)

			switch status.State {
			case media.StateCompleted:
				if status.Result == nil || len(status.Result.Videos) == 0 {
					return nil, fmt.Errorf("video generation completed but returned no videos")
				}
				return status.Result, nil
			case media.StateFailed:
				return nil, fmt.Errorf("video generation failed: %s", status.Error)
			}
			// keep polling while pending or running
		}
	}
}

// statusFromOperation converts a genai operation handle into an
// OperationStatus with an explicit state.
func statusFromOperation(operation *genai.GenerateVideosOperation) *media.OperationStatus {
	status := &media.OperationStatus{
		ID:    operation.Name,
		State: media.StateRunning,
	}
	if !operation.Done {
		return status
	}
	if message, failed := operationError(operation); failed {
		status.State = media.StateFailed
		status.Error = message
		return status
	}

	status.State = media.StateCompleted
	result := &media.VideoGenerationResponse{
		OperationID: operation.Name,
		Status:      media.StateCompleted,
	}
	if operation.Response != nil {
		for _, generated := range operation.Response.GeneratedVideos {
			if generated == nil || generated.Video == nil {
				continue
			}
			result.Videos = append(result.Videos, media.GeneratedVideo{
				URI:        generated.Video.URI,
				VideoBytes: generated.Video.VideoBytes,
				MIMEType:   generated.Video.MIMEType,
			})
		}
	}
	status.Result = result
	return status
}

// operationError extracts the failure message from a done operation, if any.
func operationError(operation *genai.GenerateVideosOperation) (string, bool) {
	if len(operation.Error) == 0 {
		return "", false
	}
	if message, ok := operation.Error["message"].(string); ok && message != "" {
		return message, true
	}
	return fmt.Sprintf("%v", operation.Error), true
}

// wrapRemoteError classifies a submission failure. Credential rejections
// become *media.AuthenticationError; everything else is a
// *media.RemoteRequestError. Submission failures are never retried.
func wrapRemoteError(err error) error {
	status, ok := apiErrorStatus(err)
	if ok && (status == http.StatusUnauthorized || status == http.StatusForbidden) {
		return &media.AuthenticationError{Reason: err.Error()}
	}
	return &media.RemoteRequestError{StatusCode: status, Err: err}
}

func apiErrorStatus(err error) (int, bool) {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code, true
	}
	return 0, false
}

// isTransientStatus reports whether an HTTP status code is worth retrying
func isTransientStatus(status int) bool {
	return status == http.StatusTooManyRequests ||
		status == http.StatusInternalServerError ||
		status == http.StatusBadGateway ||
		status == http.StatusServiceUnavailable ||
		status == http.StatusGatewayTimeout
}
