package google

import (
	"net/http"
	"time"

	"github.com/deepnoodle-ai/veo/log"
	"google.golang.org/genai"
)

// Option is a function that configures the Veo provider.
type Option func(*Provider)

// WithAPIKey sets the API key, taking precedence over environment variables.
func WithAPIKey(apiKey string) Option {
	return func(p *Provider) {
		p.apiKey = apiKey
	}
}

// WithBackend pins the genai backend instead of deriving it from the
// environment.
func WithBackend(backend genai.Backend) Option {
	return func(p *Provider) {
		p.backend = backend
	}
}

// WithHTTPClient sets the HTTP client used for video downloads.
func WithHTTPClient(client *http.Client) Option {
	return func(p *Provider) {
		p.httpClient = client
	}
}

// WithPollInterval sets the interval between operation status checks.
func WithPollInterval(interval time.Duration) Option {
	return func(p *Provider) {
		p.pollInterval = interval
	}
}

// WithMaxWait bounds how long WaitForVideoGeneration blocks before giving
// up with a timeout error. Zero waits indefinitely.
func WithMaxWait(maxWait time.Duration) Option {
	return func(p *Provider) {
		p.maxWait = maxWait
	}
}

// WithMaxRetries sets the maximum number of retries for transient poll and
// download failures.
func WithMaxRetries(maxRetries int) Option {
	return func(p *Provider) {
		p.maxRetries = maxRetries
	}
}

// WithRetryBaseWait sets the base wait time for retries.
func WithRetryBaseWait(retryBaseWait time.Duration) Option {
	return func(p *Provider) {
		p.retryBaseWait = retryBaseWait
	}
}

// WithLogger sets the logger used by the provider.
func WithLogger(logger log.Logger) Option {
	return func(p *Provider) {
		p.logger = logger
	}
}

// WithVideoService replaces the genai-backed service. Used by tests to
// script operation state sequences.
func WithVideoService(service VideoService) Option {
	return func(p *Provider) {
		p.service = service
	}
}
