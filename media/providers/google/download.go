package google

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/deepnoodle-ai/veo/media"
	"github.com/deepnoodle-ai/wonton/retry"
	"google.golang.org/genai"
)

// DownloadVideo returns the content of a generated video. Inline bytes are
// returned as-is; otherwise the result URI is fetched over HTTP with the API
// key appended as a query parameter, which is how the Gemini API authorizes
// file downloads. Transfer failures get a bounded retry on transient
// statuses only.
func (p *Provider) DownloadVideo(ctx context.Context, video media.GeneratedVideo) ([]byte, error) {
	if len(video.VideoBytes) > 0 {
		return video.VideoBytes, nil
	}
	if video.URI == "" {
		return nil, &media.DownloadError{Err: errors.New("result has neither inline bytes nor a URI")}
	}

	url := video.URI
	if p.backend != genai.BackendVertexAI && p.apiKey != "" {
		separator := "?"
		if strings.Contains(url, "?") {
			separator = "&"
		}
		url = url + separator + "key=" + p.apiKey
	}
	p.logger.Debug("downloading video", "uri", video.URI)

	var body []byte
	err := retry.DoSimple(ctx, func() error {
		request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return retry.MarkPermanent(err)
		}
		response, err := p.httpClient.Do(request)
		if err != nil {
			return err
		}
		defer response.Body.Close()

		if response.StatusCode != http.StatusOK {
			statusErr := fmt.Errorf("unexpected status %d", response.StatusCode)
			if !isTransientStatus(response.StatusCode) {
				return retry.MarkPermanent(&media.DownloadError{
					URI:        video.URI,
					StatusCode: response.StatusCode,
					Err:        statusErr,
				})
			}
			return &media.DownloadError{
				URI:        video.URI,
				StatusCode: response.StatusCode,
				Err:        statusErr,
			}
		}
		body, err = io.ReadAll(response.Body)
		return err
	}, retry.WithMaxAttempts(p.maxRetries+1), retry.WithBackoff(p.retryBaseWait, time.Minute))
	if err != nil {
		var downloadErr *media.DownloadError
		if errors.As(err, &downloadErr) {
			return nil, downloadErr
		}
		return nil, &media.DownloadError{URI: video.URI, Err: err}
	}
	return body, nil
}
