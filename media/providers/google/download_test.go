package google

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/deepnoodle-ai/veo/media"
	"github.com/stretchr/testify/require"
)

func TestDownloadVideoInlineBytes(t *testing.T) {
	provider := newTestProvider(t, &fakeVideoService{})

	data, err := provider.DownloadVideo(context.Background(), media.GeneratedVideo{
		VideoBytes: []byte{1, 2, 3},
	})
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3}, data)
}

func TestDownloadVideoNoData(t *testing.T) {
	provider := newTestProvider(t, &fakeVideoService{})

	_, err := provider.DownloadVideo(context.Background(), media.GeneratedVideo{})
	var downloadErr *media.DownloadError
	require.ErrorAs(t, err, &downloadErr)
}

func TestDownloadVideoFromURI(t *testing.T) {
	var gotKey atomic.Value
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey.Store(r.URL.Query().Get("key"))
		w.Write([]byte("video-content"))
	}))
	defer server.Close()

	provider := newTestProvider(t, &fakeVideoService{}, WithHTTPClient(server.Client()))

	data, err := provider.DownloadVideo(context.Background(), media.GeneratedVideo{
		URI: server.URL + "/files/video.mp4",
	})
	require.NoError(t, err)
	require.Equal(t, []byte("video-content"), data)

	// The API key authorizes the download
	require.Equal(t, "test-key", gotKey.Load())
}

func TestDownloadVideoPreservesExistingQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "download", r.URL.Query().Get("alt"))
		require.Equal(t, "test-key", r.URL.Query().Get("key"))
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	provider := newTestProvider(t, &fakeVideoService{}, WithHTTPClient(server.Client()))

	_, err := provider.DownloadVideo(context.Background(), media.GeneratedVideo{
		URI: server.URL + "/files/video.mp4?alt=download",
	})
	require.NoError(t, err)
}

func TestDownloadVideoPermanentFailure(t *testing.T) {
	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	provider := newTestProvider(t, &fakeVideoService{}, WithHTTPClient(server.Client()))

	_, err := provider.DownloadVideo(context.Background(), media.GeneratedVideo{
		URI: server.URL + "/files/video.mp4",
	})
	var downloadErr *media.DownloadError
	require.ErrorAs(t, err, &downloadErr)
	require.Equal(t, http.StatusNotFound, downloadErr.StatusCode)

	// 404 is not retried
	require.Equal(t, int32(1), requests.Load())
}

func TestDownloadVideoTransientRetry(t *testing.T) {
	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if requests.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte("video-content"))
	}))
	defer server.Close()

	provider := newTestProvider(t, &fakeVideoService{}, WithHTTPClient(server.Client()))

	data, err := provider.DownloadVideo(context.Background(), media.GeneratedVideo{
		URI: server.URL + "/files/video.mp4",
	})
	require.NoError(t, err)
	require.Equal(t, []byte("video-content"), data)
	require.Equal(t, int32(2), requests.Load())
}
