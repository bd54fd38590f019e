package server

import (
	"bytes"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scottkirkwood/blobposter/config"
	"github.com/scottkirkwood/blobposter/scene"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(New(log.New(io.Discard)).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, ts *httptest.Server, path string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Get(ts.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t)
	resp, body := get(t, ts, "/healthz")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok\n", string(body))
}

func TestPosterDownload(t *testing.T) {
	ts := newTestServer(t)
	resp, body := get(t, ts, "/poster.png?style=b&blobs=3&hearts=2&fig_width=4&fig_height=4")
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
	assert.Equal(t, `attachment; filename="poster.png"`, resp.Header.Get("Content-Disposition"))
	_, err := png.Decode(bytes.NewReader(body))
	assert.NoError(t, err)
}

func TestPosterIsReproducible(t *testing.T) {
	ts := newTestServer(t)
	path := "/preview.png?style=a&seed=42&blobs=4&fig_width=4&fig_height=4"
	_, first := get(t, ts, path)
	_, second := get(t, ts, path)
	assert.Equal(t, first, second)
}

func TestPreview(t *testing.T) {
	ts := newTestServer(t)
	resp, body := get(t, ts, "/preview.png?fig_width=4&fig_height=5")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, resp.Header.Get("Content-Disposition"))
	img, err := png.Decode(bytes.NewReader(body))
	require.NoError(t, err)
	assert.Equal(t, 400, img.Bounds().Dx())
	assert.Equal(t, 500, img.Bounds().Dy())
}

func TestBadParams(t *testing.T) {
	ts := newTestServer(t)
	for _, q := range []string{"style=c", "blobs=x", "blobs=0", "seed=abc", "wobble=nan"} {
		resp, _ := get(t, ts, "/poster.png?"+q)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, q)
	}
}

func TestRendersAreThrottled(t *testing.T) {
	s := New(log.New(io.Discard), WithRenderLimit(1, 0))
	entered, release := make(chan struct{}), make(chan struct{})
	h := s.throttle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(entered)
		<-release
	}))

	done := make(chan int)
	go func() {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/poster.png", nil))
		done <- rec.Code
	}()
	<-entered

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/poster.png", nil))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code, "second render while the first runs")

	close(release)
	assert.Equal(t, http.StatusOK, <-done)
}

func TestHealthzIsNotThrottled(t *testing.T) {
	ts := httptest.NewServer(New(log.New(io.Discard), WithRenderLimit(1, 0)).Handler())
	t.Cleanup(ts.Close)
	for i := 0; i < 3; i++ {
		resp, _ := get(t, ts, "/healthz")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	}
}

func TestParseQuery(t *testing.T) {
	p, err := ParseQuery(url.Values{"style": {"B"}, "irregularity": {"0.4"}, "seed": {"none"}})
	require.NoError(t, err)
	assert.Equal(t, scene.StyleB, p.Style)
	assert.Equal(t, 0.4, p.Irregularity)
	assert.Nil(t, p.Seed)

	p, err = ParseQuery(url.Values{"seed": {"9"}})
	require.NoError(t, err)
	assert.Equal(t, int64(9), *p.Seed)
	assert.Equal(t, config.Defaults(scene.StyleA).NBlobs, p.NBlobs)

	p, err = ParseQuery(url.Values{"seed": {"0x2a"}})
	require.NoError(t, err)
	assert.Equal(t, int64(42), *p.Seed)
}
