package tweetfall

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 50), G: uint8(y * 50), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestFetchImage(t *testing.T) {
	raw := pngBytes(t, 4, 3)

	mux := http.NewServeMux()
	mux.HandleFunc("/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, bearerGrantJSON)
	})
	mux.HandleFunc("/media/photo.png", func(w http.ResponseWriter, r *http.Request) {
		w.Write(raw)
	})
	mux.HandleFunc("/media/broken.png", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "not an image")
	})
	mux.HandleFunc("/media/missing.png", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	c := newTestClient(t, srv.URL)

	var (
		mu     sync.Mutex
		good   image.Image
		bad    image.Image
		absent image.Image
		calls  int
	)
	c.FetchImage(srv.URL+"/media/photo.png", func(img image.Image) {
		mu.Lock()
		good = img
		calls++
		mu.Unlock()
	})
	c.FetchImage(srv.URL+"/media/broken.png", func(img image.Image) {
		mu.Lock()
		bad = img
		calls++
		mu.Unlock()
	})
	c.FetchImage(srv.URL+"/media/missing.png", func(img image.Image) {
		mu.Lock()
		absent = img
		calls++
		mu.Unlock()
	})
	c.Wait()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 3, calls)
	require.NotNil(t, good)
	assert.Equal(t, 4, good.Bounds().Dx())
	assert.Equal(t, 3, good.Bounds().Dy())
	assert.Nil(t, bad)
	assert.Nil(t, absent)
}
