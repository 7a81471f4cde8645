package tweetfall

import (
	"image"
	"log/slog"
	"net/http"

	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder

	_ "golang.org/x/image/webp" // register WebP decoder

	"github.com/tweetfall/tweetfall/task"
)

// FetchImage downloads and decodes the image at rawURL on the client's
// queue. Media URLs are public CDN links, so the task carries no
// dependency on the credential exchange. The callback receives nil when
// the download or decode fails; it is invoked exactly once.
func (c *Client) FetchImage(rawURL string, cb func(image.Image)) *task.Task {
	t := task.New("image "+rawURL, func(finish func()) {
		defer finish()

		resp, err := c.httpClient.Get(rawURL)
		if err != nil {
			slog.Warn("image fetch failed", slog.String("url", rawURL), slog.Any("error", err))
			cb(nil)
			return
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			slog.Warn("image fetch non-200", slog.String("url", rawURL), slog.Int("status", resp.StatusCode))
			cb(nil)
			return
		}

		img, _, err := image.Decode(resp.Body)
		if err != nil {
			slog.Warn("image decode failed", slog.String("url", rawURL), slog.Any("error", err))
			cb(nil)
			return
		}
		cb(img)
	})
	c.queue.Add(t)
	return t
}
