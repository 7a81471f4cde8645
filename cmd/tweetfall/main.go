package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/samber/lo"

	"github.com/tweetfall/tweetfall"
	"github.com/tweetfall/tweetfall/slideshow"
)

func main() {
	os.Exit(run())
}

func run() int {
	screenName := flag.String("user", "nasa", "screen name whose timeline to animate")
	count := flag.Int("count", 20, "number of recent posts to fetch")
	interval := flag.Duration("interval", 3*time.Second, "time each slide stays on screen")
	flag.Parse()

	// A missing .env is fine; the variables may come from the environment.
	_ = godotenv.Load()

	key := os.Getenv("TWITTER_CONSUMER_KEY")
	secret := os.Getenv("TWITTER_CONSUMER_SECRET")
	if key == "" || secret == "" {
		fmt.Fprintln(os.Stderr, "tweetfall: TWITTER_CONSUMER_KEY and TWITTER_CONSUMER_SECRET must be set")
		return 1
	}

	client, err := tweetfall.NewClient(tweetfall.ClientConfig{
		ConsumerKey:    key,
		ConsumerSecret: secret,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "tweetfall: %v\n", err)
		return 1
	}

	var (
		mu     sync.Mutex
		slides []slideshow.Slide
	)

	_, err = client.UserTimeline(*screenName, *count, func(posts []*tweetfall.Post) {
		if posts == nil {
			return
		}
		withPhotos := lo.Filter(posts, func(p *tweetfall.Post, _ int) bool {
			return p.HasPhoto()
		})
		for _, post := range withPhotos {
			caption := post.Caption()
			client.FetchImage(post.PhotoURL().MustGet(), func(img image.Image) {
				if img == nil {
					return
				}
				mu.Lock()
				slides = append(slides, slideshow.Slide{Caption: caption, Image: img})
				mu.Unlock()
			})
		}
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "tweetfall: %v\n", err)
		return 1
	}

	// Blocks until the token exchange, the timeline fetch, and every
	// image fetch spawned from its callback have finished.
	client.Wait()

	if len(slides) == 0 {
		fmt.Fprintln(os.Stderr, "tweetfall: no photo posts found")
		return 1
	}

	program := tea.NewProgram(slideshow.New(slides, *interval), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "tweetfall: %v\n", err)
		return 1
	}
	return 0
}
