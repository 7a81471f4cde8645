package tweetfall

import (
	"net/http"
	"strconv"

	"github.com/tweetfall/tweetfall/task"
)

// UserTimeline fetches the most recent posts for a screen name. The
// callback receives the decoded posts, or nil on any runtime or decode
// failure; one undecodable entry fails the whole batch.
func (c *Client) UserTimeline(screenName string, count int, cb func([]*Post)) (*task.Task, error) {
	return CallSlice[Post](c, Request{
		Method:   http.MethodGet,
		Endpoint: userTimelineEndpoint,
		Params: map[string]string{
			"screen_name": screenName,
			"count":       strconv.Itoa(count),
		},
	}, cb)
}
