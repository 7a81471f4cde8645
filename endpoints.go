package tweetfall

const (
	// defaultBaseURL is the fixed API host. Overridable via ClientConfig
	// for tests.
	defaultBaseURL = "https://api.twitter.com"

	// tokenEndpoint is the application-only OAuth2 token exchange path.
	tokenEndpoint = "oauth2/token"

	// userTimelineEndpoint returns a user's recent posts.
	userTimelineEndpoint = "1.1/statuses/user_timeline.json"
)

// photoVariantSuffix requests the large rendition of a media URL.
const photoVariantSuffix = ":large"
