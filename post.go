package tweetfall

import (
	"fmt"
	"net/url"
	"regexp"

	"github.com/samber/mo"

	"github.com/tweetfall/tweetfall/jsonv"
)

// linkRe matches embedded hyperlink substrings in post text.
var linkRe = regexp.MustCompile(`https?://\S+`)

// Post is a read-only projection over one timeline entry. It holds the
// underlying JSON value and derives everything on access; there is no
// mutable state.
type Post struct {
	v jsonv.Value
}

// UnmarshalValue implements jsonv.Unmarshaler. A timeline entry must be a
// JSON object.
func (p *Post) UnmarshalValue(v jsonv.Value) error {
	if !v.IsObject() {
		return fmt.Errorf("post: %w: expected object, got %s", jsonv.ErrTypeMismatch, v.Raw())
	}
	p.v = v
	return nil
}

// Caption returns the display caption: the post text with embedded links
// stripped, prefixed with "@<screen_name> " when the author's screen name
// is present. Returns "" when the text field is absent.
func (p *Post) Caption() string {
	text, ok := p.v.Get("text").AsString().Get()
	if !ok {
		return ""
	}
	caption := linkRe.ReplaceAllString(text, "")
	if screenName, ok := p.v.Get("user", "screen_name").AsString().Get(); ok {
		caption = "@" + screenName + " " + caption
	}
	return caption
}

// PhotoURL returns the HTTPS URL of the post's first attached photo,
// suffixed to request the large rendition. None when the post carries no
// media or the resulting string is not a valid URL.
func (p *Post) PhotoURL() mo.Option[string] {
	raw, ok := p.v.Get("entities", "media", 0, "media_url_https").AsString().Get()
	if !ok {
		return mo.None[string]()
	}
	withVariant := raw + photoVariantSuffix
	if _, err := url.ParseRequestURI(withVariant); err != nil {
		return mo.None[string]()
	}
	return mo.Some(withVariant)
}

// HasPhoto reports whether the post carries a usable photo URL.
func (p *Post) HasPhoto() bool {
	return p.PhotoURL().IsPresent()
}
