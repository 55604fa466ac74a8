package feed

import (
	"context"
	"html"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"
	"github.com/samber/lo"

	"github.com/slr71/dashboard-aggregator/pkg/domain"
)

// snippetLength is the max length of a website item description, in runes
const snippetLength = 281

var textPolicy = bluemonday.StrictPolicy()

// FeedParser parses the feed at url
type FeedParser interface {
	Parse(ctx context.Context, url string) (*gofeed.Feed, error)
}

// NewWebsiteSource makes a source for an RSS/Atom feed of site posts (news, events)
func NewWebsiteSource(name, url string, parser FeedParser) Source {
	return Strategy[*gofeed.Feed]{
		Label:     name,
		FetchRaw:  func(ctx context.Context) (*gofeed.Feed, error) { return parser.Parse(ctx, url) },
		Transform: websiteItems,
	}
}

func websiteItems(f *gofeed.Feed) []domain.FeedItem {
	if f == nil {
		return nil
	}
	return lo.Map(f.Items, func(in *gofeed.Item, _ int) domain.FeedItem {
		content := in.Content
		if content == "" {
			content = in.Description
		}
		return domain.FeedItem{
			ID:              itemID(in),
			Name:            in.Title,
			Description:     snippet(content, snippetLength),
			Content:         content,
			Link:            in.Link,
			Author:          authorName(in),
			PublicationDate: published(in),
		}
	})
}

// snippet strips markup from s, collapses whitespace and cuts the result to size runes
func snippet(s string, size int) string {
	text := html.UnescapeString(textPolicy.Sanitize(s))
	text = strings.Join(strings.Fields(text), " ")
	if r := []rune(text); len(r) > size {
		return string(r[:size])
	}
	return text
}

// itemID returns the item GUID, or a stable name-based UUID of its link or title
func itemID(in *gofeed.Item) string {
	if in.GUID != "" {
		return in.GUID
	}
	key := in.Link
	if key == "" {
		key = in.Title
	}
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(key)).String()
}

func authorName(in *gofeed.Item) string {
	if in.Author != nil && in.Author.Name != "" {
		return in.Author.Name
	}
	for _, a := range in.Authors {
		if a != nil && a.Name != "" {
			return a.Name
		}
	}
	return ""
}

func published(in *gofeed.Item) time.Time {
	switch {
	case in.PublishedParsed != nil:
		return *in.PublishedParsed
	case in.UpdatedParsed != nil:
		return *in.UpdatedParsed
	default:
		return time.Time{}
	}
}
