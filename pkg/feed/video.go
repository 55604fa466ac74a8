package feed

import (
	"context"

	"github.com/mmcdole/gofeed"
	ext "github.com/mmcdole/gofeed/extensions"
	"github.com/samber/lo"

	"github.com/slr71/dashboard-aggregator/pkg/domain"
)

// NewVideoSource makes a source for a video feed carrying media:group extensions
func NewVideoSource(name, url string, parser FeedParser) Source {
	return Strategy[*gofeed.Feed]{
		Label:     name,
		FetchRaw:  func(ctx context.Context) (*gofeed.Feed, error) { return parser.Parse(ctx, url) },
		Transform: videoItems,
	}
}

func videoItems(f *gofeed.Feed) []domain.FeedItem {
	if f == nil {
		return nil
	}
	return lo.Map(f.Items, func(in *gofeed.Item, _ int) domain.FeedItem {
		res := domain.FeedItem{
			ID:              itemID(in),
			Name:            in.Title,
			Content:         in.Content,
			Link:            in.Link,
			Author:          authorName(in),
			PublicationDate: published(in),
		}
		if group, ok := mediaGroup(in); ok {
			if desc, ok := firstChild(group, "description"); ok {
				res.Description = desc.Value
			}
			if thumb, ok := firstChild(group, "thumbnail"); ok {
				res.ThumbnailURL = thumb.Attrs["url"]
			}
		}
		if res.Description == "" {
			res.Description = in.Description
		}
		return res
	})
}

func mediaGroup(in *gofeed.Item) (ext.Extension, bool) {
	groups := in.Extensions["media"]["group"]
	if len(groups) == 0 {
		return ext.Extension{}, false
	}
	return groups[0], true
}

func firstChild(e ext.Extension, name string) (ext.Extension, bool) {
	children := e.Children[name]
	if len(children) == 0 {
		return ext.Extension{}, false
	}
	return children[0], true
}
