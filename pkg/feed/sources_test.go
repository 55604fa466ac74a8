package feed

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slr71/dashboard-aggregator/pkg/domain"
)

const websiteRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:content="http://purl.org/rss/1.0/modules/content/" xmlns:dc="http://purl.org/dc/elements/1.1/">
<channel>
	<title>News</title>
	<link>https://example.com</link>
	<description>Site news</description>
	<item>
		<title>Older post</title>
		<link>https://example.com/older</link>
		<guid>post-1</guid>
		<dc:creator>Jane Doe</dc:creator>
		<pubDate>Mon, 02 Jan 2006 15:04:05 -0700</pubDate>
		<description>short</description>
		<content:encoded><![CDATA[<p>Hello &amp; <b>welcome</b>   to the
		new site.</p>]]></content:encoded>
	</item>
	<item>
		<title>Newer post</title>
		<link>https://example.com/newer</link>
		<pubDate>Tue, 03 Jan 2006 15:04:05 -0700</pubDate>
		<description><![CDATA[<div>plain description only</div>]]></description>
	</item>
</channel>
</rss>`

const videoAtom = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns:yt="http://www.youtube.com/xml/schemas/2015" xmlns:media="http://search.yahoo.com/mrss/" xmlns="http://www.w3.org/2005/Atom">
	<title>Channel</title>
	<entry>
		<id>yt:video:abc</id>
		<title>Video one</title>
		<link rel="alternate" href="https://video.example.com/watch?v=abc"/>
		<author><name>Channel Owner</name></author>
		<published>2024-01-02T15:04:05+00:00</published>
		<media:group>
			<media:title>Video one</media:title>
			<media:thumbnail url="https://img.example.com/abc.jpg" width="480" height="360"/>
			<media:description>About video one</media:description>
		</media:group>
	</entry>
	<entry>
		<id>yt:video:def</id>
		<title>Video two</title>
		<link rel="alternate" href="https://video.example.com/watch?v=def"/>
		<published>2024-01-03T15:04:05+00:00</published>
	</entry>
</feed>`

func feedServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "dashboard-test", r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestWebsiteSource_Fetch(t *testing.T) {
	srv := feedServer(t, websiteRSS)
	src := NewWebsiteSource(domain.FeedNews, srv.URL, NewParser(5*time.Second, "dashboard-test"))
	assert.Equal(t, domain.FeedNews, src.Name())

	items, err := src.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)

	first := items[0]
	assert.Equal(t, "post-1", first.ID)
	assert.Equal(t, "Older post", first.Name)
	assert.Equal(t, "Hello & welcome to the new site.", first.Description)
	assert.Contains(t, first.Content, "<b>welcome</b>")
	assert.Equal(t, "https://example.com/older", first.Link)
	assert.Equal(t, "Jane Doe", first.Author)
	assert.Equal(t, 2006, first.PublicationDate.Year())
	assert.True(t, first.DateAdded.IsZero(), "date added is set by the cache")

	second := items[1]
	assert.Equal(t, uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://example.com/newer")).String(), second.ID)
	assert.Equal(t, "plain description only", second.Description)
	assert.Empty(t, second.Author)
}

func TestWebsiteSource_FetchErrors(t *testing.T) {
	t.Run("bad status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		_, err := NewWebsiteSource("news", srv.URL, NewParser(time.Second, "")).Fetch(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unexpected status code 502")
	})

	t.Run("not a feed", func(t *testing.T) {
		srv := feedServer(t, "this is not xml")
		_, err := NewWebsiteSource("news", srv.URL, NewParser(time.Second, "dashboard-test")).Fetch(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse feed")
	})
}

func TestVideoSource_Fetch(t *testing.T) {
	srv := feedServer(t, videoAtom)
	src := NewVideoSource(domain.FeedVideos, srv.URL, NewParser(5*time.Second, "dashboard-test"))

	items, err := src.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "yt:video:abc", items[0].ID)
	assert.Equal(t, "Video one", items[0].Name)
	assert.Equal(t, "About video one", items[0].Description)
	assert.Equal(t, "https://img.example.com/abc.jpg", items[0].ThumbnailURL)
	assert.Equal(t, "https://video.example.com/watch?v=abc", items[0].Link)
	assert.Equal(t, "Channel Owner", items[0].Author)

	assert.Equal(t, "yt:video:def", items[1].ID)
	assert.Empty(t, items[1].ThumbnailURL)
	assert.Empty(t, items[1].Description)
}

type listerFunc func(ctx context.Context) ([]domain.InstantLaunch, error)

func (f listerFunc) InstantLaunches(ctx context.Context) ([]domain.InstantLaunch, error) { return f(ctx) }

func TestInstantLaunchSource_Fetch(t *testing.T) {
	t.Run("transform", func(t *testing.T) {
		src := NewInstantLaunchSource(domain.FeedInstantLaunches, listerFunc(func(context.Context) ([]domain.InstantLaunch, error) {
			return []domain.InstantLaunch{
				{ID: "il-1", QuickLaunchID: "ql-1", QuickLaunchName: "Jupyter", QuickLaunchDescription: "notebook",
					AddedBy: "admin", AddedOn: "2024-03-04T05:06:07Z"},
				{ID: "il-2", AppName: "RStudio", AppDescription: "ide", AddedOn: "garbage"},
			}, nil
		}))

		items, err := src.Fetch(context.Background())
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, domain.FeedItem{ID: "il-1", Name: "Jupyter", Description: "notebook", QuickLaunchID: "ql-1",
			Author: "admin", PublicationDate: time.Date(2024, 3, 4, 5, 6, 7, 0, time.UTC)}, items[0])
		assert.Equal(t, "RStudio", items[1].Name)
		assert.Equal(t, "ide", items[1].Description)
		assert.True(t, items[1].PublicationDate.IsZero())
		assert.Empty(t, items[1].QuickLaunchID)
		for _, it := range items {
			assert.Empty(t, it.Content)
		}
	})

	t.Run("error", func(t *testing.T) {
		src := NewInstantLaunchSource("il", listerFunc(func(context.Context) ([]domain.InstantLaunch, error) {
			return nil, errors.New("app-exposer unavailable")
		}))
		_, err := src.Fetch(context.Background())
		require.Error(t, err)
		assert.Equal(t, "fetch il: app-exposer unavailable", err.Error())
	})
}

func TestSnippet(t *testing.T) {
	long := strings.Repeat("é", snippetLength+10)
	assert.Len(t, []rune(snippet(long, snippetLength)), snippetLength)
	assert.Equal(t, "a b", snippet("<p>a</p>\n\n<p>b</p>", 10))
	assert.Empty(t, snippet("", 10))
}

func TestNewestFirst(t *testing.T) {
	in := []domain.FeedItem{{ID: "1"}, {ID: "2"}, {ID: "3"}}
	ts := time.Unix(100, 0)

	res := newestFirst(in, 2, ts)
	require.Len(t, res, 2)
	assert.Equal(t, "3", res[0].ID)
	assert.Equal(t, "2", res[1].ID)
	assert.Equal(t, ts, res[0].DateAdded)
	assert.Equal(t, 2, cap(res))

	assert.Equal(t, "1", in[0].ID, "input untouched")
	assert.True(t, in[0].DateAdded.IsZero())

	empty := newestFirst(nil, 5, ts)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}
