package domain

import "time"

// FeedItem is a normalized content record produced by a feed source
type FeedItem struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Content         string    `json:"content,omitempty"`
	Link            string    `json:"link,omitempty"`
	Author          string    `json:"author,omitempty"`
	ThumbnailURL    string    `json:"thumbnailUrl,omitempty"`
	QuickLaunchID   string    `json:"quick_launch_id,omitempty"` // instant launches only
	PublicationDate time.Time `json:"publication_date"`
	DateAdded       time.Time `json:"date_added"`
}

// Feed names used by the dashboard
const (
	FeedNews            = "news"
	FeedEvents          = "events"
	FeedVideos          = "videos"
	FeedInstantLaunches = "instantLaunches"
)
