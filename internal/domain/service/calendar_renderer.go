package service

import (
	"workhours/internal/domain/calendarfeed"
)

// CalendarRenderer serialises a feed into a calendar document.
type CalendarRenderer interface {
	// Render returns the document bytes for feed.
	Render(feed *calendarfeed.Feed) ([]byte, error)

	// ContentType is the MIME type of Render's output.
	ContentType() string
}
