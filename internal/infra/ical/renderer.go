// Package ical serialises calendar feeds as iCalendar documents.
package ical

import (
	"fmt"
	"time"

	"workhours/config"
	"workhours/internal/domain/calendarfeed"
	"workhours/internal/domain/service"

	ics "github.com/arran4/golang-ical"
	"github.com/pkg/errors"
)

const (
	contentType = "text/calendar; charset=utf-8"
	productID   = "-//workhours//calendar feed//EN"
)

type renderer struct {
	name        string
	description string
	refresh     time.Duration
}

// NewRenderer is the constructor for the iCalendar renderer.
func NewRenderer(cfg *config.Config) service.CalendarRenderer {
	r := &renderer{refresh: time.Minute}
	if cfg != nil && cfg.Calendar != nil {
		r.name = cfg.Calendar.Name
		r.description = cfg.Calendar.Description
		if cfg.Calendar.RefreshInterval > 0 {
			r.refresh = cfg.Calendar.RefreshInterval
		}
	}

	return r
}

// Render writes one VEVENT per feed event. DTSTAMP is the event's last modification, so the
// document only changes when the logs do.
func (r *renderer) Render(feed *calendarfeed.Feed) ([]byte, error) {
	if feed == nil {
		return nil, errors.New("feed is nil")
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(productID)
	cal.SetXWRTimezone("UTC")
	if r.name != "" {
		cal.SetName(r.name)
		cal.SetXWRCalName(r.name)
	}
	if r.description != "" {
		cal.SetDescription(r.description)
		cal.SetXWRCalDesc(r.description)
	}
	interval := isoDuration(r.refresh)
	cal.SetRefreshInterval(interval)
	cal.SetXPublishedTTL(interval)

	for _, ev := range feed.Events {
		event := cal.AddEvent(ev.UID)
		event.SetDtStampTime(ev.LastModified)
		event.SetCreatedTime(ev.Created)
		event.SetModifiedAt(ev.LastModified)
		event.SetStartAt(ev.Start)
		event.SetEndAt(ev.End)
		event.SetSummary(ev.Summary)
		event.SetDescription(ev.Description)
	}

	return []byte(cal.Serialize()), nil
}

// ContentType is the MIME type of Render's output.
func (r *renderer) ContentType() string {
	return contentType
}

// isoDuration formats d as an RFC 5545 duration using the largest whole unit.
func isoDuration(d time.Duration) string {
	seconds := int64(d / time.Second)
	switch {
	case seconds <= 0:
		return "PT1M"
	case seconds%3600 == 0:
		return fmt.Sprintf("PT%dH", seconds/3600)
	case seconds%60 == 0:
		return fmt.Sprintf("PT%dM", seconds/60)
	default:
		return fmt.Sprintf("PT%dS", seconds)
	}
}
