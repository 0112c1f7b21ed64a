package ical

import (
	"strings"
	"testing"
	"time"

	"workhours/config"
	"workhours/internal/domain/calendarfeed"

	ics "github.com/arran4/golang-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFeed() *calendarfeed.Feed {
	created := time.Date(2025, 4, 1, 18, 0, 0, 0, time.UTC)

	return &calendarfeed.Feed{
		Events: []calendarfeed.Event{
			{
				UID:          "worklog-1@workhours",
				Start:        time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC),
				End:          time.Date(2025, 4, 1, 17, 15, 0, 0, time.UTC),
				Summary:      "Work: 8h 15m",
				Description:  "Client A sprint review",
				Created:      created,
				LastModified: created.Add(time.Hour),
			},
			{
				UID:          "worklog-2@workhours",
				Start:        time.Date(2025, 4, 2, 10, 0, 0, 0, time.UTC),
				End:          time.Date(2025, 4, 2, 12, 0, 0, 0, time.UTC),
				Summary:      "Work: 2h",
				Description:  calendarfeed.PlaceholderDescription,
				Created:      created,
				LastModified: created,
			},
		},
	}
}

func testRenderer() *renderer {
	return NewRenderer(&config.Config{Calendar: &config.CalendarConfig{
		Name:            "Work Hours",
		Description:     "Your logged work hours",
		RefreshInterval: time.Minute,
	}}).(*renderer)
}

func TestRenderer_RenderParsesBack(t *testing.T) {
	body, err := testRenderer().Render(testFeed())
	require.NoError(t, err)

	text := string(body)
	assert.True(t, strings.HasPrefix(text, "BEGIN:VCALENDAR"))
	assert.Contains(t, text, "X-WR-CALNAME:Work Hours")
	assert.Contains(t, text, "REFRESH-INTERVAL")
	assert.Contains(t, text, "PT1M")

	cal, err := ics.ParseCalendar(strings.NewReader(text))
	require.NoError(t, err)

	events := cal.Events()
	require.Len(t, events, 2)

	first := events[0]
	assert.Equal(t, "worklog-1@workhours", first.Id())

	start, err := first.GetStartAt()
	require.NoError(t, err)
	assert.True(t, start.Equal(time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)))

	end, err := first.GetEndAt()
	require.NoError(t, err)
	assert.True(t, end.Equal(time.Date(2025, 4, 1, 17, 15, 0, 0, time.UTC)))

	summary := first.GetProperty(ics.ComponentPropertySummary)
	require.NotNil(t, summary)
	assert.Equal(t, "Work: 8h 15m", summary.Value)

	second := events[1].GetProperty(ics.ComponentPropertyDescription)
	require.NotNil(t, second)
	assert.Equal(t, calendarfeed.PlaceholderDescription, second.Value)
}

func TestRenderer_IsDeterministic(t *testing.T) {
	r := testRenderer()

	first, err := r.Render(testFeed())
	require.NoError(t, err)
	second, err := r.Render(testFeed())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRenderer_EmptyFeed(t *testing.T) {
	body, err := testRenderer().Render(&calendarfeed.Feed{})
	require.NoError(t, err)
	assert.Contains(t, string(body), "END:VCALENDAR")
	assert.NotContains(t, string(body), "BEGIN:VEVENT")

	_, err = testRenderer().Render(nil)
	assert.Error(t, err)
}

func TestRenderer_ContentType(t *testing.T) {
	assert.Equal(t, "text/calendar; charset=utf-8", NewRenderer(nil).ContentType())
}

func TestIsoDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{time.Minute, "PT1M"},
		{15 * time.Minute, "PT15M"},
		{2 * time.Hour, "PT2H"},
		{90 * time.Second, "PT90S"},
		{0, "PT1M"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, isoDuration(tt.in), tt.in.String())
	}
}
