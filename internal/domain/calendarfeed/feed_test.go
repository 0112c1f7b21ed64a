package calendarfeed

import (
	"testing"
	"time"

	"workhours/internal/domain/clocktime"
	"workhours/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// plainMatcher compares secrets verbatim.
type plainMatcher struct{}

func (plainMatcher) Check(secret, hash string) bool { return secret == hash }

func completeLog(notes string) *entity.WorkLog {
	date, _ := clocktime.ParseDate("2025-04-01")
	created := time.Date(2025, 4, 1, 18, 0, 0, 0, time.UTC)

	return &entity.WorkLog{
		ID:        uuid.New(),
		Date:      date,
		StartTime: clocktime.MustParse("09:00:30"),
		EndTime:   clocktime.MustParse("17:15"),
		Notes:     notes,
		CreatedAt: created,
		UpdatedAt: created.Add(time.Hour),
	}
}

func TestBuilder_Authorize(t *testing.T) {
	ownerID := uuid.New()
	stored := &entity.CalendarToken{OwnerID: ownerID, TokenHash: "abc123"}
	builder := NewBuilder(plainMatcher{}, "decoy")

	tests := []struct {
		name     string
		stored   *entity.CalendarToken
		supplied string
		wantErr  bool
	}{
		{"stored plus ics suffix", stored, "abc123.ics", false},
		{"stored plus any four chars", stored, "abc123XXXX", false},
		{"stored without suffix", stored, "abc123", true},
		{"wrong secret", stored, "abc124.ics", true},
		{"suffix only", stored, ".ics", true},
		{"empty", stored, "", true},
		{"no stored token", nil, "abc123.ics", true},
		{"revoked token", &entity.CalendarToken{OwnerID: ownerID}, ".ics", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := builder.Authorize(tt.stored, tt.supplied)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnauthorized)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// countingMatcher records the hashes it was asked to compare against.
type countingMatcher struct {
	hashes []string
}

func (m *countingMatcher) Check(secret, hash string) bool {
	m.hashes = append(m.hashes, hash)

	return secret == hash
}

func TestBuilder_RejectionsCompareOnce(t *testing.T) {
	ownerID := uuid.New()
	stored := &entity.CalendarToken{OwnerID: ownerID, TokenHash: "abc123"}

	tests := []struct {
		name     string
		stored   *entity.CalendarToken
		supplied string
		wantHash string
	}{
		{"no stored token", nil, "abc123.ics", "decoy"},
		{"revoked token", &entity.CalendarToken{OwnerID: ownerID}, "abc123.ics", "decoy"},
		{"token of another owner", &entity.CalendarToken{OwnerID: uuid.New(), TokenHash: "abc123"}, "abc123.ics", "decoy"},
		{"wrong secret", stored, "abc124.ics", "abc123"},
		{"suffix only", stored, ".ics", "abc123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matcher := &countingMatcher{}

			_, err := NewBuilder(matcher, "decoy").Build(ownerID, tt.stored, tt.supplied, loaderOf())
			assert.ErrorIs(t, err, ErrUnauthorized)
			assert.Equal(t, []string{tt.wantHash}, matcher.hashes)
		})
	}
}

func TestBuilder_DecoySecretNeverAuthorizes(t *testing.T) {
	err := NewBuilder(plainMatcher{}, "decoy").Authorize(nil, "decoy.ics")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func loaderOf(logs ...*entity.WorkLog) LogLoader {
	return func() ([]*entity.WorkLog, error) { return logs, nil }
}

func TestBuilder_BuildRejectsOtherOwner(t *testing.T) {
	stored := &entity.CalendarToken{OwnerID: uuid.New(), TokenHash: "abc123"}

	_, err := NewBuilder(plainMatcher{}, "decoy").Build(uuid.New(), stored, "abc123.ics", loaderOf())
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestBuilder_BuildSkipsLoadWhenUnauthorized(t *testing.T) {
	ownerID := uuid.New()
	stored := &entity.CalendarToken{OwnerID: ownerID, TokenHash: "abc123"}
	loaded := false

	_, err := NewBuilder(plainMatcher{}, "decoy").Build(ownerID, stored, "wrong.ics", func() ([]*entity.WorkLog, error) {
		loaded = true

		return nil, nil
	})
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.False(t, loaded)
}

func TestBuilder_BuildShapesEvents(t *testing.T) {
	ownerID := uuid.New()
	stored := &entity.CalendarToken{OwnerID: ownerID, TokenHash: "secret"}
	withNotes := completeLog("Client A")
	withoutNotes := completeLog("")
	withoutNotes.EndTime = clocktime.MustParse("17:00")
	incomplete := completeLog("missing end")
	incomplete.EndTime = clocktime.TimeOfDay{}

	feed, err := NewBuilder(plainMatcher{}, "decoy").Build(ownerID, stored, "secret.ics", loaderOf(withNotes, incomplete, withoutNotes))
	require.NoError(t, err)

	assert.Equal(t, ownerID, feed.OwnerID)
	assert.Equal(t, 1, feed.Skipped)
	require.Len(t, feed.Events, 2)

	first := feed.Events[0]
	assert.Equal(t, "worklog-"+withNotes.ID.String()+"@workhours", first.UID)
	assert.Equal(t, time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC), first.Start)
	assert.Equal(t, time.Date(2025, 4, 1, 17, 15, 0, 0, time.UTC), first.End)
	assert.Equal(t, "Work: 8h 15m", first.Summary)
	assert.Equal(t, "Client A", first.Description)
	assert.Equal(t, withNotes.CreatedAt, first.Created)
	assert.Equal(t, withNotes.UpdatedAt, first.LastModified)

	second := feed.Events[1]
	assert.Equal(t, "Work: 8h", second.Summary)
	assert.Equal(t, PlaceholderDescription, second.Description)
}

func TestEventUIDIsStable(t *testing.T) {
	id := uuid.New()
	assert.Equal(t, EventUID(id), EventUID(id))
	assert.NotEqual(t, EventUID(id), EventUID(uuid.New()))
}
