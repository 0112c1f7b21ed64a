package impl

import (
	"context"
	"testing"

	"workhours/internal/domain/calendarfeed"
	"workhours/internal/domain/entity"
	domainerrors "workhours/internal/domain/errors"
	"workhours/internal/domain/repository"
	mockSvc "workhours/internal/mocks/service"
	"workhours/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// calendarServiceFixtures holds all test dependencies for calendar service tests.
type calendarServiceFixtures struct {
	service  usecase.CalendarUsecase
	repos    *repoMocks
	hasher   *mockSvc.MockSecretHasher
	tokens   *mockSvc.MockTokenGenerator
	qrCode   *mockSvc.MockQRCodeService
	renderer *mockSvc.MockCalendarRenderer
}

func createTestCalendarService(t *testing.T) calendarServiceFixtures {
	fx := calendarServiceFixtures{
		repos:    newRepoMocks(t),
		hasher:   mockSvc.NewMockSecretHasher(t),
		tokens:   mockSvc.NewMockTokenGenerator(t),
		qrCode:   mockSvc.NewMockQRCodeService(t),
		renderer: mockSvc.NewMockCalendarRenderer(t),
	}
	fx.hasher.EXPECT().Hash(feedDecoySecret).Return("decoy-hash", nil).Once()
	fx.service = NewCalendarService(CalendarServiceParams{
		TxManager: fx.repos.txManager,
		Hasher:    fx.hasher,
		Tokens:    fx.tokens,
		QRCode:    fx.qrCode,
		Renderer:  fx.renderer,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})

	return fx
}

func TestCalendarService_GenerateToken(t *testing.T) {
	fx := createTestCalendarService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	wantURL := "https://hours.example.com/calendar-feed/" + ownerID.String() + "/plain-token.ics"

	fx.tokens.EXPECT().Generate().Return("plain-token", nil)
	fx.hasher.EXPECT().Hash("plain-token").Return("hashed", nil)
	fx.repos.tokenRepo.EXPECT().
		Upsert(ctx, mock.MatchedBy(func(tok *entity.CalendarToken) bool {
			return tok.OwnerID == ownerID && tok.TokenHash == "hashed"
		})).
		Return(nil)
	fx.qrCode.EXPECT().GenerateLinkQR(wantURL).Return([]byte("png"), nil)

	result, err := fx.service.GenerateToken(ctx, ownerID)
	require.NoError(t, err)
	assert.Equal(t, "plain-token", result.Token)
	assert.Equal(t, wantURL, result.FeedURL)
	assert.Equal(t, []byte("png"), result.QRCode)
}

func TestCalendarService_GenerateToken_QRFailureKeepsToken(t *testing.T) {
	fx := createTestCalendarService(t)
	ctx := context.Background()

	fx.tokens.EXPECT().Generate().Return("plain-token", nil)
	fx.hasher.EXPECT().Hash("plain-token").Return("hashed", nil)
	fx.repos.tokenRepo.EXPECT().Upsert(ctx, mock.Anything).Return(nil)
	fx.qrCode.EXPECT().GenerateLinkQR(mock.Anything).Return(nil, errors.New("too long"))

	result, err := fx.service.GenerateToken(ctx, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, "plain-token", result.Token)
	assert.Nil(t, result.QRCode)
}

func TestCalendarService_RevokeToken(t *testing.T) {
	fx := createTestCalendarService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	fx.repos.tokenRepo.EXPECT().Delete(ctx, ownerID).Return(nil).Once()
	require.NoError(t, fx.service.RevokeToken(ctx, ownerID))

	fx.repos.tokenRepo.EXPECT().Delete(ctx, ownerID).Return(repository.ErrCalendarTokenNotFound).Once()
	assert.ErrorIs(t, fx.service.RevokeToken(ctx, ownerID), domainerrors.ErrCalendarTokenNotFound)
}

func TestCalendarService_TokenStatus(t *testing.T) {
	fx := createTestCalendarService(t)
	ctx := context.Background()
	enabled, disabled := uuid.New(), uuid.New()

	fx.repos.tokenRepo.EXPECT().FindByOwner(ctx, enabled).Return(&entity.CalendarToken{OwnerID: enabled, TokenHash: "h"}, nil)
	fx.repos.tokenRepo.EXPECT().FindByOwner(ctx, disabled).Return(nil, repository.ErrCalendarTokenNotFound)

	status, err := fx.service.TokenStatus(ctx, enabled)
	require.NoError(t, err)
	assert.True(t, status.Enabled)

	status, err = fx.service.TokenStatus(ctx, disabled)
	require.NoError(t, err)
	assert.False(t, status.Enabled)
	assert.Nil(t, status.CreatedAt)
}

func TestCalendarService_SubscriptionQR(t *testing.T) {
	fx := createTestCalendarService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	stored := &entity.CalendarToken{OwnerID: ownerID, TokenHash: "hashed"}

	fx.repos.tokenRepo.EXPECT().FindByOwner(ctx, ownerID).Return(stored, nil)
	fx.hasher.EXPECT().Check("right", "hashed").Return(true)
	fx.hasher.EXPECT().Check("wrong", "hashed").Return(false)
	fx.qrCode.EXPECT().GenerateLinkQR(mock.MatchedBy(func(link string) bool {
		return link == "https://hours.example.com/calendar-feed/"+ownerID.String()+"/right.ics"
	})).Return([]byte("png"), nil)

	png, err := fx.service.SubscriptionQR(ctx, ownerID, "right")
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)

	_, err = fx.service.SubscriptionQR(ctx, ownerID, "wrong")
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	_, err = fx.service.SubscriptionQR(ctx, ownerID, "")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCalendarService_BuildFeed(t *testing.T) {
	fx := createTestCalendarService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	complete := testLog("2025-04-01", "09:00", "17:00")
	complete.ID = uuid.New()
	incomplete := &entity.WorkLog{ID: uuid.New()}

	fx.repos.tokenRepo.EXPECT().FindByOwner(ctx, ownerID).Return(&entity.CalendarToken{OwnerID: ownerID, TokenHash: "hashed"}, nil)
	fx.hasher.EXPECT().Check("secret", "hashed").Return(true)
	fx.repos.workLogRepo.EXPECT().
		List(ctx, ownerID, entity.WorkLogFilter{Asc: true}).
		Return([]*entity.WorkLog{complete, incomplete}, nil)
	fx.renderer.EXPECT().
		Render(mock.MatchedBy(func(feed *calendarfeed.Feed) bool {
			return len(feed.Events) == 1 && feed.Skipped == 1 && feed.Events[0].Summary == "Work: 8h"
		})).
		Return([]byte("BEGIN:VCALENDAR"), nil)
	fx.renderer.EXPECT().ContentType().Return("text/calendar; charset=utf-8")

	feed, err := fx.service.BuildFeed(ctx, ownerID, "secret.ics")
	require.NoError(t, err)
	assert.Equal(t, "BEGIN:VCALENDAR", string(feed.Body))
	assert.Equal(t, 1, feed.Events)
	assert.Equal(t, 1, feed.Skipped)
}

func TestCalendarService_BuildFeed_Unauthorized(t *testing.T) {
	otherOwner := uuid.New()

	tests := []struct {
		name      string
		stored    *entity.CalendarToken
		storeErr  error
		supplied  string
		checkedAt string
	}{
		{name: "no token stored", storeErr: repository.ErrCalendarTokenNotFound, supplied: "secret.ics", checkedAt: "decoy-hash"},
		{name: "revoked token", stored: &entity.CalendarToken{}, supplied: "secret.ics", checkedAt: "decoy-hash"},
		{name: "token of another owner", stored: &entity.CalendarToken{OwnerID: otherOwner, TokenHash: "hashed"}, supplied: "secret.ics", checkedAt: "decoy-hash"},
		{name: "suffix missing", stored: &entity.CalendarToken{TokenHash: "hashed"}, supplied: "secret", checkedAt: "hashed"},
		{name: "too short", stored: &entity.CalendarToken{TokenHash: "hashed"}, supplied: ".ics", checkedAt: "hashed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCalendarService(t)
			ctx := context.Background()
			ownerID := uuid.New()
			if tt.stored != nil && tt.stored.OwnerID == uuid.Nil {
				tt.stored.OwnerID = ownerID
			}

			fx.repos.tokenRepo.EXPECT().FindByOwner(ctx, ownerID).Return(tt.stored, tt.storeErr)
			fx.hasher.EXPECT().Check(mock.Anything, tt.checkedAt).Return(false).Once()

			_, err := fx.service.BuildFeed(ctx, ownerID, tt.supplied)
			assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
		})
	}
}
