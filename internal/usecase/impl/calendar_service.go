package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"workhours/config"
	deliverycontext "workhours/internal/delivery/context"
	"workhours/internal/domain/calendarfeed"
	"workhours/internal/domain/entity"
	domainerrors "workhours/internal/domain/errors"
	"workhours/internal/domain/repository"
	"workhours/internal/domain/service"
	"workhours/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// calendarService implements the CalendarUsecase interface.
type calendarService struct {
	txManager repository.TransactionManager
	hasher    service.SecretHasher
	tokens    service.TokenGenerator
	qrCode    service.QRCodeService
	renderer  service.CalendarRenderer
	builder   *calendarfeed.Builder
	baseURL   string
	logger    *slog.Logger
}

// CalendarServiceParams holds dependencies for CalendarService, injected by Fx.
type CalendarServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Hasher    service.SecretHasher
	Tokens    service.TokenGenerator
	QRCode    service.QRCodeService
	Renderer  service.CalendarRenderer
	Config    *config.Config
	Logger    *slog.Logger
}

// feedDecoySecret is hashed once at startup. Owners without a token are checked against
// that hash so the feed rejects them in the same time as a wrong token.
const feedDecoySecret = "calendar-feed-decoy"

// NewCalendarService is the constructor for calendarService.
func NewCalendarService(params CalendarServiceParams) usecase.CalendarUsecase {
	baseURL := ""
	if params.Config != nil && params.Config.Calendar != nil {
		baseURL = strings.TrimRight(params.Config.Calendar.BaseURL, "/")
	}

	decoyHash, err := params.Hasher.Hash(feedDecoySecret)
	if err != nil {
		params.Logger.Warn("Failed to hash calendar feed decoy secret", slog.Any("error", err))
	}

	return &calendarService{
		txManager: params.TxManager,
		hasher:    params.Hasher,
		tokens:    params.Tokens,
		qrCode:    params.QRCode,
		renderer:  params.Renderer,
		builder:   calendarfeed.NewBuilder(params.Hasher, decoyHash),
		baseURL:   baseURL,
		logger:    params.Logger,
	}
}

func (srv *calendarService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GenerateToken creates a fresh token, replacing any previous one.
func (srv *calendarService) GenerateToken(ctx context.Context, ownerID uuid.UUID) (*usecase.CalendarTokenResult, error) {
	plain, err := srv.tokens.Generate()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate calendar token")
	}

	hash, err := srv.hasher.Hash(plain)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash calendar token")
	}

	now := time.Now()
	token := &entity.CalendarToken{
		OwnerID:   ownerID,
		TokenHash: hash,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.CalendarTokenRepo().Upsert(ctx, token); err != nil {
			return errors.Wrap(err, "failed to save calendar token")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	result := &usecase.CalendarTokenResult{
		Token:     plain,
		FeedURL:   srv.feedURL(ownerID, plain),
		CreatedAt: token.CreatedAt,
	}

	// The token is already saved; a missing QR image should not fail the request.
	if png, err := srv.qrCode.GenerateLinkQR(result.FeedURL); err != nil {
		srv.log(ctx).Warn("Failed to render subscription QR code", slog.Any("owner_id", ownerID), slog.Any("error", err))
	} else {
		result.QRCode = png
	}

	srv.log(ctx).Info("Calendar token generated", slog.Any("owner_id", ownerID))

	return result, nil
}

// RevokeToken disables the feed.
func (srv *calendarService) RevokeToken(ctx context.Context, ownerID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.CalendarTokenRepo().Delete(ctx, ownerID); err != nil {
			if errors.Is(err, repository.ErrCalendarTokenNotFound) {
				return errors.Wrap(domainerrors.ErrCalendarTokenNotFound, "no calendar token to revoke")
			}

			return errors.Wrap(err, "failed to delete calendar token")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Calendar token revoked", slog.Any("owner_id", ownerID))

	return nil
}

// TokenStatus reports whether a token exists.
func (srv *calendarService) TokenStatus(ctx context.Context, ownerID uuid.UUID) (*usecase.CalendarTokenStatus, error) {
	status := &usecase.CalendarTokenStatus{}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		token, err := repoFactory.CalendarTokenRepo().FindByOwner(ctx, ownerID)
		if err != nil {
			if errors.Is(err, repository.ErrCalendarTokenNotFound) {
				return nil
			}

			return errors.Wrap(err, "failed to find calendar token")
		}

		status.Enabled = token.IsEnabled()
		status.CreatedAt = &token.CreatedAt
		status.UpdatedAt = &token.UpdatedAt

		return nil
	})
	if err != nil {
		return nil, err
	}

	return status, nil
}

// SubscriptionQR renders the feed URL for token. Only the hash is stored, so the caller has to
// present the plain token it received from GenerateToken.
func (srv *calendarService) SubscriptionQR(ctx context.Context, ownerID uuid.UUID, token string) ([]byte, error) {
	if token == "" {
		return nil, domainerrors.NewValidationError("token is required")
	}

	var stored *entity.CalendarToken

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.CalendarTokenRepo().FindByOwner(ctx, ownerID)
		if err != nil {
			if errors.Is(err, repository.ErrCalendarTokenNotFound) {
				return errors.WithStack(domainerrors.ErrCalendarTokenNotFound)
			}

			return errors.Wrap(err, "failed to find calendar token")
		}
		stored = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	if !srv.hasher.Check(token, stored.TokenHash) {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "token does not match the active calendar token")
	}

	png, err := srv.qrCode.GenerateLinkQR(srv.feedURL(ownerID, token))
	if err != nil {
		return nil, errors.Wrap(err, "failed to render subscription QR code")
	}

	return png, nil
}

// BuildFeed authorises suppliedToken and renders every log of the owner as a calendar.
// All token failures collapse into the same unauthorised error.
func (srv *calendarService) BuildFeed(ctx context.Context, ownerID uuid.UUID, suppliedToken string) (*usecase.CalendarFeed, error) {
	var feed *calendarfeed.Feed

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		stored, err := repoFactory.CalendarTokenRepo().FindByOwner(ctx, ownerID)
		if err != nil && !errors.Is(err, repository.ErrCalendarTokenNotFound) {
			return errors.Wrap(err, "failed to find calendar token")
		}

		built, err := srv.builder.Build(ownerID, stored, suppliedToken, func() ([]*entity.WorkLog, error) {
			return repoFactory.WorkLogRepo().List(ctx, ownerID, entity.WorkLogFilter{Asc: true})
		})
		if err != nil {
			if errors.Is(err, calendarfeed.ErrUnauthorized) {
				return errors.Wrap(domainerrors.ErrUnauthorized, "calendar feed access denied")
			}

			return errors.Wrap(err, "failed to build calendar feed")
		}
		feed = built

		return nil
	})
	if err != nil {
		return nil, err
	}

	body, err := srv.renderer.Render(feed)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render calendar feed")
	}

	if feed.Skipped > 0 {
		srv.log(ctx).Debug("Incomplete work logs left out of calendar feed",
			slog.Any("owner_id", ownerID),
			slog.Int("skipped", feed.Skipped),
		)
	}

	return &usecase.CalendarFeed{
		Body:        body,
		ContentType: srv.renderer.ContentType(),
		Events:      len(feed.Events),
		Skipped:     feed.Skipped,
	}, nil
}

func (srv *calendarService) feedURL(ownerID uuid.UUID, token string) string {
	return fmt.Sprintf("%s/calendar-feed/%s/%s.ics", srv.baseURL, ownerID, token)
}
