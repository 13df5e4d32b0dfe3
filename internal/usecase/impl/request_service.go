package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "crimson/internal/delivery/context"
	"crimson/internal/domain/entity"
	domainerrors "crimson/internal/domain/errors"
	"crimson/internal/domain/repository"
	"crimson/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type requestService struct {
	requestRepo repository.RequestRepository
	logger      *slog.Logger
}

// NewRequestService creates a new request board service instance
func NewRequestService(requestRepo repository.RequestRepository, logger *slog.Logger) usecase.RequestUsecase {
	return &requestService{
		requestRepo: requestRepo,
		logger:      logger,
	}
}

func (srv *requestService) CreateRequest(ctx context.Context, userID uuid.UUID, input *usecase.CreateRequestInput) (*entity.Request, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domainerrors.ErrBlankTitle
	}

	request := &entity.Request{
		UserID:      userID,
		Title:       title,
		Description: trimmedOrNil(input.Description),
		Category:    trimmedOrNil(input.Category),
		Status:      entity.RequestStatusOpen,
	}
	if err := srv.requestRepo.Create(ctx, request); err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Request created", slog.Any("requestID", request.ID))

	return request, nil
}

func (srv *requestService) ListRequests(ctx context.Context) ([]*entity.Request, error) {
	requests, err := srv.requestRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list requests")
	}

	return requests, nil
}

func (srv *requestService) ListUserRequests(ctx context.Context, userID uuid.UUID) ([]*entity.Request, error) {
	requests, err := srv.requestRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user requests")
	}

	return requests, nil
}

func (srv *requestService) DeleteRequest(ctx context.Context, userID, requestID uuid.UUID) error {
	deleted, err := srv.requestRepo.DeleteOwned(ctx, requestID, userID)
	if err != nil {
		return errors.Wrap(err, "failed to delete request")
	}
	if deleted {
		return nil
	}

	// Nothing was deleted: tell a missing request apart from someone else's.
	if _, err := srv.requestRepo.FindByID(ctx, requestID); err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return errors.Wrap(domainerrors.ErrRequestNotFound, requestID.String())
		}

		return errors.Wrap(err, "failed to find request")
	}

	return domainerrors.ErrRequestForbidden
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}

	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}
