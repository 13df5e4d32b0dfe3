package usecase

import (
	"context"

	"crimson/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateRequestInput is a new "wanted" post.
type CreateRequestInput struct {
	Title       string
	Description *string
	Category    *string
}

// RequestUsecase manages the request board.
type RequestUsecase interface {
	CreateRequest(ctx context.Context, userID uuid.UUID, input *CreateRequestInput) (*entity.Request, error)
	ListRequests(ctx context.Context) ([]*entity.Request, error)
	ListUserRequests(ctx context.Context, userID uuid.UUID) ([]*entity.Request, error)

	// DeleteRequest removes a request owned by userID.
	DeleteRequest(ctx context.Context, userID, requestID uuid.UUID) error
}
