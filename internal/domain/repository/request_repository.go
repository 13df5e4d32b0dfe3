package repository

import (
	"context"

	"crimson/internal/domain/entity"
	"crimson/internal/errors"

	"github.com/google/uuid"
)

// ErrRequestNotFound is returned when a request is not found.
var ErrRequestNotFound = errors.New("request not found")

// RequestRepository persists request board posts, newest first.
type RequestRepository interface {
	Create(ctx context.Context, request *entity.Request) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Request, error)
	List(ctx context.Context) ([]*entity.Request, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Request, error)

	// DeleteOwned removes the request only when userID owns it and reports
	// whether a row was removed.
	DeleteOwned(ctx context.Context, id, userID uuid.UUID) (bool, error)
}
