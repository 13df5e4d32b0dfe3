package postgres

import (
	"context"

	"crimson/internal/domain/entity"
	domainerrors "crimson/internal/domain/errors"
	"crimson/internal/domain/repository"
	"crimson/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type requestRepository struct {
	db *gorm.DB
}

// NewRequestRepository is the constructor for requestRepository.
func NewRequestRepository(db *gorm.DB) repository.RequestRepository {
	return &requestRepository{db: db}
}

func (repo *requestRepository) Create(ctx context.Context, request *entity.Request) error {
	requestM := fromRequestDomain(request)

	if err := repo.db.WithContext(ctx).Create(requestM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create request")
	}

	request.ID = requestM.ID
	request.Status = requestM.Status
	request.CreatedAt = requestM.CreatedAt
	request.UpdatedAt = requestM.UpdatedAt

	return nil
}

func (repo *requestRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Request, error) {
	var requestM model.RequestModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&requestM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find request by ID")
	}

	return toRequestDomain(&requestM), nil
}

func (repo *requestRepository) List(ctx context.Context) ([]*entity.Request, error) {
	return repo.find(repo.db.WithContext(ctx))
}

func (repo *requestRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Request, error) {
	return repo.find(repo.db.WithContext(ctx).Where("user_id = ?", userID))
}

func (repo *requestRepository) find(query *gorm.DB) ([]*entity.Request, error) {
	var requestModels []*model.RequestModel
	if err := query.Order("created_at DESC").Order("id DESC").Find(&requestModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list requests")
	}

	requests := make([]*entity.Request, 0, len(requestModels))
	for _, requestM := range requestModels {
		requests = append(requests, toRequestDomain(requestM))
	}

	return requests, nil
}

func (repo *requestRepository) DeleteOwned(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.RequestModel{})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete request")
	}

	return result.RowsAffected > 0, nil
}

func toRequestDomain(data *model.RequestModel) *entity.Request {
	if data == nil {
		return nil
	}

	return &entity.Request{
		ID:          data.ID,
		UserID:      data.UserID,
		Title:       data.Title,
		Description: data.Description,
		Category:    data.Category,
		Status:      data.Status,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromRequestDomain(data *entity.Request) *model.RequestModel {
	if data == nil {
		return nil
	}

	status := data.Status
	if status == "" {
		status = entity.RequestStatusOpen
	}

	return &model.RequestModel{
		ID:          data.ID,
		UserID:      data.UserID,
		Title:       data.Title,
		Description: data.Description,
		Category:    data.Category,
		Status:      status,
	}
}
