package handler

import (
	"net/http"
	"testing"
	"time"

	"crimson/internal/domain/entity"
	domainerrors "crimson/internal/domain/errors"
	mockUsecase "crimson/internal/mocks/usecase"
	"crimson/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRequestHandler(t *testing.T) (*RequestHandler, *mockUsecase.MockRequestUsecase) {
	requestUC := mockUsecase.NewMockRequestUsecase(t)

	return NewRequestHandler(RequestHandlerParams{RequestUC: requestUC, Logger: testLogger}), requestUC
}

func TestRequestHandler_CreateRequest(t *testing.T) {
	userID := uuid.New()
	description := "Any edition is fine"

	h, requestUC := newRequestHandler(t)
	requestUC.EXPECT().CreateRequest(mock.Anything, userID, &usecase.CreateRequestInput{
		Title:       "Looking for a lab coat",
		Description: &description,
	}).Return(&entity.Request{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       "Looking for a lab coat",
		Description: &description,
		Status:      entity.RequestStatusOpen,
		CreatedAt:   time.Now(),
	}, nil)
	c, rec := newTestContext(http.MethodPost, "/api/v1/requests", `{"title":"Looking for a lab coat","description":"Any edition is fine"}`)
	asUser(c, userID)

	require.NoError(t, h.CreateRequest(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, entity.RequestStatusOpen, decodeData[entity.Request](t, rec).Status)
}

func TestRequestHandler_CreateRequest_BlankTitle(t *testing.T) {
	h, _ := newRequestHandler(t)
	c, rec := newTestContext(http.MethodPost, "/api/v1/requests", `{"title":" "}`)
	asUser(c, uuid.New())

	require.NoError(t, h.CreateRequest(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRequestHandler_ListUserRequests(t *testing.T) {
	h, requestUC := newRequestHandler(t)
	userID := uuid.New()
	requestUC.EXPECT().ListUserRequests(mock.Anything, userID).Return([]*entity.Request{{ID: uuid.New(), UserID: userID}}, nil)
	c, rec := newTestContext(http.MethodGet, "/", "")
	c.SetParamNames("id")
	c.SetParamValues(userID.String())

	require.NoError(t, h.ListUserRequests(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeData[[]entity.Request](t, rec), 1)
}

func TestRequestHandler_DeleteRequest_NotOwner(t *testing.T) {
	h, requestUC := newRequestHandler(t)
	userID := uuid.New()
	requestID := uuid.New()
	requestUC.EXPECT().DeleteRequest(mock.Anything, userID, requestID).Return(domainerrors.ErrRequestForbidden)
	c, rec := newTestContext(http.MethodDelete, "/", "")
	c.SetParamNames("id")
	c.SetParamValues(requestID.String())
	asUser(c, userID)

	require.NoError(t, h.DeleteRequest(c))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
