package handler

import (
	"net/http"
	"testing"

	"crimson/internal/domain/entity"
	domainerrors "crimson/internal/domain/errors"
	mockUsecase "crimson/internal/mocks/usecase"
	"crimson/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProfileHandler_GetProfile(t *testing.T) {
	profileUC := mockUsecase.NewMockProfileUsecase(t)
	h := NewProfileHandler(ProfileHandlerParams{ProfileUC: profileUC, Logger: testLogger})
	userID := uuid.New()
	profileUC.EXPECT().GetProfile(mock.Anything, userID).
		Return(&entity.Profile{ID: userID, Email: "amaya@uni.lk", IsAdmin: true}, nil)
	c, rec := newTestContext(http.MethodGet, "/api/v1/profile", "")
	asUser(c, userID)

	require.NoError(t, h.GetProfile(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	profile := decodeData[ProfileResponse](t, rec)
	assert.Equal(t, entity.UnknownSeller, profile.DisplayName)
	assert.True(t, profile.IsAdmin)
}

func TestProfileHandler_UpdateProfile(t *testing.T) {
	userID := uuid.New()
	avatar := ""

	t.Run("clears the avatar", func(t *testing.T) {
		profileUC := mockUsecase.NewMockProfileUsecase(t)
		h := NewProfileHandler(ProfileHandlerParams{ProfileUC: profileUC, Logger: testLogger})
		profileUC.EXPECT().UpdateProfile(mock.Anything, userID, &usecase.UpdateProfileInput{AvatarURL: &avatar}).
			Return(&entity.Profile{ID: userID}, nil)
		c, rec := newTestContext(http.MethodPut, "/api/v1/profile", `{"avatar_url":""}`)
		asUser(c, userID)

		require.NoError(t, h.UpdateProfile(c))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("rejected avatar", func(t *testing.T) {
		profileUC := mockUsecase.NewMockProfileUsecase(t)
		h := NewProfileHandler(ProfileHandlerParams{ProfileUC: profileUC, Logger: testLogger})
		profileUC.EXPECT().UpdateProfile(mock.Anything, userID, mock.Anything).
			Return(nil, domainerrors.ErrValidationFailed.WithDetails("avatar_url must be an http(s) URL"))
		c, rec := newTestContext(http.MethodPut, "/api/v1/profile", `{"avatar_url":"ftp://x"}`)
		asUser(c, userID)

		require.NoError(t, h.UpdateProfile(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "avatar_url must be an http(s) URL", decodeEnvelope(t, rec).Error.Details)
	})
}
