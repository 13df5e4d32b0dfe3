package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"crimson/internal/domain/entity"
	domainerrors "crimson/internal/domain/errors"
	mockUsecase "crimson/internal/mocks/usecase"
	"crimson/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthHandler(t *testing.T) (*AuthHandler, *mockUsecase.MockAuthUsecase) {
	authUC := mockUsecase.NewMockAuthUsecase(t)

	return NewAuthHandler(AuthHandlerParams{AuthUC: authUC, Logger: testLogger}), authUC
}

func TestAuthHandler_Register(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		h, authUC := newAuthHandler(t)
		username := "nimal"
		profile := &entity.Profile{ID: uuid.New(), Email: "nimal@uni.lk", Username: &username}
		authUC.EXPECT().Register(mock.Anything, &usecase.RegisterInput{
			Email:    "nimal@uni.lk",
			Password: "secret1",
			Username: "nimal",
		}).Return(&usecase.LoginOutput{AccessToken: "at", RefreshToken: "rt", Profile: profile}, nil)
		c, rec := newTestContext(http.MethodPost, "/auth/register", `{"email":"nimal@uni.lk","password":"secret1","username":"nimal"}`)

		require.NoError(t, h.Register(c))

		assert.Equal(t, http.StatusCreated, rec.Code)
		resp := decodeData[AuthResponse](t, rec)
		assert.Equal(t, "at", resp.AccessToken)
		assert.Equal(t, "rt", resp.RefreshToken)
		assert.Equal(t, "Bearer", resp.TokenType)
		require.NotNil(t, resp.Profile)
		assert.Equal(t, "nimal", resp.Profile.DisplayName)
	})

	t.Run("invalid email", func(t *testing.T) {
		h, _ := newAuthHandler(t)
		c, rec := newTestContext(http.MethodPost, "/auth/register", `{"email":"nope","password":"secret1","username":"nimal"}`)

		require.NoError(t, h.Register(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, map[string]any{"email": "must be a valid email address"}, decodeEnvelope(t, rec).Error.Details)
	})

	t.Run("email taken", func(t *testing.T) {
		h, authUC := newAuthHandler(t)
		authUC.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrUserAlreadyExists)
		c, rec := newTestContext(http.MethodPost, "/auth/register", `{"email":"nimal@uni.lk","password":"secret1","username":"nimal"}`)

		require.NoError(t, h.Register(c))

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	h, authUC := newAuthHandler(t)
	authUC.EXPECT().Login(mock.Anything, &usecase.LoginInput{Email: "a@b.lk", Password: "wrong"}).
		Return(nil, domainerrors.ErrInvalidCredentials)
	c, rec := newTestContext(http.MethodPost, "/auth/login", `{"email":"a@b.lk","password":"wrong"}`)

	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "INVALID_CREDENTIALS", env.Error.Code)
	assert.Nil(t, env.Error.Details)
}

func TestAuthHandler_Logout_All(t *testing.T) {
	h, authUC := newAuthHandler(t)
	authUC.EXPECT().Logout(mock.Anything, &usecase.LogoutInput{RefreshToken: "rt", All: true}).Return(nil)
	c, rec := newTestContext(http.MethodPost, "/auth/logout", `{"refresh_token":"rt","all":true}`)

	require.NoError(t, h.Logout(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthHandler_GoogleCallback_FormField(t *testing.T) {
	h, authUC := newAuthHandler(t)
	authUC.EXPECT().GoogleCallback(mock.Anything, &usecase.GoogleCallbackInput{IDToken: "google-id-token"}).
		Return(&usecase.LoginOutput{AccessToken: "at", RefreshToken: "rt", Profile: &entity.Profile{ID: uuid.New()}}, nil)
	c, rec := newTestContext(http.MethodPost, "/oauth/google/callback", "")
	req := httptest.NewRequest(http.MethodPost, "/oauth/google/callback", strings.NewReader("id_token=google-id-token"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	c.SetRequest(req)

	require.NoError(t, h.GoogleCallback(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}
