package middleware

import (
	"strings"

	"crimson/internal/delivery/api/response"
	"crimson/internal/domain/entity"
	"crimson/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	contextKeyUserID = "user_id"
	contextKeyRoles  = "roles"

	bearerPrefix = "Bearer "
)

// AuthMiddleware validates access tokens and gates routes by role.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate rejects requests without a valid access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authorization header is missing")
		}

		if !m.authenticate(c, header) {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		return next(c)
	}
}

// OptionalAuthenticate lets anonymous requests through but still rejects a
// token that is present and invalid.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" {
			return next(c)
		}

		if !m.authenticate(c, header) {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		return next(c)
	}
}

// RequireRole must run after Authenticate.
func (m *AuthMiddleware) RequireRole(required entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !GetRoles(c).Contains(required) {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+required.String()+"' role")
			}

			return next(c)
		}
	}
}

func (m *AuthMiddleware) authenticate(c echo.Context, header string) bool {
	token, ok := strings.CutPrefix(header, bearerPrefix)
	if !ok || token == "" {
		return false
	}

	claims, err := m.tokenSvc.ValidateToken(token, service.TokenTypeAccess)
	if err != nil || claims.UserID == uuid.Nil {
		return false
	}

	SetUser(c, claims.UserID, entity.RolesFromStrings(claims.Roles))

	return true
}

// SetUser records the authenticated caller on c.
func SetUser(c echo.Context, userID uuid.UUID, roles entity.Roles) {
	c.Set(contextKeyUserID, userID)
	c.Set(contextKeyRoles, roles)
}

// GetUserID returns the authenticated user id.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(contextKeyUserID).(uuid.UUID)

	return userID, ok && userID != uuid.Nil
}

// GetRoles returns the roles of the access token, or nil for anonymous requests.
func GetRoles(c echo.Context) entity.Roles {
	roles, _ := c.Get(contextKeyRoles).(entity.Roles)

	return roles
}

func IsAdmin(c echo.Context) bool {
	return GetRoles(c).Contains(entity.RoleAdmin)
}

// GetViewer describes the caller for read policies.
func GetViewer(c echo.Context) entity.Viewer {
	userID, ok := GetUserID(c)
	if !ok {
		return entity.Viewer{}
	}

	return entity.Viewer{UserID: userID, IsAdmin: IsAdmin(c)}
}
