package handler

import (
	"log/slog"
	"net/http"

	"crimson/internal/delivery/api/middleware"
	"crimson/internal/delivery/api/response"
	"crimson/internal/domain/entity"
	"crimson/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CategoryHandlerParams holds dependencies for CategoryHandler, injected by Fx.
type CategoryHandlerParams struct {
	fx.In

	CategoryUC usecase.CategoryUsecase
	Logger     *slog.Logger
}

type CategoryHandler struct {
	categoryUC usecase.CategoryUsecase
	logger     *slog.Logger
}

func NewCategoryHandler(params CategoryHandlerParams) *CategoryHandler {
	return &CategoryHandler{
		categoryUC: params.CategoryUC,
		logger:     params.Logger,
	}
}

type CreateCategoryRequest struct {
	Name  string `json:"name" validate:"notblank,max=80"`
	Slug  string `json:"slug" validate:"notblank,max=80"`
	Group string `json:"group" validate:"required,categorygroup"`
}

// ListCategories returns the taxonomy, optionally narrowed by ?group=.
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	var group *entity.CategoryGroup
	if raw := c.QueryParam("group"); raw != "" {
		g := entity.CategoryGroup(raw)
		if !g.IsValid() {
			return response.BadRequest(c, "INVALID_GROUP", "group must be one of book, marketplace, service, request")
		}
		group = &g
	}

	categories, err := h.categoryUC.ListCategories(c.Request().Context(), group)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, categories)
}

// GetCategory resolves a category by group and slug.
func (h *CategoryHandler) GetCategory(c echo.Context) error {
	group := entity.CategoryGroup(c.Param("group"))
	if !group.IsValid() {
		return response.BadRequest(c, "INVALID_GROUP", "group must be one of book, marketplace, service, request")
	}

	category, err := h.categoryUC.GetCategoryBySlug(c.Request().Context(), group, c.Param("slug"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, category)
}

// CreateCategory adds a taxonomy entry. Admin only.
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	category, err := h.categoryUC.CreateCategory(c.Request().Context(), userID, &usecase.CreateCategoryInput{
		Name:  req.Name,
		Slug:  req.Slug,
		Group: entity.CategoryGroup(req.Group),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, category)
}
