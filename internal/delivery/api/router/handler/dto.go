package handler

import (
	"time"

	"crimson/internal/domain/entity"
	"crimson/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ListingResponse is the public shape of a listing. DisplayPrice carries the
// placeholder text when the price is not positive.
type ListingResponse struct {
	ID           uuid.UUID            `json:"id"`
	SellerID     uuid.UUID            `json:"seller_id"`
	SellerName   string               `json:"seller_name"`
	Type         entity.ListingType   `json:"type"`
	Title        string               `json:"title"`
	Description  string               `json:"description"`
	Price        decimal.Decimal      `json:"price"`
	DisplayPrice string               `json:"display_price"`
	ImageURL     *string              `json:"image_url"`
	CategoryID   *uuid.UUID           `json:"category_id"`
	Category     *entity.Category     `json:"category,omitempty"`
	Status       entity.ListingStatus `json:"status"`
	Featured     bool                 `json:"featured"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`
}

func newListingResponse(listing *entity.Listing, currency string) *ListingResponse {
	return &ListingResponse{
		ID:           listing.ID,
		SellerID:     listing.SellerID,
		SellerName:   listing.SellerDisplayName(),
		Type:         listing.Type,
		Title:        listing.Title,
		Description:  listing.Description,
		Price:        listing.Price,
		DisplayPrice: listing.DisplayPrice(currency),
		ImageURL:     listing.ImageURL,
		CategoryID:   listing.CategoryID,
		Category:     listing.Category,
		Status:       listing.Status,
		Featured:     listing.Featured,
		CreatedAt:    listing.CreatedAt,
		UpdatedAt:    listing.UpdatedAt,
	}
}

func newListingResponses(listings []*entity.Listing, currency string) []*ListingResponse {
	out := make([]*ListingResponse, 0, len(listings))
	for _, listing := range listings {
		out = append(out, newListingResponse(listing, currency))
	}

	return out
}

// ProfileResponse exposes a profile without its internal timestamps.
type ProfileResponse struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	Username    *string   `json:"username"`
	DisplayName string    `json:"display_name"`
	AvatarURL   *string   `json:"avatar_url"`
	IsAdmin     bool      `json:"is_admin"`
	CreatedAt   time.Time `json:"created_at"`
}

func newProfileResponse(profile *entity.Profile) *ProfileResponse {
	if profile == nil {
		return nil
	}

	return &ProfileResponse{
		ID:          profile.ID,
		Email:       profile.Email,
		Username:    profile.Username,
		DisplayName: profile.DisplayName(entity.UnknownSeller),
		AvatarURL:   profile.AvatarURL,
		IsAdmin:     profile.IsAdmin,
		CreatedAt:   profile.CreatedAt,
	}
}

// AuthResponse is returned by every sign-in flow.
type AuthResponse struct {
	AccessToken  string           `json:"access_token"`
	RefreshToken string           `json:"refresh_token"`
	TokenType    string           `json:"token_type"`
	Profile      *ProfileResponse `json:"profile"`
}

func newAuthResponse(output *usecase.LoginOutput) *AuthResponse {
	return &AuthResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
		TokenType:    "Bearer",
		Profile:      newProfileResponse(output.Profile),
	}
}
