package entity

import (
	"time"

	"crimson/internal/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ListingType is the discriminant of the listing variant.
type ListingType string

const (
	ListingTypeBook    ListingType = "book"
	ListingTypeItem    ListingType = "item"
	ListingTypeService ListingType = "service"
	ListingTypeRequest ListingType = "request"
)

// UnknownSeller is shown for sellers without a username.
const UnknownSeller = "Unknown"

// Price placeholders shown instead of an amount.
const (
	PlaceholderContactForPricing = "Contact for pricing"
	PlaceholderFlexibleBudget    = "Flexible budget"
)

var (
	ErrNegativePrice = errors.New("price must not be negative")
	ErrPriceRequired = errors.New("price is required for books and items")
)

// IsValid checks if the type is a known value.
func (t ListingType) IsValid() bool {
	switch t {
	case ListingTypeBook, ListingTypeItem, ListingTypeService, ListingTypeRequest:
		return true
	default:
		return false
	}
}

// CategoryGroup returns the taxonomy group listings of this type file under.
func (t ListingType) CategoryGroup() CategoryGroup {
	switch t {
	case ListingTypeBook:
		return CategoryGroupBook
	case ListingTypeItem:
		return CategoryGroupMarketplace
	case ListingTypeService:
		return CategoryGroupService
	default:
		return CategoryGroupRequest
	}
}

// PriceOptional reports whether a zero price is meaningful for the type.
func (t ListingType) PriceOptional() bool {
	return t == ListingTypeService || t == ListingTypeRequest
}

// ValidatePrice applies the per-variant price rules.
func (t ListingType) ValidatePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return ErrNegativePrice
	}
	if price.IsZero() && !t.PriceOptional() {
		return ErrPriceRequired
	}

	return nil
}

// Placeholder is shown in place of a non-positive price.
func (t ListingType) Placeholder() string {
	if t == ListingTypeRequest {
		return PlaceholderFlexibleBudget
	}

	return PlaceholderContactForPricing
}

// Listing is a marketplace entry under moderation.
type Listing struct {
	ID          uuid.UUID
	SellerID    uuid.UUID
	CategoryID  *uuid.UUID
	Type        ListingType
	Title       string
	Description string
	Price       decimal.Decimal
	ImageURL    *string
	Status      ListingStatus
	Featured    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Read-side joins, filled by queries.
	SellerName *string
	Category   *Category
}

// NewListing builds a listing as submitted by a seller. Moderation fields are
// fixed: every new listing is pending and not featured.
func NewListing(sellerID uuid.UUID, listingType ListingType, title, description string, price decimal.Decimal, categoryID *uuid.UUID) *Listing {
	return &Listing{
		SellerID:    sellerID,
		CategoryID:  categoryID,
		Type:        listingType,
		Title:       title,
		Description: description,
		Price:       price,
		Status:      ListingStatusPending,
		Featured:    false,
	}
}

// DisplayPrice renders the price for display. Amounts are shown only when
// positive; otherwise the type placeholder is used.
func (l *Listing) DisplayPrice(currency string) string {
	if l.Price.IsPositive() {
		return FormatPrice(currency, l.Price)
	}

	return l.Type.Placeholder()
}

// SellerDisplayName returns the joined seller username or UnknownSeller.
func (l *Listing) SellerDisplayName() string {
	if l.SellerName == nil || *l.SellerName == "" {
		return UnknownSeller
	}

	return *l.SellerName
}

// VisibleTo applies the read policy: approved listings are public, anything
// else is visible only to its seller and to admins.
func (l *Listing) VisibleTo(viewer Viewer) bool {
	if l.Status == ListingStatusApproved {
		return true
	}

	return viewer.IsAdmin || (!viewer.IsAnonymous() && viewer.UserID == l.SellerID)
}

// Viewer identifies who is reading. The zero value is an anonymous visitor.
type Viewer struct {
	UserID  uuid.UUID
	IsAdmin bool
}

// IsAnonymous reports whether the viewer is signed out.
func (v Viewer) IsAnonymous() bool {
	return v.UserID == uuid.Nil
}
