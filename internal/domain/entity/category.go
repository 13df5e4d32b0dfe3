package entity

import "github.com/google/uuid"

// CategoryGroup partitions the taxonomy. A listing may only reference a
// category from the group of its type.
type CategoryGroup string

const (
	CategoryGroupBook        CategoryGroup = "book"
	CategoryGroupMarketplace CategoryGroup = "marketplace"
	CategoryGroupService     CategoryGroup = "service"
	CategoryGroupRequest     CategoryGroup = "request"
)

// IsValid checks if the group is a known value.
func (g CategoryGroup) IsValid() bool {
	switch g {
	case CategoryGroupBook, CategoryGroupMarketplace, CategoryGroupService, CategoryGroupRequest:
		return true
	default:
		return false
	}
}

// Category groups listings. Slug is unique within Group.
type Category struct {
	ID    uuid.UUID     `json:"id"`
	Name  string        `json:"name"`
	Slug  string        `json:"slug"`
	Group CategoryGroup `json:"group"`
}

// Accepts reports whether listings of type t may be filed under c.
func (c *Category) Accepts(t ListingType) bool {
	return c.Group == t.CategoryGroup()
}
