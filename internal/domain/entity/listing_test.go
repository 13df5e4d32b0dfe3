package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestListingType_ValidatePrice(t *testing.T) {
	tests := []struct {
		name        string
		listingType ListingType
		price       decimal.Decimal
		wantErr     error
	}{
		{name: "book with price", listingType: ListingTypeBook, price: decimal.NewFromInt(45)},
		{name: "book without price", listingType: ListingTypeBook, price: decimal.Zero, wantErr: ErrPriceRequired},
		{name: "item negative", listingType: ListingTypeItem, price: decimal.NewFromInt(-1), wantErr: ErrNegativePrice},
		{name: "service free", listingType: ListingTypeService, price: decimal.Zero},
		{name: "request flexible", listingType: ListingTypeRequest, price: decimal.Zero},
		{name: "request negative", listingType: ListingTypeRequest, price: decimal.RequireFromString("-0.01"), wantErr: ErrNegativePrice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.listingType.ValidatePrice(tt.price)
			if tt.wantErr == nil {
				assert.NoError(t, err)

				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestListing_DisplayPrice(t *testing.T) {
	tests := []struct {
		name        string
		listingType ListingType
		price       decimal.Decimal
		want        string
	}{
		{name: "service zero", listingType: ListingTypeService, price: decimal.Zero, want: "Contact for pricing"},
		{name: "request zero", listingType: ListingTypeRequest, price: decimal.Zero, want: "Flexible budget"},
		{name: "service priced", listingType: ListingTypeService, price: decimal.NewFromInt(1500), want: "Rs 1,500"},
		{name: "book priced", listingType: ListingTypeBook, price: decimal.NewFromInt(67), want: "Rs 67"},
		{name: "fractional", listingType: ListingTypeItem, price: decimal.RequireFromString("1234.5"), want: "Rs 1,234.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			listing := &Listing{Type: tt.listingType, Price: tt.price}
			assert.Equal(t, tt.want, listing.DisplayPrice(DefaultCurrency))
		})
	}
}

func TestNewListing_AlwaysPending(t *testing.T) {
	listing := NewListing(uuid.New(), ListingTypeBook, "Grimoire", "", decimal.NewFromInt(67), nil)

	assert.Equal(t, ListingStatusPending, listing.Status)
	assert.False(t, listing.Featured)
}

func TestListing_VisibleTo(t *testing.T) {
	seller := uuid.New()
	stranger := Viewer{UserID: uuid.New()}
	owner := Viewer{UserID: seller}
	admin := Viewer{UserID: uuid.New(), IsAdmin: true}
	anonymous := Viewer{}

	for _, status := range []ListingStatus{ListingStatusPending, ListingStatusRejected} {
		listing := &Listing{SellerID: seller, Status: status}
		assert.False(t, listing.VisibleTo(stranger), status)
		assert.False(t, listing.VisibleTo(anonymous), status)
		assert.True(t, listing.VisibleTo(owner), status)
		assert.True(t, listing.VisibleTo(admin), status)
	}

	approved := &Listing{SellerID: seller, Status: ListingStatusApproved}
	assert.True(t, approved.VisibleTo(anonymous))
	assert.True(t, approved.VisibleTo(stranger))
}

func TestCategory_Accepts(t *testing.T) {
	books := &Category{Group: CategoryGroupBook}
	market := &Category{Group: CategoryGroupMarketplace}

	assert.True(t, books.Accepts(ListingTypeBook))
	assert.False(t, books.Accepts(ListingTypeItem))
	assert.True(t, market.Accepts(ListingTypeItem))
}

func TestListing_SellerDisplayName(t *testing.T) {
	name := "nimal"
	empty := ""

	assert.Equal(t, "nimal", (&Listing{SellerName: &name}).SellerDisplayName())
	assert.Equal(t, UnknownSeller, (&Listing{SellerName: &empty}).SellerDisplayName())
	assert.Equal(t, UnknownSeller, (&Listing{}).SellerDisplayName())
}
