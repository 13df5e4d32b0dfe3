package entity

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderID(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	random := bytes.NewReader([]byte{0, 35, 255, 36, 71})

	id, err := NewOrderID(now, random)
	require.NoError(t, err)

	// 1700000000000 in base36 is "LOYW3V28"; 255 is skipped, 36 and 71 wrap to 0 and Z.
	assert.Equal(t, "CR-LOYW3V28"+"0Z0Z", id)
	assert.Equal(t, strings.ToUpper(id), id)
}

func TestNewOrderID_ShortRandomness(t *testing.T) {
	_, err := NewOrderID(time.Now(), bytes.NewReader([]byte{1, 2}))

	assert.Error(t, err)
}

func TestOrderUsername(t *testing.T) {
	assert.Equal(t, "scholar", OrderUsername("scholar@example.com"))
	assert.Equal(t, GuestUsername, OrderUsername(""))
	assert.Equal(t, GuestUsername, OrderUsername("   "))
}

func TestBuildOrderMessage(t *testing.T) {
	cart := NewCart()
	cart.Add(CartLine{ListingID: uuid.New(), Title: "Grimoire", UnitPrice: decimal.NewFromInt(67)})

	msg := BuildOrderMessage(cart, "CR-ABC123", OrderUsername("scholar@example.com"), DefaultCurrency)

	assert.Contains(t, msg, "Grimoire — Rs 67 × 1")
	assert.Contains(t, msg, "\nTotal: Rs 67\n")
	assert.Contains(t, msg, "Order ID: CR-ABC123")
	assert.True(t, strings.HasSuffix(msg, "Username: scholar"))
	assert.True(t, strings.HasPrefix(msg, "Hello, I want to place an order from Crimson.\n\nItems:\n"))
}

func TestBuildOrderMessage_GroupsThousands(t *testing.T) {
	cart := NewCart()
	laptop := CartLine{ListingID: uuid.New(), Title: "Laptop", UnitPrice: decimal.NewFromInt(85000)}
	cart.Add(laptop)
	cart.UpdateQuantity(laptop.ListingID, 2)

	msg := BuildOrderMessage(cart, "CR-X", GuestUsername, DefaultCurrency)

	assert.Contains(t, msg, "- Laptop — Rs 85,000 × 2")
	assert.Contains(t, msg, "Total: Rs 170,000")
	assert.Contains(t, msg, "Username: Guest")
}
