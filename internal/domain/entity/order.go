package entity

import (
	"io"
	"strconv"
	"strings"
	"time"

	"crimson/internal/errors"
)

const (
	// OrderIDPrefix starts every order reference.
	OrderIDPrefix = "CR-"
	// GuestUsername is used in order messages of signed-out shoppers.
	GuestUsername = "Guest"

	orderGreeting     = "Hello, I want to place an order from Crimson."
	orderRandomLength = 4
	base36Alphabet    = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// OrderHandoff is what checkout hands to the shopper: a reference, the
// rendered message and a deep link that opens it with the operator.
type OrderHandoff struct {
	OrderID  string `json:"order_id"`
	Message  string `json:"message"`
	DeepLink string `json:"deep_link"`
}

// NewOrderID builds "CR-" + base36(now in ms) + 4 random base36 characters,
// uppercased. It is a human cross-reference only; uniqueness is not checked.
func NewOrderID(now time.Time, random io.Reader) (string, error) {
	suffix := make([]byte, 0, orderRandomLength)
	buf := make([]byte, 1)
	for len(suffix) < orderRandomLength {
		if _, err := io.ReadFull(random, buf); err != nil {
			return "", errors.Wrap(err, "failed to read order id randomness")
		}
		// 252 is the largest multiple of 36 that fits in a byte
		if buf[0] >= 252 {
			continue
		}
		suffix = append(suffix, base36Alphabet[buf[0]%36])
	}

	timestamp := strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36))

	return OrderIDPrefix + timestamp + string(suffix), nil
}

// OrderUsername derives the username shown in an order message from the
// signed-in email, or GuestUsername when there is none.
func OrderUsername(email string) string {
	if local := EmailLocalPart(strings.TrimSpace(email)); local != "" {
		return local
	}

	return GuestUsername
}

// BuildOrderMessage renders the cart as the operator-facing order message.
func BuildOrderMessage(cart *Cart, orderID, username, currency string) string {
	var b strings.Builder
	b.WriteString(orderGreeting)
	b.WriteString("\n\nItems:\n")

	for _, line := range cart.Lines() {
		b.WriteString("- ")
		b.WriteString(line.Title)
		b.WriteString(" — ")
		b.WriteString(FormatPrice(currency, line.UnitPrice))
		b.WriteString(" × ")
		b.WriteString(strconv.Itoa(line.Quantity))
		b.WriteString("\n")
	}

	b.WriteString("\nTotal: ")
	b.WriteString(FormatPrice(currency, cart.TotalPrice()))
	b.WriteString("\nOrder ID: ")
	b.WriteString(orderID)
	b.WriteString("\nUsername: ")
	b.WriteString(username)

	return b.String()
}
