package entity

import (
	"time"

	"github.com/google/uuid"
)

// RequestStatusOpen is the status every request is created with.
const RequestStatusOpen = "open"

// Request is a "wanted" post on the request board. Requests are live as soon
// as they are created; there is no moderation.
type Request struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Category    *string   `json:"category"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// OwnedBy reports whether userID owns the request.
func (r *Request) OwnedBy(userID uuid.UUID) bool {
	return userID != uuid.Nil && r.UserID == userID
}
