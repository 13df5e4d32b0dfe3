package entity

import (
	"time"

	"crimson/internal/errors"

	"github.com/google/uuid"
)

// ListingStatus is the moderation state of a listing. Deletion removes the row
// and is not a status.
type ListingStatus string

const (
	ListingStatusPending  ListingStatus = "pending"
	ListingStatusApproved ListingStatus = "approved"
	ListingStatusRejected ListingStatus = "rejected"
)

// IsValid checks if the status is a known value.
func (s ListingStatus) IsValid() bool {
	switch s {
	case ListingStatusPending, ListingStatusApproved, ListingStatusRejected:
		return true
	default:
		return false
	}
}

// ModerationAction is an admin transition on a listing.
type ModerationAction string

const (
	ModerationApprove ModerationAction = "approve"
	ModerationReject  ModerationAction = "reject"
	ModerationRestore ModerationAction = "restore"
	ModerationDelete  ModerationAction = "delete"
)

// ErrInvalidTransition is returned when an action does not apply to the current status.
var ErrInvalidTransition = errors.New("invalid moderation transition")

// transitions lists the statuses each status-changing action may start from.
var transitions = map[ModerationAction]struct {
	from []ListingStatus
	to   ListingStatus
}{
	ModerationApprove: {from: []ListingStatus{ListingStatusPending}, to: ListingStatusApproved},
	ModerationReject:  {from: []ListingStatus{ListingStatusPending, ListingStatusApproved}, to: ListingStatusRejected},
	ModerationRestore: {from: []ListingStatus{ListingStatusRejected}, to: ListingStatusPending},
}

// Next returns the status reached by applying action to s. Delete is valid
// from any status and has no next status; callers remove the row instead.
func (s ListingStatus) Next(action ModerationAction) (ListingStatus, error) {
	if action == ModerationDelete {
		return "", nil
	}

	rule, ok := transitions[action]
	if !ok {
		return "", errors.Wrapf(ErrInvalidTransition, "unknown action %q", action)
	}

	for _, from := range rule.from {
		if from == s {
			return rule.to, nil
		}
	}

	return "", errors.Wrapf(ErrInvalidTransition, "cannot %s a %s listing", action, s)
}

// ListingModerated is published after every successful moderation action.
type ListingModerated struct {
	ListingID   uuid.UUID        `json:"listing_id"`
	SellerID    uuid.UUID        `json:"seller_id"`
	Title       string           `json:"title"`
	Action      ModerationAction `json:"action"`
	Status      ListingStatus    `json:"status,omitempty"` // empty after delete
	ModeratorID uuid.UUID        `json:"moderator_id"`
	OccurredAt  time.Time        `json:"occurred_at"`
}
