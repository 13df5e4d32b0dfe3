package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListingStatus_Next(t *testing.T) {
	tests := []struct {
		from    ListingStatus
		action  ModerationAction
		want    ListingStatus
		wantErr bool
	}{
		{from: ListingStatusPending, action: ModerationApprove, want: ListingStatusApproved},
		{from: ListingStatusPending, action: ModerationReject, want: ListingStatusRejected},
		{from: ListingStatusApproved, action: ModerationReject, want: ListingStatusRejected},
		{from: ListingStatusRejected, action: ModerationRestore, want: ListingStatusPending},
		{from: ListingStatusApproved, action: ModerationApprove, wantErr: true},
		{from: ListingStatusRejected, action: ModerationApprove, wantErr: true},
		{from: ListingStatusPending, action: ModerationRestore, wantErr: true},
		{from: ListingStatusApproved, action: ModerationRestore, wantErr: true},
		{from: ListingStatusRejected, action: ModerationReject, wantErr: true},
		{from: ListingStatusPending, action: ModerationAction("feature"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"/"+string(tt.action), func(t *testing.T) {
			got, err := tt.from.Next(tt.action)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTransition)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestListingStatus_ApproveRejectRestoreEndsPending(t *testing.T) {
	status := ListingStatusPending
	for _, action := range []ModerationAction{ModerationApprove, ModerationReject, ModerationRestore} {
		next, err := status.Next(action)
		require.NoError(t, err)
		status = next
	}

	assert.Equal(t, ListingStatusPending, status)
}

func TestListingStatus_DeleteFromAnyStatus(t *testing.T) {
	for _, status := range []ListingStatus{ListingStatusPending, ListingStatusApproved, ListingStatusRejected} {
		_, err := status.Next(ModerationDelete)
		assert.NoError(t, err, status)
	}
}
