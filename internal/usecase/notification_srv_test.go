package usecase

import (
	"context"
	"testing"

	"github.com/joshijay655/justdostuff/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Dispatch is the synchronous path the notify endpoint uses, so these tests
// can assert on the recorded sends directly.
func TestNotificationDispatch(t *testing.T) {
	ctx := context.Background()

	setup := func() (*fixture, uuid.UUID) {
		f := newFixture()
		experience := f.addExperience(false)
		slot := f.addSlot(experience.ID, 2, 1)
		booking := f.addBooking(experience, slot, entity.BookingStatusPending)
		return f, booking.ID
	}

	t.Run("booking_requested goes to the provider", func(t *testing.T) {
		f, bookingID := setup()

		require.NoError(t, f.notification.Dispatch(ctx, f.seeker.ID, EventBookingRequested, bookingID))

		sent := f.mailer.sentTo()
		require.Len(t, sent, 1)
		assert.Equal(t, f.provider.Email, sent[0].To)
		assert.Contains(t, sent[0].Subject, "booking request")
	})

	t.Run("booking_confirmed goes to the seeker", func(t *testing.T) {
		f, bookingID := setup()

		require.NoError(t, f.notification.Dispatch(ctx, f.provider.ID, EventBookingConfirmed, bookingID))

		sent := f.mailer.sentTo()
		require.Len(t, sent, 1)
		assert.Equal(t, f.seeker.Email, sent[0].To)
		assert.Contains(t, sent[0].Subject, "confirmed")
	})

	t.Run("booking_declined goes to the seeker", func(t *testing.T) {
		f, bookingID := setup()

		require.NoError(t, f.notification.Dispatch(ctx, f.provider.ID, EventBookingDeclined, bookingID))

		sent := f.mailer.sentTo()
		require.Len(t, sent, 1)
		assert.Equal(t, f.seeker.Email, sent[0].To)
	})

	t.Run("unknown event type is rejected", func(t *testing.T) {
		f, bookingID := setup()

		err := f.notification.Dispatch(ctx, f.seeker.ID, "booking_exploded", bookingID)
		assert.Error(t, err)
		assert.Empty(t, f.mailer.sentTo())
	})

	t.Run("missing booking fails the dispatch", func(t *testing.T) {
		f := newFixture()

		err := f.notification.Dispatch(ctx, f.seeker.ID, EventBookingRequested, uuid.New())
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("non-participants cannot trigger sends", func(t *testing.T) {
		f, bookingID := setup()

		err := f.notification.Dispatch(ctx, uuid.New(), EventBookingConfirmed, bookingID)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Empty(t, f.mailer.sentTo())
	})
}

func TestNotificationVerification(t *testing.T) {
	f := newFixture()

	require.NoError(t, f.notification.VerificationSubmittedFor(f.seeker.Email, f.seeker.FullName))

	sent := f.mailer.sentTo()
	require.Len(t, sent, 1)
	assert.Equal(t, f.seeker.Email, sent[0].To)
	assert.Contains(t, sent[0].Subject, "Verification")
}
