package usecase

import (
	"context"
	"testing"

	"github.com/joshijay655/justdostuff/internal/data/entity"
	"github.com/joshijay655/justdostuff/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBookingService(f *fixture) *BookingService {
	return NewBookingService(f.repo, f.notification, nil, testLogger())
}

func createRequest(experience *entity.Experience, slot *entity.AvailabilitySlot) *request.CreateBookingRequest {
	return &request.CreateBookingRequest{
		ExperienceID:          experience.ID.String(),
		AvailabilityID:        slot.ID.String(),
		TosAccepted:           true,
		WaiverAccepted:        true,
		EmergencyContactName:  "Robin Contact",
		EmergencyContactPhone: "555-0101",
	}
}

func TestBookingCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("creates pending booking and reserves the spot", func(t *testing.T) {
		f := newFixture()
		service := newBookingService(f)
		experience := f.addExperience(false)
		slot := f.addSlot(experience.ID, 2, 0)

		result, err := service.Create(ctx, f.seeker.ID, createRequest(experience, slot))
		require.NoError(t, err)
		require.NotNil(t, result)

		assert.Equal(t, "pending", result.Status)
		assert.NotNil(t, result.TosAcceptedAt)
		assert.NotNil(t, result.WaiverAcceptedAt)
		assert.Nil(t, result.NdaAcceptedAt)

		updated, err := f.repo.Availability.FindByID(ctx, slot.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, updated.BookedSpots)
	})

	t.Run("rejects booking when slot is full", func(t *testing.T) {
		f := newFixture()
		service := newBookingService(f)
		experience := f.addExperience(false)
		slot := f.addSlot(experience.ID, 1, 1)

		_, err := service.Create(ctx, f.seeker.ID, createRequest(experience, slot))
		assert.ErrorIs(t, err, ErrCapacityExceeded)
	})

	t.Run("last spot goes to exactly one of two competing requests", func(t *testing.T) {
		f := newFixture()
		service := newBookingService(f)
		experience := f.addExperience(false)
		slot := f.addSlot(experience.ID, 1, 0)

		second := &entity.Profile{
			Email:    "second@example.com",
			FullName: "Second Seeker",
			Role:     entity.RoleSeeker,
			IsActive: true,
		}
		second.ID = uuid.New()
		f.store.profiles[second.ID] = second

		_, firstErr := service.Create(ctx, f.seeker.ID, createRequest(experience, slot))
		_, secondErr := service.Create(ctx, second.ID, createRequest(experience, slot))

		require.NoError(t, firstErr)
		assert.ErrorIs(t, secondErr, ErrCapacityExceeded)

		updated, err := f.repo.Availability.FindByID(ctx, slot.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, updated.BookedSpots)
	})

	t.Run("rejects booking without required consents", func(t *testing.T) {
		f := newFixture()
		service := newBookingService(f)
		experience := f.addExperience(false)
		slot := f.addSlot(experience.ID, 2, 0)

		req := createRequest(experience, slot)
		req.WaiverAccepted = false

		_, err := service.Create(ctx, f.seeker.ID, req)
		assert.ErrorIs(t, err, ErrMissingConsent)
	})

	t.Run("requires NDA consent when the experience demands it", func(t *testing.T) {
		f := newFixture()
		service := newBookingService(f)
		experience := f.addExperience(true)
		slot := f.addSlot(experience.ID, 2, 0)

		req := createRequest(experience, slot)
		req.NdaAccepted = false

		_, err := service.Create(ctx, f.seeker.ID, req)
		assert.ErrorIs(t, err, ErrMissingConsent)

		req.NdaAccepted = true
		result, err := service.Create(ctx, f.seeker.ID, req)
		require.NoError(t, err)
		assert.NotNil(t, result.NdaAcceptedAt)
	})

	t.Run("requires an emergency contact", func(t *testing.T) {
		f := newFixture()
		service := newBookingService(f)
		experience := f.addExperience(false)
		slot := f.addSlot(experience.ID, 2, 0)

		req := createRequest(experience, slot)
		req.EmergencyContactName = ""
		req.EmergencyContactPhone = ""

		// seeker profile carries no stored contact either
		_, err := service.Create(ctx, f.seeker.ID, req)
		assert.ErrorIs(t, err, ErrMissingEmergencyContact)
	})

	t.Run("falls back to the profile emergency contact", func(t *testing.T) {
		f := newFixture()
		service := newBookingService(f)
		experience := f.addExperience(false)
		slot := f.addSlot(experience.ID, 2, 0)

		f.seeker.EmergencyContactName = strPtr("Profile Contact")
		f.seeker.EmergencyContactPhone = strPtr("555-0199")
		f.store.profiles[f.seeker.ID] = f.seeker

		req := createRequest(experience, slot)
		req.EmergencyContactName = ""
		req.EmergencyContactPhone = ""

		result, err := service.Create(ctx, f.seeker.ID, req)
		require.NoError(t, err)

		stored, err := f.repo.Booking.FindByID(ctx, uuid.MustParse(result.ID))
		require.NoError(t, err)
		require.NotNil(t, stored.SeekerEmergencyName)
		assert.Equal(t, "Profile Contact", *stored.SeekerEmergencyName)
	})

	t.Run("rejects provider booking their own experience", func(t *testing.T) {
		f := newFixture()
		service := newBookingService(f)
		experience := f.addExperience(false)
		slot := f.addSlot(experience.ID, 2, 0)

		f.provider.Role = entity.RoleBoth
		f.store.profiles[f.provider.ID] = f.provider

		_, err := service.Create(ctx, f.provider.ID, createRequest(experience, slot))
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("rejects booking on a draft experience", func(t *testing.T) {
		f := newFixture()
		service := newBookingService(f)
		experience := f.addExperience(false)
		experience.Status = entity.ExperienceStatusDraft
		f.store.experiences[experience.ID] = experience
		slot := f.addSlot(experience.ID, 2, 0)

		_, err := service.Create(ctx, f.seeker.ID, createRequest(experience, slot))
		assert.ErrorIs(t, err, ErrNotBookable)
	})

	t.Run("rejects booking from a provider-only account", func(t *testing.T) {
		f := newFixture()
		service := newBookingService(f)
		experience := f.addExperience(false)
		slot := f.addSlot(experience.ID, 2, 0)

		other := &entity.Profile{
			Email:    "other-provider@example.com",
			FullName: "Other Provider",
			Role:     entity.RoleProvider,
			IsActive: true,
		}
		other.ID = uuid.New()
		f.store.profiles[other.ID] = other

		_, err := service.Create(ctx, other.ID, createRequest(experience, slot))
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("releases the spot when the insert fails", func(t *testing.T) {
		f := newFixture()
		service := newBookingService(f)
		experience := f.addExperience(false)
		slot := f.addSlot(experience.ID, 2, 0)

		f.store.failBookingInsert = true

		_, err := service.Create(ctx, f.seeker.ID, createRequest(experience, slot))
		require.Error(t, err)

		f.store.failBookingInsert = false

		updated, findErr := f.repo.Availability.FindByID(ctx, slot.ID)
		require.NoError(t, findErr)
		assert.Equal(t, 0, updated.BookedSpots)
	})
}

func TestBookingTransitions(t *testing.T) {
	ctx := context.Background()

	t.Run("pending to confirmed", func(t *testing.T) {
		f := newFixture()
		service := newBookingService(f)
		experience := f.addExperience(false)
		slot := f.addSlot(experience.ID, 2, 1)
		booking := f.addBooking(experience, slot, entity.BookingStatusPending)

		require.NoError(t, service.Confirm(ctx, f.provider.ID, booking.ID))

		stored, err := f.repo.Booking.FindByID(ctx, booking.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.BookingStatusConfirmed, stored.Status)
	})

	t.Run("decline releases the spot", func(t *testing.T) {
		f := newFixture()
		service := newBookingService(f)
		experience := f.addExperience(false)
		slot := f.addSlot(experience.ID, 2, 1)
		booking := f.addBooking(experience, slot, entity.BookingStatusPending)

		require.NoError(t, service.Decline(ctx, f.provider.ID, booking.ID))

		stored, err := f.repo.Booking.FindByID(ctx, booking.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.BookingStatusDeclined, stored.Status)

		updated, err := f.repo.Availability.FindByID(ctx, slot.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, updated.BookedSpots)
	})

	t.Run("cancel from confirmed stores reason and releases spot", func(t *testing.T) {
		f := newFixture()
		service := newBookingService(f)
		experience := f.addExperience(false)
		slot := f.addSlot(experience.ID, 2, 1)
		booking := f.addBooking(experience, slot, entity.BookingStatusConfirmed)

		err := service.Cancel(ctx, f.seeker.ID, booking.ID, &request.CancelBookingRequest{Reason: "schedule conflict"})
		require.NoError(t, err)

		stored, err := f.repo.Booking.FindByID(ctx, booking.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.BookingStatusCancelled, stored.Status)
		require.NotNil(t, stored.CancellationReason)
		assert.Equal(t, "schedule conflict", *stored.CancellationReason)

		updated, err := f.repo.Availability.FindByID(ctx, slot.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, updated.BookedSpots)
	})

	t.Run("confirmed to in_progress to completed", func(t *testing.T) {
		f := newFixture()
		service := newBookingService(f)
		experience := f.addExperience(false)
		slot := f.addSlot(experience.ID, 2, 1)
		booking := f.addBooking(experience, slot, entity.BookingStatusConfirmed)

		require.NoError(t, service.Start(ctx, f.provider.ID, booking.ID))
		require.NoError(t, service.Complete(ctx, f.provider.ID, booking.ID))

		stored, err := f.repo.Booking.FindByID(ctx, booking.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.BookingStatusCompleted, stored.Status)
	})

	t.Run("complete straight from confirmed skips in_progress", func(t *testing.T) {
		f := newFixture()
		service := newBookingService(f)
		experience := f.addExperience(false)
		slot := f.addSlot(experience.ID, 2, 1)
		booking := f.addBooking(experience, slot, entity.BookingStatusConfirmed)

		require.NoError(t, service.Complete(ctx, f.provider.ID, booking.ID))

		stored, err := f.repo.Booking.FindByID(ctx, booking.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.BookingStatusCompleted, stored.Status)
	})

	t.Run("invalid transitions are rejected", func(t *testing.T) {
		cases := []struct {
			name  string
			from  entity.BookingStatus
			apply func(service *BookingService, f *fixture, bookingID uuid.UUID) error
		}{
			{"confirm a declined booking", entity.BookingStatusDeclined, func(s *BookingService, f *fixture, id uuid.UUID) error {
				return s.Confirm(context.Background(), f.provider.ID, id)
			}},
			{"decline a confirmed booking", entity.BookingStatusConfirmed, func(s *BookingService, f *fixture, id uuid.UUID) error {
				return s.Decline(context.Background(), f.provider.ID, id)
			}},
			{"start a pending booking", entity.BookingStatusPending, func(s *BookingService, f *fixture, id uuid.UUID) error {
				return s.Start(context.Background(), f.provider.ID, id)
			}},
			{"complete a pending booking", entity.BookingStatusPending, func(s *BookingService, f *fixture, id uuid.UUID) error {
				return s.Complete(context.Background(), f.provider.ID, id)
			}},
			{"cancel a completed booking", entity.BookingStatusCompleted, func(s *BookingService, f *fixture, id uuid.UUID) error {
				return s.Cancel(context.Background(), f.seeker.ID, id, &request.CancelBookingRequest{Reason: "too late"})
			}},
			{"cancel an in_progress booking", entity.BookingStatusInProgress, func(s *BookingService, f *fixture, id uuid.UUID) error {
				return s.Cancel(context.Background(), f.seeker.ID, id, &request.CancelBookingRequest{Reason: "changed my mind"})
			}},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				f := newFixture()
				service := newBookingService(f)
				experience := f.addExperience(false)
				slot := f.addSlot(experience.ID, 2, 1)
				booking := f.addBooking(experience, slot, tc.from)

				err := tc.apply(service, f, booking.ID)
				assert.ErrorIs(t, err, ErrInvalidTransition)
			})
		}
	})

	t.Run("second confirm fails after the first wins", func(t *testing.T) {
		f := newFixture()
		service := newBookingService(f)
		experience := f.addExperience(false)
		slot := f.addSlot(experience.ID, 2, 1)
		booking := f.addBooking(experience, slot, entity.BookingStatusPending)

		require.NoError(t, service.Confirm(ctx, f.provider.ID, booking.ID))
		assert.ErrorIs(t, service.Confirm(ctx, f.provider.ID, booking.ID), ErrInvalidTransition)
	})

	t.Run("only the provider may confirm", func(t *testing.T) {
		f := newFixture()
		service := newBookingService(f)
		experience := f.addExperience(false)
		slot := f.addSlot(experience.ID, 2, 1)
		booking := f.addBooking(experience, slot, entity.BookingStatusPending)

		assert.ErrorIs(t, service.Confirm(ctx, f.seeker.ID, booking.ID), ErrForbidden)
	})

	t.Run("outsiders may not cancel", func(t *testing.T) {
		f := newFixture()
		service := newBookingService(f)
		experience := f.addExperience(false)
		slot := f.addSlot(experience.ID, 2, 1)
		booking := f.addBooking(experience, slot, entity.BookingStatusPending)

		err := service.Cancel(ctx, uuid.New(), booking.ID, &request.CancelBookingRequest{Reason: "not mine"})
		assert.ErrorIs(t, err, ErrForbidden)
	})
}

func TestBookingGet(t *testing.T) {
	ctx := context.Background()

	t.Run("participants see the booking with slot details", func(t *testing.T) {
		f := newFixture()
		service := newBookingService(f)
		experience := f.addExperience(false)
		slot := f.addSlot(experience.ID, 2, 1)
		booking := f.addBooking(experience, slot, entity.BookingStatusConfirmed)

		result, err := service.Get(ctx, f.seeker.ID, booking.ID)
		require.NoError(t, err)
		assert.Equal(t, experience.Title, result.ExperienceTitle)
		assert.Equal(t, "09:00", result.StartTime)
		assert.Equal(t, "13:00", result.EndTime)
	})

	t.Run("outsiders are rejected", func(t *testing.T) {
		f := newFixture()
		service := newBookingService(f)
		experience := f.addExperience(false)
		slot := f.addSlot(experience.ID, 2, 1)
		booking := f.addBooking(experience, slot, entity.BookingStatusConfirmed)

		_, err := service.Get(ctx, uuid.New(), booking.ID)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("unknown booking is not found", func(t *testing.T) {
		f := newFixture()
		service := newBookingService(f)

		_, err := service.Get(ctx, f.seeker.ID, uuid.New())
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
