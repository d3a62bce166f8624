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

func newExperienceService(f *fixture) *ExperienceService {
	return NewExperienceService(f.repo, nil, testLogger())
}

func validSlotRequest() *request.CreateSlotRequest {
	return &request.CreateSlotRequest{
		Date:       "2026-09-12",
		StartTime:  "09:00",
		EndTime:    "13:00",
		TotalSpots: 4,
	}
}

func TestExperienceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("provider creates a draft", func(t *testing.T) {
		f := newFixture()
		service := newExperienceService(f)

		result, err := service.Create(ctx, f.provider.ID, &request.CreateExperienceRequest{
			CategoryID:   f.category.ID.String(),
			Title:        "Pottery for the Impatient",
			Description:  "Wheel throwing fundamentals in a single afternoon session.",
			City:         "Portland",
			State:        "OR",
			Price:        120,
			SlotDuration: "2-4h",
			MaxSeekers:   6,
		})
		require.NoError(t, err)
		assert.Equal(t, "draft", result.Status)
	})

	t.Run("seeker-only accounts cannot list experiences", func(t *testing.T) {
		f := newFixture()
		service := newExperienceService(f)

		_, err := service.Create(ctx, f.seeker.ID, &request.CreateExperienceRequest{
			CategoryID:   f.category.ID.String(),
			Title:        "Should Not Exist",
			Description:  "Seekers have no listing capability on their account.",
			City:         "Portland",
			State:        "OR",
			SlotDuration: "2-4h",
			MaxSeekers:   2,
		})
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("unknown category is rejected", func(t *testing.T) {
		f := newFixture()
		service := newExperienceService(f)

		_, err := service.Create(ctx, f.provider.ID, &request.CreateExperienceRequest{
			CategoryID:   uuid.NewString(),
			Title:        "Orphaned Listing",
			Description:  "Listings must hang off an existing category record.",
			City:         "Portland",
			State:        "OR",
			SlotDuration: "4-6h",
			MaxSeekers:   2,
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestExperienceVisibility(t *testing.T) {
	ctx := context.Background()

	t.Run("drafts are hidden from other users", func(t *testing.T) {
		f := newFixture()
		service := newExperienceService(f)
		experience := f.addExperience(false)
		experience.Status = entity.ExperienceStatusDraft
		f.store.experiences[experience.ID] = experience

		_, err := service.Get(ctx, experience.ID, f.seeker.ID)
		assert.ErrorIs(t, err, ErrNotFound)

		result, err := service.Get(ctx, experience.ID, f.provider.ID)
		require.NoError(t, err)
		assert.Equal(t, "draft", result.Status)
	})

	t.Run("published experiences are public", func(t *testing.T) {
		f := newFixture()
		service := newExperienceService(f)
		experience := f.addExperience(false)

		result, err := service.Get(ctx, experience.ID, uuid.Nil)
		require.NoError(t, err)
		assert.Equal(t, experience.Title, result.Title)
	})

	t.Run("only the owner can update", func(t *testing.T) {
		f := newFixture()
		service := newExperienceService(f)
		experience := f.addExperience(false)

		_, err := service.Update(ctx, f.seeker.ID, experience.ID, &request.UpdateExperienceRequest{
			CreateExperienceRequest: request.CreateExperienceRequest{
				CategoryID:   f.category.ID.String(),
				Title:        "Hijacked Listing",
				Description:  "Only the owning provider can edit a listing record.",
				City:         "Portland",
				State:        "OR",
				SlotDuration: "2-4h",
				MaxSeekers:   2,
			},
		})
		assert.ErrorIs(t, err, ErrForbidden)
	})
}

func TestSlotManagement(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a slot with full capacity free", func(t *testing.T) {
		f := newFixture()
		service := newExperienceService(f)
		experience := f.addExperience(false)

		result, err := service.CreateSlot(ctx, f.provider.ID, experience.ID, validSlotRequest())
		require.NoError(t, err)
		assert.Equal(t, 4, result.TotalSpots)
		assert.Equal(t, 0, result.BookedSpots)
		assert.Equal(t, 4, result.SpotsLeft)
	})

	t.Run("rejects a window that does not move forward", func(t *testing.T) {
		f := newFixture()
		service := newExperienceService(f)
		experience := f.addExperience(false)

		req := validSlotRequest()
		req.StartTime = "13:00"
		req.EndTime = "09:00"
		_, err := service.CreateSlot(ctx, f.provider.ID, experience.ID, req)
		assert.ErrorIs(t, err, ErrInvalidWindow)

		req.EndTime = "13:00"
		_, err = service.CreateSlot(ctx, f.provider.ID, experience.ID, req)
		assert.ErrorIs(t, err, ErrInvalidWindow)
	})

	t.Run("rejects zero capacity", func(t *testing.T) {
		f := newFixture()
		service := newExperienceService(f)
		experience := f.addExperience(false)

		req := validSlotRequest()
		req.TotalSpots = 0
		_, err := service.CreateSlot(ctx, f.provider.ID, experience.ID, req)
		assert.ErrorIs(t, err, ErrInvalidCapacity)
	})

	t.Run("only the owner may add slots", func(t *testing.T) {
		f := newFixture()
		service := newExperienceService(f)
		experience := f.addExperience(false)

		_, err := service.CreateSlot(ctx, f.seeker.ID, experience.ID, validSlotRequest())
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("deletes an empty slot", func(t *testing.T) {
		f := newFixture()
		service := newExperienceService(f)
		experience := f.addExperience(false)
		slot := f.addSlot(experience.ID, 3, 0)

		require.NoError(t, service.DeleteSlot(ctx, f.provider.ID, slot.ID))

		remaining, err := f.repo.Availability.FindByID(ctx, slot.ID)
		require.NoError(t, err)
		assert.Nil(t, remaining)
	})

	t.Run("refuses to delete a slot with reservations", func(t *testing.T) {
		f := newFixture()
		service := newExperienceService(f)
		experience := f.addExperience(false)
		slot := f.addSlot(experience.ID, 3, 1)

		err := service.DeleteSlot(ctx, f.provider.ID, slot.ID)
		assert.ErrorIs(t, err, ErrSlotHasBookings)

		remaining, findErr := f.repo.Availability.FindByID(ctx, slot.ID)
		require.NoError(t, findErr)
		assert.NotNil(t, remaining)
	})

	t.Run("public slot listing hides full slots", func(t *testing.T) {
		f := newFixture()
		service := newExperienceService(f)
		experience := f.addExperience(false)
		f.addSlot(experience.ID, 2, 2)
		open := f.addSlot(experience.ID, 2, 1)

		publicSlots, err := service.ListSlots(ctx, experience.ID, f.seeker.ID)
		require.NoError(t, err)
		require.Len(t, publicSlots, 1)
		assert.Equal(t, open.ID.String(), publicSlots[0].ID)

		ownerSlots, err := service.ListSlots(ctx, experience.ID, f.provider.ID)
		require.NoError(t, err)
		assert.Len(t, ownerSlots, 2)
	})
}
