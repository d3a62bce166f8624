package entity

import (
	"time"

	"github.com/google/uuid"
)

// AvailabilitySlot is a bookable time window under one experience.
// BookedSpots is mutated only through the repository's Reserve/Release
// conditional updates, never by direct assignment.
type AvailabilitySlot struct {
	BaseSimple
	ExperienceID uuid.UUID `db:"experience_id"`
	Date         time.Time `db:"date"`
	StartTime    time.Time `db:"start_time"`
	EndTime      time.Time `db:"end_time"`
	TotalSpots   int       `db:"total_spots"`
	BookedSpots  int       `db:"booked_spots"`
}

// SpotsLeft returns the remaining capacity of the slot.
func (s *AvailabilitySlot) SpotsLeft() int {
	return s.TotalSpots - s.BookedSpots
}
