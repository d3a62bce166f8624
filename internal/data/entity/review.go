package entity

import (
	"github.com/google/uuid"
)

type Review struct {
	BaseSimple
	BookingID    uuid.UUID `db:"booking_id"`
	ReviewerID   uuid.UUID `db:"reviewer_id"`
	RevieweeID   uuid.UUID `db:"reviewee_id"`
	ExperienceID uuid.UUID `db:"experience_id"`
	Rating       int       `db:"rating"` // 1-5
	Comment      *string   `db:"comment"`
}
