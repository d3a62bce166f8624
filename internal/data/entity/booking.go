package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "pending"
	BookingStatusConfirmed  BookingStatus = "confirmed"
	BookingStatusInProgress BookingStatus = "in_progress"
	BookingStatusCompleted  BookingStatus = "completed"
	BookingStatusCancelled  BookingStatus = "cancelled"
	BookingStatusDeclined   BookingStatus = "declined"
)

// IsTerminal reports whether no further transition is allowed from the status.
func (s BookingStatus) IsTerminal() bool {
	return s == BookingStatusCompleted || s == BookingStatusCancelled || s == BookingStatusDeclined
}

type Booking struct {
	Base
	SeekerID               uuid.UUID     `db:"seeker_id"`
	ProviderID             uuid.UUID     `db:"provider_id"`
	ExperienceID           uuid.UUID     `db:"experience_id"`
	AvailabilityID         uuid.UUID     `db:"availability_id"`
	Status                 BookingStatus `db:"status"`
	TosAcceptedAt          *time.Time    `db:"tos_accepted_at"`
	WaiverAcceptedAt       *time.Time    `db:"waiver_accepted_at"`
	NdaAcceptedAt          *time.Time    `db:"nda_accepted_at"`
	SeekerEmergencyName    *string       `db:"seeker_emergency_name"`
	SeekerEmergencyPhone   *string       `db:"seeker_emergency_phone"`
	ProviderEmergencyName  *string       `db:"provider_emergency_name"`
	ProviderEmergencyPhone *string       `db:"provider_emergency_phone"`
	CancellationReason     *string       `db:"cancellation_reason"`
}

// IsParticipant reports whether the user is the booking's seeker or provider.
func (b *Booking) IsParticipant(userID uuid.UUID) bool {
	return b.SeekerID == userID || b.ProviderID == userID
}
