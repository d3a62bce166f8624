package entity

import (
	"github.com/google/uuid"
)

// Conversation is the per-booking message thread. Participant identities are
// copied from the booking at creation time and never re-derived.
type Conversation struct {
	BaseSimple
	BookingID  uuid.UUID `db:"booking_id"`
	SeekerID   uuid.UUID `db:"seeker_id"`
	ProviderID uuid.UUID `db:"provider_id"`
}

// HasParticipant reports whether the user is one of the two recorded parties.
func (c *Conversation) HasParticipant(userID uuid.UUID) bool {
	return c.SeekerID == userID || c.ProviderID == userID
}

// OtherParticipant returns the counterpart of the given participant.
func (c *Conversation) OtherParticipant(userID uuid.UUID) uuid.UUID {
	if c.SeekerID == userID {
		return c.ProviderID
	}
	return c.SeekerID
}
