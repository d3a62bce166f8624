package response

import (
	"time"

	"github.com/joshijay655/justdostuff/internal/data/entity"
)

type BookingResponse struct {
	ID                 string     `json:"id"`
	SeekerID           string     `json:"seeker_id"`
	ProviderID         string     `json:"provider_id"`
	ExperienceID       string     `json:"experience_id"`
	AvailabilityID     string     `json:"availability_id"`
	Status             string     `json:"status"`
	ExperienceTitle    string     `json:"experience_title,omitempty"`
	Date               string     `json:"date,omitempty"`
	StartTime          string     `json:"start_time,omitempty"`
	EndTime            string     `json:"end_time,omitempty"`
	TosAcceptedAt      *time.Time `json:"tos_accepted_at,omitempty"`
	WaiverAcceptedAt   *time.Time `json:"waiver_accepted_at,omitempty"`
	NdaAcceptedAt      *time.Time `json:"nda_accepted_at,omitempty"`
	CancellationReason *string    `json:"cancellation_reason,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}

func BookingToResponse(booking *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:                 booking.ID.String(),
		SeekerID:           booking.SeekerID.String(),
		ProviderID:         booking.ProviderID.String(),
		ExperienceID:       booking.ExperienceID.String(),
		AvailabilityID:     booking.AvailabilityID.String(),
		Status:             string(booking.Status),
		TosAcceptedAt:      booking.TosAcceptedAt,
		WaiverAcceptedAt:   booking.WaiverAcceptedAt,
		NdaAcceptedAt:      booking.NdaAcceptedAt,
		CancellationReason: booking.CancellationReason,
		CreatedAt:          booking.CreatedAt,
	}
}
