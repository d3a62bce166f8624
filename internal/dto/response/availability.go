package response

import (
	"github.com/joshijay655/justdostuff/internal/data/entity"
)

type SlotResponse struct {
	ID           string `json:"id"`
	ExperienceID string `json:"experience_id"`
	Date         string `json:"date"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	TotalSpots   int    `json:"total_spots"`
	BookedSpots  int    `json:"booked_spots"`
	SpotsLeft    int    `json:"spots_left"`
}

func SlotToResponse(slot *entity.AvailabilitySlot) SlotResponse {
	return SlotResponse{
		ID:           slot.ID.String(),
		ExperienceID: slot.ExperienceID.String(),
		Date:         slot.Date.Format("2006-01-02"),
		StartTime:    slot.StartTime.Format("15:04"),
		EndTime:      slot.EndTime.Format("15:04"),
		TotalSpots:   slot.TotalSpots,
		BookedSpots:  slot.BookedSpots,
		SpotsLeft:    slot.SpotsLeft(),
	}
}
