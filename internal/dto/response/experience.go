package response

import (
	"time"

	"github.com/joshijay655/justdostuff/internal/data/entity"
)

type ExperienceResponse struct {
	ID               string   `json:"id"`
	ProviderID       string   `json:"provider_id"`
	CategoryID       string   `json:"category_id"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	ShortDescription *string  `json:"short_description,omitempty"`
	Photos           []string `json:"photos"`
	City             string   `json:"city"`
	State            string   `json:"state"`
	Address          *string  `json:"address,omitempty"`
	Price            float64  `json:"price"`
	SlotDuration     string   `json:"slot_duration"`
	MaxSeekers       int      `json:"max_seekers"`
	RequiresNDA      bool     `json:"requires_nda"`
	Status           string   `json:"status"`
	AvgRating        float64  `json:"avg_rating"`
	ReviewCount      int      `json:"review_count"`
	CreatedAt        time.Time `json:"created_at"`
}

func ExperienceToResponse(experience *entity.Experience) ExperienceResponse {
	return ExperienceResponse{
		ID:               experience.ID.String(),
		ProviderID:       experience.ProviderID.String(),
		CategoryID:       experience.CategoryID.String(),
		Title:            experience.Title,
		Description:      experience.Description,
		ShortDescription: experience.ShortDescription,
		Photos:           experience.Photos,
		City:             experience.City,
		State:            experience.State,
		Address:          experience.Address,
		Price:            experience.Price,
		SlotDuration:     string(experience.SlotDuration),
		MaxSeekers:       experience.MaxSeekers,
		RequiresNDA:      experience.RequiresNDA,
		Status:           string(experience.Status),
		AvgRating:        experience.AvgRating,
		ReviewCount:      experience.ReviewCount,
		CreatedAt:        experience.CreatedAt,
	}
}
