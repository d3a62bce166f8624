package response

import (
	"time"

	"github.com/joshijay655/justdostuff/internal/data/entity"
)

type ReviewResponse struct {
	ID           string    `json:"id"`
	BookingID    string    `json:"booking_id"`
	ReviewerID   string    `json:"reviewer_id"`
	RevieweeID   string    `json:"reviewee_id"`
	ExperienceID string    `json:"experience_id"`
	Rating       int       `json:"rating"`
	Comment      *string   `json:"comment,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func ReviewToResponse(review *entity.Review) ReviewResponse {
	return ReviewResponse{
		ID:           review.ID.String(),
		BookingID:    review.BookingID.String(),
		ReviewerID:   review.ReviewerID.String(),
		RevieweeID:   review.RevieweeID.String(),
		ExperienceID: review.ExperienceID.String(),
		Rating:       review.Rating,
		Comment:      review.Comment,
		CreatedAt:    review.CreatedAt,
	}
}
