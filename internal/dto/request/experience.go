package request

type CreateExperienceRequest struct {
	CategoryID       string   `json:"category_id" validate:"required,uuid4"`
	Title            string   `json:"title" validate:"required,min=5,max=150"`
	Description      string   `json:"description" validate:"required,min=20"`
	ShortDescription *string  `json:"short_description,omitempty" validate:"omitempty,max=300"`
	Photos           []string `json:"photos" validate:"dive,url"`
	City             string   `json:"city" validate:"required"`
	State            string   `json:"state" validate:"required"`
	Address          *string  `json:"address,omitempty"`
	Price            float64  `json:"price" validate:"min=0"`
	SlotDuration     string   `json:"slot_duration" validate:"required,oneof=2-4h 4-6h"`
	MaxSeekers       int      `json:"max_seekers" validate:"required,min=1"`
	RequiresNDA      bool     `json:"requires_nda"`
}

type UpdateExperienceRequest struct {
	CreateExperienceRequest
}

type ListExperiencesRequest struct {
	PaginatedRequest
	CategoryID string `json:"category_id" validate:"omitempty,uuid4"`
	City       string `json:"city"`
	State      string `json:"state"`
}
