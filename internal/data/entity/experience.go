package entity

import (
	"github.com/google/uuid"
)

type ExperienceStatus string

const (
	ExperienceStatusDraft     ExperienceStatus = "draft"
	ExperienceStatusPublished ExperienceStatus = "published"
	ExperienceStatusArchived  ExperienceStatus = "archived"
)

type SlotDuration string

const (
	SlotDurationShort SlotDuration = "2-4h"
	SlotDurationLong  SlotDuration = "4-6h"
)

type Experience struct {
	Base
	ProviderID       uuid.UUID        `db:"provider_id"`
	CategoryID       uuid.UUID        `db:"category_id"`
	Title            string           `db:"title"`
	Description      string           `db:"description"`
	ShortDescription *string          `db:"short_description"`
	Photos           []string         `db:"photos"`
	City             string           `db:"city"`
	State            string           `db:"state"`
	Address          *string          `db:"address"`
	Price            float64          `db:"price"`
	SlotDuration     SlotDuration     `db:"slot_duration"`
	MaxSeekers       int              `db:"max_seekers"`
	RequiresNDA      bool             `db:"requires_nda"`
	Status           ExperienceStatus `db:"status"`
	AvgRating        float64          `db:"avg_rating"`
	ReviewCount      int              `db:"review_count"`
}
