package repository

import (
	"github.com/joshijay655/justdostuff/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Profile      ProfileRepository
	Session      SessionRepository
	Category     CategoryRepository
	Experience   ExperienceRepository
	Availability AvailabilityRepository
	Booking      BookingRepository
	Conversation ConversationRepository
	Message      MessageRepository
	Review       ReviewRepository
	Verification VerificationRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Profile:      NewProfileRepository(db, log),
		Session:      NewSessionRepository(db, log),
		Category:     NewCategoryRepository(db, log),
		Experience:   NewExperienceRepository(db, log),
		Availability: NewAvailabilityRepository(db, log),
		Booking:      NewBookingRepository(db, log),
		Conversation: NewConversationRepository(db, log),
		Message:      NewMessageRepository(db, log),
		Review:       NewReviewRepository(db, log),
		Verification: NewVerificationRepository(db, log),
	}
}
