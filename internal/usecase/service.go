package usecase

import (
	"github.com/joshijay655/justdostuff/internal/data/repository"
	"github.com/joshijay655/justdostuff/pkg/cache"
	"github.com/joshijay655/justdostuff/pkg/mailer"
	"github.com/joshijay655/justdostuff/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth         *AuthService
	Profile      *ProfileService
	Experience   *ExperienceService
	Booking      *BookingService
	Notification *NotificationService
	Conversation *ConversationService
	Review       *ReviewService
}

func NewService(repo *repository.Repository, cache *cache.Cache, mail mailer.Mailer, config *utils.Config, log *zap.Logger) *Service {
	notification := NewNotificationService(repo, mail, config.App.BaseURL, log)

	return &Service{
		Auth:         NewAuthService(repo, config.Session, log),
		Profile:      NewProfileService(repo, notification, log),
		Experience:   NewExperienceService(repo, cache, log),
		Booking:      NewBookingService(repo, notification, cache, log),
		Notification: notification,
		Conversation: NewConversationService(repo, cache, log),
		Review:       NewReviewService(repo, cache, log),
	}
}
