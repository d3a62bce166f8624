package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/joshijay655/justdostuff/internal/data/entity"
	"github.com/joshijay655/justdostuff/internal/data/repository"
	"github.com/joshijay655/justdostuff/pkg/mailer"
	"github.com/joshijay655/justdostuff/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Notification event types accepted by the dispatch endpoint.
const (
	EventBookingRequested = "booking_requested"
	EventBookingConfirmed = "booking_confirmed"
	EventBookingDeclined  = "booking_declined"
)

// NotificationService renders and sends transactional email for booking
// lifecycle events. Sends are fire-and-forget: failures are logged and
// never fail the triggering operation.
type NotificationService struct {
	bookingRepo      repository.BookingRepository
	profileRepo      repository.ProfileRepository
	experienceRepo   repository.ExperienceRepository
	availabilityRepo repository.AvailabilityRepository
	mailer           mailer.Mailer
	baseURL          string
	log              *zap.Logger
}

func NewNotificationService(repo *repository.Repository, mail mailer.Mailer, baseURL string, log *zap.Logger) *NotificationService {
	return &NotificationService{
		bookingRepo:      repo.Booking,
		profileRepo:      repo.Profile,
		experienceRepo:   repo.Experience,
		availabilityRepo: repo.Availability,
		mailer:           mail,
		baseURL:          baseURL,
		log:              log.With(zap.String("service", "notification")),
	}
}

// Dispatch maps an event type onto the matching send. Used by the notify
// endpoint, so the caller must be a party to the booking; everyone else is
// told the booking does not exist.
func (s *NotificationService) Dispatch(ctx context.Context, callerID uuid.UUID, eventType string, bookingID uuid.UUID) error {
	booking, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return fmt.Errorf("find booking: %w", err)
	}
	if booking == nil || !booking.IsParticipant(callerID) {
		return ErrNotFound
	}

	switch eventType {
	case EventBookingRequested:
		return s.sendBookingRequested(ctx, bookingID)
	case EventBookingConfirmed:
		return s.sendBookingConfirmed(ctx, bookingID)
	case EventBookingDeclined:
		return s.sendBookingDeclined(ctx, bookingID)
	default:
		return fmt.Errorf("unknown notification type %q", eventType)
	}
}

func (s *NotificationService) BookingRequested(ctx context.Context, bookingID uuid.UUID) {
	s.async(bookingID, s.sendBookingRequested)
}

func (s *NotificationService) BookingConfirmed(ctx context.Context, bookingID uuid.UUID) {
	s.async(bookingID, s.sendBookingConfirmed)
}

func (s *NotificationService) BookingDeclined(ctx context.Context, bookingID uuid.UUID) {
	s.async(bookingID, s.sendBookingDeclined)
}

func (s *NotificationService) BookingCancelled(ctx context.Context, bookingID, cancelledBy uuid.UUID, reason string) {
	go func() {
		sendCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		if err := s.sendBookingCancelled(sendCtx, bookingID, cancelledBy, reason); err != nil {
			s.log.Error("notification send failed",
				zap.String("event", "booking_cancelled"),
				zap.String("booking_id", bookingID.String()),
				zap.Error(err),
			)
		}
	}()
}

func (s *NotificationService) VerificationSubmitted(ctx context.Context, profile *entity.Profile) {
	email := profile.Email
	name := profile.FullName

	go func() {
		subject, body := mailer.VerificationSubmitted(name)
		if err := s.mailer.Send(email, subject, body); err != nil {
			s.log.Error("notification send failed",
				zap.String("event", "verification_submitted"),
				zap.Error(err),
			)
		}
	}()
}

// VerificationSubmittedFor sends the acknowledgment by name and email.
// Used by the internal notify endpoint where only the name is posted.
func (s *NotificationService) VerificationSubmittedFor(email, name string) error {
	subject, body := mailer.VerificationSubmitted(name)
	return s.mailer.Send(email, subject, body)
}

func (s *NotificationService) async(bookingID uuid.UUID, send func(context.Context, uuid.UUID) error) {
	go func() {
		sendCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		if err := send(sendCtx, bookingID); err != nil {
			s.log.Error("notification send failed",
				zap.String("booking_id", bookingID.String()),
				zap.Error(err),
			)
		}
	}()
}

func (s *NotificationService) sendBookingRequested(ctx context.Context, bookingID uuid.UUID) error {
	details, provider, _, err := s.loadBookingContext(ctx, bookingID)
	if err != nil {
		return err
	}

	subject, body := mailer.BookingRequested(*details)
	return s.mailer.Send(provider.Email, subject, body)
}

func (s *NotificationService) sendBookingConfirmed(ctx context.Context, bookingID uuid.UUID) error {
	details, _, seeker, err := s.loadBookingContext(ctx, bookingID)
	if err != nil {
		return err
	}

	subject, body := mailer.BookingConfirmed(*details)
	return s.mailer.Send(seeker.Email, subject, body)
}

func (s *NotificationService) sendBookingDeclined(ctx context.Context, bookingID uuid.UUID) error {
	details, _, seeker, err := s.loadBookingContext(ctx, bookingID)
	if err != nil {
		return err
	}

	subject, body := mailer.BookingDeclined(*details)
	return s.mailer.Send(seeker.Email, subject, body)
}

// sendBookingCancelled notifies the party that did not cancel.
func (s *NotificationService) sendBookingCancelled(ctx context.Context, bookingID, cancelledBy uuid.UUID, reason string) error {
	booking, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return fmt.Errorf("booking %s not found", bookingID.String())
	}

	recipientID := booking.ProviderID
	if cancelledBy == booking.ProviderID {
		recipientID = booking.SeekerID
	}

	recipient, err := s.profileRepo.FindByID(ctx, recipientID)
	if err != nil {
		return fmt.Errorf("find recipient: %w", err)
	}
	if recipient == nil {
		return fmt.Errorf("recipient %s not found", recipientID.String())
	}

	details, _, _, err := s.loadBookingContext(ctx, bookingID)
	if err != nil {
		return err
	}

	subject, body := mailer.BookingCancelled(*details, reason)
	return s.mailer.Send(recipient.Email, subject, body)
}

// loadBookingContext gathers the denormalized fields the booking templates
// render, plus both party profiles.
func (s *NotificationService) loadBookingContext(ctx context.Context, bookingID uuid.UUID) (*mailer.BookingDetails, *entity.Profile, *entity.Profile, error) {
	booking, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return nil, nil, nil, fmt.Errorf("booking %s not found", bookingID.String())
	}

	provider, err := s.profileRepo.FindByID(ctx, booking.ProviderID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("find provider: %w", err)
	}
	seeker, err := s.profileRepo.FindByID(ctx, booking.SeekerID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("find seeker: %w", err)
	}
	if provider == nil || seeker == nil {
		return nil, nil, nil, fmt.Errorf("booking %s has missing participants", bookingID.String())
	}

	details := &mailer.BookingDetails{
		SeekerName:   seeker.FullName,
		ProviderName: provider.FullName,
		BookingURL:   fmt.Sprintf("%s/bookings/%s", s.baseURL, booking.ID.String()),
	}

	if experience, err := s.experienceRepo.FindByID(ctx, booking.ExperienceID); err == nil && experience != nil {
		details.ExperienceTitle = experience.Title
	}
	if slot, err := s.availabilityRepo.FindByID(ctx, booking.AvailabilityID); err == nil && slot != nil {
		details.Date = utils.FormatLongDate(slot.Date)
		details.TimeRange = utils.FormatTimeRange(slot.StartTime, slot.EndTime)
	}

	return details, provider, seeker, nil
}
