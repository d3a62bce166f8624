package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/joshijay655/justdostuff/internal/data/entity"
	"github.com/joshijay655/justdostuff/internal/data/repository"
	"github.com/joshijay655/justdostuff/internal/dto/request"
	"github.com/joshijay655/justdostuff/internal/dto/response"
	"github.com/joshijay655/justdostuff/pkg/cache"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService struct {
	bookingRepo      repository.BookingRepository
	availabilityRepo repository.AvailabilityRepository
	experienceRepo   repository.ExperienceRepository
	profileRepo      repository.ProfileRepository
	notification     *NotificationService
	cache            *cache.Cache
	log              *zap.Logger
}

func NewBookingService(repo *repository.Repository, notification *NotificationService, cache *cache.Cache, log *zap.Logger) *BookingService {
	return &BookingService{
		bookingRepo:      repo.Booking,
		availabilityRepo: repo.Availability,
		experienceRepo:   repo.Experience,
		profileRepo:      repo.Profile,
		notification:     notification,
		cache:            cache,
		log:              log.With(zap.String("service", "booking")),
	}
}

// Create places a pending booking request against an availability slot.
// The spot is reserved first with a conditional update, then the booking
// row is inserted; if the insert fails the spot is released again.
func (s *BookingService) Create(ctx context.Context, seekerID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	seeker, err := s.profileRepo.FindByID(ctx, seekerID)
	if err != nil {
		return nil, fmt.Errorf("find seeker: %w", err)
	}
	if seeker == nil {
		return nil, ErrNotFound
	}
	if !seeker.CanSeek() {
		return nil, ErrForbidden
	}

	experienceID, err := uuid.Parse(req.ExperienceID)
	if err != nil {
		return nil, fmt.Errorf("parse experience id: %w", err)
	}
	availabilityID, err := uuid.Parse(req.AvailabilityID)
	if err != nil {
		return nil, fmt.Errorf("parse availability id: %w", err)
	}

	experience, err := s.experienceRepo.FindByID(ctx, experienceID)
	if err != nil {
		return nil, fmt.Errorf("find experience: %w", err)
	}
	if experience == nil {
		return nil, ErrNotFound
	}
	if experience.Status != entity.ExperienceStatusPublished {
		return nil, ErrNotBookable
	}
	if experience.ProviderID == seekerID {
		return nil, ErrForbidden
	}

	slot, err := s.availabilityRepo.FindByID(ctx, availabilityID)
	if err != nil {
		return nil, fmt.Errorf("find slot: %w", err)
	}
	if slot == nil || slot.ExperienceID != experienceID {
		return nil, ErrNotFound
	}

	now := time.Now()
	agreements, err := resolveAgreements(req, experience.RequiresNDA, now)
	if err != nil {
		return nil, err
	}

	emergencyName, emergencyPhone := resolveEmergencyContact(req, seeker)
	if emergencyName == nil || emergencyPhone == nil {
		return nil, ErrMissingEmergencyContact
	}

	provider, err := s.profileRepo.FindByID(ctx, experience.ProviderID)
	if err != nil {
		return nil, fmt.Errorf("find provider: %w", err)
	}
	if provider == nil {
		return nil, ErrNotFound
	}

	reserved, err := s.availabilityRepo.Reserve(ctx, availabilityID)
	if err != nil {
		return nil, fmt.Errorf("reserve spot: %w", err)
	}
	if !reserved {
		return nil, ErrCapacityExceeded
	}

	booking := &entity.Booking{
		SeekerID:               seekerID,
		ProviderID:             experience.ProviderID,
		ExperienceID:           experienceID,
		AvailabilityID:         availabilityID,
		Status:                 entity.BookingStatusPending,
		TosAcceptedAt:          agreements.TosAcceptedAt,
		WaiverAcceptedAt:       agreements.WaiverAcceptedAt,
		NdaAcceptedAt:          agreements.NdaAcceptedAt,
		SeekerEmergencyName:    emergencyName,
		SeekerEmergencyPhone:   emergencyPhone,
		ProviderEmergencyName:  provider.EmergencyContactName,
		ProviderEmergencyPhone: provider.EmergencyContactPhone,
	}
	booking.ID = uuid.New()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		// Undo the reservation so the spot isn't leaked.
		if releaseErr := s.availabilityRepo.Release(ctx, availabilityID); releaseErr != nil {
			s.log.Error("failed to release spot after booking insert failure",
				zap.String("slot_id", availabilityID.String()),
				zap.Error(releaseErr),
			)
		}
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("seeker_id", seekerID.String()),
		zap.String("slot_id", availabilityID.String()),
	)

	s.notification.BookingRequested(ctx, booking.ID)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

// Confirm moves a pending booking to confirmed. Provider only.
func (s *BookingService) Confirm(ctx context.Context, providerID, bookingID uuid.UUID) error {
	booking, err := s.providerBooking(ctx, providerID, bookingID)
	if err != nil {
		return err
	}

	ok, err := s.bookingRepo.UpdateStatusFrom(ctx, booking.ID, entity.BookingStatusConfirmed, entity.BookingStatusPending)
	if err != nil {
		return fmt.Errorf("confirm booking: %w", err)
	}
	if !ok {
		return ErrInvalidTransition
	}

	s.log.Info("booking confirmed", zap.String("booking_id", bookingID.String()))
	s.notification.BookingConfirmed(ctx, bookingID)
	return nil
}

// Decline rejects a pending booking and releases the reserved spot.
func (s *BookingService) Decline(ctx context.Context, providerID, bookingID uuid.UUID) error {
	booking, err := s.providerBooking(ctx, providerID, bookingID)
	if err != nil {
		return err
	}

	ok, err := s.bookingRepo.UpdateStatusFrom(ctx, booking.ID, entity.BookingStatusDeclined, entity.BookingStatusPending)
	if err != nil {
		return fmt.Errorf("decline booking: %w", err)
	}
	if !ok {
		return ErrInvalidTransition
	}

	if err := s.availabilityRepo.Release(ctx, booking.AvailabilityID); err != nil {
		s.log.Error("failed to release spot after decline",
			zap.String("booking_id", bookingID.String()),
			zap.Error(err),
		)
	}

	s.log.Info("booking declined", zap.String("booking_id", bookingID.String()))
	s.notification.BookingDeclined(ctx, bookingID)
	return nil
}

// Cancel is available to either party while the booking is pending or
// confirmed. The reserved spot goes back to the slot.
func (s *BookingService) Cancel(ctx context.Context, userID, bookingID uuid.UUID, req *request.CancelBookingRequest) error {
	booking, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return ErrNotFound
	}
	if !booking.IsParticipant(userID) {
		return ErrForbidden
	}

	ok, err := s.bookingRepo.UpdateStatusFrom(ctx, booking.ID, entity.BookingStatusCancelled,
		entity.BookingStatusPending, entity.BookingStatusConfirmed)
	if err != nil {
		return fmt.Errorf("cancel booking: %w", err)
	}
	if !ok {
		return ErrInvalidTransition
	}

	if err := s.bookingRepo.SetCancellationReason(ctx, booking.ID, req.Reason); err != nil {
		s.log.Error("failed to store cancellation reason",
			zap.String("booking_id", bookingID.String()),
			zap.Error(err),
		)
	}

	if err := s.availabilityRepo.Release(ctx, booking.AvailabilityID); err != nil {
		s.log.Error("failed to release spot after cancel",
			zap.String("booking_id", bookingID.String()),
			zap.Error(err),
		)
	}

	s.log.Info("booking cancelled",
		zap.String("booking_id", bookingID.String()),
		zap.String("by", userID.String()),
	)
	s.notification.BookingCancelled(ctx, bookingID, userID, req.Reason)
	return nil
}

// Start marks a confirmed booking as in progress. Provider only.
func (s *BookingService) Start(ctx context.Context, providerID, bookingID uuid.UUID) error {
	booking, err := s.providerBooking(ctx, providerID, bookingID)
	if err != nil {
		return err
	}

	ok, err := s.bookingRepo.UpdateStatusFrom(ctx, booking.ID, entity.BookingStatusInProgress, entity.BookingStatusConfirmed)
	if err != nil {
		return fmt.Errorf("start booking: %w", err)
	}
	if !ok {
		return ErrInvalidTransition
	}

	s.log.Info("booking started", zap.String("booking_id", bookingID.String()))
	return nil
}

// Complete closes out a booking. Providers may skip the in_progress step
// and complete straight from confirmed. Provider only.
func (s *BookingService) Complete(ctx context.Context, providerID, bookingID uuid.UUID) error {
	booking, err := s.providerBooking(ctx, providerID, bookingID)
	if err != nil {
		return err
	}

	ok, err := s.bookingRepo.UpdateStatusFrom(ctx, booking.ID, entity.BookingStatusCompleted,
		entity.BookingStatusConfirmed, entity.BookingStatusInProgress)
	if err != nil {
		return fmt.Errorf("complete booking: %w", err)
	}
	if !ok {
		return ErrInvalidTransition
	}

	s.log.Info("booking completed", zap.String("booking_id", bookingID.String()))
	return nil
}

// Get returns a booking with slot details. Participants only.
func (s *BookingService) Get(ctx context.Context, userID, bookingID uuid.UUID) (*response.BookingResponse, error) {
	booking, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return nil, ErrNotFound
	}
	if !booking.IsParticipant(userID) {
		return nil, ErrForbidden
	}

	resp := response.BookingToResponse(booking)
	s.attachDetails(ctx, booking, &resp)
	return &resp, nil
}

func (s *BookingService) ListAsSeeker(ctx context.Context, seekerID uuid.UUID, page request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	bookings, err := s.bookingRepo.FindBySeekerID(ctx, seekerID, page.Limit(), page.Offset())
	if err != nil {
		return nil, fmt.Errorf("list seeker bookings: %w", err)
	}

	total, err := s.bookingRepo.CountBySeekerID(ctx, seekerID)
	if err != nil {
		return nil, fmt.Errorf("count seeker bookings: %w", err)
	}

	return response.NewPaginatedResponse(s.toResponses(ctx, bookings), page.Page, page.Limit(), total), nil
}

func (s *BookingService) ListAsProvider(ctx context.Context, providerID uuid.UUID, page request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	bookings, err := s.bookingRepo.FindByProviderID(ctx, providerID, page.Limit(), page.Offset())
	if err != nil {
		return nil, fmt.Errorf("list provider bookings: %w", err)
	}

	total, err := s.bookingRepo.CountByProviderID(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("count provider bookings: %w", err)
	}

	return response.NewPaginatedResponse(s.toResponses(ctx, bookings), page.Page, page.Limit(), total), nil
}

func (s *BookingService) providerBooking(ctx context.Context, providerID, bookingID uuid.UUID) (*entity.Booking, error) {
	booking, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return nil, ErrNotFound
	}
	if booking.ProviderID != providerID {
		return nil, ErrForbidden
	}
	return booking, nil
}

// attachDetails best-effort enriches a response with experience and slot
// fields. Lookup failures leave the fields empty rather than failing the read.
func (s *BookingService) attachDetails(ctx context.Context, booking *entity.Booking, resp *response.BookingResponse) {
	if experience, err := s.experienceRepo.FindByID(ctx, booking.ExperienceID); err == nil && experience != nil {
		resp.ExperienceTitle = experience.Title
	}
	if slot, err := s.availabilityRepo.FindByID(ctx, booking.AvailabilityID); err == nil && slot != nil {
		resp.Date = slot.Date.Format("2006-01-02")
		resp.StartTime = slot.StartTime.Format("15:04")
		resp.EndTime = slot.EndTime.Format("15:04")
	}
}

func (s *BookingService) toResponses(ctx context.Context, bookings []*entity.Booking) []response.BookingResponse {
	items := make([]response.BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		resp := response.BookingToResponse(booking)
		s.attachDetails(ctx, booking, &resp)
		items = append(items, resp)
	}
	return items
}

// resolveEmergencyContact prefers the contact given on the booking form and
// falls back to the one stored on the seeker's profile.
func resolveEmergencyContact(req *request.CreateBookingRequest, seeker *entity.Profile) (*string, *string) {
	if req.EmergencyContactName != "" && req.EmergencyContactPhone != "" {
		name := req.EmergencyContactName
		phone := req.EmergencyContactPhone
		return &name, &phone
	}
	return seeker.EmergencyContactName, seeker.EmergencyContactPhone
}
