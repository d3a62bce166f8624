package usecase

import (
	"context"
	"errors"
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

type ReviewService struct {
	reviewRepo  repository.ReviewRepository
	bookingRepo repository.BookingRepository
	cache       *cache.Cache
	log         *zap.Logger
}

func NewReviewService(repo *repository.Repository, cache *cache.Cache, log *zap.Logger) *ReviewService {
	return &ReviewService{
		reviewRepo:  repo.Review,
		bookingRepo: repo.Booking,
		cache:       cache,
		log:         log.With(zap.String("service", "review")),
	}
}

// Create records a review for a completed booking. Each participant may
// review the other party once; the experience's rating aggregate is
// recomputed in the same transaction as the insert.
func (s *ReviewService) Create(ctx context.Context, reviewerID uuid.UUID, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	bookingID, err := uuid.Parse(req.BookingID)
	if err != nil {
		return nil, fmt.Errorf("parse booking id: %w", err)
	}

	booking, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return nil, ErrNotFound
	}
	if !booking.IsParticipant(reviewerID) {
		return nil, ErrForbidden
	}
	if booking.Status != entity.BookingStatusCompleted {
		return nil, ErrInvalidTransition
	}

	existing, err := s.reviewRepo.FindByBookingAndReviewer(ctx, bookingID, reviewerID)
	if err != nil {
		return nil, fmt.Errorf("find existing review: %w", err)
	}
	if existing != nil {
		return nil, ErrDuplicateReview
	}

	revieweeID := booking.ProviderID
	if reviewerID == booking.ProviderID {
		revieweeID = booking.SeekerID
	}

	review := &entity.Review{
		BookingID:    bookingID,
		ReviewerID:   reviewerID,
		RevieweeID:   revieweeID,
		ExperienceID: booking.ExperienceID,
		Rating:       req.Rating,
		Comment:      req.Comment,
	}
	review.ID = uuid.New()
	review.CreatedAt = time.Now()

	if err := s.reviewRepo.CreateWithAggregate(ctx, review); err != nil {
		// Two concurrent submissions can both pass the lookup above; the
		// unique index settles the race.
		if errors.Is(err, repository.ErrDuplicateReview) {
			return nil, ErrDuplicateReview
		}
		return nil, fmt.Errorf("create review: %w", err)
	}

	// The cached experience now carries a stale aggregate.
	if s.cache != nil {
		s.cache.Delete(ctx, experienceCacheKey(booking.ExperienceID))
	}

	s.log.Info("review created",
		zap.String("booking_id", bookingID.String()),
		zap.String("reviewer_id", reviewerID.String()),
		zap.Int("rating", req.Rating),
	)

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *ReviewService) ListByExperience(ctx context.Context, experienceID uuid.UUID, page request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error) {
	reviews, err := s.reviewRepo.FindByExperienceID(ctx, experienceID, page.Limit(), page.Offset())
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	total, err := s.reviewRepo.CountByExperienceID(ctx, experienceID)
	if err != nil {
		return nil, fmt.Errorf("count reviews: %w", err)
	}

	items := make([]response.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		items = append(items, response.ReviewToResponse(review))
	}

	return response.NewPaginatedResponse(items, page.Page, page.Limit(), total), nil
}
