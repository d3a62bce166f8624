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

type ExperienceService struct {
	experienceRepo   repository.ExperienceRepository
	availabilityRepo repository.AvailabilityRepository
	categoryRepo     repository.CategoryRepository
	profileRepo      repository.ProfileRepository
	cache            *cache.Cache
	log              *zap.Logger
}

func NewExperienceService(repo *repository.Repository, cache *cache.Cache, log *zap.Logger) *ExperienceService {
	return &ExperienceService{
		experienceRepo:   repo.Experience,
		availabilityRepo: repo.Availability,
		categoryRepo:     repo.Category,
		profileRepo:      repo.Profile,
		cache:            cache,
		log:              log.With(zap.String("service", "experience")),
	}
}

func experienceCacheKey(id uuid.UUID) string {
	return "experience:" + id.String()
}

func (s *ExperienceService) ListCategories(ctx context.Context) ([]response.CategoryResponse, error) {
	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	result := make([]response.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		result = append(result, response.CategoryToResponse(category))
	}

	return result, nil
}

func (s *ExperienceService) Create(ctx context.Context, providerID uuid.UUID, req *request.CreateExperienceRequest) (*response.ExperienceResponse, error) {
	provider, err := s.profileRepo.FindByID(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("find provider: %w", err)
	}
	if provider == nil {
		return nil, ErrNotFound
	}
	if !provider.CanProvide() {
		return nil, ErrForbidden
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("parse category id: %w", err)
	}

	category, err := s.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("find category: %w", err)
	}
	if category == nil {
		return nil, ErrNotFound
	}

	experience := &entity.Experience{
		ProviderID:       providerID,
		CategoryID:       categoryID,
		Title:            req.Title,
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		Photos:           req.Photos,
		City:             req.City,
		State:            req.State,
		Address:          req.Address,
		Price:            req.Price,
		SlotDuration:     entity.SlotDuration(req.SlotDuration),
		MaxSeekers:       req.MaxSeekers,
		RequiresNDA:      req.RequiresNDA,
		Status:           entity.ExperienceStatusDraft,
	}
	experience.ID = uuid.New()
	now := time.Now()
	experience.CreatedAt = now
	experience.UpdatedAt = now

	if err := s.experienceRepo.Create(ctx, experience); err != nil {
		return nil, fmt.Errorf("create experience: %w", err)
	}

	s.log.Info("experience created",
		zap.String("experience_id", experience.ID.String()),
		zap.String("provider_id", providerID.String()),
	)

	resp := response.ExperienceToResponse(experience)
	return &resp, nil
}

// Get reads an experience, cache-aside. Drafts are visible only to their
// provider, so only published experiences go through the cache.
func (s *ExperienceService) Get(ctx context.Context, id uuid.UUID, viewerID uuid.UUID) (*response.ExperienceResponse, error) {
	var cached response.ExperienceResponse
	if s.cache != nil && s.cache.GetJSON(ctx, experienceCacheKey(id), &cached) {
		return &cached, nil
	}

	experience, err := s.experienceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find experience: %w", err)
	}
	if experience == nil {
		return nil, ErrNotFound
	}

	if experience.Status != entity.ExperienceStatusPublished && experience.ProviderID != viewerID {
		return nil, ErrNotFound
	}

	resp := response.ExperienceToResponse(experience)
	if s.cache != nil && experience.Status == entity.ExperienceStatusPublished {
		s.cache.SetJSON(ctx, experienceCacheKey(id), resp)
	}

	return &resp, nil
}

func (s *ExperienceService) List(ctx context.Context, req *request.ListExperiencesRequest) (*response.PaginatedResponse[response.ExperienceResponse], error) {
	filter := repository.ExperienceFilter{
		City:  req.City,
		State: req.State,
	}
	if req.CategoryID != "" {
		categoryID, err := uuid.Parse(req.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("parse category id: %w", err)
		}
		filter.CategoryID = categoryID
	}

	experiences, err := s.experienceRepo.FindPublished(ctx, filter, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("list experiences: %w", err)
	}

	total, err := s.experienceRepo.CountPublished(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count experiences: %w", err)
	}

	items := make([]response.ExperienceResponse, 0, len(experiences))
	for _, experience := range experiences {
		items = append(items, response.ExperienceToResponse(experience))
	}

	return response.NewPaginatedResponse(items, req.Page, req.Limit(), total), nil
}

func (s *ExperienceService) ListMine(ctx context.Context, providerID uuid.UUID) ([]response.ExperienceResponse, error) {
	experiences, err := s.experienceRepo.FindByProviderID(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("list provider experiences: %w", err)
	}

	items := make([]response.ExperienceResponse, 0, len(experiences))
	for _, experience := range experiences {
		items = append(items, response.ExperienceToResponse(experience))
	}

	return items, nil
}

func (s *ExperienceService) Update(ctx context.Context, providerID, experienceID uuid.UUID, req *request.UpdateExperienceRequest) (*response.ExperienceResponse, error) {
	experience, err := s.ownedExperience(ctx, providerID, experienceID)
	if err != nil {
		return nil, err
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("parse category id: %w", err)
	}

	experience.CategoryID = categoryID
	experience.Title = req.Title
	experience.Description = req.Description
	experience.ShortDescription = req.ShortDescription
	experience.Photos = req.Photos
	experience.City = req.City
	experience.State = req.State
	experience.Address = req.Address
	experience.Price = req.Price
	experience.SlotDuration = entity.SlotDuration(req.SlotDuration)
	experience.MaxSeekers = req.MaxSeekers
	experience.RequiresNDA = req.RequiresNDA
	experience.UpdatedAt = time.Now()

	if err := s.experienceRepo.Update(ctx, experience); err != nil {
		return nil, fmt.Errorf("update experience: %w", err)
	}

	s.invalidate(ctx, experienceID)

	resp := response.ExperienceToResponse(experience)
	return &resp, nil
}

func (s *ExperienceService) SetStatus(ctx context.Context, providerID, experienceID uuid.UUID, status entity.ExperienceStatus) error {
	if _, err := s.ownedExperience(ctx, providerID, experienceID); err != nil {
		return err
	}

	if err := s.experienceRepo.UpdateStatus(ctx, experienceID, status); err != nil {
		return fmt.Errorf("update experience status: %w", err)
	}

	s.invalidate(ctx, experienceID)

	s.log.Info("experience status changed",
		zap.String("experience_id", experienceID.String()),
		zap.String("status", string(status)),
	)
	return nil
}

// CreateSlot opens a bookable window under the provider's experience.
func (s *ExperienceService) CreateSlot(ctx context.Context, providerID, experienceID uuid.UUID, req *request.CreateSlotRequest) (*response.SlotResponse, error) {
	experience, err := s.ownedExperience(ctx, providerID, experienceID)
	if err != nil {
		return nil, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("parse slot date: %w", err)
	}
	startTime, err := time.Parse("15:04", req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("parse slot start time: %w", err)
	}
	endTime, err := time.Parse("15:04", req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("parse slot end time: %w", err)
	}

	if !endTime.After(startTime) {
		return nil, ErrInvalidWindow
	}
	if req.TotalSpots < 1 {
		return nil, ErrInvalidCapacity
	}

	slot := &entity.AvailabilitySlot{
		ExperienceID: experience.ID,
		Date:         date,
		StartTime:    startTime,
		EndTime:      endTime,
		TotalSpots:   req.TotalSpots,
		BookedSpots:  0,
	}
	slot.ID = uuid.New()
	slot.CreatedAt = time.Now()

	if err := s.availabilityRepo.Create(ctx, slot); err != nil {
		return nil, fmt.Errorf("create slot: %w", err)
	}

	s.log.Info("slot created",
		zap.String("slot_id", slot.ID.String()),
		zap.String("experience_id", experience.ID.String()),
		zap.Int("total_spots", slot.TotalSpots),
	)

	resp := response.SlotToResponse(slot)
	return &resp, nil
}

// ListSlots returns an experience's slots. Public callers see only open
// future slots; the owning provider sees everything.
func (s *ExperienceService) ListSlots(ctx context.Context, experienceID, viewerID uuid.UUID) ([]response.SlotResponse, error) {
	experience, err := s.experienceRepo.FindByID(ctx, experienceID)
	if err != nil {
		return nil, fmt.Errorf("find experience: %w", err)
	}
	if experience == nil {
		return nil, ErrNotFound
	}

	isOwner := experience.ProviderID == viewerID
	if experience.Status != entity.ExperienceStatusPublished && !isOwner {
		return nil, ErrNotFound
	}

	slots, err := s.availabilityRepo.FindByExperienceID(ctx, experienceID, !isOwner)
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}

	result := make([]response.SlotResponse, 0, len(slots))
	for _, slot := range slots {
		result = append(result, response.SlotToResponse(slot))
	}

	return result, nil
}

// DeleteSlot removes an empty slot. Slots holding reservations cannot be
// deleted; the provider has to cancel the bookings first.
func (s *ExperienceService) DeleteSlot(ctx context.Context, providerID, slotID uuid.UUID) error {
	slot, err := s.availabilityRepo.FindByID(ctx, slotID)
	if err != nil {
		return fmt.Errorf("find slot: %w", err)
	}
	if slot == nil {
		return ErrNotFound
	}

	if _, err := s.ownedExperience(ctx, providerID, slot.ExperienceID); err != nil {
		return err
	}

	if slot.BookedSpots > 0 {
		return ErrSlotHasBookings
	}

	// The delete statement re-checks booked_spots = 0, so a reservation
	// racing this call still wins.
	if err := s.availabilityRepo.Delete(ctx, slotID); err != nil {
		return ErrSlotHasBookings
	}

	return nil
}

func (s *ExperienceService) ownedExperience(ctx context.Context, providerID, experienceID uuid.UUID) (*entity.Experience, error) {
	experience, err := s.experienceRepo.FindByID(ctx, experienceID)
	if err != nil {
		return nil, fmt.Errorf("find experience: %w", err)
	}
	if experience == nil {
		return nil, ErrNotFound
	}
	if experience.ProviderID != providerID {
		return nil, ErrForbidden
	}
	return experience, nil
}

func (s *ExperienceService) invalidate(ctx context.Context, experienceID uuid.UUID) {
	if s.cache != nil {
		s.cache.Delete(ctx, experienceCacheKey(experienceID))
	}
}
