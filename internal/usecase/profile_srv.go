package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/joshijay655/justdostuff/internal/data/entity"
	"github.com/joshijay655/justdostuff/internal/data/repository"
	"github.com/joshijay655/justdostuff/internal/dto/request"
	"github.com/joshijay655/justdostuff/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ProfileService struct {
	profileRepo      repository.ProfileRepository
	verificationRepo repository.VerificationRepository
	notification     *NotificationService
	log              *zap.Logger
}

func NewProfileService(repo *repository.Repository, notification *NotificationService, log *zap.Logger) *ProfileService {
	return &ProfileService{
		profileRepo:      repo.Profile,
		verificationRepo: repo.Verification,
		notification:     notification,
		log:              log.With(zap.String("service", "profile")),
	}
}

func (s *ProfileService) GetMe(ctx context.Context, userID uuid.UUID) (*response.ProfileResponse, error) {
	profile, err := s.profileRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find profile: %w", err)
	}
	if profile == nil {
		return nil, ErrNotFound
	}

	resp := response.ProfileToResponse(profile)
	return &resp, nil
}

// GetPublic returns the public view of any active profile.
func (s *ProfileService) GetPublic(ctx context.Context, profileID uuid.UUID) (*response.PublicProfileResponse, error) {
	profile, err := s.profileRepo.FindByID(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("find profile: %w", err)
	}
	if profile == nil || !profile.IsActive {
		return nil, ErrNotFound
	}

	resp := response.ProfileToPublicResponse(profile)
	return &resp, nil
}

func (s *ProfileService) Update(ctx context.Context, userID uuid.UUID, req *request.UpdateProfileRequest) (*response.ProfileResponse, error) {
	profile, err := s.profileRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find profile: %w", err)
	}
	if profile == nil {
		return nil, ErrNotFound
	}

	profile.FullName = req.FullName
	profile.AvatarURL = req.AvatarURL
	profile.Bio = req.Bio
	profile.Role = entity.UserRole(req.Role)
	profile.Phone = req.Phone
	profile.City = req.City
	profile.State = req.State
	profile.EmergencyContactName = req.EmergencyContactName
	profile.EmergencyContactPhone = req.EmergencyContactPhone
	profile.UpdatedAt = time.Now()

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}

	resp := response.ProfileToResponse(profile)
	return &resp, nil
}

// SubmitVerification files an identity verification request. Only one
// pending request per user is allowed.
func (s *ProfileService) SubmitVerification(ctx context.Context, userID uuid.UUID, req *request.SubmitVerificationRequest) error {
	profile, err := s.profileRepo.FindByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("find profile: %w", err)
	}
	if profile == nil {
		return ErrNotFound
	}

	pending, err := s.verificationRepo.FindPendingByUserID(ctx, userID)
	if err != nil {
		return fmt.Errorf("find pending verification: %w", err)
	}
	if pending != nil {
		return ErrVerificationPending
	}

	verification := &entity.VerificationRequest{
		UserID:      userID,
		DocumentURL: req.DocumentURL,
		Note:        req.Note,
		Status:      entity.VerificationStatusPending,
	}
	verification.ID = uuid.New()
	verification.CreatedAt = time.Now()

	if err := s.verificationRepo.Create(ctx, verification); err != nil {
		return fmt.Errorf("create verification request: %w", err)
	}

	s.notification.VerificationSubmitted(ctx, profile)

	s.log.Info("verification submitted", zap.String("user_id", userID.String()))
	return nil
}

// ReviewVerification approves or rejects a pending request and flips the
// profile's verified flag on approval.
func (s *ProfileService) ReviewVerification(ctx context.Context, userID uuid.UUID, approve bool) error {
	pending, err := s.verificationRepo.FindPendingByUserID(ctx, userID)
	if err != nil {
		return fmt.Errorf("find pending verification: %w", err)
	}
	if pending == nil {
		return ErrNotFound
	}

	status := entity.VerificationStatusRejected
	if approve {
		status = entity.VerificationStatusApproved
	}

	if err := s.verificationRepo.UpdateStatus(ctx, pending.ID, status); err != nil {
		return fmt.Errorf("update verification status: %w", err)
	}

	if approve {
		if err := s.profileRepo.SetVerified(ctx, userID, true); err != nil {
			return fmt.Errorf("set profile verified: %w", err)
		}
	}

	s.log.Info("verification reviewed",
		zap.String("user_id", userID.String()),
		zap.String("status", string(status)),
	)
	return nil
}
