package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/joshijay655/justdostuff/internal/data/entity"
	"github.com/joshijay655/justdostuff/internal/data/repository"
	"github.com/joshijay655/justdostuff/internal/dto/request"
	"github.com/joshijay655/justdostuff/internal/dto/response"
	"github.com/joshijay655/justdostuff/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService struct {
	profileRepo   repository.ProfileRepository
	sessionRepo   repository.SessionRepository
	sessionExpiry time.Duration
	log           *zap.Logger
}

func NewAuthService(repo *repository.Repository, sessionConfig utils.SessionConfig, log *zap.Logger) *AuthService {
	expiry := time.Duration(sessionConfig.ExpiryHours) * time.Hour
	if expiry <= 0 {
		expiry = 24 * time.Hour
	}

	return &AuthService{
		profileRepo:   repo.Profile,
		sessionRepo:   repo.Session,
		sessionExpiry: expiry,
		log:           log.With(zap.String("service", "auth")),
	}
}

func (s *AuthService) Register(ctx context.Context, req *request.RegisterRequest, meta request.SessionMeta) (*response.AuthResponse, error) {
	existing, err := s.profileRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check existing email: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	profile := &entity.Profile{
		Email:        req.Email,
		PasswordHash: hash,
		FullName:     req.FullName,
		Role:         entity.UserRole(req.Role),
		Phone:        req.Phone,
		IsActive:     true,
	}
	profile.ID = uuid.New()
	now := time.Now()
	profile.CreatedAt = now
	profile.UpdatedAt = now

	if err := s.profileRepo.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}

	session, err := s.createSession(ctx, profile.ID, meta)
	if err != nil {
		return nil, err
	}

	s.log.Info("user registered",
		zap.String("user_id", profile.ID.String()),
		zap.String("role", req.Role),
	)

	return response.AuthToResponse(profile, session), nil
}

func (s *AuthService) Login(ctx context.Context, req *request.LoginRequest, meta request.SessionMeta) (*response.AuthResponse, error) {
	profile, err := s.profileRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("find profile by email: %w", err)
	}
	if profile == nil || !profile.IsActive {
		return nil, ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(req.Password, profile.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	session, err := s.createSession(ctx, profile.ID, meta)
	if err != nil {
		return nil, err
	}

	s.log.Info("user logged in", zap.String("user_id", profile.ID.String()))

	return response.AuthToResponse(profile, session), nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	if err := s.sessionRepo.Revoke(ctx, token); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}

func (s *AuthService) LogoutAll(ctx context.Context, userID uuid.UUID) error {
	if err := s.sessionRepo.RevokeAllUserSessions(ctx, userID); err != nil {
		return fmt.Errorf("revoke all sessions: %w", err)
	}
	return nil
}

func (s *AuthService) createSession(ctx context.Context, userID uuid.UUID, meta request.SessionMeta) (*entity.Session, error) {
	session := &entity.Session{
		UserID:    userID,
		Token:     uuid.New(),
		ExpiresAt: time.Now().Add(s.sessionExpiry),
	}
	if meta.UserAgent != "" {
		session.UserAgent = &meta.UserAgent
	}
	if meta.IPAddress != "" {
		session.IPAddress = &meta.IPAddress
	}
	session.ID = uuid.New()
	session.CreatedAt = time.Now()

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	return session, nil
}
