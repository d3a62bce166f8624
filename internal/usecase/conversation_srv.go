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
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ConversationService runs the per-booking 1:1 message threads. A thread
// exists only for a booking and only its two parties may use it.
type ConversationService struct {
	conversationRepo repository.ConversationRepository
	messageRepo      repository.MessageRepository
	bookingRepo      repository.BookingRepository
	cache            *cache.Cache
	log              *zap.Logger
}

func NewConversationService(repo *repository.Repository, cache *cache.Cache, log *zap.Logger) *ConversationService {
	return &ConversationService{
		conversationRepo: repo.Conversation,
		messageRepo:      repo.Message,
		bookingRepo:      repo.Booking,
		cache:            cache,
		log:              log.With(zap.String("service", "conversation")),
	}
}

func conversationChannel(conversationID uuid.UUID) string {
	return "conversation:" + conversationID.String()
}

// GetOrCreate returns the thread for a booking, creating it on first use.
// Participant identities are copied from the booking.
func (s *ConversationService) GetOrCreate(ctx context.Context, userID uuid.UUID, req *request.StartConversationRequest) (*response.ConversationResponse, error) {
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
	if !booking.IsParticipant(userID) {
		return nil, ErrForbidden
	}

	conversation, err := s.conversationRepo.FindByBookingID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("find conversation: %w", err)
	}

	if conversation == nil {
		conversation = &entity.Conversation{
			BookingID:  bookingID,
			SeekerID:   booking.SeekerID,
			ProviderID: booking.ProviderID,
		}
		conversation.ID = uuid.New()
		conversation.CreatedAt = time.Now()

		if err := s.conversationRepo.Create(ctx, conversation); err != nil {
			// A concurrent create may have won on the booking_id unique
			// constraint; re-read before giving up.
			existing, findErr := s.conversationRepo.FindByBookingID(ctx, bookingID)
			if findErr != nil || existing == nil {
				return nil, fmt.Errorf("create conversation: %w", err)
			}
			conversation = existing
		}
	}

	unread, err := s.messageRepo.CountUnread(ctx, conversation.ID, userID)
	if err != nil {
		return nil, fmt.Errorf("count unread: %w", err)
	}

	resp := response.ConversationToResponse(conversation, unread)
	return &resp, nil
}

// List returns every thread the user participates in, with unread counts.
func (s *ConversationService) List(ctx context.Context, userID uuid.UUID) ([]response.ConversationResponse, error) {
	conversations, err := s.conversationRepo.FindByParticipant(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}

	result := make([]response.ConversationResponse, 0, len(conversations))
	for _, conversation := range conversations {
		unread, err := s.messageRepo.CountUnread(ctx, conversation.ID, userID)
		if err != nil {
			return nil, fmt.Errorf("count unread: %w", err)
		}
		result = append(result, response.ConversationToResponse(conversation, unread))
	}

	return result, nil
}

// SendMessage appends to a thread the sender belongs to and fans the message
// out on the thread's channel for live listeners.
func (s *ConversationService) SendMessage(ctx context.Context, senderID, conversationID uuid.UUID, req *request.SendMessageRequest) (*response.MessageResponse, error) {
	conversation, err := s.participantConversation(ctx, senderID, conversationID)
	if err != nil {
		return nil, err
	}

	message := &entity.Message{
		ConversationID: conversation.ID,
		SenderID:       senderID,
		Content:        req.Content,
	}
	message.ID = uuid.New()
	message.CreatedAt = time.Now()

	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}

	resp := response.MessageToResponse(message)

	if s.cache != nil {
		s.cache.Publish(ctx, conversationChannel(conversation.ID), resp)
	}

	s.log.Debug("message sent",
		zap.String("conversation_id", conversation.ID.String()),
		zap.String("sender_id", senderID.String()),
	)

	return &resp, nil
}

// GetMessages returns the full thread in chronological order and marks the
// other party's messages as read.
func (s *ConversationService) GetMessages(ctx context.Context, userID, conversationID uuid.UUID) ([]response.MessageResponse, error) {
	conversation, err := s.participantConversation(ctx, userID, conversationID)
	if err != nil {
		return nil, err
	}

	messages, err := s.messageRepo.FindByConversationID(ctx, conversation.ID)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}

	if err := s.messageRepo.MarkRead(ctx, conversation.ID, userID); err != nil {
		s.log.Error("failed to mark messages read",
			zap.String("conversation_id", conversation.ID.String()),
			zap.Error(err),
		)
	}

	result := make([]response.MessageResponse, 0, len(messages))
	for _, message := range messages {
		result = append(result, response.MessageToResponse(message))
	}

	return result, nil
}

// Stream opens a live subscription to a thread's message channel. Only
// participants may listen. The caller owns the subscription and must Close it.
func (s *ConversationService) Stream(ctx context.Context, userID, conversationID uuid.UUID) (*redis.PubSub, error) {
	conversation, err := s.participantConversation(ctx, userID, conversationID)
	if err != nil {
		return nil, err
	}

	if s.cache == nil {
		return nil, fmt.Errorf("message stream requires redis pub/sub")
	}

	return s.cache.Subscribe(ctx, conversationChannel(conversation.ID)), nil
}

func (s *ConversationService) participantConversation(ctx context.Context, userID, conversationID uuid.UUID) (*entity.Conversation, error) {
	conversation, err := s.conversationRepo.FindByID(ctx, conversationID)
	if err != nil {
		return nil, fmt.Errorf("find conversation: %w", err)
	}
	if conversation == nil {
		return nil, ErrNotFound
	}
	if !conversation.HasParticipant(userID) {
		return nil, ErrForbidden
	}
	return conversation, nil
}
