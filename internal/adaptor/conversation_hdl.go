package adaptor

import (
	"fmt"
	"net/http"
	"time"

	"github.com/joshijay655/justdostuff/internal/dto/request"
	"github.com/joshijay655/justdostuff/internal/usecase"
	"github.com/joshijay655/justdostuff/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ConversationHandler struct {
	service *usecase.ConversationService
	log     *zap.Logger
}

func NewConversationHandler(service *usecase.ConversationService, log *zap.Logger) *ConversationHandler {
	return &ConversationHandler{
		service: service,
		log:     log.With(zap.String("handler", "conversation")),
	}
}

func (h *ConversationHandler) GetOrCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Missing user identity")
		return
	}

	var req request.StartConversationRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.service.GetOrCreate(r.Context(), userID, &req)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Conversation retrieved", result)
}

func (h *ConversationHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Missing user identity")
		return
	}

	result, err := h.service.List(r.Context(), userID)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Conversations retrieved", result)
}

func (h *ConversationHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	userID, conversationID, ok := h.identifiers(w, r)
	if !ok {
		return
	}

	var req request.SendMessageRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.service.SendMessage(r.Context(), userID, conversationID, &req)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseCreated(w, "Message sent", result)
}

func (h *ConversationHandler) GetMessages(w http.ResponseWriter, r *http.Request) {
	userID, conversationID, ok := h.identifiers(w, r)
	if !ok {
		return
	}

	result, err := h.service.GetMessages(r.Context(), userID, conversationID)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Messages retrieved", result)
}

// Stream relays the thread's live message feed as server-sent events until
// the client disconnects. Each event carries the same JSON payload SendMessage
// publishes.
func (h *ConversationHandler) Stream(w http.ResponseWriter, r *http.Request) {
	userID, conversationID, ok := h.identifiers(w, r)
	if !ok {
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		utils.ResponseInternalError(w, "Streaming not supported")
		return
	}

	sub, err := h.service.Stream(r.Context(), userID, conversationID)
	if err != nil {
		respondError(w, h.log, err)
		return
	}
	defer sub.Close()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	// Comment lines keep idle connections from being reaped by proxies.
	heartbeat := time.NewTicker(30 * time.Second)
	defer heartbeat.Stop()

	events := sub.Channel()
	for {
		select {
		case <-r.Context().Done():
			return
		case <-heartbeat.C:
			fmt.Fprint(w, ": ping\n\n")
			flusher.Flush()
		case event, open := <-events:
			if !open {
				return
			}
			fmt.Fprintf(w, "data: %s\n\n", event.Payload)
			flusher.Flush()
		}
	}
}

func (h *ConversationHandler) identifiers(w http.ResponseWriter, r *http.Request) (uuid.UUID, uuid.UUID, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Missing user identity")
		return uuid.Nil, uuid.Nil, false
	}

	conversationID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid conversation ID", nil)
		return uuid.Nil, uuid.Nil, false
	}

	return userID, conversationID, true
}
