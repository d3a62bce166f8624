package wire

import (
	"github.com/joshijay655/justdostuff/internal/adaptor"
	"github.com/joshijay655/justdostuff/internal/data/repository"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireConversation(r chi.Router, conversationHandler *adaptor.ConversationHandler, repo *repository.Repository, log *zap.Logger) {
	authenticated(r, repo, log, func(r chi.Router) {
		// POST is get-or-create keyed on the booking
		r.Post("/api/conversations", conversationHandler.GetOrCreate)
		r.Get("/api/conversations", conversationHandler.List)

		r.Get("/api/conversations/{id}/messages", conversationHandler.GetMessages)
		r.Post("/api/conversations/{id}/messages", conversationHandler.SendMessage)
		r.Get("/api/conversations/{id}/stream", conversationHandler.Stream)
	})
}
