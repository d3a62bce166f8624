package adaptor

import (
	"net/http"

	"github.com/joshijay655/justdostuff/internal/data/entity"
	"github.com/joshijay655/justdostuff/internal/dto/request"
	"github.com/joshijay655/justdostuff/internal/usecase"
	"github.com/joshijay655/justdostuff/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ExperienceHandler struct {
	service *usecase.ExperienceService
	log     *zap.Logger
}

func NewExperienceHandler(service *usecase.ExperienceService, log *zap.Logger) *ExperienceHandler {
	return &ExperienceHandler{
		service: service,
		log:     log.With(zap.String("handler", "experience")),
	}
}

func (h *ExperienceHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListCategories(r.Context())
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Categories retrieved", result)
}

func (h *ExperienceHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Missing user identity")
		return
	}

	var req request.CreateExperienceRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseCreated(w, "Experience created", result)
}

func (h *ExperienceHandler) Get(w http.ResponseWriter, r *http.Request) {
	experienceID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid experience ID", nil)
		return
	}

	// viewer is optional; unauthenticated reads see published only
	viewerID, _ := utils.GetUserIDFromContext(r.Context())

	result, err := h.service.Get(r.Context(), experienceID, viewerID)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Experience retrieved", result)
}

func (h *ExperienceHandler) List(w http.ResponseWriter, r *http.Request) {
	req := request.ListExperiencesRequest{
		PaginatedRequest: request.PaginatedRequest{
			Page:    utils.ParseInt(r.URL.Query().Get("page"), 1),
			PerPage: utils.ParseInt(r.URL.Query().Get("per_page"), 10),
		},
		CategoryID: r.URL.Query().Get("category_id"),
		City:       r.URL.Query().Get("city"),
		State:      r.URL.Query().Get("state"),
	}

	result, err := h.service.List(r.Context(), &req)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Experiences retrieved", result)
}

func (h *ExperienceHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Missing user identity")
		return
	}

	result, err := h.service.ListMine(r.Context(), userID)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Experiences retrieved", result)
}

func (h *ExperienceHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Missing user identity")
		return
	}

	experienceID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid experience ID", nil)
		return
	}

	var req request.UpdateExperienceRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.service.Update(r.Context(), userID, experienceID, &req)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Experience updated", result)
}

func (h *ExperienceHandler) Publish(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, entity.ExperienceStatusPublished, "Experience published")
}

func (h *ExperienceHandler) Archive(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, entity.ExperienceStatusArchived, "Experience archived")
}

func (h *ExperienceHandler) setStatus(w http.ResponseWriter, r *http.Request, status entity.ExperienceStatus, message string) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Missing user identity")
		return
	}

	experienceID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid experience ID", nil)
		return
	}

	if err := h.service.SetStatus(r.Context(), userID, experienceID, status); err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, message, nil)
}

func (h *ExperienceHandler) CreateSlot(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Missing user identity")
		return
	}

	experienceID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid experience ID", nil)
		return
	}

	var req request.CreateSlotRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.service.CreateSlot(r.Context(), userID, experienceID, &req)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseCreated(w, "Slot created", result)
}

func (h *ExperienceHandler) ListSlots(w http.ResponseWriter, r *http.Request) {
	experienceID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid experience ID", nil)
		return
	}

	viewerID, _ := utils.GetUserIDFromContext(r.Context())

	result, err := h.service.ListSlots(r.Context(), experienceID, viewerID)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Slots retrieved", result)
}

func (h *ExperienceHandler) DeleteSlot(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Missing user identity")
		return
	}

	slotID, err := uuid.Parse(chi.URLParam(r, "slotId"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid slot ID", nil)
		return
	}

	if err := h.service.DeleteSlot(r.Context(), userID, slotID); err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Slot deleted", nil)
}
