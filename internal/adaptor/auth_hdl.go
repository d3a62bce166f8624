package adaptor

import (
	"net"
	"net/http"

	"github.com/joshijay655/justdostuff/internal/dto/request"
	"github.com/joshijay655/justdostuff/internal/usecase"
	"github.com/joshijay655/justdostuff/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service *usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service *usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log.With(zap.String("handler", "auth")),
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.service.Register(r.Context(), &req, sessionMeta(r))
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseCreated(w, "Registration successful", result)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.service.Login(r.Context(), &req, sessionMeta(r))
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Login successful", result)
}

func sessionMeta(r *http.Request) request.SessionMeta {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return request.SessionMeta{
		UserAgent: r.UserAgent(),
		IPAddress: host,
	}
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token, ok := utils.GetTokenFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Missing session token")
		return
	}

	if err := h.service.Logout(r.Context(), token); err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Logged out", nil)
}

func (h *AuthHandler) LogoutAll(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Missing user identity")
		return
	}

	if err := h.service.LogoutAll(r.Context(), userID); err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "All sessions revoked", nil)
}
