package http

import (
	"net/http"

	"github.com/wingscafe/inventory/internal/service"
)

type authHandler struct {
	svc     *Service
	userSvc service.UserService
	authSvc service.AuthService
}

func newAuthHandler(svc *Service, userSvc service.UserService, authSvc service.AuthService) *authHandler {
	return &authHandler{
		svc:     svc,
		userSvc: userSvc,
		authSvc: authSvc,
	}
}

func (h *authHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := h.svc.decode(r, &req); err != nil {
		h.svc.respondError(w, r, err)
		return
	}

	user, err := h.userSvc.RegisterUser(r.Context(), service.RegisterUserParams{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.svc.respondError(w, r, err)
		return
	}

	h.svc.respond(w, r, http.StatusCreated, newUserResponse(user))
}

func (h *authHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := h.svc.decode(r, &req); err != nil {
		h.svc.respondError(w, r, err)
		return
	}

	if err := h.authSvc.Login(r.Context(), req.Email, req.Password); err != nil {
		h.svc.respondError(w, r, err)
		return
	}

	h.svc.respond(w, r, http.StatusOK, SessionResponse{
		State: string(h.authSvc.SessionState()),
	})
}

func (h *authHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.authSvc.Logout()

	h.svc.respond(w, r, http.StatusOK, SessionResponse{
		State: string(h.authSvc.SessionState()),
	})
}

func (h *authHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	h.svc.respond(w, r, http.StatusOK, SessionResponse{
		State: string(h.authSvc.SessionState()),
	})
}
