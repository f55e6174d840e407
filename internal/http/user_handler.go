package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/wingscafe/inventory/internal/apperr"
	"github.com/wingscafe/inventory/internal/service"
)

type userHandler struct {
	svc     *Service
	userSvc service.UserService
}

func newUserHandler(svc *Service, userSvc service.UserService) *userHandler {
	return &userHandler{
		svc:     svc,
		userSvc: userSvc,
	}
}

func (h *userHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userSvc.ListAllUsers(r.Context())
	if err != nil {
		h.svc.respondError(w, r, err)
		return
	}

	items := make([]UserResponse, 0, len(users))
	for _, user := range users {
		items = append(items, newUserResponse(user))
	}

	h.svc.respond(w, r, http.StatusOK, items)
}

func (h *userHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
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

func (h *userHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.svc.respondError(w, r, apperr.ValidationErr.WrapParent(err))
		return
	}

	var req UpdateUserRequest
	if err := h.svc.decode(r, &req); err != nil {
		h.svc.respondError(w, r, err)
		return
	}

	user, err := h.userSvc.UpdateUser(r.Context(), id, service.UpdateUserParams{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.svc.respondError(w, r, err)
		return
	}

	h.svc.respond(w, r, http.StatusOK, newUserResponse(user))
}

func (h *userHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.svc.respondError(w, r, apperr.ValidationErr.WrapParent(err))
		return
	}

	if err := h.userSvc.DeleteUser(r.Context(), id); err != nil {
		h.svc.respondError(w, r, err)
		return
	}

	h.svc.respond(w, r, http.StatusNoContent, nil)
}
