package handler

import (
	"net/http"

	"fsanano/stockmgmt/internal/apperr"
	"fsanano/stockmgmt/internal/service"

	"github.com/go-chi/chi/v5"
)

type UserHandler struct {
	svc *service.UserService
}

func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

type loginResponse struct {
	Message string `json:"message"`
	service.LoginResult
}

func (h *UserHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req service.SignupInput
	if !decodeJSON(w, r, &req) {
		return
	}

	if _, err := h.svc.Register(r.Context(), req); err != nil {
		writeError(w, r, err, "Failed to create user")
		return
	}

	writeMessage(w, http.StatusCreated, "User created successfully!")
}

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req service.LoginInput
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.svc.Authenticate(r.Context(), req)
	if err != nil {
		// unknown accounts answer 400, not 404, on this route
		if apperr.Is(err, apperr.KindNotFound) {
			writeMessage(w, http.StatusBadRequest, "User not found")
			return
		}
		writeError(w, r, err, "Failed to log in")
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{Message: "Login successful", LoginResult: *result})
}

func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.ListCustomers(r.Context())
	if err != nil {
		writeError(w, r, err, "Failed to retrieve users")
		return
	}
	writeJSON(w, http.StatusOK, emptyIfNil(users))
}

func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteUser(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err, "Failed to delete user")
		return
	}
	writeMessage(w, http.StatusOK, "User deleted successfully")
}
