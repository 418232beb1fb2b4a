package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"devconnector/internal/httputil"
	"devconnector/internal/model"
	"devconnector/internal/service"
	"devconnector/internal/transport/http/middleware"
)

// AuthHandler serves login and the current-user lookup.
type AuthHandler struct {
	userService *service.UserService
}

func NewAuthHandler(userService *service.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

// Login handles user login
// POST /api/auth
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteErrorList(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var msgs []string
	if !validEmail(req.Email) {
		msgs = append(msgs, "Please include a valid email")
	}
	if req.Password == "" {
		msgs = append(msgs, "Password is required")
	}
	if len(msgs) > 0 {
		httputil.WriteErrorList(w, http.StatusBadRequest, msgs...)
		return
	}

	token, err := h.userService.Login(r.Context(), &req)
	if err != nil {
		if errors.Is(err, model.ErrInvalidCredentials) {
			// Unknown email and wrong password share one message and one
			// status, so callers cannot enumerate registered emails.
			httputil.WriteErrorList(w, http.StatusOK, "Invalid credentials")
			return
		}
		log.Printf("[ERROR] Login handler: err=%v", err)
		httputil.WriteServerError(w)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, model.TokenResponse{Token: token})
}

// Me returns the currently authenticated user, password hash excluded.
// GET /api/auth
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteMsg(w, http.StatusUnauthorized, "No token, authorization denied")
		return
	}

	user, err := h.userService.GetByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			httputil.WriteMsg(w, http.StatusNotFound, "User not found")
			return
		}
		log.Printf("[ERROR] Me handler: user=%d err=%v", userID, err)
		httputil.WriteServerError(w)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, user)
}
