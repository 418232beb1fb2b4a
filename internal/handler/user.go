package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/mail"
	"strings"

	"devconnector/internal/httputil"
	"devconnector/internal/model"
	"devconnector/internal/service"
)

// UserHandler serves registration.
type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Register handles user registration
// POST /api/users
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteErrorList(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var msgs []string
	if strings.TrimSpace(req.Name) == "" {
		msgs = append(msgs, "Name is required")
	}
	if !validEmail(req.Email) {
		msgs = append(msgs, "Please include a valid email")
	}
	if len(req.Password) < 6 {
		msgs = append(msgs, "Please enter a password with 6 or more characters")
	}
	if len(msgs) > 0 {
		httputil.WriteErrorList(w, http.StatusBadRequest, msgs...)
		return
	}

	token, err := h.userService.Register(r.Context(), &req)
	if err != nil {
		if errors.Is(err, model.ErrEmailExists) {
			// Status 200 with a body-level error list is the established
			// contract for this case; clients key off the errors array.
			httputil.WriteErrorList(w, http.StatusOK, "User already exist!")
			return
		}
		log.Printf("[ERROR] Register handler: err=%v", err)
		httputil.WriteServerError(w)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, model.TokenResponse{Token: token})
}

// validEmail reports whether the address parses as a bare RFC 5322 address.
func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
