package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"devconnector/internal/httputil"
	"devconnector/internal/model"
	"devconnector/internal/service"
	"devconnector/internal/transport/http/middleware"
)

// ProfileHandler serves profile CRUD, experience/education entries, account
// deletion and the GitHub repository proxy.
type ProfileHandler struct {
	profileService *service.ProfileService
	userService    *service.UserService
	github         *service.GithubClient
}

func NewProfileHandler(profileService *service.ProfileService, userService *service.UserService, github *service.GithubClient) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		userService:    userService,
		github:         github,
	}
}

// Me returns the caller's own profile.
// GET /api/profile/me
func (h *ProfileHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteMsg(w, http.StatusUnauthorized, "No token, authorization denied")
		return
	}

	profile, err := h.profileService.GetMe(r.Context(), userID)
	if err != nil {
		if errors.Is(err, model.ErrProfileNotFound) {
			httputil.WriteMsg(w, http.StatusBadRequest, "There is no profile for this user")
			return
		}
		log.Printf("[ERROR] Get my profile handler: user=%d err=%v", userID, err)
		httputil.WriteServerError(w)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, profile)
}

// Upsert creates the caller's profile or overwrites it wholesale.
// POST /api/profile
func (h *ProfileHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteMsg(w, http.StatusUnauthorized, "No token, authorization denied")
		return
	}

	var req model.ProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteErrorList(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var msgs []string
	if strings.TrimSpace(req.Status) == "" {
		msgs = append(msgs, "Status is required")
	}
	if strings.TrimSpace(req.Skills) == "" {
		msgs = append(msgs, "Skills is required")
	}
	if len(msgs) > 0 {
		httputil.WriteErrorList(w, http.StatusBadRequest, msgs...)
		return
	}

	profile, err := h.profileService.Upsert(r.Context(), userID, &req)
	if err != nil {
		log.Printf("[ERROR] Upsert profile handler: user=%d err=%v", userID, err)
		httputil.WriteServerError(w)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, profile)
}

// GetAll returns every profile.
// GET /api/profile
func (h *ProfileHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.profileService.GetAll(r.Context())
	if err != nil {
		log.Printf("[ERROR] Get all profiles handler: err=%v", err)
		httputil.WriteServerError(w)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, profiles)
}

// GetByUserID returns one user's profile.
// GET /api/profile/user/{user_id}
func (h *ProfileHandler) GetByUserID(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "user_id"), 10, 64)
	if err != nil {
		// A malformed ID can't name a profile; same response as absent
		httputil.WriteMsg(w, http.StatusBadRequest, "Profile not found")
		return
	}

	profile, err := h.profileService.GetByUserID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, model.ErrProfileNotFound) {
			httputil.WriteMsg(w, http.StatusBadRequest, "Profile not found")
			return
		}
		log.Printf("[ERROR] Get profile handler: user=%d err=%v", userID, err)
		httputil.WriteServerError(w)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, profile)
}

// DeleteAccount removes the caller's user record, profile and posts.
// DELETE /api/profile
func (h *ProfileHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteMsg(w, http.StatusUnauthorized, "No token, authorization denied")
		return
	}

	if err := h.userService.DeleteAccount(r.Context(), userID); err != nil {
		log.Printf("[ERROR] Delete account handler: user=%d err=%v", userID, err)
		httputil.WriteServerError(w)
		return
	}

	httputil.WriteMsg(w, http.StatusOK, "User deleted")
}

// AddExperience prepends an experience entry to the caller's profile.
// PUT /api/profile/experience
func (h *ProfileHandler) AddExperience(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteMsg(w, http.StatusUnauthorized, "No token, authorization denied")
		return
	}

	var req model.ExperienceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteErrorList(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var msgs []string
	if strings.TrimSpace(req.Title) == "" {
		msgs = append(msgs, "Title is required")
	}
	if strings.TrimSpace(req.Company) == "" {
		msgs = append(msgs, "Company is required")
	}
	if strings.TrimSpace(req.From) == "" {
		msgs = append(msgs, "From date is required")
	}
	if len(msgs) > 0 {
		httputil.WriteErrorList(w, http.StatusBadRequest, msgs...)
		return
	}

	profile, err := h.profileService.AddExperience(r.Context(), userID, &req)
	if err != nil {
		h.writeEntryError(w, userID, "Add experience", err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, profile)
}

// DeleteExperience removes one experience entry from the caller's profile.
// DELETE /api/profile/experience/{exp_id}
func (h *ProfileHandler) DeleteExperience(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteMsg(w, http.StatusUnauthorized, "No token, authorization denied")
		return
	}

	expID, err := strconv.ParseInt(chi.URLParam(r, "exp_id"), 10, 64)
	if err != nil {
		httputil.WriteMsg(w, http.StatusNotFound, "Experience not found")
		return
	}

	profile, err := h.profileService.DeleteExperience(r.Context(), userID, expID)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrProfileNotFound):
			httputil.WriteMsg(w, http.StatusBadRequest, "There is no profile for this user")
		case errors.Is(err, model.ErrExperienceNotFound):
			httputil.WriteMsg(w, http.StatusNotFound, "Experience not found")
		default:
			log.Printf("[ERROR] Delete experience handler: user=%d err=%v", userID, err)
			httputil.WriteServerError(w)
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, profile)
}

// AddEducation prepends an education entry to the caller's profile.
// PUT /api/profile/education
func (h *ProfileHandler) AddEducation(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteMsg(w, http.StatusUnauthorized, "No token, authorization denied")
		return
	}

	var req model.EducationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteErrorList(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var msgs []string
	if strings.TrimSpace(req.School) == "" {
		msgs = append(msgs, "School is required")
	}
	if strings.TrimSpace(req.Degree) == "" {
		msgs = append(msgs, "Degree is required")
	}
	if strings.TrimSpace(req.FieldOfStudy) == "" {
		msgs = append(msgs, "Field of study is required")
	}
	if strings.TrimSpace(req.From) == "" {
		msgs = append(msgs, "From date is required")
	}
	if len(msgs) > 0 {
		httputil.WriteErrorList(w, http.StatusBadRequest, msgs...)
		return
	}

	profile, err := h.profileService.AddEducation(r.Context(), userID, &req)
	if err != nil {
		h.writeEntryError(w, userID, "Add education", err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, profile)
}

// DeleteEducation removes one education entry from the caller's profile.
// DELETE /api/profile/education/{edu_id}
func (h *ProfileHandler) DeleteEducation(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteMsg(w, http.StatusUnauthorized, "No token, authorization denied")
		return
	}

	eduID, err := strconv.ParseInt(chi.URLParam(r, "edu_id"), 10, 64)
	if err != nil {
		httputil.WriteMsg(w, http.StatusNotFound, "Education not found")
		return
	}

	profile, err := h.profileService.DeleteEducation(r.Context(), userID, eduID)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrProfileNotFound):
			httputil.WriteMsg(w, http.StatusBadRequest, "There is no profile for this user")
		case errors.Is(err, model.ErrEducationNotFound):
			httputil.WriteMsg(w, http.StatusNotFound, "Education not found")
		default:
			log.Printf("[ERROR] Delete education handler: user=%d err=%v", userID, err)
			httputil.WriteServerError(w)
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, profile)
}

// GithubRepos proxies a user's five most recently created repositories.
// GET /api/profile/github/{username}
func (h *ProfileHandler) GithubRepos(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	repos, err := h.github.GetRepos(r.Context(), username)
	if err != nil {
		if errors.Is(err, model.ErrGithubUserNotFound) {
			httputil.WriteMsg(w, http.StatusNotFound, "No Github profile found")
			return
		}
		log.Printf("[ERROR] Github repos handler: username=%s err=%v", username, err)
		httputil.WriteServerError(w)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, repos)
}

func (h *ProfileHandler) writeEntryError(w http.ResponseWriter, userID int64, op string, err error) {
	switch {
	case errors.Is(err, model.ErrProfileNotFound):
		httputil.WriteMsg(w, http.StatusBadRequest, "There is no profile for this user")
	case errors.Is(err, model.ErrInvalidDate):
		httputil.WriteErrorList(w, http.StatusBadRequest, "Dates must be in YYYY-MM-DD format")
	default:
		log.Printf("[ERROR] %s handler: user=%d err=%v", op, userID, err)
		httputil.WriteServerError(w)
	}
}
