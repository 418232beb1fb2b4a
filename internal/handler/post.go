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

// PostHandler serves posts, likes and comments.
type PostHandler struct {
	postService *service.PostService
}

func NewPostHandler(postService *service.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// Create handles POST /api/posts
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteMsg(w, http.StatusUnauthorized, "No token, authorization denied")
		return
	}

	var req model.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteErrorList(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if strings.TrimSpace(req.Text) == "" {
		httputil.WriteErrorList(w, http.StatusBadRequest, "Text is required")
		return
	}

	post, err := h.postService.Create(r.Context(), userID, &req)
	if err != nil {
		log.Printf("[ERROR] Create post handler: user=%d err=%v", userID, err)
		httputil.WriteServerError(w)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, post)
}

// GetAll handles GET /api/posts
func (h *PostHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	posts, err := h.postService.GetAll(r.Context())
	if err != nil {
		log.Printf("[ERROR] Get posts handler: err=%v", err)
		httputil.WriteServerError(w)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, posts)
}

// GetByID handles GET /api/posts/{id}
func (h *PostHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	postID, ok := h.postIDParam(w, r)
	if !ok {
		return
	}

	post, err := h.postService.GetByID(r.Context(), postID)
	if err != nil {
		if errors.Is(err, model.ErrPostNotFound) {
			httputil.WriteMsg(w, http.StatusNotFound, "Post not found")
			return
		}
		log.Printf("[ERROR] Get post handler: post=%d err=%v", postID, err)
		httputil.WriteServerError(w)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, post)
}

// Delete handles DELETE /api/posts/{id}. Owner only.
func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteMsg(w, http.StatusUnauthorized, "No token, authorization denied")
		return
	}

	postID, ok := h.postIDParam(w, r)
	if !ok {
		return
	}

	err := h.postService.Delete(r.Context(), postID, userID)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrPostNotFound):
			httputil.WriteMsg(w, http.StatusNotFound, "Post not found")
		case errors.Is(err, model.ErrNotPostOwner):
			// 401 rather than 403 for non-owners is part of the
			// established contract.
			httputil.WriteMsg(w, http.StatusUnauthorized, "User not authorized")
		default:
			log.Printf("[ERROR] Delete post handler: user=%d post=%d err=%v", userID, postID, err)
			httputil.WriteServerError(w)
		}
		return
	}

	httputil.WriteMsg(w, http.StatusOK, "Post removed")
}

// Like handles PUT /api/posts/like/{id}
func (h *PostHandler) Like(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteMsg(w, http.StatusUnauthorized, "No token, authorization denied")
		return
	}

	postID, ok := h.postIDParam(w, r)
	if !ok {
		return
	}

	likes, err := h.postService.Like(r.Context(), postID, userID)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrPostNotFound):
			httputil.WriteMsg(w, http.StatusNotFound, "Post not found")
		case errors.Is(err, model.ErrAlreadyLiked):
			httputil.WriteMsg(w, http.StatusBadRequest, "Post already liked")
		default:
			log.Printf("[ERROR] Like post handler: user=%d post=%d err=%v", userID, postID, err)
			httputil.WriteServerError(w)
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, likes)
}

// Unlike handles PUT /api/posts/unlike/{id}
func (h *PostHandler) Unlike(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteMsg(w, http.StatusUnauthorized, "No token, authorization denied")
		return
	}

	postID, ok := h.postIDParam(w, r)
	if !ok {
		return
	}

	likes, err := h.postService.Unlike(r.Context(), postID, userID)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrPostNotFound):
			httputil.WriteMsg(w, http.StatusNotFound, "Post not found")
		case errors.Is(err, model.ErrNotLiked):
			httputil.WriteMsg(w, http.StatusBadRequest, "Post has not yet been liked")
		default:
			log.Printf("[ERROR] Unlike post handler: user=%d post=%d err=%v", userID, postID, err)
			httputil.WriteServerError(w)
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, likes)
}

// AddComment handles POST /api/posts/comment/{id}
func (h *PostHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteMsg(w, http.StatusUnauthorized, "No token, authorization denied")
		return
	}

	postID, ok := h.postIDParam(w, r)
	if !ok {
		return
	}

	var req model.CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteErrorList(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if strings.TrimSpace(req.Text) == "" {
		httputil.WriteErrorList(w, http.StatusBadRequest, "Text is required")
		return
	}

	comments, err := h.postService.AddComment(r.Context(), postID, userID, &req)
	if err != nil {
		if errors.Is(err, model.ErrPostNotFound) {
			httputil.WriteMsg(w, http.StatusNotFound, "Post not found")
			return
		}
		log.Printf("[ERROR] Add comment handler: user=%d post=%d err=%v", userID, postID, err)
		httputil.WriteServerError(w)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, comments)
}

// DeleteComment handles DELETE /api/posts/comment/{id}/{comment_id}.
// Comment owner only.
func (h *PostHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteMsg(w, http.StatusUnauthorized, "No token, authorization denied")
		return
	}

	postID, ok := h.postIDParam(w, r)
	if !ok {
		return
	}

	commentID, err := strconv.ParseInt(chi.URLParam(r, "comment_id"), 10, 64)
	if err != nil {
		httputil.WriteMsg(w, http.StatusNotFound, "Comment does not exist")
		return
	}

	comments, err := h.postService.DeleteComment(r.Context(), postID, commentID, userID)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrCommentNotFound):
			httputil.WriteMsg(w, http.StatusNotFound, "Comment does not exist")
		case errors.Is(err, model.ErrNotCommentOwner):
			httputil.WriteMsg(w, http.StatusUnauthorized, "User not authorized")
		default:
			log.Printf("[ERROR] Delete comment handler: user=%d comment=%d err=%v", userID, commentID, err)
			httputil.WriteServerError(w)
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, comments)
}

// postIDParam parses the {id} route parameter. A malformed ID is reported the
// same way as a missing post.
func (h *PostHandler) postIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	postID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.WriteMsg(w, http.StatusNotFound, "Post not found")
		return 0, false
	}
	return postID, true
}
