package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog-api/internal/utils"
	"github.com/MKhiriev/go-blog-api/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listBlogs(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.services.BlogService.ListBlogs(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, blogs, http.StatusOK)
}

func (h *Handler) getBlog(w http.ResponseWriter, r *http.Request) {
	blog, err := h.services.BlogService.GetBlog(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, blog, http.StatusOK)
}

func (h *Handler) createBlog(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoIdentity)
		return
	}

	var req models.BlogRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	blog, err := h.services.BlogService.CreateBlog(r.Context(), identity, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, blog, http.StatusCreated)
}

func (h *Handler) updateBlog(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoIdentity)
		return
	}

	var req models.BlogRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	blog, err := h.services.BlogService.UpdateBlog(r.Context(), identity, chi.URLParam(r, "id"), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, blog, http.StatusOK)
}

func (h *Handler) deleteBlog(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoIdentity)
		return
	}

	if err := h.services.BlogService.DeleteBlog(r.Context(), identity, chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteMessage(w, msgBlogRemoved, http.StatusOK)
}
