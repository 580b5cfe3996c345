package handler

import (
	"net/http"

	"github.com/adverra/backend/internal/domain"
	"github.com/adverra/backend/internal/service"
	"github.com/go-chi/chi/v5"
)

// ContentHandler handles the site content collections: announcements,
// blogs, testimonials, careers, event news, and newsletter subscribers.
type ContentHandler struct {
	content *service.ContentService
}

// NewContentHandler creates a new ContentHandler.
func NewContentHandler(content *service.ContentService) *ContentHandler {
	return &ContentHandler{content: content}
}

// ListAnnouncements handles GET /api/announcements.
func (h *ContentHandler) ListAnnouncements(w http.ResponseWriter, r *http.Request) {
	items, err := h.content.ListAnnouncements(r.Context())
	if err != nil {
		Error(w, err)
		return
	}
	Success(w, "announcements", items)
}

// CreateAnnouncement handles POST /api/announcements (admin).
func (h *ContentHandler) CreateAnnouncement(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateAnnouncementRequest
	if err := DecodeJSON(r, &req); err != nil {
		Error(w, err)
		return
	}

	item, err := h.content.CreateAnnouncement(r.Context(), &req)
	if err != nil {
		Error(w, err)
		return
	}
	JSON(w, http.StatusCreated, item)
}

// DeleteAnnouncement handles DELETE /api/announcements/{id} (admin).
func (h *ContentHandler) DeleteAnnouncement(w http.ResponseWriter, r *http.Request) {
	if err := h.content.DeleteAnnouncement(r.Context(), chi.URLParam(r, "id")); err != nil {
		Error(w, err)
		return
	}
	JSON(w, http.StatusOK, map[string]bool{"success": true})
}

// ListBlogs handles GET /api/blogs.
func (h *ContentHandler) ListBlogs(w http.ResponseWriter, r *http.Request) {
	items, err := h.content.ListBlogs(r.Context())
	if err != nil {
		Error(w, err)
		return
	}
	Success(w, "blogs", items)
}

// GetBlog handles GET /api/blogs/{id}.
func (h *ContentHandler) GetBlog(w http.ResponseWriter, r *http.Request) {
	item, err := h.content.GetBlog(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		Error(w, err)
		return
	}
	JSON(w, http.StatusOK, item)
}

// CreateBlog handles POST /api/blogs (admin).
func (h *ContentHandler) CreateBlog(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateBlogRequest
	if err := DecodeJSON(r, &req); err != nil {
		Error(w, err)
		return
	}

	item, err := h.content.CreateBlog(r.Context(), &req)
	if err != nil {
		Error(w, err)
		return
	}
	JSON(w, http.StatusCreated, item)
}

// DeleteBlog handles DELETE /api/blogs/{id} (admin).
func (h *ContentHandler) DeleteBlog(w http.ResponseWriter, r *http.Request) {
	if err := h.content.DeleteBlog(r.Context(), chi.URLParam(r, "id")); err != nil {
		Error(w, err)
		return
	}
	JSON(w, http.StatusOK, map[string]bool{"success": true})
}

// ListTestimonials handles GET /api/testimonials.
func (h *ContentHandler) ListTestimonials(w http.ResponseWriter, r *http.Request) {
	items, err := h.content.ListTestimonials(r.Context())
	if err != nil {
		Error(w, err)
		return
	}
	Success(w, "testimonials", items)
}

// CreateTestimonial handles POST /api/testimonials (admin).
func (h *ContentHandler) CreateTestimonial(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateTestimonialRequest
	if err := DecodeJSON(r, &req); err != nil {
		Error(w, err)
		return
	}

	item, err := h.content.CreateTestimonial(r.Context(), &req)
	if err != nil {
		Error(w, err)
		return
	}
	JSON(w, http.StatusCreated, item)
}

// DeleteTestimonial handles DELETE /api/testimonials/{id} (admin).
func (h *ContentHandler) DeleteTestimonial(w http.ResponseWriter, r *http.Request) {
	if err := h.content.DeleteTestimonial(r.Context(), chi.URLParam(r, "id")); err != nil {
		Error(w, err)
		return
	}
	JSON(w, http.StatusOK, map[string]bool{"success": true})
}

// ListCareers handles GET /api/careers.
func (h *ContentHandler) ListCareers(w http.ResponseWriter, r *http.Request) {
	items, err := h.content.ListCareers(r.Context())
	if err != nil {
		Error(w, err)
		return
	}
	Success(w, "careers", items)
}

// CreateCareer handles POST /api/careers (admin).
func (h *ContentHandler) CreateCareer(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateCareerRequest
	if err := DecodeJSON(r, &req); err != nil {
		Error(w, err)
		return
	}

	item, err := h.content.CreateCareer(r.Context(), &req)
	if err != nil {
		Error(w, err)
		return
	}
	JSON(w, http.StatusCreated, item)
}

// DeleteCareer handles DELETE /api/careers/{id} (admin).
func (h *ContentHandler) DeleteCareer(w http.ResponseWriter, r *http.Request) {
	if err := h.content.DeleteCareer(r.Context(), chi.URLParam(r, "id")); err != nil {
		Error(w, err)
		return
	}
	JSON(w, http.StatusOK, map[string]bool{"success": true})
}

// ListEventNews handles GET /api/event-news.
func (h *ContentHandler) ListEventNews(w http.ResponseWriter, r *http.Request) {
	items, err := h.content.ListEventNews(r.Context())
	if err != nil {
		Error(w, err)
		return
	}
	Success(w, "eventNews", items)
}

// CreateEventNews handles POST /api/event-news (admin).
func (h *ContentHandler) CreateEventNews(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateEventNewsRequest
	if err := DecodeJSON(r, &req); err != nil {
		Error(w, err)
		return
	}

	item, err := h.content.CreateEventNews(r.Context(), &req)
	if err != nil {
		Error(w, err)
		return
	}
	JSON(w, http.StatusCreated, item)
}

// DeleteEventNews handles DELETE /api/event-news/{id} (admin).
func (h *ContentHandler) DeleteEventNews(w http.ResponseWriter, r *http.Request) {
	if err := h.content.DeleteEventNews(r.Context(), chi.URLParam(r, "id")); err != nil {
		Error(w, err)
		return
	}
	JSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Subscribe handles POST /api/subscribers (public newsletter signup).
func (h *ContentHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req domain.SubscribeRequest
	if err := DecodeJSON(r, &req); err != nil {
		Error(w, err)
		return
	}

	sub, err := h.content.Subscribe(r.Context(), &req)
	if err != nil {
		Error(w, err)
		return
	}
	JSON(w, http.StatusCreated, sub)
}

// ListSubscribers handles GET /api/subscribers (admin).
func (h *ContentHandler) ListSubscribers(w http.ResponseWriter, r *http.Request) {
	items, err := h.content.ListSubscribers(r.Context())
	if err != nil {
		Error(w, err)
		return
	}
	Success(w, "subscribers", items)
}

// DeleteSubscriber handles DELETE /api/subscribers/{id} (admin).
func (h *ContentHandler) DeleteSubscriber(w http.ResponseWriter, r *http.Request) {
	if err := h.content.DeleteSubscriber(r.Context(), chi.URLParam(r, "id")); err != nil {
		Error(w, err)
		return
	}
	JSON(w, http.StatusOK, map[string]bool{"success": true})
}
