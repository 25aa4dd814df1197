package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/founditapp/foundit/internal/lifecycle"
	"github.com/founditapp/foundit/internal/model"
	"github.com/founditapp/foundit/internal/photo"
	"github.com/founditapp/foundit/internal/store"
)

// maxUploadSize caps multipart submissions (photo included) at 5 MB.
const maxUploadSize = 5 << 20

// ItemsHandler handles found-item endpoints, public and admin.
type ItemsHandler struct {
	Store  store.Store
	Engine *lifecycle.Engine
	Photos *photo.Store
}

// PublicList handles GET /api/items: approved items only, filterable by
// category and search, newest found first by default.
func (h *ItemsHandler) PublicList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	items, err := h.Store.Items().List(r.Context(), store.ItemFilter{
		Status:   model.ItemStatusApproved,
		Category: q.Get("category"),
		Search:   q.Get("search"),
		Sort:     q.Get("sort"),
	})
	if err != nil {
		domainError(w, err, "Items")
		return
	}
	if items == nil {
		items = []model.Item{}
	}
	jsonResponse(w, http.StatusOK, items)
}

// Get handles GET /api/items/{id}.
func (h *ItemsHandler) Get(w http.ResponseWriter, r *http.Request) {
	item, err := h.Store.Items().Get(r.Context(), r.PathValue("id"))
	if err != nil {
		domainError(w, err, "Item")
		return
	}
	if item == nil {
		jsonError(w, http.StatusNotFound, "Item not found")
		return
	}
	jsonResponse(w, http.StatusOK, item)
}

// Submit handles POST /api/items: a multipart form with an optional photo.
func (h *ItemsHandler) Submit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		jsonError(w, http.StatusBadRequest, "file too large or invalid multipart form")
		return
	}

	sub := &model.ItemSubmission{
		Title:       r.FormValue("title"),
		Category:    r.FormValue("category"),
		Location:    r.FormValue("location"),
		DateFound:   r.FormValue("date_found"),
		Description: r.FormValue("description"),
		FinderName:  r.FormValue("finder_name"),
		FinderEmail: r.FormValue("finder_email"),
		FinderPhone: r.FormValue("finder_phone"),
	}
	// Validate before touching the photo so a rejected submission leaves
	// nothing on disk.
	if err := sub.Validate(); err != nil {
		domainError(w, err, "Item")
		return
	}

	file, _, err := r.FormFile("photo")
	switch {
	case err == nil:
		defer file.Close()
		url, err := h.Photos.Save(file)
		if err != nil {
			jsonError(w, http.StatusBadRequest, err.Error())
			return
		}
		sub.Photo = url
	case errors.Is(err, http.ErrMissingFile):
		// Photo is optional.
	default:
		jsonError(w, http.StatusBadRequest, "invalid photo upload")
		return
	}

	item, err := h.Engine.SubmitItem(r.Context(), sub)
	if err != nil {
		if sub.Photo != "" {
			if rmErr := h.Photos.Remove(sub.Photo); rmErr != nil {
				slog.Error("failed to remove orphaned photo", "photo", sub.Photo, "error", rmErr)
			}
		}
		domainError(w, err, "Item")
		return
	}

	jsonResponse(w, http.StatusCreated, map[string]string{
		"message": "Item submitted successfully! It will appear after admin approval.",
		"id":      item.ID,
	})
}

// AdminList handles GET /api/admin/items: all items, filterable by status,
// newest submissions first.
func (h *ItemsHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	items, err := h.Store.Items().List(r.Context(), store.ItemFilter{
		Status: r.URL.Query().Get("status"),
		Sort:   store.SortCreatedAt,
	})
	if err != nil {
		domainError(w, err, "Items")
		return
	}
	if items == nil {
		items = []model.Item{}
	}
	jsonResponse(w, http.StatusOK, items)
}

type updateStatusRequest struct {
	Status    string `json:"status"`
	AdminName string `json:"admin_name"`
}

// UpdateStatus handles PATCH /api/admin/items/{id}.
func (h *ItemsHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req updateStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if _, err := h.Engine.UpdateItemStatus(r.Context(), r.PathValue("id"), req.Status, req.AdminName); err != nil {
		domainError(w, err, "Item")
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "Item status updated successfully"})
}

// Delete handles DELETE /api/admin/items/{id}: removes the item, its
// claims and its photo.
func (h *ItemsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Engine.DeleteItem(r.Context(), r.PathValue("id")); err != nil {
		domainError(w, err, "Item")
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "Item deleted successfully"})
}
