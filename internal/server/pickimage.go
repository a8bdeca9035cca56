package server

import (
	"net/http"
	"strconv"

	"github.com/pwdhash/vault/internal/models"
)

func (h *handlers) pickImage(w http.ResponseWriter, r *http.Request) {
	if h.searcher == nil {
		httpError(w, http.StatusServiceUnavailable,
			"image search is not configured")
		return
	}

	query := r.URL.Query().Get("query")
	if query == "" {
		httpError(w, http.StatusBadRequest, "query is required")
		return
	}

	start := 0
	startString := r.URL.Query().Get("start")
	if startString != "" {
		var err error
		start, err = strconv.Atoi(startString)
		if err != nil {
			httpError(w, http.StatusBadRequest,
				"start is not an integer: "+startString)
			return
		}
	}

	page, err := h.searcher.Page(r.Context(), query, start)
	if err != nil {
		h.logger.Error("searching images: " + err.Error())
		httpError(w, http.StatusInternalServerError, "image search failed")
		return
	}

	data := models.GalleryData{
		Query:     query,
		ImageURLs: page.ImageURLs,
		NextStart: page.NextStart,
		PrevStart: page.PrevStart,
		HasNext:   page.HasNext,
		HasPrev:   page.HasPrev,
	}
	err = h.galleryTemplate.ExecuteTemplate(w, "pick_image.html", data)
	if err != nil {
		httpError(w, http.StatusInternalServerError,
			"failed generating webpage: "+err.Error())
	}
}
