package server

import (
	"net/http"

	"github.com/pwdhash/vault/internal/models"
)

func (h *handlers) index(w http.ResponseWriter, r *http.Request) {
	// Prevent caching so vault changes always show up
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.Header().Set("Pragma", "no-cache")
	w.Header().Set("Expires", "0")

	message := r.URL.Query().Get("msg")
	if message == "" {
		// No password was just generated, so make sure none is
		// left over on the clipboard.
		h.clipboard.Clear()
	}

	keys, err := h.store.ListAll(r.Context())
	if err != nil {
		h.logger.Error("listing keys: " + err.Error())
		httpError(w, http.StatusInternalServerError, "cannot list keys")
		return
	}

	data := models.IndexData{
		Message: message,
		Keys:    make([]models.IndexRow, len(keys)),
	}
	for i, key := range keys {
		data.Keys[i] = models.IndexRow{
			Name:   key.Name,
			Domain: key.Domain,
			Image:  key.Image,
		}
	}

	err = h.indexTemplate.ExecuteTemplate(w, "index.html", data)
	if err != nil {
		httpError(w, http.StatusInternalServerError,
			"failed generating webpage: "+err.Error())
	}
}
