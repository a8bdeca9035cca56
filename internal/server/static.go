package server

import (
	"net/http"
)

func (h *handlers) about(w http.ResponseWriter, r *http.Request) {
	err := h.aboutTemplate.ExecuteTemplate(w, "about.html", nil)
	if err != nil {
		httpError(w, http.StatusInternalServerError,
			"failed generating webpage: "+err.Error())
	}
}

func (h *handlers) add(w http.ResponseWriter, r *http.Request) {
	err := h.addTemplate.ExecuteTemplate(w, "add.html", nil)
	if err != nil {
		httpError(w, http.StatusInternalServerError,
			"failed generating webpage: "+err.Error())
	}
}
