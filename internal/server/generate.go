package server

import (
	"net/http"
	"net/url"
)

const passwordReadyMessage = "Password ready"

func (h *handlers) generate(w http.ResponseWriter, r *http.Request) {
	domain := r.URL.Query().Get("domain")
	if domain == "" {
		httpError(w, http.StatusBadRequest, "domain is required")
		return
	}

	password := h.generator.Generate(domain)

	message := passwordReadyMessage
	copied := h.clipboard.Copy(password)
	if !copied {
		// The user still needs the password, so without a working
		// clipboard it is shown in the status message instead.
		message = password
	}

	// The generated password is not kept anywhere else.
	http.Redirect(w, r, h.rootURL+"/?msg="+url.QueryEscape(message),
		http.StatusSeeOther)
}
