package server

import (
	"net/http"

	"github.com/pwdhash/vault/internal/vault"
)

func (h *handlers) update(w http.ResponseWriter, r *http.Request) {
	err := r.ParseForm()
	if err != nil {
		httpError(w, http.StatusBadRequest, "cannot parse form: "+err.Error())
		return
	}

	ctx := r.Context()
	deleteName := r.Form.Get("delete")
	name := r.Form.Get("name")

	switch {
	case deleteName != "":
		err = h.store.DeleteByName(ctx, deleteName)
		if err != nil {
			h.logger.Error("deleting key: " + err.Error())
			httpError(w, http.StatusInternalServerError, "cannot delete key")
			return
		}
		h.logger.Info("deleted key " + deleteName)
	case name != "":
		key := vault.Key{
			Name:   name,
			Domain: r.Form.Get("domain"),
			Image:  r.Form.Get("image"),
		}

		_, found, err := h.store.FindByName(ctx, name)
		if err != nil {
			h.logger.Error("finding key: " + err.Error())
			httpError(w, http.StatusInternalServerError, "cannot find key")
			return
		}

		err = h.store.Upsert(ctx, key)
		if err != nil {
			h.logger.Error("upserting key: " + err.Error())
			httpError(w, http.StatusInternalServerError, "cannot save key")
			return
		}

		if found {
			h.logger.Info("updated key " + name)
		} else {
			h.logger.Info("created key " + name)
		}
	}

	http.Redirect(w, r, h.rootURL+"/", http.StatusSeeOther)
}
