package server

import (
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type handlers struct {
	store           Store
	generator       PasswordGenerator
	clipboard       Clipboard
	searcher        ImageSearcher
	logger          Logger
	rootURL         string
	indexTemplate   *template.Template
	aboutTemplate   *template.Template
	addTemplate     *template.Template
	galleryTemplate *template.Template
}

func newHandler(settings Settings) http.Handler {
	h := &handlers{
		store:           settings.Store,
		generator:       settings.Generator,
		clipboard:       settings.Clipboard,
		searcher:        settings.Searcher,
		logger:          settings.Logger,
		rootURL:         settings.RootURL,
		indexTemplate:   template.Must(template.ParseFiles(settings.UIDir + "/index.html")),
		aboutTemplate:   template.Must(template.ParseFiles(settings.UIDir + "/about.html")),
		addTemplate:     template.Must(template.ParseFiles(settings.UIDir + "/add.html")),
		galleryTemplate: template.Must(template.ParseFiles(settings.UIDir + "/pick_image.html")),
	}

	router := chi.NewRouter()

	router.Use(middleware.Logger, middleware.CleanPath)
	router.Use(secureHeaders)

	router.Get(settings.RootURL+"/", h.index)
	router.Get(settings.RootURL+"/about", h.about)
	router.Get(settings.RootURL+"/add", h.add)
	router.Get(settings.RootURL+"/generate", h.generate)
	router.Get(settings.RootURL+"/pick_image", h.pickImage)
	router.Get(settings.RootURL+"/update", h.update)
	router.Post(settings.RootURL+"/update", h.update)

	// static assets (stylesheet, icons)
	fileServer(router, settings.RootURL+"/static", http.Dir(settings.UIDir+"/static"))

	return router
}

// secureHeaders sets the security headers on every response.
func secureHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		headers := w.Header()
		headers.Set("X-Frame-Options", "DENY")
		headers.Set("X-XSS-Protection", "1; mode=block")
		headers.Set("Content-Security-Policy", "default-src 'self'")
		next.ServeHTTP(w, r)
	})
}
