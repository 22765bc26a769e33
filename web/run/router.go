package webapp

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func router(webapp *WebApp) http.Handler {
	r := chi.NewRouter()

	r.Get("/", webapp.startPage())
	r.Get("/report", webapp.report())
	r.Get("/healthz", webapp.healthz())

	r.NotFound(webapp.notFoundHandler())

	return r
}
