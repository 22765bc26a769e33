package webapp

import (
	"fmt"
	"net/http"
)

var errorTitles = map[int]string{
	http.StatusBadRequest:          "Bad Request",
	http.StatusNotFound:            "Not Found",
	http.StatusInternalServerError: "Internal Server Error",
}

func (webapp *WebApp) renderError(w http.ResponseWriter, code int, message string) {
	title, ok := errorTitles[code]
	if !ok {
		title = "Error"
	}
	if message == "" {
		message = title
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)
	fmt.Fprintf(w, "%d %s: %s\n", code, title, message)
}

func (webapp *WebApp) notFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		webapp.renderError(w, http.StatusNotFound, "no such page")
	}
}
