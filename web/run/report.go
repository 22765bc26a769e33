package webapp

import (
	"fmt"
	"log"
	"net/http"

	"github.com/bkinbkin/MinecraftStatFileAnalyzer/app"
)

func (webapp *WebApp) startPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprintln(w, "Minecraft stat file analyzer")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "%d flat records loaded\n", len(webapp.Records))
		fmt.Fprintf(w, "Default stat key: %s\n", webapp.defaultStat())
		fmt.Fprintln(w)
		fmt.Fprintln(w, "GET /report            report for the default stat key")
		fmt.Fprintln(w, "GET /report?stat=...   report for another stat key")
	}
}

func (webapp *WebApp) report() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stat := r.URL.Query().Get("stat")
		if stat == "" {
			stat = webapp.defaultStat()
		}
		if stat == "" {
			webapp.renderError(w, http.StatusBadRequest, "no stat key configured or given")
			return
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		total := app.WriteReport(w, webapp.Records, app.ReportOptions{
			TargetStat: stat,
			GroupLimit: webapp.groupLimit(),
		})
		log.Printf("Report for %q served, %d matching records", stat, total)
	}
}

func (webapp *WebApp) healthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "ok")
	}
}
