package webapp

import (
	"fmt"
	"net/http"

	"github.com/bkinbkin/MinecraftStatFileAnalyzer/models"
)

// WebApp serves the report for one invocation's in-memory record set. The
// records are built once at startup and never mutated afterwards.
type WebApp struct {
	AppConfig *models.AppConfig
	Records   []models.FlatRecord
}

func (webapp *WebApp) GetListenAddr() string {
	port := 8080
	if webapp.AppConfig != nil && webapp.AppConfig.Server.Port > 0 {
		port = webapp.AppConfig.Server.Port
	}
	return fmt.Sprintf(":%d", port)
}

func (webapp *WebApp) GetRouter() http.Handler {
	return router(webapp)
}

func (webapp *WebApp) defaultStat() string {
	if webapp.AppConfig != nil {
		return webapp.AppConfig.Report.TargetStat
	}
	return ""
}

func (webapp *WebApp) groupLimit() int {
	if webapp.AppConfig != nil {
		return webapp.AppConfig.Report.GroupLimit
	}
	return 0
}
