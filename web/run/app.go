package webapp

import (
	"fmt"

	"github.com/DeadSix27/dfind/app"
	"github.com/DeadSix27/dfind/models"
)

// WebApp serves the index over HTTP. It holds no state beyond the
// configuration; every request opens the database read-only.
type WebApp struct {
	Config   *models.Config
	Searcher *app.Searcher
}

func NewWebApp(cfg *models.Config) *WebApp {
	return &WebApp{
		Config:   cfg,
		Searcher: app.NewSearcher(cfg),
	}
}

func (wa *WebApp) GetListenAddr() string {
	port := wa.Config.Web.Port
	if port == 0 {
		port = 8080
	}
	return fmt.Sprintf(":%d", port)
}
