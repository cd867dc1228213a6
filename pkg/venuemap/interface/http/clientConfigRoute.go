package http

import (
	"net/http"

	"github.com/paulkoehlerdev/VenueMap/pkg/venuemap/application"
)

func ClientConfigRoute(mux *http.ServeMux, application application.Application) {
	mux.HandleFunc("GET /config.json", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, application.GetClientConfig(req.Context()))
	})
}
