package http

import (
	"encoding/json"
	"net/http"

	"github.com/paulkoehlerdev/VenueMap/pkg/venuemap/application"
)

func MapStyleRoute(mux *http.ServeMux, application application.Application) {
	mux.HandleFunc("GET /style.json", func(w http.ResponseWriter, req *http.Request) {
		style, err := application.GetMapStyle(req.Context())
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		writeJSON(w, style)
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(data)
}
