package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/paulkoehlerdev/VenueMap/pkg/libraries/metrics"
	"github.com/paulkoehlerdev/VenueMap/pkg/venuemap/application"
)

func MapTileRoute(mux *http.ServeMux, app application.Application) {
	mux.HandleFunc("GET /tiles/{z}/{x}/{y}", func(w http.ResponseWriter, req *http.Request) {
		metrics.TileRequestsTotal.Inc()
		start := time.Now()
		defer func() {
			metrics.TileDurationMs.Observe(float64(time.Since(start).Milliseconds()))
		}()

		z, err := strconv.ParseUint(req.PathValue("z"), 10, 32)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		x, err := strconv.ParseUint(req.PathValue("x"), 10, 32)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		y, err := strconv.ParseUint(strings.TrimSuffix(req.PathValue("y"), ".mvt"), 10, 32)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if z > 22 || x >= 1<<z || y >= 1<<z {
			http.Error(w, "tile coordinates out of range", http.StatusBadRequest)
			return
		}

		acceptGzip := strings.Contains(req.Header.Get("Accept-Encoding"), "gzip")

		tile, err := app.GetTile(req.Context(), uint32(x), uint32(y), uint32(z), acceptGzip)
		if errors.Is(err, application.ErrTilesDisabled) {
			http.NotFound(w, req)
			return
		}
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/vnd.mapbox-vector-tile")
		if acceptGzip {
			w.Header().Set("Content-Encoding", "gzip")
		}

		_, _ = w.Write(tile)
	})
}
