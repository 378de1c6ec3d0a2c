package handlers

import (
	"net/http"

	"buildsense/backend/services/inspector-service/internal/service"
)

// NewZoneMetricsHandler returns GET /api/zones/metrics handler.
func NewZoneMetricsHandler(svc *service.InspectorService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		result, err := svc.InspectZoneMetrics(r.Context(), service.ZoneMetricsInput{
			Zone:       q.Get("zone"),
			SensorType: q.Get("type"),
			Goal:       q.Get("goal"),
			Range:      q.Get("range"),
		})
		if err != nil {
			writeFault(w, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}
