package handlers

import (
	"net/http"

	"buildsense/backend/services/inspector-service/internal/service"
)

// NewRoomSensorsHandler returns GET /api/rooms/sensors handler.
func NewRoomSensorsHandler(svc *service.InspectorService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := svc.CheckSensorConfig(r.Context(), r.URL.Query().Get("room"))
		if err != nil {
			writeFault(w, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}
