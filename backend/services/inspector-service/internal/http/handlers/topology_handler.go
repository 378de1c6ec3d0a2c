package handlers

import (
	"net/http"

	"buildsense/backend/services/inspector-service/internal/service"
)

// NewTopologyHandler returns GET /api/topology handler.
func NewTopologyHandler(svc *service.InspectorService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		result, err := svc.QueryTopology(r.Context(), service.TopologyQuery{
			Category:     q.Get("category"),
			Floor:        q.Get("floor"),
			NameContains: q.Get("name"),
		})
		if err != nil {
			writeFault(w, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}
