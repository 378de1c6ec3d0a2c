package httpserver

import "net/http"

// Routes groups handlers.
type Routes struct {
	Topology    http.HandlerFunc
	RoomSensors http.HandlerFunc
	ZoneMetrics http.HandlerFunc
	Health      http.HandlerFunc
	Metrics     http.Handler
}

// NewRouter registers endpoints.
func NewRouter(routes Routes) http.Handler {
	mux := http.NewServeMux()
	if routes.Topology != nil {
		mux.Handle("/api/topology", method(http.MethodGet, routes.Topology))
	}
	if routes.RoomSensors != nil {
		mux.Handle("/api/rooms/sensors", method(http.MethodGet, routes.RoomSensors))
	}
	if routes.ZoneMetrics != nil {
		mux.Handle("/api/zones/metrics", method(http.MethodGet, routes.ZoneMetrics))
	}
	if routes.Health != nil {
		mux.Handle("/health", method(http.MethodGet, routes.Health))
	}
	if routes.Metrics != nil {
		mux.Handle("/metrics", routes.Metrics)
	}
	return mux
}

func method(expected string, handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != expected {
			w.Header().Set("Allow", expected)
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		handler(w, r)
	}
}
