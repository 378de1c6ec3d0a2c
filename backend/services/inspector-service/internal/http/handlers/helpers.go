package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"buildsense/backend/services/inspector-service/internal/fault"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

// writeFault maps a classified error onto the wire shape
// {"error": {"kind": ..., "message": ...}}.
func writeFault(w http.ResponseWriter, err error) {
	kind := fault.KindOf(err)
	message := err.Error()
	var fe *fault.Error
	if errors.As(err, &fe) {
		message = fe.Message
	}
	if kind == "" {
		kind = "internal"
	}
	writeJSON(w, statusFor(kind), map[string]interface{}{
		"error": map[string]string{
			"kind":    string(kind),
			"message": message,
		},
	})
}

func statusFor(kind fault.Kind) int {
	switch kind {
	case fault.KindInvalidInput:
		return http.StatusBadRequest
	case fault.KindRoomNotFound:
		return http.StatusNotFound
	case fault.KindNoSensorsConfigured:
		return http.StatusUnprocessableEntity
	case fault.KindDependencyUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
