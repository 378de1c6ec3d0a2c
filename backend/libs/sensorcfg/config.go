package sensorcfg

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Load failure classes, wrapped with detail by the resolver.
var (
	ErrNotFound  = errors.New("sensorcfg: config not found")
	ErrMalformed = errors.New("sensorcfg: config malformed")
)

// Snapshot is one immutable, fully normalized view of the sensor config.
type Snapshot struct {
	// RoomSensors maps element id -> sensor type -> sensor id.
	RoomSensors map[string]map[string]string
	// Types maps sensor type -> unit and thresholds.
	Types map[string]SensorType
	// Path is the file the snapshot was read from.
	Path string
}

// SensorsFor returns the configured sensors for an element id; nil when none.
func (s *Snapshot) SensorsFor(elementID string) map[string]string {
	return s.RoomSensors[elementID]
}

// TypeInfo returns the type table entry for a sensor type name, matching
// case-insensitively.
func (s *Snapshot) TypeInfo(sensorType string) (SensorType, bool) {
	if t, ok := s.Types[sensorType]; ok {
		return t, true
	}
	for name, t := range s.Types {
		if strings.EqualFold(name, sensorType) {
			return t, true
		}
	}
	return SensorType{}, false
}

type rawConfig struct {
	RoomToSensorMap map[string]mappingEntry `json:"room_to_sensor_map"`
	SensorTypes     map[string]SensorType   `json:"sensor_types"`
}

// mappingEntry accepts the three historical shapes of a room mapping:
// a single sensor id, a list of ids, or a type-to-id table.
type mappingEntry struct {
	sensors map[string]string
}

func (e *mappingEntry) UnmarshalJSON(data []byte) error {
	trim := bytes.TrimSpace(data)
	if len(trim) == 0 {
		return errors.New("empty mapping entry")
	}

	switch trim[0] {
	case '"':
		var single string
		if err := json.Unmarshal(trim, &single); err != nil {
			return err
		}
		e.sensors = map[string]string{"default": single}
	case '[':
		var list []string
		if err := json.Unmarshal(trim, &list); err != nil {
			return err
		}
		e.sensors = make(map[string]string, len(list))
		for i, id := range list {
			if i == 0 {
				e.sensors["default"] = id
				continue
			}
			e.sensors[fmt.Sprintf("extra_%d", i)] = id
		}
	case '{':
		var table map[string]string
		if err := json.Unmarshal(trim, &table); err != nil {
			return err
		}
		e.sensors = table
	default:
		return fmt.Errorf("unsupported mapping shape: %.40s", trim)
	}
	return nil
}

// Parse decodes and normalizes a sensor config document.
func Parse(data []byte) (*Snapshot, error) {
	var raw rawConfig
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrMalformed, err)
	}
	if raw.RoomToSensorMap == nil {
		return nil, fmt.Errorf(`%w: missing "room_to_sensor_map" key`, ErrMalformed)
	}

	snap := &Snapshot{
		RoomSensors: make(map[string]map[string]string, len(raw.RoomToSensorMap)),
		Types:       DefaultSensorTypes(),
	}
	for room, entry := range raw.RoomToSensorMap {
		snap.RoomSensors[room] = entry.sensors
	}
	for name, t := range raw.SensorTypes {
		snap.Types[name] = t
	}
	return snap, nil
}
