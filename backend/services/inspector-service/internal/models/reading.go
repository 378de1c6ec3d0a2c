package models

import "time"

// Reading is the latest observed value for one sensor series.
type Reading struct {
	SensorID string    `json:"sensor_id"`
	Field    string    `json:"field"`
	Value    float64   `json:"value"`
	Time     time.Time `json:"time"`
}

// SensorCheckResult reports the sensors configured for one resolved room.
type SensorCheckResult struct {
	Element   Element           `json:"element"`
	Sensors   map[string]string `json:"sensors"`
	Ambiguous bool              `json:"ambiguous,omitempty"`
	Matches   int               `json:"matches"`
}

// SensorValue is one sensor's contribution to a zone inspection.
type SensorValue struct {
	ElementID   string    `json:"element_id"`
	ElementName string    `json:"element_name,omitempty"`
	Type        string    `json:"type"`
	SensorID    string    `json:"sensor_id"`
	Value       float64   `json:"value"`
	Unit        string    `json:"unit,omitempty"`
	Label       string    `json:"label,omitempty"`
	Time        time.Time `json:"time"`
}

// ZoneMetricsResult is the aggregated answer for one zone inspection.
type ZoneMetricsResult struct {
	Zone         string        `json:"zone"`
	Goal         string        `json:"goal"`
	Range        string        `json:"range"`
	Rooms        int           `json:"rooms"`
	Configured   int           `json:"configured_sensors"`
	Contributing int           `json:"contributing_sensors"`
	Values       []SensorValue `json:"values,omitempty"`
	Extreme      *SensorValue  `json:"extreme,omitempty"`
	Average      *float64      `json:"average,omitempty"`
	Unit         string        `json:"unit,omitempty"`
}
