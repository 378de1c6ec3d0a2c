package sensorcfg

// SensorThresholds bounds the acceptable band for a sensor type.
type SensorThresholds struct {
	Low  *float64 `json:"low,omitempty"`
	High *float64 `json:"high,omitempty"`
}

// SensorType describes the unit and acceptable band for one reading type.
type SensorType struct {
	Unit       string            `json:"unit,omitempty"`
	Thresholds *SensorThresholds `json:"thresholds,omitempty"`
}

func f(v float64) *float64 { return &v }

// DefaultSensorTypes returns the built-in type table. Config entries under
// "sensor_types" override per type.
func DefaultSensorTypes() map[string]SensorType {
	return map[string]SensorType{
		"temperature": {Unit: "°C", Thresholds: &SensorThresholds{Low: f(19), High: f(21)}},
		"co2":         {Unit: "ppm", Thresholds: &SensorThresholds{High: f(1000)}},
		"humidity":    {Unit: "%", Thresholds: &SensorThresholds{Low: f(30), High: f(60)}},
	}
}
