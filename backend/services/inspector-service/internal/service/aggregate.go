package service

import (
	"strings"

	"buildsense/backend/libs/sensorcfg"
	"buildsense/backend/services/inspector-service/internal/models"
)

// aggregate folds the fetched readings into the requested answer shape.
// Configured sensors with no reading in the window are counted but excluded
// from the values, so a silent sensor degrades the answer instead of
// failing it.
func aggregate(goal, zone, rangeStart, requestedType string, elements []models.Element, bindings []binding, readings map[string]models.Reading, snap *sensorcfg.Snapshot) *models.ZoneMetricsResult {
	res := &models.ZoneMetricsResult{
		Zone:       zone,
		Goal:       goal,
		Range:      rangeStart,
		Rooms:      len(elements),
		Configured: len(bindings),
	}

	values := make([]models.SensorValue, 0, len(bindings))
	for _, b := range bindings {
		reading, ok := readings[b.sensorID]
		if !ok {
			continue
		}

		sv := models.SensorValue{
			ElementID:   b.element.ID,
			ElementName: b.element.Name,
			Type:        b.sensorType,
			SensorID:    b.sensorID,
			Value:       reading.Value,
			Time:        reading.Time,
		}
		effective := typeName(b.sensorType, requestedType, reading.Field, snap)
		if t, ok := snap.TypeInfo(effective); ok {
			sv.Unit = t.Unit
			sv.Label = labelFor(effective, reading.Value, t)
		}
		values = append(values, sv)
	}
	res.Contributing = len(values)

	switch goal {
	case GoalReport:
		res.Values = values
	case GoalMax, GoalMin:
		if len(values) == 0 {
			break
		}
		best := 0
		for i := 1; i < len(values); i++ {
			if goal == GoalMax && values[i].Value > values[best].Value {
				best = i
			}
			if goal == GoalMin && values[i].Value < values[best].Value {
				best = i
			}
		}
		extreme := values[best]
		res.Extreme = &extreme
		res.Unit = extreme.Unit
	case GoalAvg:
		if len(values) == 0 {
			break
		}
		sum := 0.0
		for _, v := range values {
			sum += v.Value
		}
		avg := sum / float64(len(values))
		res.Average = &avg
		res.Unit = values[0].Unit
	}
	return res
}

// typeName resolves the effective sensor type for unit and threshold lookup.
// Mapping keys like "default" or "extra_1" carry no type, so fall back to
// the requested type filter, then to the series field name.
func typeName(bindingType, requested, field string, snap *sensorcfg.Snapshot) string {
	if _, ok := snap.TypeInfo(bindingType); ok {
		return bindingType
	}
	if requested = strings.TrimSpace(requested); requested != "" {
		return requested
	}
	return field
}

// labelFor classifies a value against the thresholds of its type.
func labelFor(sensorType string, value float64, t sensorcfg.SensorType) string {
	th := t.Thresholds
	if th == nil {
		return ""
	}
	above := th.High != nil && value > *th.High
	below := th.Low != nil && value < *th.Low

	switch strings.ToLower(sensorType) {
	case "temperature":
		switch {
		case above:
			return "wasteful"
		case below:
			return "too cold"
		}
		return "comfortable"
	case "co2":
		if above {
			return "poor air quality"
		}
		return "good air quality"
	case "humidity":
		switch {
		case above:
			return "too humid"
		case below:
			return "too dry"
		}
		return "normal"
	default:
		switch {
		case above:
			return "above threshold"
		case below:
			return "below threshold"
		}
		return "normal"
	}
}
