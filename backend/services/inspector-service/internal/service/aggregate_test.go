package service

import (
	"testing"
	"time"

	"buildsense/backend/libs/sensorcfg"
	"buildsense/backend/services/inspector-service/internal/models"
)

func TestLabelForKnownTypes(t *testing.T) {
	types := sensorcfg.DefaultSensorTypes()

	cases := []struct {
		sensorType string
		value      float64
		want       string
	}{
		{"temperature", 23, "wasteful"},
		{"temperature", 17.5, "too cold"},
		{"temperature", 20, "comfortable"},
		{"co2", 1850, "poor air quality"},
		{"co2", 400, "good air quality"},
		{"humidity", 75, "too humid"},
		{"humidity", 20, "too dry"},
		{"humidity", 45, "normal"},
	}
	for _, tc := range cases {
		got := labelFor(tc.sensorType, tc.value, types[tc.sensorType])
		if got != tc.want {
			t.Fatalf("%s %v: got %q, want %q", tc.sensorType, tc.value, got, tc.want)
		}
	}
}

func TestLabelForUnknownTypeWithThresholds(t *testing.T) {
	high := 70.0
	noise := sensorcfg.SensorType{Unit: "dB", Thresholds: &sensorcfg.SensorThresholds{High: &high}}

	if got := labelFor("noise", 82, noise); got != "above threshold" {
		t.Fatalf("got %q", got)
	}
	if got := labelFor("noise", 40, noise); got != "normal" {
		t.Fatalf("got %q", got)
	}
}

func TestLabelForWithoutThresholds(t *testing.T) {
	if got := labelFor("presence", 1, sensorcfg.SensorType{Unit: "bool"}); got != "" {
		t.Fatalf("expected no label, got %q", got)
	}
}

func TestTypeNameFallsBackForUntypedKeys(t *testing.T) {
	snap, err := sensorcfg.Parse([]byte(`{"room_to_sensor_map": {}}`))
	if err != nil {
		t.Fatalf("fixture: %v", err)
	}

	// A typed mapping key wins outright.
	if got := typeName("co2", "", "value", snap); got != "co2" {
		t.Fatalf("got %q", got)
	}
	// "default"/"extra_N" keys carry no type: the request filter decides.
	if got := typeName("default", "temperature", "value", snap); got != "temperature" {
		t.Fatalf("got %q", got)
	}
	// Without a filter the series field name is the last resort.
	if got := typeName("extra_1", "", "co2", snap); got != "co2" {
		t.Fatalf("got %q", got)
	}
}

func TestAggregateBreaksTiesByRoomOrder(t *testing.T) {
	snap, err := sensorcfg.Parse([]byte(`{"room_to_sensor_map": {}}`))
	if err != nil {
		t.Fatalf("fixture: %v", err)
	}

	elements := []models.Element{
		{ID: "r1", Name: "First"},
		{ID: "r2", Name: "Second"},
	}
	bindings := []binding{
		{element: &elements[0], sensorType: "co2", sensorID: "s1"},
		{element: &elements[1], sensorType: "co2", sensorID: "s2"},
	}
	now := time.Now()
	readings := map[string]models.Reading{
		"s1": {SensorID: "s1", Value: 500, Time: now},
		"s2": {SensorID: "s2", Value: 500, Time: now},
	}

	res := aggregate(GoalMax, "whole building", "-1h", "co2", elements, bindings, readings, snap)
	if res.Extreme == nil || res.Extreme.ElementID != "r1" {
		t.Fatalf("tie not broken by first-encountered room: %+v", res.Extreme)
	}

	res = aggregate(GoalMin, "whole building", "-1h", "co2", elements, bindings, readings, snap)
	if res.Extreme == nil || res.Extreme.ElementID != "r1" {
		t.Fatalf("min tie not broken by first-encountered room: %+v", res.Extreme)
	}
}

func TestAggregateEmptyWindowKeepsCounts(t *testing.T) {
	snap, err := sensorcfg.Parse([]byte(`{"room_to_sensor_map": {}}`))
	if err != nil {
		t.Fatalf("fixture: %v", err)
	}

	elements := []models.Element{{ID: "r1", Name: "First"}}
	bindings := []binding{{element: &elements[0], sensorType: "co2", sensorID: "s1"}}

	res := aggregate(GoalAvg, "whole building", "-1h", "", elements, bindings, nil, snap)
	if res.Average != nil {
		t.Fatalf("average over nothing must be absent: %v", *res.Average)
	}
	if res.Configured != 1 || res.Contributing != 0 {
		t.Fatalf("coverage counts wrong: %+v", res)
	}
}
