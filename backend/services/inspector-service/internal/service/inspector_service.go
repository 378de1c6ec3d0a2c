package service

import (
	"context"
	"errors"
	"sort"
	"strings"

	"go.uber.org/zap"

	"buildsense/backend/libs/sensorcfg"
	"buildsense/backend/services/inspector-service/internal/fault"
	"buildsense/backend/services/inspector-service/internal/metrics"
	"buildsense/backend/services/inspector-service/internal/models"
	"buildsense/backend/services/inspector-service/internal/repository"
)

// Aggregation goals.
const (
	GoalReport = "report"
	GoalMax    = "max"
	GoalMin    = "min"
	GoalAvg    = "avg"
)

// TopologyStore answers room queries against the graph store.
type TopologyStore interface {
	QueryElements(ctx context.Context, filter repository.ElementFilter) ([]models.Element, error)
}

// ReadingsStore answers batched latest-value queries.
type ReadingsStore interface {
	LatestReadings(ctx context.Context, sensorIDs []string, rangeStart string) (map[string]models.Reading, error)
}

// ConfigSource yields the sensor mapping snapshot.
type ConfigSource interface {
	Load() (*sensorcfg.Snapshot, error)
}

// InspectorService ties topology, sensor mapping and readings together.
type InspectorService struct {
	topology TopologyStore
	readings ReadingsStore
	config   ConfigSource
	logger   *zap.Logger
}

// NewInspectorService builds service. A nil readings store marks the
// time-series side as unavailable; zone inspections then fail cleanly.
func NewInspectorService(topology TopologyStore, readings ReadingsStore, config ConfigSource, logger *zap.Logger) *InspectorService {
	return &InspectorService{
		topology: topology,
		readings: readings,
		config:   config,
		logger:   logger,
	}
}

// TopologyQuery holds the optional room filters.
type TopologyQuery struct {
	Category     string
	Floor        string
	NameContains string
}

// QueryTopology lists the rooms matching the filters in one round trip.
func (s *InspectorService) QueryTopology(ctx context.Context, q TopologyQuery) (*models.TopologyResult, error) {
	elements, err := s.topology.QueryElements(ctx, repository.ElementFilter{
		Category:     q.Category,
		Floor:        q.Floor,
		NameContains: q.NameContains,
	})
	if err != nil {
		return nil, err
	}
	return &models.TopologyResult{Count: len(elements), Items: elements}, nil
}

// CheckSensorConfig resolves a room by name and reports its configured
// sensors. Several name matches resolve to the first with an ambiguity flag;
// a room with no mapping entry reports an empty sensor set.
func (s *InspectorService) CheckSensorConfig(ctx context.Context, roomName string) (*models.SensorCheckResult, error) {
	roomName = strings.TrimSpace(roomName)
	if roomName == "" {
		return nil, fault.New(fault.KindInvalidInput, "room name is required")
	}

	snap, err := s.config.Load()
	if err != nil {
		return nil, classifyConfigErr(err)
	}

	elements, err := s.topology.QueryElements(ctx, repository.ElementFilter{NameContains: roomName})
	if err != nil {
		return nil, err
	}
	if len(elements) == 0 {
		return nil, fault.Newf(fault.KindRoomNotFound, "no room matches %q", roomName)
	}

	element := elements[0]
	sensors := snap.SensorsFor(element.ID)
	if sensors == nil {
		sensors = map[string]string{}
	}
	return &models.SensorCheckResult{
		Element:   element,
		Sensors:   sensors,
		Ambiguous: len(elements) > 1,
		Matches:   len(elements),
	}, nil
}

// ZoneMetricsInput selects the zone, optional sensor type, goal and window.
type ZoneMetricsInput struct {
	Zone       string
	SensorType string
	Goal       string
	Range      string
}

// InspectZoneMetrics resolves a zone to rooms, collects their configured
// sensors, fetches the latest values in one batched query and aggregates
// them per the requested goal.
func (s *InspectorService) InspectZoneMetrics(ctx context.Context, in ZoneMetricsInput) (*models.ZoneMetricsResult, error) {
	if s.readings == nil {
		return nil, fault.New(fault.KindDependencyUnavailable, "time-series store is not configured")
	}

	goal := strings.ToLower(strings.TrimSpace(in.Goal))
	if goal == "" {
		goal = GoalReport
	}
	switch goal {
	case GoalReport, GoalMax, GoalMin, GoalAvg:
	default:
		return nil, fault.Newf(fault.KindInvalidInput, "unknown goal %q", in.Goal)
	}

	rangeStart, err := repository.NormalizeRange(in.Range)
	if err != nil {
		return nil, err
	}

	snap, err := s.config.Load()
	if err != nil {
		return nil, classifyConfigErr(err)
	}

	filter := repository.ElementFilter{}
	if !isWholeBuilding(in.Zone) {
		filter.Zone = in.Zone
	}
	elements, err := s.topology.QueryElements(ctx, filter)
	if err != nil {
		return nil, err
	}
	if len(elements) == 0 {
		return nil, fault.Newf(fault.KindRoomNotFound, "no rooms match zone %q", in.Zone)
	}

	bindings, sensorIDs := collectBindings(elements, snap, in.SensorType)
	if len(bindings) == 0 {
		return nil, fault.Newf(fault.KindNoSensorsConfigured, "no sensors configured in zone %q", zoneLabel(in.Zone))
	}

	readings, err := s.readings.LatestReadings(ctx, sensorIDs, rangeStart)
	if err != nil {
		return nil, err
	}

	metrics.ZoneInspections.WithLabelValues(goal).Inc()
	return aggregate(goal, zoneLabel(in.Zone), rangeStart, in.SensorType, elements, bindings, readings, snap), nil
}

// classifyConfigErr maps sensor config load failures onto the fault taxonomy.
func classifyConfigErr(err error) error {
	switch {
	case errors.Is(err, sensorcfg.ErrNotFound):
		return fault.Wrap(fault.KindConfigNotFound, err, err.Error())
	case errors.Is(err, sensorcfg.ErrMalformed):
		return fault.Wrap(fault.KindConfigMalformed, err, err.Error())
	}
	return err
}

// wholeBuildingZones are the literals that widen a zone to every room.
var wholeBuildingZones = map[string]bool{
	"":               true,
	"all":            true,
	"building":       true,
	"whole building": true,
	"everywhere":     true,
}

func isWholeBuilding(zone string) bool {
	return wholeBuildingZones[strings.ToLower(strings.TrimSpace(zone))]
}

func zoneLabel(zone string) string {
	if isWholeBuilding(zone) {
		return "whole building"
	}
	return strings.TrimSpace(zone)
}

type binding struct {
	element    *models.Element
	sensorType string
	sensorID   string
}

// collectBindings flattens the configured sensors of the given rooms in room
// order, optionally narrowed to one sensor type. Type keys inside a room are
// visited sorted, keeping the order deterministic.
func collectBindings(elements []models.Element, snap *sensorcfg.Snapshot, sensorType string) ([]binding, []string) {
	wanted := strings.ToLower(strings.TrimSpace(sensorType))

	var bindings []binding
	var ids []string
	seen := make(map[string]bool)

	for i := range elements {
		sensors := snap.SensorsFor(elements[i].ID)
		if len(sensors) == 0 {
			continue
		}
		types := make([]string, 0, len(sensors))
		for t := range sensors {
			types = append(types, t)
		}
		sort.Strings(types)

		for _, t := range types {
			if wanted != "" && strings.ToLower(t) != wanted {
				continue
			}
			bindings = append(bindings, binding{element: &elements[i], sensorType: t, sensorID: sensors[t]})
			if !seen[sensors[t]] {
				seen[sensors[t]] = true
				ids = append(ids, sensors[t])
			}
		}
	}
	return bindings, ids
}
