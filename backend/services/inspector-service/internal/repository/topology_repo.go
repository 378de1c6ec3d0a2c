package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	"buildsense/backend/services/inspector-service/internal/fault"
	"buildsense/backend/services/inspector-service/internal/metrics"
	"buildsense/backend/services/inspector-service/internal/models"
)

const defaultQueryTimeout = 10 * time.Second

// TopologyRepository reads building elements from the graph store.
type TopologyRepository struct {
	driver  neo4j.DriverWithContext
	logger  *zap.Logger
	timeout time.Duration
}

// NewTopologyRepository returns repository.
func NewTopologyRepository(driver neo4j.DriverWithContext, timeout time.Duration, logger *zap.Logger) *TopologyRepository {
	if timeout <= 0 {
		timeout = defaultQueryTimeout
	}
	return &TopologyRepository{driver: driver, logger: logger, timeout: timeout}
}

// QueryElements runs one topology query and maps the matched rooms.
func (r *TopologyRepository) QueryElements(ctx context.Context, filter ElementFilter) ([]models.Element, error) {
	query, err := BuildElementsQuery(filter)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	session := r.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	start := time.Now()
	records, err := neo4j.ExecuteRead(ctx, session, func(tx neo4j.ManagedTransaction) ([]*neo4j.Record, error) {
		res, err := tx.Run(ctx, query, nil)
		if err != nil {
			return nil, err
		}
		return res.Collect(ctx)
	})
	metrics.ObserveQuery("topology", time.Since(start), err)
	if err != nil {
		r.logger.Warn("topology query failed", zap.Error(err))
		return nil, classifyStoreErr(ctx, "topology", err)
	}

	elements := make([]models.Element, 0, len(records))
	for _, rec := range records {
		elements = append(elements, mapElement(rec))
	}
	return elements, nil
}

func mapElement(rec *neo4j.Record) models.Element {
	row := rec.AsMap()
	el := models.Element{
		ID:         stringVal(row, "id"),
		Name:       stringVal(row, "name"),
		LongName:   stringVal(row, "long_name"),
		GlobalID:   stringVal(row, "global_id"),
		Type:       stringVal(row, "type"),
		Floor:      stringVal(row, "floor"),
		CategoryIT: stringVal(row, "category_it"),
		CategoryEN: stringVal(row, "category_en"),
	}
	if v, ok := row["area"].(float64); ok {
		el.Area = &v
	}
	if v, ok := row["is_external"].(bool); ok {
		el.IsExternal = &v
	}
	// The property bag is stored as a JSON string on the node.
	if raw := stringVal(row, "properties"); raw != "" {
		var props map[string]interface{}
		if err := json.Unmarshal([]byte(raw), &props); err == nil {
			el.Properties = props
		}
	}
	return el
}

func stringVal(row map[string]interface{}, key string) string {
	if v, ok := row[key].(string); ok {
		return v
	}
	return ""
}

// classifyStoreErr wraps a store failure for the public boundary. Caller
// cancellation passes through untouched.
func classifyStoreErr(ctx context.Context, stage string, err error) error {
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded):
		return &fault.Error{Kind: fault.KindQueryExecution, Stage: stage, Message: "query timed out", Err: err}
	case errors.Is(err, context.Canceled):
		return err
	}
	return &fault.Error{Kind: fault.KindQueryExecution, Stage: stage, Message: err.Error(), Err: err}
}
