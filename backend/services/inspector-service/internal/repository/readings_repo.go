package repository

import (
	"context"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"go.uber.org/zap"

	"buildsense/backend/services/inspector-service/internal/metrics"
	"buildsense/backend/services/inspector-service/internal/models"
)

// ReadingsRepository reads latest sensor values from the time-series store.
type ReadingsRepository struct {
	queryAPI api.QueryAPI
	bucket   string
	logger   *zap.Logger
	timeout  time.Duration
}

// NewReadingsRepository returns repository bound to one org and bucket.
func NewReadingsRepository(client influxdb2.Client, org, bucket string, timeout time.Duration, logger *zap.Logger) *ReadingsRepository {
	if timeout <= 0 {
		timeout = defaultQueryTimeout
	}
	return &ReadingsRepository{
		queryAPI: client.QueryAPI(org),
		bucket:   bucket,
		logger:   logger,
		timeout:  timeout,
	}
}

// LatestReadings fetches the latest value for every sensor id in one round
// trip. Sensors with no data in the window are absent from the result.
func (r *ReadingsRepository) LatestReadings(ctx context.Context, sensorIDs []string, rangeStart string) (map[string]models.Reading, error) {
	query, err := BuildLatestReadingsQuery(r.bucket, rangeStart, sensorIDs)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	start := time.Now()
	result, err := r.queryAPI.Query(ctx, query)
	metrics.ObserveQuery("readings", time.Since(start), err)
	if err != nil {
		r.logger.Warn("readings query failed", zap.Error(err))
		return nil, classifyStoreErr(ctx, "readings", err)
	}

	readings := make(map[string]models.Reading, len(sensorIDs))
	for result.Next() {
		rec := result.Record()
		id, _ := rec.ValueByKey("sensor_id").(string)
		if id == "" {
			continue
		}
		value, ok := toFloat(rec.Value())
		if !ok {
			continue
		}
		// Keep the newest point when a sensor reports several series.
		if prev, exists := readings[id]; exists && prev.Time.After(rec.Time()) {
			continue
		}
		readings[id] = models.Reading{
			SensorID: id,
			Field:    rec.Field(),
			Value:    value,
			Time:     rec.Time(),
		}
	}
	if err := result.Err(); err != nil {
		return nil, classifyStoreErr(ctx, "readings", err)
	}
	return readings, nil
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
