package app

import (
	"context"
	"net/http"
	"strings"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"buildsense/backend/libs/graphdb"
	influxlib "buildsense/backend/libs/influx"
	"buildsense/backend/libs/sensorcfg"
	"buildsense/backend/services/inspector-service/internal/config"
	httpserver "buildsense/backend/services/inspector-service/internal/http"
	"buildsense/backend/services/inspector-service/internal/http/handlers"
	"buildsense/backend/services/inspector-service/internal/http/middleware"
	"buildsense/backend/services/inspector-service/internal/repository"
	"buildsense/backend/services/inspector-service/internal/service"
)

// App wires inspector service dependencies.
type App struct {
	server *httpserver.Server
	driver neo4j.DriverWithContext
	influx influxdb2.Client
	logger *zap.Logger
}

// New constructs application components. A missing time-series store
// downgrades zone inspections instead of blocking startup.
func New(cfg *config.Config, logger *zap.Logger) (*App, error) {
	driver, err := graphdb.NewDriver(cfg.Graph.URI, cfg.Graph.User, cfg.Graph.Password)
	if err != nil {
		return nil, err
	}
	if err := graphdb.Ping(context.Background(), driver); err != nil {
		logger.Warn("graph store unreachable at startup", zap.Error(err))
	}

	topologyRepo := repository.NewTopologyRepository(driver, cfg.QueryTimeout(), logger)

	var influxClient influxdb2.Client
	var readingsStore service.ReadingsStore
	if cfg.InfluxEnabled() {
		influxClient, err = influxlib.NewClient(cfg.Influx.Host, cfg.Influx.Token)
		if err != nil {
			return nil, err
		}
		if err := influxlib.Ping(context.Background(), influxClient); err != nil {
			logger.Warn("time-series store unreachable at startup", zap.Error(err))
		}
		readingsStore = repository.NewReadingsRepository(influxClient, cfg.Influx.Org, cfg.Influx.Bucket, cfg.QueryTimeout(), logger)
	} else {
		logger.Warn("time-series store not configured, zone inspections disabled")
	}

	resolver := sensorcfg.NewResolver(cfg.Sensors.ConfigFile)
	if snap, err := resolver.Load(); err != nil {
		logger.Warn("sensor config not loaded at startup", zap.Error(err))
	} else {
		logger.Info("sensor config loaded",
			zap.String("path", snap.Path),
			zap.Int("rooms", len(snap.RoomSensors)),
		)
	}

	inspector := service.NewInspectorService(topologyRepo, readingsStore, resolver, logger)

	routes := httpserver.Routes{
		Topology:    handlers.NewTopologyHandler(inspector),
		RoomSensors: handlers.NewRoomSensorsHandler(inspector),
		ZoneMetrics: handlers.NewZoneMetricsHandler(inspector),
		Health:      handlers.NewHealthHandler(),
		Metrics:     promhttp.Handler(),
	}
	router := httpserver.NewRouter(routes)

	mws := []func(http.Handler) http.Handler{
		middleware.RecoveryMiddleware(logger),
		middleware.LoggingMiddleware(logger),
	}
	if secret := strings.TrimSpace(cfg.Auth.Secret); secret != "" {
		mws = append(mws, middleware.AuthMiddleware(secret))
	}

	server := httpserver.NewServer(cfg.HTTPAddress(), router, logger, mws...)

	return &App{
		server: server,
		driver: driver,
		influx: influxClient,
		logger: logger,
	}, nil
}

// Run starts serving HTTP requests.
func (a *App) Run(ctx context.Context) error {
	return a.server.Run(ctx)
}

// Close releases resources.
func (a *App) Close() {
	if a.driver != nil {
		if err := a.driver.Close(context.Background()); err != nil {
			a.logger.Warn("failed to close graph driver", zap.Error(err))
		}
	}
	if a.influx != nil {
		a.influx.Close()
	}
}
