package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"buildsense/backend/libs/graphdb"
	"buildsense/backend/libs/logging"
	"buildsense/backend/libs/sensorcfg"
	"buildsense/backend/services/topology-importer/internal/config"
	"buildsense/backend/services/topology-importer/internal/importer"
	"buildsense/backend/services/topology-importer/internal/repository"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger, err := logging.NewServiceLogger("topology-importer")
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	driver, err := graphdb.NewDriver(cfg.Graph.URI, cfg.Graph.User, cfg.Graph.Password)
	if err != nil {
		logger.Fatal("failed to init graph driver", zap.Error(err))
	}
	defer driver.Close(context.Background())

	if err := graphdb.Ping(ctx, driver); err != nil {
		logger.Fatal("graph store unreachable", zap.Error(err))
	}

	snap, err := sensorcfg.NewResolver(cfg.Sensors.ConfigFile).Load()
	if err != nil {
		logger.Fatal("failed to load sensor config", zap.Error(err))
	}
	logger.Info("sensor config loaded",
		zap.String("path", snap.Path),
		zap.Int("rooms", len(snap.RoomSensors)),
	)

	spaces, err := importer.LoadElements(cfg.Import.ElementsFile)
	if err != nil {
		logger.Fatal("failed to load elements export", zap.Error(err))
	}
	logger.Info("elements export loaded",
		zap.String("path", cfg.Import.ElementsFile),
		zap.Int("spaces", len(spaces)),
	)

	writer := repository.NewRoomWriter(driver, logger)
	if _, err := importer.New(writer, logger).Run(ctx, spaces, snap); err != nil {
		logger.Fatal("import failed", zap.Error(err))
	}
}
