// quotegen-server serves the export pipeline over HTTP for the browser
// editor. Configuration comes from a .env file or the environment.
package main

import (
	"log"
	"time"

	"go.uber.org/zap"

	quotegen "github.com/elevateestimator/quotegenerator"
	"github.com/elevateestimator/quotegenerator/internal/config"
	"github.com/elevateestimator/quotegenerator/internal/prefstore"
	"github.com/elevateestimator/quotegenerator/internal/server"
)

func main() {
	cfg := config.Load()

	var logger *zap.Logger
	var err error
	if cfg.App.Env == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("building logger: %v", err)
	}
	defer logger.Sync()

	prefs, err := prefstore.Open(cfg.Store.Path)
	if err != nil {
		logger.Fatal("opening preference store", zap.Error(err))
	}
	defer prefs.Close()

	opts := []quotegen.Option{
		quotegen.WithLogger(logger),
		quotegen.WithTimeout(cfg.Export.Timeout),
		quotegen.WithAssetTimeout(cfg.Export.AssetTimeout),
		quotegen.WithRenderScale(cfg.Export.RenderScale),
	}
	if cfg.Export.ChromePath != "" {
		opts = append(opts, quotegen.WithChromePath(cfg.Export.ChromePath))
	}
	if cfg.Export.NoSandbox {
		opts = append(opts, quotegen.WithNoSandbox())
	}
	if cfg.Export.AutoDownload {
		opts = append(opts, quotegen.WithAutoDownload())
	}

	start := time.Now()
	exporter, err := quotegen.NewExporter(opts...)
	if err != nil {
		logger.Fatal("starting exporter", zap.Error(err))
	}
	defer exporter.Close()
	logger.Info("browser ready", zap.Duration("elapsed", time.Since(start)))

	srv := server.New(exporter, prefs, logger, cfg)
	addr := ":" + cfg.App.Port
	logger.Info("listening", zap.String("addr", addr), zap.String("env", cfg.App.Env))
	if err := srv.Run(addr); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
