package builder

import (
	"fmt"
	"net/http"
	"time"

	"github.com/futig/shortlist-web/internal/api"
	submitapi "github.com/futig/shortlist-web/internal/api/submit"
	"github.com/futig/shortlist-web/internal/config"
	"github.com/futig/shortlist-web/internal/integration/filter"
	"github.com/futig/shortlist-web/internal/pkg/logger"
	"github.com/futig/shortlist-web/internal/pkg/validator"
	"github.com/futig/shortlist-web/internal/repository"
	"github.com/futig/shortlist-web/internal/usecase/submit"
	"go.uber.org/zap"
)

func Build() (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.New(cfg.LogLevel, cfg.Environment)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	log.Info("Building application",
		zap.String("environment", cfg.Environment),
		zap.String("server_addr", cfg.ServerAddr),
	)

	handler := buildHandler(cfg, log)

	// No WriteTimeout: uploads of large resume batches may be slow.
	server := &http.Server{
		Addr:              cfg.ServerAddr,
		Handler:           handler,
		ReadHeaderTimeout: 15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	log.Info("Application built successfully",
		zap.String("environment", cfg.Environment),
	)

	return &App{
		server:          server,
		logger:          log,
		shutdownTimeout: cfg.ShutdownTimeout,
	}, nil
}

// buildHandler wires repositories, connectors and use cases into the router.
func buildHandler(cfg *config.Config, log *zap.Logger) http.Handler {
	stateRepo := repository.NewUIStateCache(cfg.StateCfg.TTL, cfg.StateCfg.CleanupInterval)
	log.Info("UI state store initialized", zap.Duration("ttl", cfg.StateCfg.TTL))

	var filterConnector submit.FilterConnector
	if cfg.EnableMocks {
		log.Info("Using mock connector for the filter service")
		filterConnector = filter.NewMockConnector(log)
	} else {
		log.Info("Using filter service",
			zap.String("url", cfg.FilterConnectorCfg.Url),
			zap.String("endpoint", cfg.FilterConnectorCfg.Endpoint),
			zap.String("content_encoding", cfg.FilterConnectorCfg.ContentEncoding),
		)
		filterConnector = filter.NewConnector(cfg.FilterConnectorCfg, log)
	}

	submitValidator := validator.NewSubmitValidator(cfg.FileUploadCfg, cfg.SubmitCfg.StrictTopN)
	if !cfg.SubmitCfg.StrictTopN {
		log.Warn("top N is not validated before submit; invalid values are sent as null")
	}

	submitUC := submit.NewUsecase(stateRepo, submitValidator, filterConnector, log)

	submitHandler := submitapi.NewHandler(submitUC, cfg.FileUploadCfg, cfg.SubmitCfg)

	return api.SetupRouter(submitHandler, cfg.StateCfg, cfg.RequestTimeout, log)
}
