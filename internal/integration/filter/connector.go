package filter

import (
	"context"
	"fmt"
	"net/http"

	"github.com/futig/shortlist-web/internal/config"
	"github.com/futig/shortlist-web/internal/entity"
	"github.com/futig/shortlist-web/internal/integration/common"
	"github.com/futig/shortlist-web/internal/pkg/retry"
	pkghttp "github.com/futig/shortlist-web/pkg/http"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

type Connector struct {
	config    config.FilterConnectorConfig
	connector *pkghttp.Connector
	logger    *zap.Logger
}

func NewConnector(
	cfg config.FilterConnectorConfig,
	logger *zap.Logger,
) *Connector {
	if cfg.Retry.Attempts == 0 {
		cfg.Retry = *retry.DefaultRetryConfig()
	}

	return &Connector{
		connector: common.NewBaseConnector(cfg.HTTPClientConfig, logger),
		config:    cfg,
		logger:    logger,
	}
}

// Filter asks the filtering service to rank the resumes against the job
// description. Only transport failures are retried, and only when retries are
// configured.
func (c *Connector) Filter(ctx context.Context, req *entity.FilterRequest) (*entity.FilterResponse, error) {
	ctxzap.Info(ctx, "requesting shortlist from filter service",
		zap.Int("resume_count", len(req.ResumeData)),
		zap.Stringer("top_n", req.TopN),
	)

	payload := toFilterRequest(req, c.config.ContentEncoding)

	var opts []pkghttp.RequestOpt
	if c.config.ContentType != "" {
		opts = append(opts, pkghttp.WithHeader("Content-Type", c.config.ContentType))
	}

	var resp entity.FilterResponse
	err := retry.Do(ctx, &c.config.Retry, pkghttp.IsNetworkError, func() error {
		return c.connector.DoRequest(ctx, http.MethodPost, c.config.Endpoint, payload, &resp, opts...)
	})
	if err != nil {
		return nil, fmt.Errorf("filter resumes: %w", err)
	}

	if resp.Shortlisted == nil {
		return nil, fmt.Errorf("filter resumes: %w", entity.ErrEmptyShortlist)
	}

	ctxzap.Info(ctx, "shortlist received", zap.Int("shortlisted_count", len(resp.Shortlisted)))

	return &resp, nil
}
