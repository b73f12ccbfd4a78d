package filter

import (
	"context"

	"github.com/futig/shortlist-web/internal/entity"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// MockConnector shortlists the first topN resumes in upload order. It lets the
// page run without a filtering service.
type MockConnector struct {
	logger *zap.Logger
}

func NewMockConnector(logger *zap.Logger) *MockConnector {
	return &MockConnector{
		logger: logger,
	}
}

func (m *MockConnector) Filter(ctx context.Context, req *entity.FilterRequest) (*entity.FilterResponse, error) {
	ctxzap.Info(ctx, "[MOCK] filtering resumes",
		zap.Int("resume_count", len(req.ResumeData)),
		zap.Stringer("top_n", req.TopN),
	)

	n := 0
	if req.TopN.Valid && req.TopN.Value > 0 {
		n = min(req.TopN.Value, len(req.ResumeData))
	}

	shortlisted := make([]string, 0, n)
	for _, f := range req.ResumeData[:n] {
		shortlisted = append(shortlisted, f.Name)
	}

	return &entity.FilterResponse{Shortlisted: shortlisted}, nil
}
