package submit

import (
	"context"
	"fmt"

	"github.com/futig/shortlist-web/internal/entity"
	"github.com/futig/shortlist-web/internal/repository"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// SubmitUsecase runs the submit flow of the resume page:
// idle -> submitting -> idle (with new results on success, unchanged otherwise).
type SubmitUsecase struct {
	stateRepo repository.UIStateRepository
	validator SubmitValidator
	filter    FilterConnector
	logger    *zap.Logger
}

// NewUsecase creates a new submit use case
func NewUsecase(
	stateRepo repository.UIStateRepository,
	validator SubmitValidator,
	filter FilterConnector,
	logger *zap.Logger,
) *SubmitUsecase {
	return &SubmitUsecase{
		stateRepo: stateRepo,
		validator: validator,
		filter:    filter,
		logger:    logger,
	}
}

// State returns what the page should render for the session.
func (uc *SubmitUsecase) State(ctx context.Context, sessionID string) entity.UIState {
	return uc.stateRepo.Get(ctx, sessionID)
}

// Submit prepares and dispatches the request in one go.
func (uc *SubmitUsecase) Submit(ctx context.Context, sessionID string, input *entity.SubmitInput) error {
	req, err := uc.Prepare(ctx, sessionID, input)
	if err != nil {
		return err
	}
	return uc.Dispatch(ctx, sessionID, req)
}

// Prepare switches the session to loading and buffers the selected files.
// On error the session is back to idle and nothing is sent.
func (uc *SubmitUsecase) Prepare(ctx context.Context, sessionID string, input *entity.SubmitInput) (*entity.FilterRequest, error) {
	if err := uc.stateRepo.BeginSubmit(ctx, sessionID, input.TopN); err != nil {
		return nil, err
	}

	req, err := uc.buildRequest(ctx, input)
	if err != nil {
		uc.stateRepo.EndSubmit(ctx, sessionID)
		return nil, err
	}

	return req, nil
}

// Dispatch sends a prepared request and stores the shortlist. The session
// leaves the loading state whatever the outcome.
func (uc *SubmitUsecase) Dispatch(ctx context.Context, sessionID string, req *entity.FilterRequest) error {
	defer uc.stateRepo.EndSubmit(ctx, sessionID)

	resp, err := uc.filter.Filter(ctx, req)
	if err != nil {
		return err
	}

	uc.stateRepo.SetResults(ctx, sessionID, resp.Shortlisted)

	ctxzap.Info(ctx, "shortlist stored", zap.Int("shortlisted_count", len(resp.Shortlisted)))
	return nil
}

func (uc *SubmitUsecase) buildRequest(ctx context.Context, input *entity.SubmitInput) (*entity.FilterRequest, error) {
	if err := uc.validator.ValidateSubmit(input); err != nil {
		return nil, fmt.Errorf("validate submit: %w", err)
	}

	if !input.TopN.Valid || input.TopN.Value < 1 {
		ctxzap.Warn(ctx, "top N is not a positive integer, sending it as is",
			zap.Stringer("top_n", input.TopN),
		)
	}

	resumes, err := readFiles(ctx, input.Files)
	if err != nil {
		return nil, err
	}

	ctxzap.Info(ctx, "resumes buffered", zap.Int("file_count", len(resumes)))

	return &entity.FilterRequest{
		ResumeData:     resumes,
		JobDescription: input.JobDescription,
		TopN:           input.TopN,
	}, nil
}
