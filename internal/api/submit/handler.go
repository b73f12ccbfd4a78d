package submit

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/futig/shortlist-web/internal/api/middleware"
	"github.com/futig/shortlist-web/internal/config"
	"github.com/futig/shortlist-web/internal/entity"
	"github.com/futig/shortlist-web/internal/pkg/logger"
	"github.com/futig/shortlist-web/internal/pkg/response"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

const (
	fieldResumes        = "resumes"
	fieldJobDescription = "jobDescription"
	fieldTopN           = "topN"

	// multipartOverhead leaves room for part headers and the text fields.
	multipartOverhead = 1 << 20
)

type Handler struct {
	usecase         SubmitUsecase
	uploadCfg       config.FileUploadConfig
	refreshInterval time.Duration
}

func NewHandler(
	usecase SubmitUsecase,
	uploadCfg config.FileUploadConfig,
	submitCfg config.SubmitConfig,
) *Handler {
	return &Handler{
		usecase:         usecase,
		uploadCfg:       uploadCfg,
		refreshInterval: submitCfg.RefreshInterval,
	}
}

// Page handles GET /
func (h *Handler) Page(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "Page")

	state := h.usecase.State(ctx, middleware.SessionID(ctx))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := renderPage(w, state, h.refreshInterval); err != nil {
		ctxzap.Error(ctx, "failed to render page", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// Submit handles POST /submit. Files are buffered before the response is sent;
// the call to the filter service runs in the background and the browser is
// sent back to the page, which shows the loading state until it finishes.
// Failures are logged only: the page simply keeps its previous results.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "Submit")
	sessionID := middleware.SessionID(ctx)

	defer http.Redirect(w, r, "/", http.StatusSeeOther)

	r.Body = http.MaxBytesReader(w, r.Body, h.uploadCfg.MaxTotalSize+multipartOverhead)
	if err := r.ParseMultipartForm(h.uploadCfg.MaxUploadSize); err != nil {
		ctxzap.Error(ctx, "failed to parse multipart form", zap.Error(err))
		return
	}

	input := &entity.SubmitInput{
		Files:          toFileSources(r.MultipartForm.File[fieldResumes]),
		JobDescription: r.FormValue(fieldJobDescription),
		TopN:           entity.ParseTopN(r.FormValue(fieldTopN)),
	}

	ctxzap.Info(ctx, "submitting resumes",
		zap.Int("file_count", len(input.Files)),
		zap.Int("job_description_length", len(input.JobDescription)),
		zap.Stringer("top_n", input.TopN),
	)

	req, err := h.usecase.Prepare(ctx, sessionID, input)
	if err != nil {
		if errors.Is(err, entity.ErrSubmitInProgress) {
			ctxzap.Warn(ctx, "submit ignored, previous one still running")
			return
		}
		ctxzap.Error(ctx, "failed to prepare submit", zap.Error(err))
		return
	}

	bgCtx := logger.AddFields(logger.Detach(ctx), zap.String("action", "Submit-async"))
	go h.dispatch(bgCtx, sessionID, req)
}

// dispatch runs outside the router's Recoverer, so it recovers on its own.
func (h *Handler) dispatch(ctx context.Context, sessionID string, req *entity.FilterRequest) {
	defer func() {
		if p := recover(); p != nil {
			ctxzap.Error(ctx, "shortlist dispatch panicked",
				zap.Any("panic", p),
				zap.Stack("stack"),
			)
		}
	}()

	if err := h.usecase.Dispatch(ctx, sessionID, req); err != nil {
		ctxzap.Error(ctx, "failed to fetch shortlist", zap.Error(err))
		return
	}
	ctxzap.Info(ctx, "shortlist ready")
}

// GetState handles GET /api/state
func (h *Handler) GetState(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "GetState")

	response.Success(w, h.usecase.State(ctx, middleware.SessionID(ctx)))
}
