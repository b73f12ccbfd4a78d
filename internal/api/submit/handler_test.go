package submit

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/futig/shortlist-web/internal/config"
	"github.com/futig/shortlist-web/internal/entity"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type panickingUsecase struct {
	dispatched chan struct{}
}

func (u *panickingUsecase) State(context.Context, string) entity.UIState {
	return entity.NewUIState()
}

func (u *panickingUsecase) Prepare(context.Context, string, *entity.SubmitInput) (*entity.FilterRequest, error) {
	return &entity.FilterRequest{TopN: entity.DefaultTopN}, nil
}

func (u *panickingUsecase) Dispatch(context.Context, string, *entity.FilterRequest) error {
	defer close(u.dispatched)
	panic("connector exploded")
}

func multipartSubmit(t *testing.T) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	require.NoError(t, writer.WriteField("jobDescription", "Go"))
	require.NoError(t, writer.WriteField("topN", "1"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/submit", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestSubmit_DispatchPanicIsRecovered(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	uc := &panickingUsecase{dispatched: make(chan struct{})}
	h := NewHandler(uc, config.FileUploadConfig{MaxTotalSize: 1 << 20, MaxUploadSize: 1 << 20}, config.SubmitConfig{})

	req := multipartSubmit(t)
	req = req.WithContext(ctxzap.ToContext(req.Context(), zap.New(core)))
	rec := httptest.NewRecorder()

	h.Submit(rec, req)
	assert.Equal(t, http.StatusSeeOther, rec.Code)

	select {
	case <-uc.dispatched:
	case <-time.After(5 * time.Second):
		t.Fatal("dispatch was not started")
	}

	require.Eventually(t, func() bool {
		return logs.FilterMessage("shortlist dispatch panicked").Len() == 1
	}, 5*time.Second, 10*time.Millisecond)
}
