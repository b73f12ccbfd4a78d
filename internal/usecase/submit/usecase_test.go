package submit

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/futig/shortlist-web/internal/config"
	"github.com/futig/shortlist-web/internal/entity"
	"github.com/futig/shortlist-web/internal/pkg/validator"
	"github.com/futig/shortlist-web/internal/repository"
	pkghttp "github.com/futig/shortlist-web/pkg/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const sessionID = "session-1"

type memFile struct {
	name    string
	content []byte
	openErr error
}

func (f memFile) Name() string { return f.name }
func (f memFile) Size() int64  { return int64(len(f.content)) }
func (f memFile) Open() (io.ReadCloser, error) {
	if f.openErr != nil {
		return nil, f.openErr
	}
	return io.NopCloser(bytes.NewReader(f.content)), nil
}

type fakeFilter struct {
	resp     *entity.FilterResponse
	err      error
	calls    int
	lastReq  *entity.FilterRequest
	duringFn func()
}

func (f *fakeFilter) Filter(_ context.Context, req *entity.FilterRequest) (*entity.FilterResponse, error) {
	f.calls++
	f.lastReq = req
	if f.duringFn != nil {
		f.duringFn()
	}
	return f.resp, f.err
}

func newTestUsecase(filter FilterConnector) (*SubmitUsecase, *repository.UIStateCache) {
	repo := repository.NewUIStateCache(time.Minute, time.Minute)
	v := validator.NewSubmitValidator(config.FileUploadConfig{
		MaxFileSize:  1 << 20,
		MaxTotalSize: 1 << 22,
		MaxFileCount: 10,
	}, false)
	return NewUsecase(repo, v, filter, zap.NewNop()), repo
}

func threePDFs() []entity.FileSource {
	return []entity.FileSource{
		memFile{name: "alice.pdf", content: []byte("%PDF-alice")},
		memFile{name: "bob.pdf", content: []byte("%PDF-bob")},
		memFile{name: "carol.pdf", content: []byte("%PDF-carol")},
	}
}

func TestSubmit_SuccessStoresShortlist(t *testing.T) {
	filter := &fakeFilter{resp: &entity.FilterResponse{Shortlisted: []string{"alice.pdf", "bob.pdf"}}}
	uc, _ := newTestUsecase(filter)
	ctx := context.Background()

	err := uc.Submit(ctx, sessionID, &entity.SubmitInput{
		Files:          threePDFs(),
		JobDescription: "Backend engineer, 5 years Go",
		TopN:           entity.ParseTopN("2"),
	})
	require.NoError(t, err)

	require.Equal(t, 1, filter.calls)
	require.Len(t, filter.lastReq.ResumeData, 3)
	assert.Equal(t, "alice.pdf", filter.lastReq.ResumeData[0].Name)
	assert.Equal(t, []byte("%PDF-alice"), filter.lastReq.ResumeData[0].Content)
	assert.Equal(t, "carol.pdf", filter.lastReq.ResumeData[2].Name)
	assert.Equal(t, "Backend engineer, 5 years Go", filter.lastReq.JobDescription)
	assert.Equal(t, entity.TopN{Value: 2, Valid: true}, filter.lastReq.TopN)

	state := uc.State(ctx, sessionID)
	assert.Equal(t, []string{"alice.pdf", "bob.pdf"}, state.Results)
	assert.Equal(t, 2, state.TopN.Value)
	assert.False(t, state.Loading)
}

func TestSubmit_LoadingWhileRequestInFlight(t *testing.T) {
	filter := &fakeFilter{resp: &entity.FilterResponse{Shortlisted: []string{}}}
	uc, _ := newTestUsecase(filter)
	ctx := context.Background()

	var loadingDuringCall bool
	filter.duringFn = func() {
		loadingDuringCall = uc.State(ctx, sessionID).Loading
	}

	require.NoError(t, uc.Submit(ctx, sessionID, &entity.SubmitInput{TopN: entity.DefaultTopN}))
	assert.True(t, loadingDuringCall)
	assert.False(t, uc.State(ctx, sessionID).Loading)
}

func TestSubmit_ServerErrorKeepsPreviousResults(t *testing.T) {
	filter := &fakeFilter{resp: &entity.FilterResponse{Shortlisted: []string{"alice.pdf"}}}
	uc, _ := newTestUsecase(filter)
	ctx := context.Background()

	require.NoError(t, uc.Submit(ctx, sessionID, &entity.SubmitInput{Files: threePDFs(), TopN: entity.DefaultTopN}))

	filter.resp = nil
	filter.err = &pkghttp.HTTPError{StatusCode: 500, Message: "boom"}

	err := uc.Submit(ctx, sessionID, &entity.SubmitInput{Files: threePDFs(), TopN: entity.DefaultTopN})
	require.Error(t, err)

	state := uc.State(ctx, sessionID)
	assert.Equal(t, []string{"alice.pdf"}, state.Results)
	assert.False(t, state.Loading)
}

func TestSubmit_FailureBeforeAnyResultLeavesListEmpty(t *testing.T) {
	filter := &fakeFilter{err: &pkghttp.HTTPError{StatusCode: 500}}
	uc, _ := newTestUsecase(filter)
	ctx := context.Background()

	require.Error(t, uc.Submit(ctx, sessionID, &entity.SubmitInput{Files: threePDFs(), TopN: entity.DefaultTopN}))

	state := uc.State(ctx, sessionID)
	assert.False(t, state.HasResults())
	assert.False(t, state.Loading)
}

func TestSubmit_FileReadFailureAbortsBeforeRequest(t *testing.T) {
	filter := &fakeFilter{resp: &entity.FilterResponse{Shortlisted: []string{"x.pdf"}}}
	uc, _ := newTestUsecase(filter)
	ctx := context.Background()

	files := threePDFs()
	files[1] = memFile{name: "broken.pdf", content: []byte("x"), openErr: errors.New("disk gone")}

	err := uc.Submit(ctx, sessionID, &entity.SubmitInput{Files: files, TopN: entity.DefaultTopN})
	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrFileRead)
	assert.Contains(t, err.Error(), "broken.pdf")

	assert.Equal(t, 0, filter.calls)
	state := uc.State(ctx, sessionID)
	assert.False(t, state.Loading)
	assert.Empty(t, state.Results)
}

func TestSubmit_ValidationFailureAbortsBeforeRequest(t *testing.T) {
	filter := &fakeFilter{resp: &entity.FilterResponse{Shortlisted: []string{}}}
	uc, _ := newTestUsecase(filter)
	ctx := context.Background()

	files := []entity.FileSource{memFile{name: "notes.txt", content: []byte("hi")}}
	err := uc.Submit(ctx, sessionID, &entity.SubmitInput{Files: files, TopN: entity.DefaultTopN})
	assert.ErrorIs(t, err, entity.ErrInvalidExtension)
	assert.Equal(t, 0, filter.calls)
	assert.False(t, uc.State(ctx, sessionID).Loading)
}

func TestPrepare_RefusesConcurrentSubmit(t *testing.T) {
	filter := &fakeFilter{resp: &entity.FilterResponse{Shortlisted: []string{"alice.pdf"}}}
	uc, _ := newTestUsecase(filter)
	ctx := context.Background()

	req, err := uc.Prepare(ctx, sessionID, &entity.SubmitInput{Files: threePDFs(), TopN: entity.DefaultTopN})
	require.NoError(t, err)
	assert.True(t, uc.State(ctx, sessionID).Loading)

	_, err = uc.Prepare(ctx, sessionID, &entity.SubmitInput{TopN: entity.DefaultTopN})
	assert.ErrorIs(t, err, entity.ErrSubmitInProgress)

	require.NoError(t, uc.Dispatch(ctx, sessionID, req))
	assert.False(t, uc.State(ctx, sessionID).Loading)
	assert.Equal(t, []string{"alice.pdf"}, uc.State(ctx, sessionID).Results)
}

func TestSubmit_InvalidTopNIsSentAsIs(t *testing.T) {
	filter := &fakeFilter{resp: &entity.FilterResponse{Shortlisted: []string{}}}
	uc, _ := newTestUsecase(filter)
	ctx := context.Background()

	require.NoError(t, uc.Submit(ctx, sessionID, &entity.SubmitInput{TopN: entity.ParseTopN("")}))
	assert.False(t, filter.lastReq.TopN.Valid)
	assert.Equal(t, "NaN", uc.State(ctx, sessionID).TopN.String())
}

func TestReadFiles_KeepsSelectionOrder(t *testing.T) {
	files := make([]entity.FileSource, 0, 20)
	for i := range 20 {
		files = append(files, memFile{name: string(rune('a'+i)) + ".pdf", content: []byte{byte(i)}})
	}

	uploaded, err := readFiles(context.Background(), files)
	require.NoError(t, err)
	require.Len(t, uploaded, 20)
	for i, f := range uploaded {
		assert.Equal(t, files[i].Name(), f.Name)
		assert.Equal(t, []byte{byte(i)}, f.Content)
	}
}
