package submit

import (
	"bytes"
	"testing"
	"time"

	"github.com/futig/shortlist-web/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, state entity.UIState) string {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, renderPage(&buf, state, 1500*time.Millisecond))
	return buf.String()
}

func TestRenderPage_Loading(t *testing.T) {
	state := entity.NewUIState()
	state.Loading = true

	page := render(t, state)
	assert.Contains(t, page, `<button id="submit" type="submit" disabled>Loading...</button>`)
	assert.Contains(t, page, `<meta http-equiv="refresh" content="2">`)
	assert.NotContains(t, page, ">Submit</button>")
}

func TestRenderPage_Idle(t *testing.T) {
	page := render(t, entity.NewUIState())

	assert.Contains(t, page, `<button id="submit" type="submit">Submit</button>`)
	assert.NotContains(t, page, "http-equiv")
	assert.NotContains(t, page, "results-dialog")
}

func TestRenderPage_Results(t *testing.T) {
	state := entity.UIState{
		TopN:    entity.TopN{Value: 2, Valid: true},
		Results: []string{"alice.pdf", "<bob>.pdf"},
	}

	page := render(t, state)
	assert.Contains(t, page, "View Top 2 Resumes")
	assert.Contains(t, page, `<span class="badge">1</span><span class="filename">alice.pdf</span>`)
	assert.Contains(t, page, `<span class="badge">2</span><span class="filename">&lt;bob&gt;.pdf</span>`)
	assert.Contains(t, page, `<button type="button" disabled>Download All (Coming Soon)</button>`)
	assert.Contains(t, page, `value="2"`)
}

func TestRenderPage_InvalidTopN(t *testing.T) {
	state := entity.UIState{
		TopN:    entity.ParseTopN("abc"),
		Results: []string{"alice.pdf"},
	}

	page := render(t, state)
	assert.Contains(t, page, "View Top NaN Resumes")
	assert.Contains(t, page, `value=""`)
}
