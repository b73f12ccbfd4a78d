package submit

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"math"
	"time"

	"github.com/futig/shortlist-web/internal/entity"
)

//go:embed templates/submit.html
var templateFiles embed.FS

var pageTemplate = template.Must(
	template.New("submit.html").
		Funcs(template.FuncMap{"inc": func(i int) int { return i + 1 }}).
		ParseFS(templateFiles, "templates/submit.html"),
)

type pageView struct {
	State          entity.UIState
	RefreshSeconds int
}

// renderPage writes the page for state. It renders into a buffer first so a
// template error never leaves a half-written response.
func renderPage(w io.Writer, state entity.UIState, refresh time.Duration) error {
	view := pageView{
		State:          state,
		RefreshSeconds: max(1, int(math.Ceil(refresh.Seconds()))),
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, view); err != nil {
		return fmt.Errorf("render submit page: %w", err)
	}

	_, err := buf.WriteTo(w)
	return err
}
