package entity

import (
	"io"
)

// UIState is what the submit page renders for one browser session.
type UIState struct {
	TopN    TopN     `json:"topN"`
	Results []string `json:"results"`
	Loading bool     `json:"loading"`
}

// NewUIState returns the state of a freshly loaded page.
func NewUIState() UIState {
	return UIState{
		TopN:    DefaultTopN,
		Results: []string{},
	}
}

// HasResults reports whether the results view should be offered.
func (s UIState) HasResults() bool {
	return len(s.Results) > 0
}

// FileSource is a selected file whose bytes have not been read yet.
type FileSource interface {
	Name() string
	Size() int64
	Open() (io.ReadCloser, error)
}

// SubmitInput holds the bound form fields of one submit.
type SubmitInput struct {
	Files          []FileSource
	JobDescription string
	TopN           TopN
}
