package filter

import (
	"strconv"

	"github.com/futig/shortlist-web/internal/config"
	"github.com/futig/shortlist-web/internal/entity"
)

type filterRequest struct {
	ResumeData     []resumeData `json:"resumeData"`
	JobDescription string       `json:"jobDescription"`
	TopN           entity.TopN  `json:"topN"`
}

type resumeData struct {
	Name    string `json:"name"`
	Content any    `json:"content"`
}

// nodeBuffer marshals like a Node.js Buffer: {"type":"Buffer","data":[...]}.
type nodeBuffer []byte

func (b nodeBuffer) MarshalJSON() ([]byte, error) {
	out := make([]byte, 0, len(`{"type":"Buffer","data":[]}`)+len(b)*4)
	out = append(out, `{"type":"Buffer","data":[`...)
	for i, v := range b {
		if i > 0 {
			out = append(out, ',')
		}
		out = strconv.AppendUint(out, uint64(v), 10)
	}
	out = append(out, "]}"...)
	return out, nil
}

func toFilterRequest(req *entity.FilterRequest, encoding string) *filterRequest {
	resumes := make([]resumeData, 0, len(req.ResumeData))
	for _, f := range req.ResumeData {
		var content any = f.Content
		if encoding == config.ContentEncodingBuffer {
			content = nodeBuffer(f.Content)
		} else if f.Content == nil {
			content = []byte{}
		}
		resumes = append(resumes, resumeData{Name: f.Name, Content: content})
	}

	return &filterRequest{
		ResumeData:     resumes,
		JobDescription: req.JobDescription,
		TopN:           req.TopN,
	}
}
