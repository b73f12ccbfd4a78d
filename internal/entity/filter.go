package entity

// UploadedFile is one resume buffered for a single submit.
type UploadedFile struct {
	Name    string
	Content []byte
}

// FilterRequest is what the filtering service receives. Content encoding of the
// files is decided by the connector.
type FilterRequest struct {
	ResumeData     []UploadedFile
	JobDescription string
	TopN           TopN
}

// FilterResponse lists filenames from most to least relevant.
type FilterResponse struct {
	Shortlisted []string `json:"shortlisted"`
}

