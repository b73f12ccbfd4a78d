package submit

import (
	"io"
	"mime/multipart"

	"github.com/futig/shortlist-web/internal/entity"
)

// multipartFile exposes an uploaded form file as an entity.FileSource.
type multipartFile struct {
	header *multipart.FileHeader
}

func (f multipartFile) Name() string { return f.header.Filename }
func (f multipartFile) Size() int64  { return f.header.Size }

func (f multipartFile) Open() (io.ReadCloser, error) {
	return f.header.Open()
}

func toFileSources(headers []*multipart.FileHeader) []entity.FileSource {
	files := make([]entity.FileSource, 0, len(headers))
	for _, fh := range headers {
		files = append(files, multipartFile{header: fh})
	}
	return files
}
