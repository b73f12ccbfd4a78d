package validator

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/futig/shortlist-web/internal/config"
	"github.com/futig/shortlist-web/internal/entity"
	playground "github.com/go-playground/validator/v10"
)

var AllowedExtensions = map[string]bool{
	".pdf": true,
}

// Validator checks a submit before any file is read
type Validator struct {
	cfg        config.FileUploadConfig
	strictTopN bool
	validate   *playground.Validate
}

type strictTopN struct {
	Valid bool `validate:"required"`
	Value int  `validate:"gte=1"`
}

func NewSubmitValidator(cfg config.FileUploadConfig, strict bool) *Validator {
	return &Validator{
		cfg:        cfg,
		strictTopN: strict,
		validate:   playground.New(),
	}
}

// ValidateSubmit checks upload limits and, in strict mode, that topN is a
// positive integer. The job description is free text and never rejected.
func (v *Validator) ValidateSubmit(input *entity.SubmitInput) error {
	if v.strictTopN {
		if err := v.validate.Struct(strictTopN{Valid: input.TopN.Valid, Value: input.TopN.Value}); err != nil {
			return fmt.Errorf("%w: %s", entity.ErrInvalidTopN, input.TopN)
		}
	}

	return v.ValidateUpload(input.Files)
}

// ValidateUpload validates the selected files. Zero files is allowed.
func (v *Validator) ValidateUpload(files []entity.FileSource) error {
	if len(files) > v.cfg.MaxFileCount {
		return fmt.Errorf("%w: maximum %d files allowed, got %d", entity.ErrTooManyFiles, v.cfg.MaxFileCount, len(files))
	}

	var totalSize int64
	for _, f := range files {
		ext := strings.ToLower(filepath.Ext(f.Name()))
		if !AllowedExtensions[ext] {
			return fmt.Errorf("%w: %q (allowed: pdf)", entity.ErrInvalidExtension, f.Name())
		}

		if f.Size() > v.cfg.MaxFileSize {
			return fmt.Errorf("%w: file '%s' is %d bytes (max %d)", entity.ErrFileTooLarge, f.Name(), f.Size(), v.cfg.MaxFileSize)
		}

		totalSize += f.Size()
	}

	if totalSize > v.cfg.MaxTotalSize {
		return fmt.Errorf("%w: total size is %d bytes (max %d)", entity.ErrTotalSizeTooLarge, totalSize, v.cfg.MaxTotalSize)
	}

	return nil
}
