package entity

import "errors"

// Domain errors
var (
	// Submit errors
	ErrSubmitInProgress = errors.New("submit already in progress")
	ErrInvalidTopN      = errors.New("invalid top N")

	// File errors
	ErrFileRead          = errors.New("file read failed")
	ErrFileTooLarge      = errors.New("file too large")
	ErrTooManyFiles      = errors.New("too many files")
	ErrInvalidExtension  = errors.New("invalid file extension")
	ErrTotalSizeTooLarge = errors.New("total file size too large")

	// Filter service errors
	ErrEmptyShortlist = errors.New("filter response has no shortlisted field")
)
