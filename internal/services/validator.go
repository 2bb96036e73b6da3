package services

import (
	"slices"

	"hirepilot/internal/apperr"
)

// UploadedFile carries exactly what validation and storage need from an
// incoming upload, decoupled from the HTTP framework's multipart types.
type UploadedFile struct {
	Data     []byte
	MimeType string
	Size     int64
	Name     string
}

type FileValidator interface {
	Validate(file *UploadedFile) error
}

type fileValidator struct {
	allowedTypes []string
	maxFileSize  int64
}

func NewFileValidator(allowedTypes []string, maxFileSize int64) FileValidator {
	return &fileValidator{
		allowedTypes: allowedTypes,
		maxFileSize:  maxFileSize,
	}
}

// Validate implements FileValidator. Each violation maps to its own error
// code: a missing file, a type outside the allow-list and an oversized file
// are distinct conditions for the caller.
func (v *fileValidator) Validate(file *UploadedFile) error {
	if file == nil {
		return apperr.New(apperr.CodeFileRequired, "no file provided")
	}

	if !slices.Contains(v.allowedTypes, file.MimeType) {
		return apperr.Newf(apperr.CodeInvalidFileType,
			"file type %q is not allowed", file.MimeType)
	}

	if file.Size > v.maxFileSize {
		return apperr.Newf(apperr.CodeFileTooLarge,
			"file size %d exceeds maximum of %d bytes", file.Size, v.maxFileSize)
	}

	return nil
}
