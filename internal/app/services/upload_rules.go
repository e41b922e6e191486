package services

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/mams/backend/internal/pkg/apperrors"
)

// allowedExtensions is the document allow-set shared by both upload workflows
var allowedExtensions = map[string]bool{
	".pdf":  true,
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

// validateExtension checks the filename against the allow-set,
// case-insensitively, and returns the normalized extension.
func validateExtension(filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExtensions[ext] {
		return "", apperrors.ErrUnsupportedFileType
	}
	return ext, nil
}

// contentTypeForExt derives the content type from a normalized extension
func contentTypeForExt(ext string) string {
	if ext == ".pdf" {
		return "application/pdf"
	}
	return "image/" + strings.TrimPrefix(ext, ".")
}

// sanitizeFilename strips everything but letters, digits, dots, dashes
// and underscores so the name is safe inside a storage key.
func sanitizeFilename(filename string) string {
	return unsafeFilenameChars.ReplaceAllString(filepath.Base(filename), "_")
}
