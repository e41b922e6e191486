package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/mams/backend/internal/app/models"
	"github.com/mams/backend/internal/pkg/apperrors"
	"github.com/mams/backend/internal/pkg/logger"
	"github.com/mams/backend/internal/pkg/objectstorage"
)

// RequiredDocumentFields lists the enrollment document fields in the fixed
// order they are validated and uploaded.
var RequiredDocumentFields = []string{"registration_form", "marks10", "marks12", "gujcet"}

// DocumentFile is one uploaded enrollment document
type DocumentFile struct {
	Field       string
	Filename    string
	ContentType string
	Reader      io.Reader
}

// DocumentService defines the enrollment document upload workflow
type DocumentService interface {
	// UploadDocuments stores all four documents and records their public
	// URLs, keyed "{field}_url". One-shot per student.
	UploadDocuments(ctx context.Context, grNo string, files []DocumentFile) (map[string]string, error)
}

// studentLookup is the student existence check the service depends on
type studentLookup interface {
	GetByGrNo(ctx context.Context, grNo string) (*models.Student, error)
}

// enrollmentStore is the document set persistence the service depends on
type enrollmentStore interface {
	ExistsByGrNo(ctx context.Context, grNo string) (bool, error)
	Insert(ctx context.Context, docs *models.EnrollmentDocuments) error
}

// documentServiceImpl implements the DocumentService interface
type documentServiceImpl struct {
	students    studentLookup
	enrollments enrollmentStore
	storage     objectstorage.ObjectStorage
}

// NewDocumentService creates a new document service instance
func NewDocumentService(students studentLookup, enrollments enrollmentStore, storage objectstorage.ObjectStorage) DocumentService {
	return &documentServiceImpl{
		students:    students,
		enrollments: enrollments,
		storage:     storage,
	}
}

// UploadDocuments validates and uploads the four required files in fixed
// order, then inserts the document row. The workflow aborts on the first
// failing file; objects already uploaded in this batch are not rolled back.
func (s *documentServiceImpl) UploadDocuments(ctx context.Context, grNo string, files []DocumentFile) (map[string]string, error) {
	if strings.TrimSpace(grNo) == "" {
		return nil, apperrors.NewValidationError("GR number is required")
	}

	if _, err := s.students.GetByGrNo(ctx, grNo); err != nil {
		return nil, err
	}

	exists, err := s.enrollments.ExistsByGrNo(ctx, grNo)
	if err != nil {
		return nil, fmt.Errorf("error checking existing documents: %w", err)
	}
	if exists {
		return nil, apperrors.ErrDocumentsAlreadyExist
	}

	byField := make(map[string]DocumentFile, len(files))
	for _, f := range files {
		byField[f.Field] = f
	}

	urls := make(map[string]string, len(RequiredDocumentFields))
	for _, field := range RequiredDocumentFields {
		f, ok := byField[field]
		if !ok || f.Reader == nil {
			return nil, apperrors.NewValidationError(fmt.Sprintf("missing %s file", field))
		}
		if f.Filename == "" {
			return nil, apperrors.NewValidationError(fmt.Sprintf("no %s file selected", field))
		}
		if _, err := validateExtension(f.Filename); err != nil {
			return nil, apperrors.NewValidationError(
				fmt.Sprintf("invalid file type for %s, allowed types: PDF, PNG, JPG, JPEG", field))
		}

		key := fmt.Sprintf("enrollment/%s/%s/%s_%s", grNo, field, uuid.New().String(), sanitizeFilename(f.Filename))

		err := s.storage.Upload(ctx, key, f.ContentType, f.Reader, objectstorage.UploadOptions{})
		if err != nil {
			return nil, apperrors.NewUploadError(fmt.Sprintf("error uploading %s: %s", field, err.Error()))
		}

		urls[field+"_url"] = s.storage.PublicURL(key)
		logger.Info().Str("grNo", grNo).Str("field", field).Str("key", key).Msg("Enrollment document uploaded")
	}

	docs := &models.EnrollmentDocuments{
		GrNo:                grNo,
		RegistrationFormURL: urls["registration_form_url"],
		Marks10URL:          urls["marks10_url"],
		Marks12URL:          urls["marks12_url"],
		GujcetMarksheetURL:  urls["gujcet_url"],
	}
	if err := s.enrollments.Insert(ctx, docs); err != nil {
		if errors.Is(err, apperrors.ErrDocumentsAlreadyExist) || errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, err
		}
		return nil, apperrors.NewDatabaseError(err.Error())
	}

	return urls, nil
}
