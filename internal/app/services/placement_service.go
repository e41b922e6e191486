package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/mams/backend/internal/app/models"
	"github.com/mams/backend/internal/app/repositories"
	"github.com/mams/backend/internal/pkg/apperrors"
	"github.com/mams/backend/internal/pkg/logger"
	"github.com/mams/backend/internal/pkg/objectstorage"
)

// placementProofPrefix is the key prefix for placement proof objects
const placementProofPrefix = "placement_proofs"

// PlacementService defines the placement proof upload workflow
type PlacementService interface {
	// UploadProof stores the proof file, upserts the placement row and
	// returns the stored object's public URL.
	UploadProof(ctx context.Context, grNo, status, filename string, file io.Reader) (string, error)
}

// placementStore is the placement persistence the service depends on
type placementStore interface {
	GetByGrNo(ctx context.Context, grNo string) (*models.Placement, error)
	Insert(ctx context.Context, placement *models.Placement) error
	Update(ctx context.Context, grNo, afterGraduation, docProofURL string) error
}

// placementServiceImpl implements the PlacementService interface
type placementServiceImpl struct {
	placements   placementStore
	storage      objectstorage.ObjectStorage
	cacheControl string
}

// NewPlacementService creates a new placement service instance
func NewPlacementService(placements placementStore, storage objectstorage.ObjectStorage, cacheControl string) PlacementService {
	return &placementServiceImpl{
		placements:   placements,
		storage:      storage,
		cacheControl: cacheControl,
	}
}

// UploadProof runs the upsert-with-side-effect workflow: the new object is
// uploaded first, the previous object is deleted best-effort only after the
// new upload succeeded, and the row change is committed last. A database
// failure leaves the freshly uploaded object orphaned; that window is
// accepted in exchange for never committing a row that points at a missing
// object.
func (s *placementServiceImpl) UploadProof(ctx context.Context, grNo, status, filename string, file io.Reader) (string, error) {
	if strings.TrimSpace(grNo) == "" || strings.TrimSpace(status) == "" {
		return "", apperrors.NewValidationError("missing required fields")
	}
	if file == nil || filename == "" {
		return "", apperrors.NewValidationError("no file provided")
	}

	ext, err := validateExtension(filename)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("%s/%s_%s_%s%s", placementProofPrefix, grNo, status, uuid.New().String(), ext)

	err = s.storage.Upload(ctx, key, contentTypeForExt(ext), file, objectstorage.UploadOptions{
		CacheControl: s.cacheControl,
	})
	if err != nil {
		return "", apperrors.NewUploadError(err.Error())
	}

	fileURL := s.storage.PublicURL(key)
	logger.Info().Str("grNo", grNo).Str("key", key).Msg("Placement proof uploaded")

	existing, err := s.placements.GetByGrNo(ctx, grNo)
	switch {
	case err == nil:
		// Replace: clean up the superseded object before overwriting the
		// row. Cleanup failure is logged and deliberately discarded.
		if oldKey := proofKeyFromURL(existing.DocProofURL); oldKey != "" {
			if removeErr := s.storage.Remove(ctx, oldKey); removeErr != nil {
				logger.Warn().Err(removeErr).Str("key", oldKey).Msg("Could not delete old placement proof")
			}
		}
		if err := s.placements.Update(ctx, grNo, status, fileURL); err != nil {
			return "", apperrors.NewDatabaseError(err.Error())
		}
	case errors.Is(err, repositories.ErrPlacementNotFound):
		placement := &models.Placement{
			GrNo:            grNo,
			AfterGraduation: status,
			DocProofURL:     fileURL,
		}
		if err := s.placements.Insert(ctx, placement); err != nil {
			if errors.Is(err, apperrors.ErrStudentNotFound) {
				return "", err
			}
			return "", apperrors.NewDatabaseError(err.Error())
		}
	default:
		return "", apperrors.NewDatabaseError(err.Error())
	}

	return fileURL, nil
}

// proofKeyFromURL rebuilds the storage key from a stored public URL's
// trailing path segment. Stored URLs carry path-escaped segments; the key
// handed to the gateway must be the raw form.
func proofKeyFromURL(fileURL string) string {
	name := path.Base(fileURL)
	if name == "" || name == "." || name == "/" {
		return ""
	}
	if unescaped, err := url.PathUnescape(name); err == nil {
		name = unescaped
	}
	return placementProofPrefix + "/" + name
}
