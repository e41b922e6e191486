package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/mams/backend/internal/app/models/dto"
	"github.com/mams/backend/internal/pkg/apperrors"
)

// HandleAPIError converts service errors to JSON responses. Every handler
// funnels its failures through here so no error crosses the HTTP boundary
// unconverted. Uniqueness conflicts map to 400, matching the API contract
// the frontend was built against.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrUserAlreadyExists):
		c.JSON(400, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "User already exists")))

	case errors.Is(err, apperrors.ErrStudentAlreadyExists):
		c.JSON(400, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists,
				"Student already exists with this GR number or enrollment number")))

	case errors.Is(err, apperrors.ErrDocumentsAlreadyExist):
		c.JSON(400, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Documents already uploaded for this student")))

	case errors.Is(err, apperrors.ErrUnsupportedFileType):
		c.JSON(400, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnsupportedFile,
				"Only PDF and image files (JPG, JPEG, PNG) are allowed")))

	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(400, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())))

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(401, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid credentials")))

	case errors.Is(err, apperrors.ErrStudentNotFound):
		c.JSON(404, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Student not found")))

	case errors.Is(err, apperrors.ErrUploadFailed):
		c.JSON(500, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeStorageError, err.Error())))

	case errors.Is(err, apperrors.ErrDatabase):
		c.JSON(500, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeDatabaseError, err.Error())))

	default:
		c.JSON(500, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")))
	}
}
