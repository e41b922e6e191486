package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mams/backend/internal/app/models/dto"
	"github.com/mams/backend/internal/app/services"
	"github.com/mams/backend/internal/middleware"
	"github.com/mams/backend/internal/pkg/logger"
)

// DocumentController handles the enrollment document upload endpoint
type DocumentController struct {
	documentService services.DocumentService
}

// NewDocumentController creates a new DocumentController
func NewDocumentController(documentService services.DocumentService) *DocumentController {
	return &DocumentController{documentService: documentService}
}

// UploadDocuments accepts a multipart request carrying the four required
// enrollment documents and stores them in one shot for the student.
func (c *DocumentController) UploadDocuments(ctx *gin.Context) {
	grNo := ctx.PostForm("gr_no")
	if grNo == "" {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "GR number is required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	// Missing fields are left out of the slice; the service reports them
	// after the student and one-shot checks so the status codes keep the
	// documented precedence (404 before 400 for a missing file).
	files := make([]services.DocumentFile, 0, len(services.RequiredDocumentFields))
	for _, field := range services.RequiredDocumentFields {
		fileHeader, err := ctx.FormFile(field)
		if err != nil {
			continue
		}

		file, err := fileHeader.Open()
		if err != nil {
			logger.Error().Err(err).Str("field", field).Msg("Failed to open uploaded file")
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Could not read uploaded file")
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(errorDetail))
			return
		}
		defer file.Close()

		files = append(files, services.DocumentFile{
			Field:       field,
			Filename:    fileHeader.Filename,
			ContentType: fileHeader.Header.Get("Content-Type"),
			Reader:      file,
		})
	}

	urls, err := c.documentService.UploadDocuments(ctx, grNo, files)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DocumentsUploadResponse{
		Message: "Documents uploaded successfully",
		URLs:    urls,
	})
}
