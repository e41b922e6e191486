package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mams/backend/internal/app/models/dto"
	"github.com/mams/backend/internal/app/services"
	"github.com/mams/backend/internal/middleware"
	"github.com/mams/backend/internal/pkg/logger"
)

// PlacementController handles the placement proof upload endpoint
type PlacementController struct {
	placementService services.PlacementService
}

// NewPlacementController creates a new PlacementController
func NewPlacementController(placementService services.PlacementService) *PlacementController {
	return &PlacementController{placementService: placementService}
}

// UploadPlacementDetails accepts a multipart request with the proof file
// plus gr_no and status form fields, and upserts the placement record.
func (c *PlacementController) UploadPlacementDetails(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("proof")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "No file provided")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	grNo := ctx.PostForm("gr_no")
	status := ctx.PostForm("status")
	if grNo == "" || status == "" {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Missing required fields")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Could not read uploaded file")
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(errorDetail))
		return
	}
	defer file.Close()

	fileURL, err := c.placementService.UploadProof(ctx, grNo, status, fileHeader.Filename, file)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.PlacementUploadResponse{
		Message: "Placement details uploaded successfully",
		FileURL: fileURL,
	})
}
