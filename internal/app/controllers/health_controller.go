package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mams/backend/internal/app/models/dto"
	"github.com/mams/backend/internal/pkg/logger"
)

// HealthController exposes the database connectivity probe
type HealthController struct {
	db *pgxpool.Pool
}

// NewHealthController creates a new HealthController
func NewHealthController(db *pgxpool.Pool) *HealthController {
	return &HealthController{db: db}
}

// TestDB runs a trivial query through the pool
func (c *HealthController) TestDB(ctx *gin.Context) {
	var one int
	if err := c.db.QueryRow(ctx, "SELECT 1").Scan(&one); err != nil {
		logger.Error().Err(err).Msg("Database connectivity probe failed")
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeDatabaseError, "Database connection failed")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(errorDetail))
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Database connection successful"})
}
