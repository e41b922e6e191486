package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mams/backend/internal/app/models"
	"github.com/mams/backend/internal/pkg/apperrors"
	"github.com/mams/backend/internal/pkg/dberrors"
	"github.com/mams/backend/internal/pkg/logger"
)

// ErrPlacementNotFound is returned when no placement row exists for a student.
var ErrPlacementNotFound = errors.New("placement not found")

// PlacementRepository handles placement database operations
type PlacementRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewPlacementRepository creates a new PlacementRepository
func NewPlacementRepository(db *pgxpool.Pool) *PlacementRepository {
	return &PlacementRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetByGrNo retrieves the placement row for a student
func (r *PlacementRepository) GetByGrNo(ctx context.Context, grNo string) (*models.Placement, error) {
	sql, args, err := r.sb.Select("gr_no", "after_graduation", "doc_proof_url", "created_at", "updated_at").
		From("placement").
		Where(squirrel.Eq{"gr_no": grNo}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get placement SQL")
		return nil, fmt.Errorf("failed to build get placement query: %w", err)
	}

	placement := &models.Placement{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&placement.GrNo,
		&placement.AfterGraduation,
		&placement.DocProofURL,
		&placement.CreatedAt,
		&placement.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPlacementNotFound
		}
		logger.Error().Err(err).Str("grNo", grNo).Msg("Error scanning placement row")
		return nil, fmt.Errorf("error getting placement: %w", err)
	}

	return placement, nil
}

// Insert creates a new placement row
func (r *PlacementRepository) Insert(ctx context.Context, placement *models.Placement) error {
	sql, args, err := r.sb.Insert("placement").
		Columns("gr_no", "after_graduation", "doc_proof_url").
		Values(placement.GrNo, placement.AfterGraduation, placement.DocProofURL).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building insert placement SQL")
		return fmt.Errorf("failed to build insert placement query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		// The gr_no foreign key failing means the student row is gone
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Str("grNo", placement.GrNo).Msg("Error executing insert placement query")
		return fmt.Errorf("error inserting placement: %w", err)
	}

	return nil
}

// Update overwrites status and proof URL on an existing row, advancing
// updated_at and leaving created_at untouched.
func (r *PlacementRepository) Update(ctx context.Context, grNo, afterGraduation, docProofURL string) error {
	sql, args, err := r.sb.Update("placement").
		SetMap(map[string]interface{}{
			"after_graduation": afterGraduation,
			"doc_proof_url":    docProofURL,
		}).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"gr_no": grNo}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update placement SQL")
		return fmt.Errorf("failed to build update placement query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("grNo", grNo).Msg("Error executing update placement query")
		return fmt.Errorf("error updating placement: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrPlacementNotFound
	}

	return nil
}
