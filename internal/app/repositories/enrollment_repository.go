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

// EnrollmentRepository handles enrollment document set persistence
type EnrollmentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewEnrollmentRepository creates a new EnrollmentRepository
func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// ExistsByGrNo checks whether a document set has been stored for a student
func (r *EnrollmentRepository) ExistsByGrNo(ctx context.Context, grNo string) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("enrollment_ratio").
		Where(squirrel.Eq{"gr_no": grNo}).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building enrollment exists SQL")
		return false, fmt.Errorf("failed to build enrollment existence query: %w", err)
	}

	var exists bool
	err = r.db.QueryRow(ctx, sql, args...).Scan(&exists)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		logger.Error().Err(err).Str("grNo", grNo).Msg("Error checking enrollment existence")
		return false, fmt.Errorf("error checking enrollment existence: %w", err)
	}

	return exists, nil
}

// Insert creates the one-and-only enrollment document row for a student
func (r *EnrollmentRepository) Insert(ctx context.Context, docs *models.EnrollmentDocuments) error {
	sql, args, err := r.sb.Insert("enrollment_ratio").
		Columns("gr_no", "registration_form_url", "marks10_url", "marks12_url", "gujcet_marksheet_url").
		Values(docs.GrNo, docs.RegistrationFormURL, docs.Marks10URL, docs.Marks12URL, docs.GujcetMarksheetURL).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building insert enrollment SQL")
		return fmt.Errorf("failed to build insert enrollment query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrDocumentsAlreadyExist
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Str("grNo", docs.GrNo).Msg("Error executing insert enrollment query")
		return fmt.Errorf("error inserting enrollment documents: %w", err)
	}

	return nil
}
