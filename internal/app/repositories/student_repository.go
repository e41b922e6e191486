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

// StudentRepository handles student database operations
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateStudent inserts a new student row
func (r *StudentRepository) CreateStudent(ctx context.Context, student *models.Student) error {
	sql, args, err := r.sb.Insert("students").
		Columns("gr_no", "name", "enroll_no", "academic_year").
		Values(student.GrNo, student.Name, student.EnrollNo, student.AcademicYear).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create student SQL")
		return fmt.Errorf("failed to build create student query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrStudentAlreadyExists
		}
		logger.Error().Err(err).Str("grNo", student.GrNo).Msg("Error executing create student query")
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// ExistsByGrNoOrEnrollNo checks both uniqueness constraints in one query
func (r *StudentRepository) ExistsByGrNoOrEnrollNo(ctx context.Context, grNo, enrollNo string) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("students").
		Where(squirrel.Or{squirrel.Eq{"gr_no": grNo}, squirrel.Eq{"enroll_no": enrollNo}}).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building student exists SQL")
		return false, fmt.Errorf("failed to build student existence query: %w", err)
	}

	var exists bool
	err = r.db.QueryRow(ctx, sql, args...).Scan(&exists)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		logger.Error().Err(err).Str("grNo", grNo).Str("enrollNo", enrollNo).Msg("Error checking student existence")
		return false, fmt.Errorf("error checking student existence: %w", err)
	}

	return exists, nil
}

// GetByGrNo retrieves a student by GR number
func (r *StudentRepository) GetByGrNo(ctx context.Context, grNo string) (*models.Student, error) {
	sql, args, err := r.sb.Select("gr_no", "name", "enroll_no", "academic_year").
		From("students").
		Where(squirrel.Eq{"gr_no": grNo}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get student SQL")
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student := &models.Student{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&student.GrNo, &student.Name, &student.EnrollNo, &student.AcademicYear)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Str("grNo", grNo).Msg("Error scanning student row")
		return nil, fmt.Errorf("error getting student by GR number: %w", err)
	}

	return student, nil
}

// ListAll retrieves every student
func (r *StudentRepository) ListAll(ctx context.Context) ([]*models.Student, error) {
	sql, args, err := r.sb.Select("gr_no", "name", "enroll_no", "academic_year").
		From("students").
		OrderBy("gr_no ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list students SQL")
		return nil, fmt.Errorf("failed to build list students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list students query")
		return nil, fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		student := &models.Student{}
		if err := rows.Scan(&student.GrNo, &student.Name, &student.EnrollNo, &student.AcademicYear); err != nil {
			logger.Error().Err(err).Msg("Error scanning student row during list")
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating student rows")
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, nil
}

// ListWithoutPlacement retrieves students that have no placement row yet
func (r *StudentRepository) ListWithoutPlacement(ctx context.Context) ([]*models.Student, error) {
	sql, args, err := r.sb.Select("s.gr_no", "s.name").
		From("students s").
		LeftJoin("placement p ON p.gr_no = s.gr_no").
		Where("p.gr_no IS NULL").
		OrderBy("s.gr_no ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building students without placement SQL")
		return nil, fmt.Errorf("failed to build students without placement query: %w", err)
	}

	return r.queryGrNoName(ctx, sql, args)
}

// ListWithoutDocuments retrieves students that have no enrollment document set yet
func (r *StudentRepository) ListWithoutDocuments(ctx context.Context) ([]*models.Student, error) {
	sql, args, err := r.sb.Select("s.gr_no", "s.name").
		From("students s").
		LeftJoin("enrollment_ratio e ON e.gr_no = s.gr_no").
		Where("e.gr_no IS NULL").
		OrderBy("s.gr_no ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building students without documents SQL")
		return nil, fmt.Errorf("failed to build students without documents query: %w", err)
	}

	return r.queryGrNoName(ctx, sql, args)
}

// queryGrNoName runs a two-column projection query shared by the set-difference listings
func (r *StudentRepository) queryGrNoName(ctx context.Context, sql string, args []interface{}) ([]*models.Student, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing student projection query")
		return nil, fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		student := &models.Student{}
		if err := rows.Scan(&student.GrNo, &student.Name); err != nil {
			logger.Error().Err(err).Msg("Error scanning student projection row")
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating student projection rows")
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, nil
}
