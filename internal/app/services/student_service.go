package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/mams/backend/internal/app/models"
	"github.com/mams/backend/internal/app/models/dto"
	"github.com/mams/backend/internal/pkg/apperrors"
	"github.com/mams/backend/internal/pkg/logger"
)

// StudentService defines the interface for student record operations
type StudentService interface {
	AddStudent(ctx context.Context, student *models.Student) error
	ListAllStudents(ctx context.Context) ([]dto.StudentGrNo, error)
	ListAvailableForPlacement(ctx context.Context) ([]dto.AvailableStudent, error)
	ListAvailableForDocuments(ctx context.Context) ([]dto.AvailableStudent, error)
}

// studentStore is the student persistence the service depends on
type studentStore interface {
	CreateStudent(ctx context.Context, student *models.Student) error
	ExistsByGrNoOrEnrollNo(ctx context.Context, grNo, enrollNo string) (bool, error)
	ListAll(ctx context.Context) ([]*models.Student, error)
	ListWithoutPlacement(ctx context.Context) ([]*models.Student, error)
	ListWithoutDocuments(ctx context.Context) ([]*models.Student, error)
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	students studentStore
}

// NewStudentService creates a new student service instance
func NewStudentService(students studentStore) StudentService {
	return &studentServiceImpl{students: students}
}

// AddStudent creates a student record. A student with the same GR number
// OR the same enrollment number already existing is a conflict; the
// collection is left unchanged.
func (s *studentServiceImpl) AddStudent(ctx context.Context, student *models.Student) error {
	if student == nil {
		return apperrors.NewValidationError("student is nil")
	}
	if strings.TrimSpace(student.GrNo) == "" ||
		strings.TrimSpace(student.Name) == "" ||
		strings.TrimSpace(student.EnrollNo) == "" ||
		strings.TrimSpace(student.AcademicYear) == "" {
		return apperrors.NewValidationError("missing student details")
	}

	exists, err := s.students.ExistsByGrNoOrEnrollNo(ctx, student.GrNo, student.EnrollNo)
	if err != nil {
		return fmt.Errorf("error checking existing student: %w", err)
	}
	if exists {
		return apperrors.ErrStudentAlreadyExists
	}

	if err := s.students.CreateStudent(ctx, student); err != nil {
		return err
	}

	logger.Info().Str("grNo", student.GrNo).Msg("Student added")
	return nil
}

// ListAllStudents returns the GR number of every student
func (s *studentServiceImpl) ListAllStudents(ctx context.Context) ([]dto.StudentGrNo, error) {
	students, err := s.students.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}

	list := make([]dto.StudentGrNo, 0, len(students))
	for _, student := range students {
		list = append(list, dto.StudentGrNo{GrNo: student.GrNo})
	}
	return list, nil
}

// ListAvailableForPlacement returns students with no placement row
func (s *studentServiceImpl) ListAvailableForPlacement(ctx context.Context) ([]dto.AvailableStudent, error) {
	students, err := s.students.ListWithoutPlacement(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing students without placement: %w", err)
	}
	return toAvailableStudents(students), nil
}

// ListAvailableForDocuments returns students with no enrollment document set
func (s *studentServiceImpl) ListAvailableForDocuments(ctx context.Context) ([]dto.AvailableStudent, error) {
	students, err := s.students.ListWithoutDocuments(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing students without documents: %w", err)
	}
	return toAvailableStudents(students), nil
}

func toAvailableStudents(students []*models.Student) []dto.AvailableStudent {
	list := make([]dto.AvailableStudent, 0, len(students))
	for _, student := range students {
		list = append(list, dto.AvailableStudent{GrNo: student.GrNo, Name: student.Name})
	}
	return list
}
