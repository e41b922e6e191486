package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all repository instances
type Repositories struct {
	UserRepository       *UserRepository
	StudentRepository    *StudentRepository
	PlacementRepository  *PlacementRepository
	EnrollmentRepository *EnrollmentRepository
}

// NewRepositories creates all repositories sharing one connection pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:       NewUserRepository(db),
		StudentRepository:    NewStudentRepository(db),
		PlacementRepository:  NewPlacementRepository(db),
		EnrollmentRepository: NewEnrollmentRepository(db),
	}
}
