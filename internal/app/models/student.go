package models

// Student defines the student model based on the 'students' table.
// GrNo is the institution's registration identifier and the primary key;
// EnrollNo is independently unique.
type Student struct {
	GrNo         string `json:"gr_no" db:"gr_no"`
	Name         string `json:"name" db:"name"`
	EnrollNo     string `json:"enroll_no" db:"enroll_no"`
	AcademicYear string `json:"academic_year" db:"academic_year"`
}
