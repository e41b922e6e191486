package dto

// AddStudentRequest represents a new student record
type AddStudentRequest struct {
	GrNo         string `json:"gr_no" binding:"required"`
	Name         string `json:"name" binding:"required"`
	EnrollNo     string `json:"enroll_no" binding:"required"`
	AcademicYear string `json:"academic_year" binding:"required"`
}

// StudentGrNo is the projection used by the full student listing
type StudentGrNo struct {
	GrNo string `json:"gr_no"`
}

// AvailableStudent is a student still missing a placement or document set
type AvailableStudent struct {
	GrNo string `json:"gr_no"`
	Name string `json:"name"`
}
