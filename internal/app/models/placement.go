package models

import "time"

// Placement records a student's post-graduation status with a proof
// document, based on the 'placement' table. At most one row per student;
// the upload workflow replaces it in place and advances UpdatedAt.
type Placement struct {
	GrNo            string    `json:"gr_no" db:"gr_no"`
	AfterGraduation string    `json:"after_graduation" db:"after_graduation"`
	DocProofURL     string    `json:"doc_proof_url" db:"doc_proof_url"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}
