package models

import "time"

// EnrollmentDocuments holds the four document URLs required for
// enrollment-ratio reporting, based on the 'enrollment_ratio' table.
// Created exactly once per student; there is no update path.
type EnrollmentDocuments struct {
	GrNo                string    `json:"gr_no" db:"gr_no"`
	RegistrationFormURL string    `json:"registration_form_url" db:"registration_form_url"`
	Marks10URL          string    `json:"marks10_url" db:"marks10_url"`
	Marks12URL          string    `json:"marks12_url" db:"marks12_url"`
	GujcetMarksheetURL  string    `json:"gujcet_marksheet_url" db:"gujcet_marksheet_url"`
	CreatedAt           time.Time `json:"created_at" db:"created_at"`
}
