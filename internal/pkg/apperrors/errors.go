package apperrors

import "errors"

// Common errors
var (
	// ErrInvalidCredentials covers unknown users and wrong passwords alike;
	// token failures carry the auth package's own sentinels.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Validation errors
	ErrValidationFailed    = errors.New("validation failed")
	ErrUnsupportedFileType = errors.New("unsupported file type")

	// User errors
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrUserNotFound      = errors.New("user not found")
)

// Student errors
var (
	ErrStudentNotFound      = errors.New("student not found")
	ErrStudentAlreadyExists = errors.New("student already exists with this GR number or enrollment number")
)

// Upload errors
var (
	// ErrDocumentsAlreadyExist is returned when an enrollment document set
	// has already been stored for a student. The workflow is one-shot.
	ErrDocumentsAlreadyExist = errors.New("documents already uploaded for this student")
	// ErrUploadFailed indicates the object storage gateway rejected a write.
	ErrUploadFailed = errors.New("upload failed")
	// ErrDatabase indicates a database commit failure after storage work.
	ErrDatabase = errors.New("database error")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a validation failure with a message
func NewValidationError(message string) error {
	return &CustomError{Err: ErrValidationFailed, Message: message}
}

// NewUploadError wraps a storage gateway rejection, keeping its message
func NewUploadError(message string) error {
	return &CustomError{Err: ErrUploadFailed, Message: message}
}

// NewDatabaseError wraps a database failure with a message
func NewDatabaseError(message string) error {
	return &CustomError{Err: ErrDatabase, Message: message}
}
