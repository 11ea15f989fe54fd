package apperrors

import "errors"

// Registry errors
var (
	// ErrEmptyName is returned when a required text field is blank
	ErrEmptyName = errors.New("name cannot be empty")
	// ErrDuplicateName is returned when a department name is already taken
	ErrDuplicateName = errors.New("department with this name already exists")
	// ErrUnknownDepartment is returned when a referenced department does not exist
	ErrUnknownDepartment = errors.New("department not found")
	// ErrRollNumberExhausted is returned when no unused roll number could be drawn
	ErrRollNumberExhausted = errors.New("no unused roll number available")
)

// ErrValidationFailed is returned when an input value is out of range
var ErrValidationFailed = errors.New("validation failed")

// NewValidationError creates a new custom error for failed validation with a message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// NewUnknownDepartmentError creates a custom error naming the missing department
func NewUnknownDepartmentError(name string) error {
	return &CustomError{
		Err:     ErrUnknownDepartment,
		Message: "department '" + name + "' not found",
		Details: map[string]interface{}{"department": name},
	}
}

// NewDuplicateNameError creates a custom error naming the colliding department
func NewDuplicateNameError(name string) error {
	return &CustomError{
		Err:     ErrDuplicateName,
		Message: "department '" + name + "' already exists",
		Details: map[string]interface{}{"department": name},
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// DetailsOf returns the details attached to the first CustomError in err's chain
func DetailsOf(err error) map[string]interface{} {
	var custom *CustomError
	if errors.As(err, &custom) {
		return custom.Details
	}
	return nil
}
