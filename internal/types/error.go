package types

import "fmt"

// Severity levels used in uuAppErrorMap entries.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// AppError is a single uuAppErrorMap entry.
type AppError struct {
	Message  string   `json:"message"`
	Details  []string `json:"details,omitempty"`
	Severity string   `json:"severity"`
}

// ErrorMap is the uuAppErrorMap carried in every response body, keyed by a
// command-scoped diagnostic code such as "shoppingListCreate/invalidDtoIn".
// Always initialize with NewErrorMap so it marshals as {} and never null.
type ErrorMap map[string]AppError

// NewErrorMap returns an empty, non-nil ErrorMap.
func NewErrorMap() ErrorMap {
	return ErrorMap{}
}

// StatusError is an error carrying an HTTP status and a diagnostic code.
// Handlers normally respond directly; StatusError is for errors that escape
// to the central fiber error handler.
type StatusError struct {
	Status  int
	Code    string
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%d %s: %s", e.Status, e.Code, e.Message)
}
