package reporting

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidWindow     = errors.New("invalid report window")
	ErrInvalidDateRange  = errors.New("start date after end date")
	ErrDatabaseOperation = errors.New("database operation error")
)

// ReportError é um erro com contexto adicional para relatórios
type ReportError struct {
	Err     error
	Code    string
	Details string
}

func (e *ReportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ReportError) Unwrap() error {
	return e.Err
}

func NewReportError(err error, code string, details string) *ReportError {
	return &ReportError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
