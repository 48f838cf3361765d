package targeting

import (
	"errors"
	"fmt"
)

// Erros específicos para metas
var (
	ErrOBContactRequired   = errors.New("ob contact is required")
	ErrOrderBookerNotFound = errors.New("order booker not found")
	ErrInvalidCategory     = errors.New("invalid category")
	ErrInvalidTarget       = errors.New("invalid target")
	ErrDatabaseOperation   = errors.New("database operation error")
)

// TargetError é um erro com contexto adicional para metas
type TargetError struct {
	Err     error
	Code    string
	Details string
}

func (e *TargetError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *TargetError) Unwrap() error {
	return e.Err
}

func NewTargetError(err error, code string, details string) *TargetError {
	return &TargetError{Err: err, Code: code, Details: details}
}
