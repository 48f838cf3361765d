package assigning

import (
	"errors"
	"fmt"
)

// Erros específicos para o cadastro de order bookers
var (
	// Erros de validação
	ErrNameRequired        = errors.New("order booker name is required")
	ErrContactRequired     = errors.New("order booker contact is required")
	ErrNegativeTotalShops  = errors.New("total shops cannot be negative")
	ErrOrderBookerNotFound = errors.New("order booker not found")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("database operation error")
)

// AssignmentError é um erro com contexto adicional para o cadastro de order bookers
type AssignmentError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Contact string // Contato envolvido (quando aplicável)
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *AssignmentError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *AssignmentError) Unwrap() error {
	return e.Err
}

// NewAssignmentError cria um novo AssignmentError
func NewAssignmentError(err error, code string, details string) *AssignmentError {
	return &AssignmentError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewAssignmentErrorWithContact cria um novo AssignmentError com o contato do order booker
func NewAssignmentErrorWithContact(err error, code string, contact string, details string) *AssignmentError {
	return &AssignmentError{
		Err:     err,
		Code:    code,
		Contact: contact,
		Details: details,
	}
}
