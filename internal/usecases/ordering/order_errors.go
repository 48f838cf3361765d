package ordering

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de pedidos
var (
	// Erros de validação
	ErrOBContactRequired   = errors.New("ob contact is required")
	ErrRouteRequired       = errors.New("route is required")
	ErrInvalidDate         = errors.New("invalid order date")
	ErrOrderBookerNotFound = errors.New("order booker not found")
	ErrRouteNotAssigned    = errors.New("route does not belong to order booker")
	ErrNegativeQuantity    = errors.New("negative quantity")
	ErrDozensNotAllowed    = errors.New("dozen entry not allowed for sku")
	ErrUnknownSKU          = errors.New("unknown sku")
	ErrUnknownCategory     = errors.New("unknown category")
	ErrInvalidShopCounts   = errors.New("invalid shop counts")
	ErrEmptyOrder          = errors.New("order has no quantities")
	ErrDraftRequired       = errors.New("draft data is required")
	ErrDraftNotFound       = errors.New("draft not found")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("database operation error")

	ErrGenerateID = errors.New("error generating id")
)

// OrderError é um erro com contexto adicional para pedidos
type OrderError struct {
	Err       error  // Erro base
	Code      string // Código de erro para API
	OBContact string // Order booker envolvido (quando aplicável)
	Details   string // Detalhes adicionais
}

// Error implementa a interface error
func (e *OrderError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *OrderError) Unwrap() error {
	return e.Err
}

// NewOrderError cria um novo OrderError
func NewOrderError(err error, code string, details string) *OrderError {
	return &OrderError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewOrderErrorWithContact cria um novo OrderError com o contato do order booker
func NewOrderErrorWithContact(err error, code string, obContact string, details string) *OrderError {
	return &OrderError{
		Err:       err,
		Code:      code,
		OBContact: obContact,
		Details:   details,
	}
}

// IsValidationError verifica se o erro foi causado pela entrada do usuário
func IsValidationError(err error) bool {
	var orderErr *OrderError
	if !errors.As(err, &orderErr) {
		return false
	}
	return !errors.Is(err, ErrDatabaseOperation) && !errors.Is(err, ErrGenerateID)
}
