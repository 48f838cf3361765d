package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro da API
const (
	// Erros de autenticação (1000-1999)
	ErrInvalidCredentials    = "AUTH_001" // Credenciais inválidas
	ErrInvalidToken          = "AUTH_006" // Token inválido
	ErrExpiredToken          = "AUTH_007" // Token expirado
	ErrInsufficientPrivilege = "AUTH_008" // Privilégios insuficientes

	// Erros de validação (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrInvalidFilters      = "VAL_004" // Filtros de relatório inválidos
	ErrResourceNotFound    = "VAL_005" // Rota inexistente
	ErrMethodNotAllowed    = "VAL_006" // Método não suportado pela rota

	// Erros de pedidos (3000-3999)
	ErrOrderBookerNotFound = "ORD_001" // Order booker não cadastrado
	ErrInvalidRoute        = "ORD_002" // Rota não pertence ao order booker
	ErrInvalidQuantity     = "ORD_003" // Quantidade negativa ou dúzia não permitida
	ErrUnknownSKU          = "ORD_004" // SKU fora do catálogo
	ErrEmptyOrder          = "ORD_005" // Pedido sem quantidades
	ErrInvalidShopCounts   = "ORD_006" // Contagem de lojas inconsistente
	ErrDraftNotFound       = "ORD_007" // Rascunho não encontrado

	// Erros de metas (4000-4999)
	ErrInvalidCategory = "TGT_001" // Categoria desconhecida
	ErrInvalidTarget   = "TGT_002" // Meta negativa

	// Erros de configuração
	ErrInvalidSetting = "CFG_001" // Chave ou valor de configuração inválido

	// Erros do servidor (5000-5999)
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidCredentials:    http.StatusUnauthorized,
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrInvalidFilters:        http.StatusBadRequest,
	ErrResourceNotFound:      http.StatusNotFound,
	ErrMethodNotAllowed:      http.StatusMethodNotAllowed,
	ErrOrderBookerNotFound:   http.StatusNotFound,
	ErrInvalidRoute:          http.StatusUnprocessableEntity,
	ErrInvalidQuantity:       http.StatusUnprocessableEntity,
	ErrUnknownSKU:            http.StatusUnprocessableEntity,
	ErrEmptyOrder:            http.StatusUnprocessableEntity,
	ErrInvalidShopCounts:     http.StatusUnprocessableEntity,
	ErrDraftNotFound:         http.StatusNotFound,
	ErrInvalidCategory:       http.StatusUnprocessableEntity,
	ErrInvalidTarget:         http.StatusUnprocessableEntity,
	ErrInvalidSetting:        http.StatusUnprocessableEntity,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// StatusFor devolve o status HTTP associado ao código
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}
