package dto

import (
	"github.com/gin-gonic/gin"

	"github.com/rafabene/kitanda-backend/internal/domain/repositories"
)

// Envelope é o formato único de resposta da API
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// NewSuccess monta um envelope de sucesso; messageKey vazio omite a mensagem
func NewSuccess(c *gin.Context, data any, messageKey string) Envelope {
	env := Envelope{Success: true, Data: data}
	if messageKey != "" {
		env.Message = T(c, messageKey)
	}
	return env
}

// NewError monta um envelope de erro com a mensagem traduzida
func NewError(c *gin.Context, messageKey string, params ...map[string]interface{}) Envelope {
	return Envelope{Success: false, Error: T(c, messageKey, params...)}
}

// PaginationResponse descreve a página devolvida por uma listagem
type PaginationResponse struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// ToPaginationResponse extrai os metadados de paginação de uma página
func ToPaginationResponse[T any](page repositories.Page[T]) PaginationResponse {
	return PaginationResponse{
		Page:       page.Page,
		Limit:      page.Limit,
		Total:      page.Total,
		TotalPages: page.TotalPages(),
	}
}

// optional converte string vazia em nil
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
