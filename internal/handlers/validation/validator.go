// Package validation valida payloads com go-playground/validator e reduz
// o resultado ao primeiro erro, já convertido em message ID do i18n.
package validation

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	domainerrors "github.com/rafabene/kitanda-backend/internal/domain/errors"
)

const (
	// MessageInvalid é usado quando a regra que falhou não tem mensagem própria
	MessageInvalid = "validation.invalid"
	// MessageTypeMismatch indica um valor JSON do tipo errado para o campo
	MessageTypeMismatch = "validation.type_mismatch"
)

// Messages mapeia "campo.regra" (ou só "campo") para o message ID.
// O campo é o nome JSON.
type Messages map[string]string

func (m Messages) lookup(field, tag string) string {
	if id, ok := m[field+"."+tag]; ok {
		return id
	}
	if id, ok := m[field]; ok {
		return id
	}
	return MessageInvalid
}

var (
	once     sync.Once
	validate *validator.Validate
)

// Engine retorna a instância compartilhada do validator (segura para uso concorrente)
func Engine() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// Struct valida obj e retorna apenas o primeiro erro, na ordem dos campos
func Struct(obj any, messages Messages) error {
	err := Engine().Struct(obj)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return domainerrors.NewValidationError("", MessageInvalid)
	}

	first := fieldErrors[0]
	return domainerrors.NewValidationError(first.Field(), messages.lookup(first.Field(), first.Tag()))
}
