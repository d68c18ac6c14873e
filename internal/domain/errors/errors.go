package errors

import "errors"

// Erros de negócio
// Nota: o texto de cada erro é o message ID usado pelo i18n.
// As traduções ficam em internal/infrastructure/i18n/locales/*.json
var (
	ErrUserNotFound           = errors.New("error.user_not_found")
	ErrEmailAlreadyRegistered = errors.New("error.email_already_registered")
	ErrInvalidCredentials     = errors.New("error.invalid_credentials")
	ErrUnauthorized           = errors.New("error.unauthorized")
	ErrBusinessNotFound       = errors.New("error.business_not_found")
	ErrProductNotFound        = errors.New("error.product_not_found")
	ErrTooManyRequests        = errors.New("error.too_many_requests")
	ErrInvalidBody            = errors.New("error.invalid_body")
	ErrInternal               = errors.New("error.internal")
)

// Categorias usadas para mapear DomainError em status HTTP
var (
	ErrValidation = errors.New("error.validation")
	ErrNotOwner   = errors.New("error.not_owner")
)

// Erros de persistência
var (
	ErrSlugTaken      = errors.New("slug already taken")
	ErrDuplicateEmail = errors.New("email already taken")
)

// Message IDs das negações de posse, um por operação
const (
	MsgNotAuthorizedUpdateBusiness = "error.not_authorized.update_business"
	MsgNotAuthorizedDeleteBusiness = "error.not_authorized.delete_business"
	MsgNotAuthorizedAddProducts    = "error.not_authorized.add_products"
	MsgNotAuthorizedUpdateProduct  = "error.not_authorized.update_product"
	MsgNotAuthorizedDeleteProduct  = "error.not_authorized.delete_product"
)

// DomainError representa um erro de domínio com contexto adicional.
// Message é o message ID a ser traduzido; Err é a categoria (ErrValidation, ErrNotOwner, ...).
type DomainError struct {
	Message string
	Field   string
	Err     error
}

func (e *DomainError) Error() string {
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewValidationError cria um erro de validação para o primeiro campo inválido
func NewValidationError(field, messageID string) *DomainError {
	return &DomainError{Message: messageID, Field: field, Err: ErrValidation}
}

// NewNotOwnerError cria um erro de autorização com a mensagem específica da operação
func NewNotOwnerError(messageID string) *DomainError {
	return &DomainError{Message: messageID, Err: ErrNotOwner}
}

// MessageID retorna o message ID de qualquer erro de domínio
func MessageID(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Message
	}
	return err.Error()
}
