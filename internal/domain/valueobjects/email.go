package valueobjects

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail = errors.New("invalid email format")

	emailPattern = regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)
)

// Email é um value object normalizado (minúsculo, sem espaços)
type Email struct {
	value string
}

// NewEmail cria um novo Email validado
func NewEmail(email string) (Email, error) {
	email = NormalizeEmail(email)

	if len(email) < 3 || len(email) > 254 || !emailPattern.MatchString(email) {
		return Email{}, ErrInvalidEmail
	}

	return Email{value: email}, nil
}

// NormalizeEmail aplica a mesma normalização usada na persistência,
// para que login e cadastro comparem o mesmo valor
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// String retorna o valor do email
func (e Email) String() string {
	return e.value
}
