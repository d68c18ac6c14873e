package entities

import (
	"errors"
	"time"

	"github.com/rafabene/kitanda-backend/internal/domain/valueobjects"
)

var (
	ErrInvalidUserData = errors.New("invalid user data")
)

// User representa um usuário do sistema (vendedor ou administrador)
type User struct {
	ID            string
	Email         valueobjects.Email
	Name          string
	Phone         *string
	PasswordHash  string
	Role          Role
	IsActive      bool
	EmailVerified bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsAdmin verifica se o usuário é admin
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanLogin indica se o usuário pode autenticar
func (u *User) CanLogin() bool {
	return u.IsActive
}

// Validate valida regras de negócio da entidade User
func (u *User) Validate() error {
	if u.Email.String() == "" {
		return errors.New("email is required")
	}

	if len([]rune(u.Name)) < 2 {
		return errors.New("name must be at least 2 characters")
	}

	if u.PasswordHash == "" {
		return errors.New("password hash is required")
	}

	if !u.Role.IsValid() {
		return errors.New("invalid role")
	}

	return nil
}
