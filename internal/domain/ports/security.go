package ports

import "github.com/rafabene/kitanda-backend/internal/domain/entities"

// Claims é a identidade embutida em um token assinado
type Claims struct {
	UserID string
	Email  string
	Role   entities.Role
}

// IsAdmin indica se a identidade tem papel ADMIN
func (c Claims) IsAdmin() bool {
	return c.Role == entities.RoleAdmin
}

// PasswordHasher gera e confere hashes de senha
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

// TokenService emite e verifica tokens de autenticação.
// Verify não distingue o motivo da falha (expirado, malformado ou adulterado).
type TokenService interface {
	Issue(claims Claims) (string, error)
	Verify(token string) (Claims, bool)
}
