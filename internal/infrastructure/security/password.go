package security

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/rafabene/kitanda-backend/internal/domain/ports"
)

// DefaultBcryptCost é o fator de trabalho usado para novos hashes
const DefaultBcryptCost = 10

// BcryptHasher implementa ports.PasswordHasher com bcrypt
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher cria um hasher com o custo informado (0 usa o padrão)
func NewBcryptHasher(cost int) ports.PasswordHasher {
	if cost == 0 {
		cost = DefaultBcryptCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify compara em tempo constante usando a própria primitiva do bcrypt
func (h *BcryptHasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
