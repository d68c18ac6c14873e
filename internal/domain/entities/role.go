package entities

// Role representa o papel de um usuário no marketplace
type Role string

const (
	RoleSeller Role = "SELLER"
	RoleAdmin  Role = "ADMIN"
)

// IsValid verifica se o role é conhecido
func (r Role) IsValid() bool {
	return r == RoleSeller || r == RoleAdmin
}

func (r Role) String() string {
	return string(r)
}
