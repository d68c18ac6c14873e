package entities

import "time"

// DefaultCountry é o país assumido quando o negócio não informa um
const DefaultCountry = "Angola"

// Business representa um negócio cadastrado no diretório
type Business struct {
	ID          string
	OwnerID     string
	Name        string
	Slug        string
	Description string
	Category    string
	Location    string
	City        string
	Country     string
	Phone       string
	Email       string
	Website     *string
	WhatsApp    *string
	Logo        *string
	CoverImage  *string
	IsVerified  bool
	IsActive    bool
	Views       int64
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Relações carregadas sob demanda
	Owner        *OwnerSummary
	Products     []*Product
	ProductCount int64
}

// OwnerSummary é o recorte público do dono de um negócio
type OwnerSummary struct {
	Name  string
	Email string
	Phone *string
}

// OwnedBy retorna o ID do usuário dono do negócio
func (b *Business) OwnedBy() string {
	return b.OwnerID
}
