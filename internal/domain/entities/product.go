package entities

import (
	"errors"
	"time"
)

// DefaultCurrency é a moeda assumida para preços (kwanza)
const DefaultCurrency = "AOA"

var ErrInvalidPrice = errors.New("price must be positive")

// Product representa um produto ou serviço oferecido por um negócio
type Product struct {
	ID          string
	BusinessID  string
	Name        string
	Slug        string
	Description string
	Price       float64
	Currency    string
	Category    string
	IsService   bool
	IsAvailable bool
	Stock       *int
	Images      []string
	Views       int64
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Business é carregado junto quando a consulta pede
	Business *Business
}

// Validate garante as invariantes de preço e estoque
func (p *Product) Validate() error {
	if p.Price <= 0 {
		return ErrInvalidPrice
	}
	if p.Stock != nil && *p.Stock < 0 {
		return errors.New("stock must be non-negative")
	}
	return nil
}

// OwnedBy retorna o dono do produto, através do negócio
func (p *Product) OwnedBy() string {
	if p.Business == nil {
		return ""
	}
	return p.Business.OwnerID
}
