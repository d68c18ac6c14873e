package repositories

import (
	"context"

	"github.com/rafabene/kitanda-backend/internal/domain/entities"
)

// Campos lógicos aceitos em ListQuery para produtos
const (
	ProductFieldBusinessID  = "businessId"
	ProductFieldCategory    = "category"
	ProductFieldIsAvailable = "isAvailable"
	ProductFieldName        = "name"
	ProductFieldDescription = "description"
	ProductFieldCreatedAt   = "createdAt"
	ProductFieldID          = "id"
)

// ProductRepository define a interface para persistência de produtos.
// Find* retornam (nil, nil) quando o registro não existe.
type ProductRepository interface {
	Create(ctx context.Context, product *entities.Product) error
	// FindByID carrega o negócio dono junto, para a checagem de posse
	FindByID(ctx context.Context, id string) (*entities.Product, error)
	// FindDetailed carrega o negócio e o resumo do dono
	FindDetailed(ctx context.Context, id string) (*entities.Product, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	Update(ctx context.Context, product *entities.Product) error
	Delete(ctx context.Context, id string) error
	DeleteByBusiness(ctx context.Context, businessID string) error
	IncrementViews(ctx context.Context, id string) error
	List(ctx context.Context, query *ListQuery) (Page[*entities.Product], error)
}
