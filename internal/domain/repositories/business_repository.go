package repositories

import (
	"context"

	"github.com/rafabene/kitanda-backend/internal/domain/entities"
)

// Campos lógicos aceitos em ListQuery para negócios
const (
	BusinessFieldOwnerID     = "ownerId"
	BusinessFieldCategory    = "category"
	BusinessFieldCity        = "city"
	BusinessFieldIsActive    = "isActive"
	BusinessFieldName        = "name"
	BusinessFieldDescription = "description"
	BusinessFieldCreatedAt   = "createdAt"
	BusinessFieldID          = "id"
)

// BusinessRepository define a interface para persistência de negócios.
// Find* retornam (nil, nil) quando o registro não existe.
type BusinessRepository interface {
	Create(ctx context.Context, business *entities.Business) error
	FindByID(ctx context.Context, id string) (*entities.Business, error)
	FindBySlug(ctx context.Context, slug string) (*entities.Business, error)
	// FindDetailed carrega o dono e os produtos disponíveis
	FindDetailed(ctx context.Context, id string) (*entities.Business, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	Update(ctx context.Context, business *entities.Business) error
	Delete(ctx context.Context, id string) error
	// IncrementViews soma 1 ao contador de forma atômica no banco
	IncrementViews(ctx context.Context, id string) error
	List(ctx context.Context, query *ListQuery) (Page[*entities.Business], error)
}
