package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rafabene/kitanda-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/kitanda-backend/internal/domain/errors"
	"github.com/rafabene/kitanda-backend/internal/domain/ports"
	"github.com/rafabene/kitanda-backend/internal/domain/repositories"
)

// ResourceProduct identifica produtos nas métricas
const ResourceProduct = "product"

// ProductService contém a lógica de produtos e serviços ofertados
type ProductService struct {
	productRepo  repositories.ProductRepository
	businessRepo repositories.BusinessRepository
	slugs        slugAllocator
	recorder     Recorder
	logger       ports.Logger
}

// NewProductService cria um novo ProductService
func NewProductService(
	productRepo repositories.ProductRepository,
	businessRepo repositories.BusinessRepository,
	clock ports.Clock,
	recorder Recorder,
	logger ports.Logger,
) *ProductService {
	if clock == nil {
		clock = ports.SystemClock
	}
	if recorder == nil {
		recorder = NopRecorder
	}
	return &ProductService{
		productRepo:  productRepo,
		businessRepo: businessRepo,
		slugs:        slugAllocator{exists: productRepo.SlugExists, clock: clock},
		recorder:     recorder,
		logger:       logger.With("component", "product"),
	}
}

// ProductInput representa os campos editáveis de um produto, já validados
type ProductInput struct {
	Name        string
	Description string
	Price       float64
	Currency    string
	Category    string
	IsService   bool
	Stock       *int
	Images      []string
	// IsAvailable nil mantém o valor atual (ou true na criação)
	IsAvailable *bool
}

func (in ProductInput) applyTo(p *entities.Product) {
	p.Name = in.Name
	p.Description = in.Description
	p.Price = in.Price
	p.Currency = in.Currency
	p.Category = in.Category
	p.IsService = in.IsService
	p.Stock = in.Stock
	p.Images = in.Images
	if in.IsAvailable != nil {
		p.IsAvailable = *in.IsAvailable
	}
	if p.Currency == "" {
		p.Currency = entities.DefaultCurrency
	}
	if p.Images == nil {
		p.Images = []string{}
	}
}

// ProductFilter são os filtros aceitos na listagem pública
type ProductFilter struct {
	BusinessID string
	Category   string
	Search     string
	Page       int
	Limit      int
}

// Create cadastra um produto no negócio indicado pelo payload.
// Ordem: negócio informado -> negócio existe (404) -> posse (401) -> validação (422).
func (s *ProductService) Create(ctx context.Context, identity ports.Claims, payload ProductPayload) (*entities.Product, error) {
	businessID := payload.TargetBusinessID()
	if businessID == "" {
		// corpo ilegível tem precedência sobre o negócio ausente
		if err := payload.Validate(); errors.Is(err, domainerrors.ErrInvalidBody) {
			return nil, err
		}
		return nil, domainerrors.NewValidationError("businessId", "validation.product.business_id.required")
	}

	business, err := s.businessRepo.FindByID(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("find business: %w", err)
	}
	if business == nil {
		return nil, domainerrors.ErrBusinessNotFound
	}
	if !CanMutate(identity, business.OwnerID) {
		s.logger.Warn("product creation denied", "business_id", businessID, "user_id", identity.UserID)
		return nil, domainerrors.NewNotOwnerError(domainerrors.MsgNotAuthorizedAddProducts)
	}

	if err := payload.Validate(); err != nil {
		return nil, err
	}

	product := &entities.Product{BusinessID: businessID, IsAvailable: true}
	payload.Input().applyTo(product)
	if err := product.Validate(); err != nil {
		return nil, domainerrors.NewValidationError("price", "validation.product.price.positive")
	}

	err = s.slugs.create(ctx, product.Name, func(slug string) error {
		product.Slug = slug
		return s.productRepo.Create(ctx, product)
	})
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	s.logger.Info("product created", "product_id", product.ID, "business_id", businessID)

	return s.reload(ctx, product.ID)
}

// Get retorna o produto com negócio e dono e conta uma visualização.
// O retorno reflete o estado lido antes do incremento.
func (s *ProductService) Get(ctx context.Context, id string) (*entities.Product, error) {
	product, err := s.productRepo.FindDetailed(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find product: %w", err)
	}
	if product == nil {
		return nil, domainerrors.ErrProductNotFound
	}

	if err := s.productRepo.IncrementViews(ctx, id); err != nil {
		return nil, fmt.Errorf("increment product views: %w", err)
	}
	s.recorder.ResourceViewed(ResourceProduct)

	return product, nil
}

// Update altera um produto. A posse é conferida pelo negócio dono.
func (s *ProductService) Update(ctx context.Context, identity ports.Claims, id string, payload Payload[ProductInput]) (*entities.Product, error) {
	product, err := s.authorize(ctx, identity, id, domainerrors.MsgNotAuthorizedUpdateProduct)
	if err != nil {
		return nil, err
	}

	if err := payload.Validate(); err != nil {
		return nil, err
	}

	payload.Input().applyTo(product)
	if err := product.Validate(); err != nil {
		return nil, domainerrors.NewValidationError("price", "validation.product.price.positive")
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}

	s.logger.Info("product updated", "product_id", id, "by", identity.UserID)

	return s.reload(ctx, id)
}

// Delete remove o produto
func (s *ProductService) Delete(ctx context.Context, identity ports.Claims, id string) error {
	if _, err := s.authorize(ctx, identity, id, domainerrors.MsgNotAuthorizedDeleteProduct); err != nil {
		return err
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	s.logger.Info("product deleted", "product_id", id, "by", identity.UserID)
	return nil
}

// List lista apenas produtos disponíveis, do mais novo para o mais antigo
func (s *ProductService) List(ctx context.Context, filter ProductFilter) (repositories.Page[*entities.Product], error) {
	query := repositories.NewListQuery().
		Where(repositories.ProductFieldIsAvailable, true).
		Where(repositories.ProductFieldBusinessID, filter.BusinessID).
		Where(repositories.ProductFieldCategory, filter.Category).
		SearchIn(filter.Search, repositories.ProductFieldName, repositories.ProductFieldDescription).
		OrderBy(repositories.ProductFieldCreatedAt, true).
		OrderBy(repositories.ProductFieldID, true).
		Paginate(filter.Page, filter.Limit)

	return s.productRepo.List(ctx, query)
}

func (s *ProductService) authorize(ctx context.Context, identity ports.Claims, id, deniedMsg string) (*entities.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find product: %w", err)
	}
	if product == nil {
		return nil, domainerrors.ErrProductNotFound
	}

	if !CanMutate(identity, product.OwnedBy()) {
		s.logger.Warn("product mutation denied", "product_id", id, "user_id", identity.UserID)
		return nil, domainerrors.NewNotOwnerError(deniedMsg)
	}

	return product, nil
}

func (s *ProductService) reload(ctx context.Context, id string) (*entities.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reload product: %w", err)
	}
	if product == nil {
		return nil, domainerrors.ErrProductNotFound
	}
	return product, nil
}
