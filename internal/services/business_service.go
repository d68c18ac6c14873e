package services

import (
	"context"
	"fmt"

	"github.com/rafabene/kitanda-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/kitanda-backend/internal/domain/errors"
	"github.com/rafabene/kitanda-backend/internal/domain/ports"
	"github.com/rafabene/kitanda-backend/internal/domain/repositories"
)

// ResourceBusiness identifica negócios nas métricas
const ResourceBusiness = "business"

// BusinessService contém a lógica de negócio do diretório de negócios
type BusinessService struct {
	businessRepo repositories.BusinessRepository
	productRepo  repositories.ProductRepository
	uow          ports.UnitOfWork
	slugs        slugAllocator
	recorder     Recorder
	logger       ports.Logger
}

// NewBusinessService cria um novo BusinessService
func NewBusinessService(
	businessRepo repositories.BusinessRepository,
	productRepo repositories.ProductRepository,
	uow ports.UnitOfWork,
	clock ports.Clock,
	recorder Recorder,
	logger ports.Logger,
) *BusinessService {
	if clock == nil {
		clock = ports.SystemClock
	}
	if recorder == nil {
		recorder = NopRecorder
	}
	return &BusinessService{
		businessRepo: businessRepo,
		productRepo:  productRepo,
		uow:          uow,
		slugs:        slugAllocator{exists: businessRepo.SlugExists, clock: clock},
		recorder:     recorder,
		logger:       logger.With("component", "business"),
	}
}

// BusinessInput representa os campos editáveis de um negócio, já validados
type BusinessInput struct {
	Name        string
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
	// IsActive nil mantém o valor atual (ou true na criação)
	IsActive *bool
}

func (in BusinessInput) applyTo(b *entities.Business) {
	b.Name = in.Name
	b.Description = in.Description
	b.Category = in.Category
	b.Location = in.Location
	b.City = in.City
	b.Country = in.Country
	b.Phone = in.Phone
	b.Email = in.Email
	b.Website = in.Website
	b.WhatsApp = in.WhatsApp
	b.Logo = in.Logo
	b.CoverImage = in.CoverImage
	if in.IsActive != nil {
		b.IsActive = *in.IsActive
	}
	if b.Country == "" {
		b.Country = entities.DefaultCountry
	}
}

// BusinessFilter são os filtros aceitos na listagem pública
type BusinessFilter struct {
	Category string
	City     string
	Search   string
	Page     int
	Limit    int
}

// Create cadastra um negócio pertencente à identidade
func (s *BusinessService) Create(ctx context.Context, identity ports.Claims, payload Payload[BusinessInput]) (*entities.Business, error) {
	if err := payload.Validate(); err != nil {
		return nil, err
	}

	business := &entities.Business{OwnerID: identity.UserID, IsActive: true}
	payload.Input().applyTo(business)

	err := s.slugs.create(ctx, business.Name, func(slug string) error {
		business.Slug = slug
		return s.businessRepo.Create(ctx, business)
	})
	if err != nil {
		return nil, fmt.Errorf("create business: %w", err)
	}

	s.logger.Info("business created", "business_id", business.ID, "slug", business.Slug, "owner_id", identity.UserID)

	return s.reload(ctx, business.ID)
}

// Get retorna o negócio com dono e produtos disponíveis e conta uma visualização.
// O retorno reflete o estado lido antes do incremento.
func (s *BusinessService) Get(ctx context.Context, id string) (*entities.Business, error) {
	business, err := s.businessRepo.FindDetailed(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find business: %w", err)
	}
	if business == nil {
		return nil, domainerrors.ErrBusinessNotFound
	}

	if err := s.businessRepo.IncrementViews(ctx, id); err != nil {
		return nil, fmt.Errorf("increment business views: %w", err)
	}
	s.recorder.ResourceViewed(ResourceBusiness)

	return business, nil
}

// GetBySlug resolve o slug e se comporta como Get
func (s *BusinessService) GetBySlug(ctx context.Context, slug string) (*entities.Business, error) {
	business, err := s.businessRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("find business by slug: %w", err)
	}
	if business == nil {
		return nil, domainerrors.ErrBusinessNotFound
	}
	return s.Get(ctx, business.ID)
}

// Update altera um negócio. Ordem: existe (404) -> posse (401) -> validação (422).
func (s *BusinessService) Update(ctx context.Context, identity ports.Claims, id string, payload Payload[BusinessInput]) (*entities.Business, error) {
	business, err := s.authorize(ctx, identity, id, domainerrors.MsgNotAuthorizedUpdateBusiness)
	if err != nil {
		return nil, err
	}

	if err := payload.Validate(); err != nil {
		return nil, err
	}

	payload.Input().applyTo(business)
	if err := s.businessRepo.Update(ctx, business); err != nil {
		return nil, fmt.Errorf("update business: %w", err)
	}

	s.logger.Info("business updated", "business_id", id, "by", identity.UserID)

	return s.reload(ctx, id)
}

// Delete remove o negócio e seus produtos na mesma transação
func (s *BusinessService) Delete(ctx context.Context, identity ports.Claims, id string) error {
	if _, err := s.authorize(ctx, identity, id, domainerrors.MsgNotAuthorizedDeleteBusiness); err != nil {
		return err
	}

	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.productRepo.DeleteByBusiness(txCtx, id); err != nil {
			return err
		}
		return s.businessRepo.Delete(txCtx, id)
	})
	if err != nil {
		return fmt.Errorf("delete business: %w", err)
	}

	s.logger.Info("business deleted", "business_id", id, "by", identity.UserID)
	return nil
}

// List lista apenas negócios ativos, do mais novo para o mais antigo
func (s *BusinessService) List(ctx context.Context, filter BusinessFilter) (repositories.Page[*entities.Business], error) {
	query := repositories.NewListQuery().
		Where(repositories.BusinessFieldIsActive, true).
		Where(repositories.BusinessFieldCategory, filter.Category).
		Where(repositories.BusinessFieldCity, filter.City).
		SearchIn(filter.Search, repositories.BusinessFieldName, repositories.BusinessFieldDescription).
		OrderBy(repositories.BusinessFieldCreatedAt, true).
		OrderBy(repositories.BusinessFieldID, true).
		Paginate(filter.Page, filter.Limit)

	return s.businessRepo.List(ctx, query)
}

// ListOwned lista os negócios da identidade, inclusive os inativos
func (s *BusinessService) ListOwned(ctx context.Context, identity ports.Claims, page, limit int) (repositories.Page[*entities.Business], error) {
	query := repositories.NewListQuery().
		Where(repositories.BusinessFieldOwnerID, identity.UserID).
		OrderBy(repositories.BusinessFieldCreatedAt, true).
		OrderBy(repositories.BusinessFieldID, true).
		Paginate(page, limit)

	return s.businessRepo.List(ctx, query)
}

// authorize busca o negócio e confere a posse
func (s *BusinessService) authorize(ctx context.Context, identity ports.Claims, id, deniedMsg string) (*entities.Business, error) {
	business, err := s.businessRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find business: %w", err)
	}
	if business == nil {
		return nil, domainerrors.ErrBusinessNotFound
	}

	if !CanMutate(identity, business.OwnerID) {
		s.logger.Warn("business mutation denied", "business_id", id, "user_id", identity.UserID)
		return nil, domainerrors.NewNotOwnerError(deniedMsg)
	}

	return business, nil
}

func (s *BusinessService) reload(ctx context.Context, id string) (*entities.Business, error) {
	business, err := s.businessRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reload business: %w", err)
	}
	if business == nil {
		return nil, domainerrors.ErrBusinessNotFound
	}
	return business, nil
}
