package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/rafabene/kitanda-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/kitanda-backend/internal/domain/errors"
	"github.com/rafabene/kitanda-backend/internal/domain/repositories"
)

var productColumns = map[string]string{
	repositories.ProductFieldID:          "products.id",
	repositories.ProductFieldBusinessID:  "products.business_id",
	repositories.ProductFieldCategory:    "products.category",
	repositories.ProductFieldIsAvailable: "products.is_available",
	repositories.ProductFieldName:        "products.name",
	repositories.ProductFieldDescription: "products.description",
	repositories.ProductFieldCreatedAt:   "products.created_at",
}

var productEditableColumns = []string{
	"name", "description", "price", "currency", "category",
	"is_service", "is_available", "stock", "images", "updated_at",
}

// ProductRepository implementa repositories.ProductRepository
type ProductRepository struct {
	db *gorm.DB
}

// NewProductRepository cria um novo ProductRepository
func NewProductRepository(db *gorm.DB) repositories.ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Create(ctx context.Context, product *entities.Product) error {
	model := productToModel(product)

	if err := dbFromContext(ctx, r.db).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrSlugTaken
		}
		return err
	}

	product.ID = model.ID
	product.CreatedAt = time.UnixMilli(model.CreatedAt)
	product.UpdatedAt = time.UnixMilli(model.UpdatedAt)
	return nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id string) (*entities.Product, error) {
	return r.findOne(dbFromContext(ctx, r.db).Preload("Business"), id)
}

func (r *ProductRepository) FindDetailed(ctx context.Context, id string) (*entities.Product, error) {
	db := dbFromContext(ctx, r.db).
		Preload("Business").
		Preload("Business.Owner", selectOwnerSummary)
	return r.findOne(db, id)
}

func (r *ProductRepository) findOne(db *gorm.DB, id string) (*entities.Product, error) {
	var model ProductModel
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return productToEntity(&model), nil
}

func (r *ProductRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := dbFromContext(ctx, r.db).Model(&ProductModel{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

// Update grava apenas os campos editáveis; views, slug e negócio nunca são sobrescritos
func (r *ProductRepository) Update(ctx context.Context, product *entities.Product) error {
	model := productToModel(product)
	return dbFromContext(ctx, r.db).Model(&ProductModel{ID: product.ID}).
		Select(productEditableColumns).
		Updates(model).Error
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	return dbFromContext(ctx, r.db).Where("id = ?", id).Delete(&ProductModel{}).Error
}

func (r *ProductRepository) DeleteByBusiness(ctx context.Context, businessID string) error {
	return dbFromContext(ctx, r.db).Where("business_id = ?", businessID).Delete(&ProductModel{}).Error
}

func (r *ProductRepository) IncrementViews(ctx context.Context, id string) error {
	return dbFromContext(ctx, r.db).Model(&ProductModel{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1)).Error
}

func (r *ProductRepository) List(ctx context.Context, query *repositories.ListQuery) (repositories.Page[*entities.Product], error) {
	models, total, err := paginate[ProductModel](dbFromContext(ctx, r.db), query, productColumns, func(db *gorm.DB) *gorm.DB {
		return db.Preload("Business", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "slug", "logo")
		})
	})
	if err != nil {
		return repositories.Page[*entities.Product]{}, err
	}

	items := make([]*entities.Product, 0, len(models))
	for _, m := range models {
		items = append(items, productToEntity(m))
	}

	return repositories.Page[*entities.Product]{
		Items: items,
		Page:  query.Page,
		Limit: query.Limit,
		Total: total,
	}, nil
}

// Conversores
func productToModel(p *entities.Product) *ProductModel {
	images := p.Images
	if images == nil {
		images = []string{}
	}
	return &ProductModel{
		ID:          p.ID,
		BusinessID:  p.BusinessID,
		Name:        p.Name,
		Slug:        p.Slug,
		Description: p.Description,
		Price:       p.Price,
		Currency:    p.Currency,
		Category:    p.Category,
		IsService:   p.IsService,
		IsAvailable: p.IsAvailable,
		Stock:       p.Stock,
		Images:      images,
		Views:       p.Views,
	}
}

func productToEntity(m *ProductModel) *entities.Product {
	p := &entities.Product{
		ID:          m.ID,
		BusinessID:  m.BusinessID,
		Name:        m.Name,
		Slug:        m.Slug,
		Description: m.Description,
		Price:       m.Price,
		Currency:    m.Currency,
		Category:    m.Category,
		IsService:   m.IsService,
		IsAvailable: m.IsAvailable,
		Stock:       m.Stock,
		Images:      m.Images,
		Views:       m.Views,
		CreatedAt:   time.UnixMilli(m.CreatedAt),
		UpdatedAt:   time.UnixMilli(m.UpdatedAt),
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	if m.Business != nil {
		p.Business = businessToEntity(m.Business)
	}
	return p
}
