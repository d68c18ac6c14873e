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

var businessColumns = map[string]string{
	repositories.BusinessFieldID:          "businesses.id",
	repositories.BusinessFieldOwnerID:     "businesses.owner_id",
	repositories.BusinessFieldCategory:    "businesses.category",
	repositories.BusinessFieldCity:        "businesses.city",
	repositories.BusinessFieldIsActive:    "businesses.is_active",
	repositories.BusinessFieldName:        "businesses.name",
	repositories.BusinessFieldDescription: "businesses.description",
	repositories.BusinessFieldCreatedAt:   "businesses.created_at",
}

var businessEditableColumns = []string{
	"name", "description", "category", "location", "city", "country", "phone", "email",
	"website", "whatsapp", "logo", "cover_image", "is_active", "updated_at",
}

const productCountSelect = "businesses.*, (SELECT COUNT(*) FROM products WHERE products.business_id = businesses.id) AS product_count"

// BusinessRepository implementa repositories.BusinessRepository
type BusinessRepository struct {
	db *gorm.DB
}

// NewBusinessRepository cria um novo BusinessRepository
func NewBusinessRepository(db *gorm.DB) repositories.BusinessRepository {
	return &BusinessRepository{db: db}
}

func (r *BusinessRepository) Create(ctx context.Context, business *entities.Business) error {
	model := businessToModel(business)

	if err := dbFromContext(ctx, r.db).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrSlugTaken
		}
		return err
	}

	business.ID = model.ID
	business.CreatedAt = time.UnixMilli(model.CreatedAt)
	business.UpdatedAt = time.UnixMilli(model.UpdatedAt)
	return nil
}

func (r *BusinessRepository) FindByID(ctx context.Context, id string) (*entities.Business, error) {
	return r.findOne(dbFromContext(ctx, r.db).Preload("Owner", selectOwnerSummary), "id = ?", id)
}

func (r *BusinessRepository) FindBySlug(ctx context.Context, slug string) (*entities.Business, error) {
	return r.findOne(dbFromContext(ctx, r.db), "slug = ?", slug)
}

func (r *BusinessRepository) FindDetailed(ctx context.Context, id string) (*entities.Business, error) {
	db := dbFromContext(ctx, r.db).
		Preload("Owner", selectOwnerSummary).
		Preload("Products", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_available = ?", true).Order("created_at DESC, id DESC")
		})
	return r.findOne(db, "id = ?", id)
}

func (r *BusinessRepository) findOne(db *gorm.DB, query string, arg any) (*entities.Business, error) {
	var model BusinessModel
	if err := db.Where(query, arg).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return businessToEntity(&model), nil
}

func (r *BusinessRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := dbFromContext(ctx, r.db).Model(&BusinessModel{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

// Update grava apenas os campos editáveis; views, slug e dono nunca são sobrescritos
func (r *BusinessRepository) Update(ctx context.Context, business *entities.Business) error {
	model := businessToModel(business)
	return dbFromContext(ctx, r.db).Model(&BusinessModel{ID: business.ID}).
		Select(businessEditableColumns).
		Updates(model).Error
}

func (r *BusinessRepository) Delete(ctx context.Context, id string) error {
	return dbFromContext(ctx, r.db).Where("id = ?", id).Delete(&BusinessModel{}).Error
}

func (r *BusinessRepository) IncrementViews(ctx context.Context, id string) error {
	return dbFromContext(ctx, r.db).Model(&BusinessModel{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1)).Error
}

func (r *BusinessRepository) List(ctx context.Context, query *repositories.ListQuery) (repositories.Page[*entities.Business], error) {
	models, total, err := paginate[BusinessModel](dbFromContext(ctx, r.db), query, businessColumns, func(db *gorm.DB) *gorm.DB {
		return db.Select(productCountSelect).Preload("Owner", selectOwnerSummary)
	})
	if err != nil {
		return repositories.Page[*entities.Business]{}, err
	}

	items := make([]*entities.Business, 0, len(models))
	for _, m := range models {
		items = append(items, businessToEntity(m))
	}

	return repositories.Page[*entities.Business]{
		Items: items,
		Page:  query.Page,
		Limit: query.Limit,
		Total: total,
	}, nil
}

func selectOwnerSummary(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name", "email", "phone")
}

// Conversores
func businessToModel(b *entities.Business) *BusinessModel {
	return &BusinessModel{
		ID:          b.ID,
		OwnerID:     b.OwnerID,
		Name:        b.Name,
		Slug:        b.Slug,
		Description: b.Description,
		Category:    b.Category,
		Location:    b.Location,
		City:        b.City,
		Country:     b.Country,
		Phone:       b.Phone,
		Email:       b.Email,
		Website:     b.Website,
		WhatsApp:    b.WhatsApp,
		Logo:        b.Logo,
		CoverImage:  b.CoverImage,
		IsVerified:  b.IsVerified,
		IsActive:    b.IsActive,
		Views:       b.Views,
	}
}

func businessToEntity(m *BusinessModel) *entities.Business {
	b := &entities.Business{
		ID:           m.ID,
		OwnerID:      m.OwnerID,
		Name:         m.Name,
		Slug:         m.Slug,
		Description:  m.Description,
		Category:     m.Category,
		Location:     m.Location,
		City:         m.City,
		Country:      m.Country,
		Phone:        m.Phone,
		Email:        m.Email,
		Website:      m.Website,
		WhatsApp:     m.WhatsApp,
		Logo:         m.Logo,
		CoverImage:   m.CoverImage,
		IsVerified:   m.IsVerified,
		IsActive:     m.IsActive,
		Views:        m.Views,
		ProductCount: m.ProductCount,
		CreatedAt:    time.UnixMilli(m.CreatedAt),
		UpdatedAt:    time.UnixMilli(m.UpdatedAt),
	}

	if m.Owner != nil {
		b.Owner = &entities.OwnerSummary{
			Name:  m.Owner.Name,
			Email: m.Owner.Email,
			Phone: m.Owner.Phone,
		}
	}

	if m.Products != nil {
		b.Products = make([]*entities.Product, 0, len(m.Products))
		for i := range m.Products {
			b.Products = append(b.Products, productToEntity(&m.Products[i]))
		}
	}

	return b
}
