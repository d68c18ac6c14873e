package dto

import (
	"time"

	"github.com/rafabene/kitanda-backend/internal/domain/entities"
	"github.com/rafabene/kitanda-backend/internal/domain/repositories"
	"github.com/rafabene/kitanda-backend/internal/handlers/validation"
	"github.com/rafabene/kitanda-backend/internal/services"
)

// UpsertProductRequest representa a criação ou atualização de um produto.
// BusinessID só é considerado na criação.
type UpsertProductRequest struct {
	BusinessID  string   `json:"businessId,omitempty"`
	Name        string   `json:"name" validate:"min=2"`
	Description string   `json:"description" validate:"min=20"`
	Price       *float64 `json:"price" validate:"required,gt=0"`
	Currency    string   `json:"currency,omitempty"`
	Category    string   `json:"category" validate:"required"`
	IsService   bool     `json:"isService"`
	Stock       *int     `json:"stock,omitempty" validate:"omitempty,gte=0"`
	Images      []string `json:"images,omitempty"`
	IsAvailable *bool    `json:"isAvailable,omitempty"`

	bodyErr error
}

var productMessages = validation.Messages{
	"name":           "validation.product.name.min",
	"description":    "validation.product.description.min",
	"price.required": "validation.product.price.required",
	"price":          "validation.product.price.positive",
	"category":       "validation.product.category.required",
	"stock":          "validation.product.stock.min",
}

// Validate valida o produto e retorna o primeiro erro.
// Uma falha de decodificação do corpo tem precedência sobre as regras.
func (r *UpsertProductRequest) Validate() error {
	if r.bodyErr != nil {
		return r.bodyErr
	}
	return validation.Struct(r, productMessages)
}

// RejectBody guarda a falha de decodificação do corpo para Validate
func (r *UpsertProductRequest) RejectBody(err error) { r.bodyErr = err }

// TargetBusinessID retorna o negócio ao qual o produto será adicionado
func (r *UpsertProductRequest) TargetBusinessID() string {
	return r.BusinessID
}

// Input converte a requisição no input do serviço
func (r *UpsertProductRequest) Input() services.ProductInput {
	currency := r.Currency
	if currency == "" {
		currency = entities.DefaultCurrency
	}
	images := r.Images
	if images == nil {
		images = []string{}
	}
	var price float64
	if r.Price != nil {
		price = *r.Price
	}
	return services.ProductInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       price,
		Currency:    currency,
		Category:    r.Category,
		IsService:   r.IsService,
		Stock:       r.Stock,
		Images:      images,
		IsAvailable: r.IsAvailable,
	}
}

// BusinessSummaryResponse é o recorte do negócio embutido em um produto
type BusinessSummaryResponse struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Slug string  `json:"slug"`
	Logo *string `json:"logo,omitempty"`
}

// ProductResponse representa um produto
type ProductResponse struct {
	ID          string                   `json:"id"`
	BusinessID  string                   `json:"businessId"`
	Name        string                   `json:"name"`
	Slug        string                   `json:"slug"`
	Description string                   `json:"description"`
	Price       float64                  `json:"price"`
	Currency    string                   `json:"currency"`
	Category    string                   `json:"category"`
	IsService   bool                     `json:"isService"`
	IsAvailable bool                     `json:"isAvailable"`
	Stock       *int                     `json:"stock"`
	Images      []string                 `json:"images"`
	Views       int64                    `json:"views"`
	CreatedAt   time.Time                `json:"createdAt"`
	UpdatedAt   time.Time                `json:"updatedAt"`
	Business    *BusinessSummaryResponse `json:"business,omitempty"`
}

// ProductDetailResponse é o produto com o negócio completo e seu dono
type ProductDetailResponse struct {
	ProductResponse
	Business *BusinessResponse `json:"business,omitempty"`
}

// ProductListResponse é uma página de produtos
type ProductListResponse struct {
	Products   []ProductResponse  `json:"products"`
	Pagination PaginationResponse `json:"pagination"`
}

func toProductBase(p *entities.Product) ProductResponse {
	images := p.Images
	if images == nil {
		images = []string{}
	}
	return ProductResponse{
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
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ToProductResponse converte o produto devolvido por criação e atualização
func ToProductResponse(p *entities.Product) ProductResponse {
	resp := toProductBase(p)
	if p.Business != nil {
		resp.Business = &BusinessSummaryResponse{ID: p.Business.ID, Name: p.Business.Name, Slug: p.Business.Slug}
	}
	return resp
}

// ToProductListItem converte um item de listagem (negócio com logo)
func ToProductListItem(p *entities.Product) ProductResponse {
	resp := toProductBase(p)
	if p.Business != nil {
		resp.Business = &BusinessSummaryResponse{
			ID:   p.Business.ID,
			Name: p.Business.Name,
			Slug: p.Business.Slug,
			Logo: p.Business.Logo,
		}
	}
	return resp
}

// ToProductDetailResponse converte o produto com negócio e dono
func ToProductDetailResponse(p *entities.Product) ProductDetailResponse {
	resp := ProductDetailResponse{ProductResponse: toProductBase(p)}
	if p.Business != nil {
		business := toBusinessBase(p.Business)
		if p.Business.Owner != nil {
			business.Owner = &OwnerResponse{
				Name:  p.Business.Owner.Name,
				Email: p.Business.Owner.Email,
				Phone: p.Business.Owner.Phone,
			}
		}
		resp.Business = &business
	}
	return resp
}

// ToProductListResponse converte uma página de produtos
func ToProductListResponse(page repositories.Page[*entities.Product]) ProductListResponse {
	items := make([]ProductResponse, len(page.Items))
	for i, p := range page.Items {
		items[i] = ToProductListItem(p)
	}
	return ProductListResponse{Products: items, Pagination: ToPaginationResponse(page)}
}
