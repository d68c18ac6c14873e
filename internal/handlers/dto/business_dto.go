package dto

import (
	"time"

	"github.com/rafabene/kitanda-backend/internal/domain/entities"
	"github.com/rafabene/kitanda-backend/internal/domain/repositories"
	"github.com/rafabene/kitanda-backend/internal/handlers/validation"
	"github.com/rafabene/kitanda-backend/internal/services"
)

// UpsertBusinessRequest representa a criação ou atualização de um negócio.
// A ordem dos campos define qual erro de validação é reportado primeiro.
type UpsertBusinessRequest struct {
	Name        string  `json:"name" validate:"min=2"`
	Description string  `json:"description" validate:"min=20"`
	Category    string  `json:"category" validate:"required"`
	Location    string  `json:"location" validate:"required"`
	City        string  `json:"city" validate:"required"`
	Country     string  `json:"country,omitempty"`
	Phone       string  `json:"phone" validate:"required"`
	Email       string  `json:"email" validate:"email"`
	Website     string  `json:"website,omitempty" validate:"omitempty,url"`
	WhatsApp    *string `json:"whatsapp,omitempty"`
	Logo        *string `json:"logo,omitempty"`
	CoverImage  *string `json:"coverImage,omitempty"`
	IsActive    *bool   `json:"isActive,omitempty"`

	bodyErr error
}

var businessMessages = validation.Messages{
	"name":        "validation.business.name.min",
	"description": "validation.business.description.min",
	"category":    "validation.business.category.required",
	"location":    "validation.business.location.required",
	"city":        "validation.business.city.required",
	"phone":       "validation.business.phone.required",
	"email":       "validation.email.invalid",
	"website":     "validation.url.invalid",
}

// Validate valida o negócio e retorna o primeiro erro.
// Uma falha de decodificação do corpo tem precedência sobre as regras.
func (r *UpsertBusinessRequest) Validate() error {
	if r.bodyErr != nil {
		return r.bodyErr
	}
	return validation.Struct(r, businessMessages)
}

// RejectBody guarda a falha de decodificação do corpo para Validate
func (r *UpsertBusinessRequest) RejectBody(err error) { r.bodyErr = err }

// Input converte a requisição no input do serviço
func (r *UpsertBusinessRequest) Input() services.BusinessInput {
	country := r.Country
	if country == "" {
		country = entities.DefaultCountry
	}
	return services.BusinessInput{
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		Location:    r.Location,
		City:        r.City,
		Country:     country,
		Phone:       r.Phone,
		Email:       r.Email,
		Website:     optional(r.Website),
		WhatsApp:    emptyToNil(r.WhatsApp),
		Logo:        emptyToNil(r.Logo),
		CoverImage:  emptyToNil(r.CoverImage),
		IsActive:    r.IsActive,
	}
}

// OwnerResponse é o recorte público do dono; campos vazios são omitidos
type OwnerResponse struct {
	Name  string  `json:"name"`
	Email string  `json:"email,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

// CountResponse contém contagens de relações
type CountResponse struct {
	Products int64 `json:"products"`
}

// BusinessResponse representa um negócio
type BusinessResponse struct {
	ID          string         `json:"id"`
	OwnerID     string         `json:"ownerId"`
	Name        string         `json:"name"`
	Slug        string         `json:"slug"`
	Description string         `json:"description"`
	Category    string         `json:"category"`
	Location    string         `json:"location"`
	City        string         `json:"city"`
	Country     string         `json:"country"`
	Phone       string         `json:"phone"`
	Email       string         `json:"email"`
	Website     *string        `json:"website"`
	WhatsApp    *string        `json:"whatsapp"`
	Logo        *string        `json:"logo"`
	CoverImage  *string        `json:"coverImage"`
	IsVerified  bool           `json:"isVerified"`
	IsActive    bool           `json:"isActive"`
	Views       int64          `json:"views"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	Owner       *OwnerResponse `json:"owner,omitempty"`
	Count       *CountResponse `json:"_count,omitempty"`
}

// BusinessDetailResponse é o negócio com dono completo e produtos disponíveis
type BusinessDetailResponse struct {
	BusinessResponse
	Products []ProductResponse `json:"products"`
}

// BusinessListResponse é uma página de negócios
type BusinessListResponse struct {
	Businesses []BusinessResponse `json:"businesses"`
	Pagination PaginationResponse `json:"pagination"`
}

func toBusinessBase(b *entities.Business) BusinessResponse {
	return BusinessResponse{
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
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

// ToBusinessResponse converte o negócio devolvido por criação e atualização (dono com nome e email)
func ToBusinessResponse(b *entities.Business) BusinessResponse {
	resp := toBusinessBase(b)
	if b.Owner != nil {
		resp.Owner = &OwnerResponse{Name: b.Owner.Name, Email: b.Owner.Email}
	}
	return resp
}

// ToBusinessListItem converte um item de listagem (nome do dono e contagem de produtos)
func ToBusinessListItem(b *entities.Business) BusinessResponse {
	resp := toBusinessBase(b)
	if b.Owner != nil {
		resp.Owner = &OwnerResponse{Name: b.Owner.Name}
	}
	resp.Count = &CountResponse{Products: b.ProductCount}
	return resp
}

// ToBusinessDetailResponse converte o negócio com dono completo e produtos
func ToBusinessDetailResponse(b *entities.Business) BusinessDetailResponse {
	resp := BusinessDetailResponse{BusinessResponse: toBusinessBase(b)}
	if b.Owner != nil {
		resp.Owner = &OwnerResponse{Name: b.Owner.Name, Email: b.Owner.Email, Phone: b.Owner.Phone}
	}
	resp.Products = make([]ProductResponse, len(b.Products))
	for i, p := range b.Products {
		resp.Products[i] = toProductBase(p)
	}
	return resp
}

// ToBusinessListResponse converte uma página de negócios
func ToBusinessListResponse(page repositories.Page[*entities.Business]) BusinessListResponse {
	items := make([]BusinessResponse, len(page.Items))
	for i, b := range page.Items {
		items[i] = ToBusinessListItem(b)
	}
	return BusinessListResponse{Businesses: items, Pagination: ToPaginationResponse(page)}
}
