package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/kitanda-backend/internal/domain/ports"
	"github.com/rafabene/kitanda-backend/internal/domain/repositories"
	"github.com/rafabene/kitanda-backend/internal/handlers/dto"
	"github.com/rafabene/kitanda-backend/internal/services"
)

// BusinessHandler lida com requisições HTTP relacionadas a negócios
type BusinessHandler struct {
	businessService *services.BusinessService
	logger          ports.Logger
}

// NewBusinessHandler cria um novo BusinessHandler
func NewBusinessHandler(businessService *services.BusinessService, logger ports.Logger) *BusinessHandler {
	return &BusinessHandler{
		businessService: businessService,
		logger:          logger,
	}
}

// List godoc
// @Summary      Lista negócios ativos
// @Tags         businesses
// @Produce      json
// @Param        category  query     string  false  "Categoria"
// @Param        city      query     string  false  "Cidade"
// @Param        search    query     string  false  "Busca em nome e descrição"
// @Param        page      query     int     false  "Página (padrão 1)"
// @Param        limit     query     int     false  "Itens por página (padrão 12)"
// @Success      200       {object}  dto.Envelope{data=dto.BusinessListResponse}
// @Router       /businesses [get]
func (h *BusinessHandler) List(c *gin.Context) {
	page, limit := repositories.ParsePagination(c.Query("page"), c.Query("limit"))

	result, err := h.businessService.List(c.Request.Context(), services.BusinessFilter{
		Category: c.Query("category"),
		City:     c.Query("city"),
		Search:   c.Query("search"),
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccess(c, dto.ToBusinessListResponse(result), ""))
}

// Create godoc
// @Summary      Cadastra um negócio do usuário autenticado
// @Tags         businesses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dto.UpsertBusinessRequest  true  "Negócio"
// @Success      200   {object}  dto.Envelope{data=dto.BusinessResponse}
// @Failure      401   {object}  dto.Envelope
// @Failure      422   {object}  dto.Envelope
// @Router       /businesses [post]
func (h *BusinessHandler) Create(c *gin.Context) {
	var req dto.UpsertBusinessRequest
	decodeBody(c, &req)

	business, err := h.businessService.Create(c.Request.Context(), identity(c), &req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccess(c, dto.ToBusinessResponse(business), "success.business_created"))
}

// Get godoc
// @Summary      Detalhe de um negócio
// @Description  Conta uma visualização; o corpo mostra o valor anterior ao incremento
// @Tags         businesses
// @Produce      json
// @Param        id   path      string  true  "ID do negócio"
// @Success      200  {object}  dto.Envelope{data=dto.BusinessDetailResponse}
// @Failure      404  {object}  dto.Envelope
// @Router       /businesses/{id} [get]
func (h *BusinessHandler) Get(c *gin.Context) {
	business, err := h.businessService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccess(c, dto.ToBusinessDetailResponse(business), ""))
}

// GetBySlug godoc
// @Summary      Detalhe de um negócio pelo slug
// @Tags         businesses
// @Produce      json
// @Param        slug  path      string  true  "Slug do negócio"
// @Success      200   {object}  dto.Envelope{data=dto.BusinessDetailResponse}
// @Failure      404   {object}  dto.Envelope
// @Router       /businesses/slug/{slug} [get]
func (h *BusinessHandler) GetBySlug(c *gin.Context) {
	business, err := h.businessService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccess(c, dto.ToBusinessDetailResponse(business), ""))
}

// Update godoc
// @Summary      Atualiza um negócio
// @Description  Somente o dono ou um ADMIN; 404 vem antes de 401
// @Tags         businesses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                     true  "ID do negócio"
// @Param        body  body      dto.UpsertBusinessRequest  true  "Negócio"
// @Success      200   {object}  dto.Envelope{data=dto.BusinessResponse}
// @Failure      401   {object}  dto.Envelope
// @Failure      404   {object}  dto.Envelope
// @Failure      422   {object}  dto.Envelope
// @Router       /businesses/{id} [put]
func (h *BusinessHandler) Update(c *gin.Context) {
	var req dto.UpsertBusinessRequest
	decodeBody(c, &req)

	business, err := h.businessService.Update(c.Request.Context(), identity(c), c.Param("id"), &req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccess(c, dto.ToBusinessResponse(business), "success.business_updated"))
}

// Delete godoc
// @Summary      Remove um negócio e seus produtos
// @Tags         businesses
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "ID do negócio"
// @Success      200  {object}  dto.Envelope
// @Failure      401  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /businesses/{id} [delete]
func (h *BusinessHandler) Delete(c *gin.Context) {
	if err := h.businessService.Delete(c.Request.Context(), identity(c), c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccess(c, nil, "success.business_deleted"))
}
