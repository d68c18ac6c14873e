package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/kitanda-backend/internal/domain/ports"
	"github.com/rafabene/kitanda-backend/internal/domain/repositories"
	"github.com/rafabene/kitanda-backend/internal/handlers/dto"
	"github.com/rafabene/kitanda-backend/internal/services"
)

// ProductHandler lida com requisições HTTP relacionadas a produtos
type ProductHandler struct {
	productService *services.ProductService
	logger         ports.Logger
}

// NewProductHandler cria um novo ProductHandler
func NewProductHandler(productService *services.ProductService, logger ports.Logger) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		logger:         logger,
	}
}

// List godoc
// @Summary      Lista produtos disponíveis
// @Tags         products
// @Produce      json
// @Param        businessId  query     string  false  "Negócio"
// @Param        category    query     string  false  "Categoria"
// @Param        search      query     string  false  "Busca em nome e descrição"
// @Param        page        query     int     false  "Página (padrão 1)"
// @Param        limit       query     int     false  "Itens por página (padrão 12)"
// @Success      200         {object}  dto.Envelope{data=dto.ProductListResponse}
// @Router       /products [get]
func (h *ProductHandler) List(c *gin.Context) {
	page, limit := repositories.ParsePagination(c.Query("page"), c.Query("limit"))

	result, err := h.productService.List(c.Request.Context(), services.ProductFilter{
		BusinessID: c.Query("businessId"),
		Category:   c.Query("category"),
		Search:     c.Query("search"),
		Page:       page,
		Limit:      limit,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccess(c, dto.ToProductListResponse(result), ""))
}

// Create godoc
// @Summary      Cadastra um produto em um negócio do usuário
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dto.UpsertProductRequest  true  "Produto"
// @Success      200   {object}  dto.Envelope{data=dto.ProductResponse}
// @Failure      401   {object}  dto.Envelope
// @Failure      404   {object}  dto.Envelope
// @Failure      422   {object}  dto.Envelope
// @Router       /products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.UpsertProductRequest
	decodeBody(c, &req)

	product, err := h.productService.Create(c.Request.Context(), identity(c), &req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccess(c, dto.ToProductResponse(product), "success.product_created"))
}

// Get godoc
// @Summary      Detalhe de um produto
// @Description  Conta uma visualização; o corpo mostra o valor anterior ao incremento
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "ID do produto"
// @Success      200  {object}  dto.Envelope{data=dto.ProductDetailResponse}
// @Failure      404  {object}  dto.Envelope
// @Router       /products/{id} [get]
func (h *ProductHandler) Get(c *gin.Context) {
	product, err := h.productService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccess(c, dto.ToProductDetailResponse(product), ""))
}

// Update godoc
// @Summary      Atualiza um produto
// @Description  Somente o dono do negócio ou um ADMIN; businessId do corpo é ignorado
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                    true  "ID do produto"
// @Param        body  body      dto.UpsertProductRequest  true  "Produto"
// @Success      200   {object}  dto.Envelope{data=dto.ProductResponse}
// @Failure      401   {object}  dto.Envelope
// @Failure      404   {object}  dto.Envelope
// @Failure      422   {object}  dto.Envelope
// @Router       /products/{id} [put]
func (h *ProductHandler) Update(c *gin.Context) {
	var req dto.UpsertProductRequest
	decodeBody(c, &req)

	product, err := h.productService.Update(c.Request.Context(), identity(c), c.Param("id"), &req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccess(c, dto.ToProductResponse(product), "success.product_updated"))
}

// Delete godoc
// @Summary      Remove um produto
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "ID do produto"
// @Success      200  {object}  dto.Envelope
// @Failure      401  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /products/{id} [delete]
func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.productService.Delete(c.Request.Context(), identity(c), c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccess(c, nil, "success.product_deleted"))
}
