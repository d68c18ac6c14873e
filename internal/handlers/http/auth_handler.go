package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/kitanda-backend/internal/domain/ports"
	"github.com/rafabene/kitanda-backend/internal/domain/repositories"
	"github.com/rafabene/kitanda-backend/internal/handlers/dto"
	"github.com/rafabene/kitanda-backend/internal/handlers/middleware"
	"github.com/rafabene/kitanda-backend/internal/services"
)

// AuthHandler lida com cadastro, sessão e perfil
type AuthHandler struct {
	authService     *services.AuthService
	businessService *services.BusinessService
	secureCookies   bool
	logger          ports.Logger
}

// NewAuthHandler cria um novo AuthHandler.
// secureCookies marca o cookie de sessão como Secure (produção).
func NewAuthHandler(
	authService *services.AuthService,
	businessService *services.BusinessService,
	secureCookies bool,
	logger ports.Logger,
) *AuthHandler {
	return &AuthHandler{
		authService:     authService,
		businessService: businessService,
		secureCookies:   secureCookies,
		logger:          logger,
	}
}

// Register godoc
// @Summary      Cadastra um vendedor
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.RegisterRequest  true  "Dados do cadastro"
// @Success      201   {object}  dto.Envelope{data=dto.UserResponse}
// @Failure      400   {object}  dto.Envelope
// @Failure      422   {object}  dto.Envelope
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	decodeBody(c, &req)

	user, err := h.authService.Register(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewSuccess(c, dto.ToUserResponse(user), "success.registered"))
}

// Login godoc
// @Summary      Inicia uma sessão
// @Description  Devolve o token e também o grava no cookie auth-token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.LoginRequest  true  "Credenciais"
// @Success      200   {object}  dto.Envelope{data=dto.LoginResponse}
// @Failure      401   {object}  dto.Envelope
// @Failure      422   {object}  dto.Envelope
// @Failure      429   {object}  dto.Envelope
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	decodeBody(c, &req)

	result, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	middleware.SetAuthCookie(c, result.Token, h.secureCookies)
	c.JSON(http.StatusOK, dto.NewSuccess(c, dto.ToLoginResponse(result), "success.login"))
}

// Logout godoc
// @Summary      Encerra a sessão do navegador
// @Description  Expira o cookie; tokens já emitidos continuam válidos até expirar
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.Envelope
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	middleware.ClearAuthCookie(c, h.secureCookies)
	c.JSON(http.StatusOK, dto.NewSuccess(c, nil, "success.logout"))
}

// Me godoc
// @Summary      Perfil do usuário autenticado
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.Envelope{data=dto.UserResponse}
// @Failure      401  {object}  dto.Envelope
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.authService.Me(c.Request.Context(), identity(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccess(c, dto.ToUserResponse(user), ""))
}

// MyBusinesses godoc
// @Summary      Negócios do usuário autenticado
// @Description  Inclui negócios inativos
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Página (padrão 1)"
// @Param        limit  query     int  false  "Itens por página (padrão 12)"
// @Success      200    {object}  dto.Envelope{data=dto.BusinessListResponse}
// @Failure      401    {object}  dto.Envelope
// @Router       /auth/me/businesses [get]
func (h *AuthHandler) MyBusinesses(c *gin.Context) {
	page, limit := repositories.ParsePagination(c.Query("page"), c.Query("limit"))

	result, err := h.businessService.ListOwned(c.Request.Context(), identity(c), page, limit)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccess(c, dto.ToBusinessListResponse(result), ""))
}
