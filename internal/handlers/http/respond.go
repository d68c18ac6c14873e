package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerrors "github.com/rafabene/kitanda-backend/internal/domain/errors"
	"github.com/rafabene/kitanda-backend/internal/domain/ports"
	"github.com/rafabene/kitanda-backend/internal/handlers/dto"
	"github.com/rafabene/kitanda-backend/internal/handlers/middleware"
	"github.com/rafabene/kitanda-backend/internal/handlers/validation"
)

// bodyReceiver é um payload que guarda a própria falha de decodificação
type bodyReceiver interface {
	RejectBody(err error)
}

// decodeBody decodifica o corpo sem validar. A falha fica no payload e só
// aparece quando o serviço chega à validação, depois de 404 e da posse.
// JSON malformado vira ErrInvalidBody e tipo errado vira erro de validação do campo.
func decodeBody(c *gin.Context, payload bodyReceiver) {
	err := c.ShouldBindJSON(payload)
	if err == nil {
		return
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		payload.RejectBody(domainerrors.NewValidationError(typeErr.Field, validation.MessageTypeMismatch))
		return
	}
	payload.RejectBody(domainerrors.ErrInvalidBody)
}

// respondError converte erros de serviço em status e envelope.
// Erros desconhecidos são logados e respondidos com mensagem genérica.
func respondError(c *gin.Context, logger ports.Logger, err error) {
	var domainErr *domainerrors.DomainError

	switch {
	case errors.As(err, &domainErr) && errors.Is(err, domainerrors.ErrValidation):
		c.JSON(http.StatusUnprocessableEntity, dto.NewError(c, domainErr.Message, map[string]interface{}{"Field": domainErr.Field}))

	case errors.As(err, &domainErr) && errors.Is(err, domainerrors.ErrNotOwner):
		c.JSON(http.StatusUnauthorized, dto.NewError(c, domainErr.Message))

	case errors.Is(err, domainerrors.ErrUnauthorized),
		errors.Is(err, domainerrors.ErrInvalidCredentials),
		errors.Is(err, domainerrors.ErrUserNotFound):
		c.JSON(http.StatusUnauthorized, dto.NewError(c, err.Error()))

	case errors.Is(err, domainerrors.ErrBusinessNotFound),
		errors.Is(err, domainerrors.ErrProductNotFound):
		c.JSON(http.StatusNotFound, dto.NewError(c, err.Error()))

	case errors.Is(err, domainerrors.ErrEmailAlreadyRegistered),
		errors.Is(err, domainerrors.ErrInvalidBody):
		c.JSON(http.StatusBadRequest, dto.NewError(c, err.Error()))

	case errors.Is(err, domainerrors.ErrTooManyRequests):
		c.JSON(http.StatusTooManyRequests, dto.NewError(c, err.Error()))

	default:
		logger.Error("request failed",
			"error", err,
			"method", c.Request.Method,
			"path", c.FullPath(),
		)
		c.JSON(http.StatusInternalServerError, dto.NewError(c, domainerrors.ErrInternal.Error()))
	}
}

// identity retorna a identidade garantida por middleware.RequireIdentity
func identity(c *gin.Context) ports.Claims {
	claims, _ := middleware.Identity(c)
	return claims
}
