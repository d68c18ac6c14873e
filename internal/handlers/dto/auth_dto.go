package dto

import (
	"time"

	"github.com/rafabene/kitanda-backend/internal/domain/entities"
	"github.com/rafabene/kitanda-backend/internal/domain/valueobjects"
	"github.com/rafabene/kitanda-backend/internal/handlers/validation"
	"github.com/rafabene/kitanda-backend/internal/services"
)

// RegisterRequest representa a requisição de cadastro de vendedor
type RegisterRequest struct {
	Email    string  `json:"email" validate:"email"`
	Password string  `json:"password" validate:"min=6"`
	Name     string  `json:"name" validate:"min=2"`
	Phone    *string `json:"phone,omitempty"`

	bodyErr error
}

var registerMessages = validation.Messages{
	"email":    "validation.email.invalid",
	"password": "validation.password.min",
	"name":     "validation.name.min",
}

// Validate valida o cadastro e retorna o primeiro erro
func (r *RegisterRequest) Validate() error {
	if r.bodyErr != nil {
		return r.bodyErr
	}
	return validation.Struct(r, registerMessages)
}

// RejectBody guarda a falha de decodificação do corpo para Validate
func (r *RegisterRequest) RejectBody(err error) { r.bodyErr = err }

// Input converte a requisição no input do serviço
func (r *RegisterRequest) Input() services.RegisterInput {
	return services.RegisterInput{
		Email:    r.Email,
		Password: r.Password,
		Name:     r.Name,
		Phone:    emptyToNil(r.Phone),
	}
}

// LoginRequest representa as credenciais de login
type LoginRequest struct {
	Email    string `json:"email" validate:"email"`
	Password string `json:"password" validate:"required"`

	bodyErr error
}

var loginMessages = validation.Messages{
	"email":    "validation.email.invalid",
	"password": "validation.password.required",
}

// Validate valida as credenciais e retorna o primeiro erro
func (r *LoginRequest) Validate() error {
	if r.bodyErr != nil {
		return r.bodyErr
	}
	return validation.Struct(r, loginMessages)
}

// RejectBody guarda a falha de decodificação do corpo para Validate
func (r *LoginRequest) RejectBody(err error) { r.bodyErr = err }

// Input converte a requisição no input do serviço
func (r *LoginRequest) Input() services.LoginInput {
	return services.LoginInput{
		Email:    valueobjects.NormalizeEmail(r.Email),
		Password: r.Password,
	}
}

// UserResponse representa o usuário devolvido no cadastro e em /me
type UserResponse struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	Phone         *string   `json:"phone"`
	Role          string    `json:"role"`
	EmailVerified bool      `json:"emailVerified"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ToUserResponse converte uma entidade User para UserResponse
func ToUserResponse(user *entities.User) UserResponse {
	return UserResponse{
		ID:            user.ID,
		Email:         user.Email.String(),
		Name:          user.Name,
		Phone:         user.Phone,
		Role:          user.Role.String(),
		EmailVerified: user.EmailVerified,
		CreatedAt:     user.CreatedAt,
	}
}

// SessionUserResponse é o recorte do usuário devolvido no login
type SessionUserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// LoginResponse contém o usuário autenticado e o token emitido
type LoginResponse struct {
	User  SessionUserResponse `json:"user"`
	Token string              `json:"token"`
}

// ToLoginResponse converte o resultado do login
func ToLoginResponse(result *services.LoginResult) LoginResponse {
	return LoginResponse{
		User: SessionUserResponse{
			ID:    result.User.ID,
			Email: result.User.Email.String(),
			Name:  result.User.Name,
			Role:  result.User.Role.String(),
		},
		Token: result.Token,
	}
}
