package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rafabene/kitanda-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/kitanda-backend/internal/domain/errors"
	"github.com/rafabene/kitanda-backend/internal/domain/ports"
	"github.com/rafabene/kitanda-backend/internal/domain/repositories"
	"github.com/rafabene/kitanda-backend/internal/domain/valueobjects"
)

// Resultados de login registrados como métrica
const (
	LoginSucceeded = "success"
	LoginFailed    = "failure"
)

// AuthService contém cadastro, login e perfil
type AuthService struct {
	userRepo repositories.UserRepository
	hasher   ports.PasswordHasher
	tokens   ports.TokenService
	recorder Recorder
	logger   ports.Logger
}

// NewAuthService cria um novo AuthService
func NewAuthService(
	userRepo repositories.UserRepository,
	hasher ports.PasswordHasher,
	tokens ports.TokenService,
	recorder Recorder,
	logger ports.Logger,
) *AuthService {
	if recorder == nil {
		recorder = NopRecorder
	}
	return &AuthService{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		recorder: recorder,
		logger:   logger.With("component", "auth"),
	}
}

// RegisterInput representa os dados para cadastrar um usuário
type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Phone    *string
}

// LoginInput representa as credenciais de login
type LoginInput struct {
	Email    string
	Password string
}

// LoginResult é o usuário autenticado e seu token
type LoginResult struct {
	User  *entities.User
	Token string
}

// Register cadastra um vendedor
func (s *AuthService) Register(ctx context.Context, payload Payload[RegisterInput]) (*entities.User, error) {
	if err := payload.Validate(); err != nil {
		return nil, err
	}
	return s.createUser(ctx, payload.Input(), entities.RoleSeller)
}

// CreateAdmin cadastra um administrador (uso pela linha de comando)
func (s *AuthService) CreateAdmin(ctx context.Context, payload Payload[RegisterInput]) (*entities.User, error) {
	if err := payload.Validate(); err != nil {
		return nil, err
	}
	return s.createUser(ctx, payload.Input(), entities.RoleAdmin)
}

func (s *AuthService) createUser(ctx context.Context, input RegisterInput, role entities.Role) (*entities.User, error) {
	email, err := valueobjects.NewEmail(input.Email)
	if err != nil {
		return nil, domainerrors.NewValidationError("email", "validation.email.invalid")
	}

	s.logger.Info("registering user", "role", role)

	existing, err := s.userRepo.FindByEmail(ctx, email.String())
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	if existing != nil {
		return nil, domainerrors.ErrEmailAlreadyRegistered
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &entities.User{
		Email:        email,
		Name:         input.Name,
		Phone:        input.Phone,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
	}
	if err := user.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", entities.ErrInvalidUserData, err)
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// Outra requisição cadastrou o mesmo email entre a busca e o insert
		if errors.Is(err, domainerrors.ErrDuplicateEmail) {
			return nil, domainerrors.ErrEmailAlreadyRegistered
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info("user registered", "user_id", user.ID, "role", role)
	return user, nil
}

// Login confere as credenciais e emite um token.
// Usuário inexistente, inativo ou senha errada resultam no mesmo erro.
func (s *AuthService) Login(ctx context.Context, payload Payload[LoginInput]) (*LoginResult, error) {
	if err := payload.Validate(); err != nil {
		return nil, err
	}
	input := payload.Input()

	user, err := s.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}

	if user == nil || !user.CanLogin() || !s.hasher.Verify(input.Password, user.PasswordHash) {
		s.recorder.LoginAttempt(LoginFailed)
		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(ports.Claims{
		UserID: user.ID,
		Email:  user.Email.String(),
		Role:   user.Role,
	})
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.recorder.LoginAttempt(LoginSucceeded)
	s.logger.Info("user logged in", "user_id", user.ID)

	return &LoginResult{User: user, Token: token}, nil
}

// Me retorna o usuário dono da identidade
func (s *AuthService) Me(ctx context.Context, identity ports.Claims) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, identity.UserID)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, domainerrors.ErrUserNotFound
	}
	return user, nil
}
