package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/rafabene/kitanda-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/kitanda-backend/internal/domain/errors"
	"github.com/rafabene/kitanda-backend/internal/domain/repositories"
	"github.com/rafabene/kitanda-backend/internal/domain/valueobjects"
)

// UserRepository implementa repositories.UserRepository
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository cria um novo UserRepository
func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	model := r.toModel(user)

	if err := dbFromContext(ctx, r.db).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrDuplicateEmail
		}
		return err
	}

	user.ID = model.ID
	user.CreatedAt = time.UnixMilli(model.CreatedAt)
	user.UpdatedAt = time.UnixMilli(model.UpdatedAt)
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	return r.findOne(ctx, "email = ?", valueobjects.NormalizeEmail(email))
}

func (r *UserRepository) findOne(ctx context.Context, query string, arg any) (*entities.User, error) {
	var model UserModel

	if err := dbFromContext(ctx, r.db).Where(query, arg).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return userToEntity(&model)
}

func (r *UserRepository) toModel(user *entities.User) *UserModel {
	return &UserModel{
		ID:            user.ID,
		Email:         user.Email.String(),
		Name:          user.Name,
		Phone:         user.Phone,
		PasswordHash:  user.PasswordHash,
		Role:          string(user.Role),
		IsActive:      user.IsActive,
		EmailVerified: user.EmailVerified,
	}
}

func userToEntity(model *UserModel) (*entities.User, error) {
	email, err := valueobjects.NewEmail(model.Email)
	if err != nil {
		return nil, err
	}

	return &entities.User{
		ID:            model.ID,
		Email:         email,
		Name:          model.Name,
		Phone:         model.Phone,
		PasswordHash:  model.PasswordHash,
		Role:          entities.Role(model.Role),
		IsActive:      model.IsActive,
		EmailVerified: model.EmailVerified,
		CreatedAt:     time.UnixMilli(model.CreatedAt),
		UpdatedAt:     time.UnixMilli(model.UpdatedAt),
	}, nil
}
