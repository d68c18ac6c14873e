package postgres

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel é o model GORM para usuários
type UserModel struct {
	ID            string  `gorm:"type:uuid;primaryKey"`
	Email         string  `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name          string  `gorm:"type:varchar(255);not null"`
	Phone         *string `gorm:"type:varchar(50)"`
	PasswordHash  string  `gorm:"type:varchar(255);not null"`
	Role          string  `gorm:"type:varchar(20);not null;index"`
	IsActive      bool    `gorm:"not null"`
	EmailVerified bool    `gorm:"not null"`
	CreatedAt     int64   `gorm:"autoCreateTime:milli;index"`
	UpdatedAt     int64   `gorm:"autoUpdateTime:milli"`
}

func (UserModel) TableName() string {
	return "users"
}

func (m *UserModel) BeforeCreate(*gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// BusinessModel é o model GORM para negócios
type BusinessModel struct {
	ID          string  `gorm:"type:uuid;primaryKey"`
	OwnerID     string  `gorm:"type:uuid;not null;index"`
	Name        string  `gorm:"type:varchar(255);not null"`
	Slug        string  `gorm:"type:varchar(255);uniqueIndex;not null"`
	Description string  `gorm:"type:text;not null"`
	Category    string  `gorm:"type:varchar(100);not null;index"`
	Location    string  `gorm:"type:varchar(255);not null"`
	City        string  `gorm:"type:varchar(100);not null;index"`
	Country     string  `gorm:"type:varchar(100);not null"`
	Phone       string  `gorm:"type:varchar(50);not null"`
	Email       string  `gorm:"type:varchar(255);not null"`
	Website     *string `gorm:"type:varchar(500)"`
	WhatsApp    *string `gorm:"column:whatsapp;type:varchar(50)"`
	Logo        *string `gorm:"type:varchar(500)"`
	CoverImage  *string `gorm:"type:varchar(500)"`
	IsVerified  bool    `gorm:"not null"`
	IsActive    bool    `gorm:"not null;index"`
	Views       int64   `gorm:"not null"`
	CreatedAt   int64   `gorm:"autoCreateTime:milli;index"`
	UpdatedAt   int64   `gorm:"autoUpdateTime:milli"`

	Owner    *UserModel     `gorm:"foreignKey:OwnerID"`
	Products []ProductModel `gorm:"foreignKey:BusinessID;constraint:OnDelete:CASCADE"`
	// ProductCount só é preenchido pela listagem (subconsulta)
	ProductCount int64 `gorm:"->;-:migration"`
}

func (BusinessModel) TableName() string {
	return "businesses"
}

func (m *BusinessModel) BeforeCreate(*gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// ProductModel é o model GORM para produtos
type ProductModel struct {
	ID          string   `gorm:"type:uuid;primaryKey"`
	BusinessID  string   `gorm:"type:uuid;not null;index"`
	Name        string   `gorm:"type:varchar(255);not null"`
	Slug        string   `gorm:"type:varchar(255);uniqueIndex;not null"`
	Description string   `gorm:"type:text;not null"`
	Price       float64  `gorm:"type:numeric(14,2);not null"`
	Currency    string   `gorm:"type:varchar(3);not null"`
	Category    string   `gorm:"type:varchar(100);not null;index"`
	IsService   bool     `gorm:"not null"`
	IsAvailable bool     `gorm:"not null;index"`
	Stock       *int     `gorm:""`
	Images      []string `gorm:"serializer:json;type:text"`
	Views       int64    `gorm:"not null"`
	CreatedAt   int64    `gorm:"autoCreateTime:milli;index"`
	UpdatedAt   int64    `gorm:"autoUpdateTime:milli"`

	Business *BusinessModel `gorm:"foreignKey:BusinessID"`
}

func (ProductModel) TableName() string {
	return "products"
}

func (m *ProductModel) BeforeCreate(*gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
