package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	CreateUserShirt(ctx context.Context, db *gorm.DB, record *UserShirt) error
	FindUserShirtByID(ctx context.Context, db *gorm.DB, id int64) (*UserShirt, error)
	ListUserShirts(ctx context.Context, db *gorm.DB, customerID int64) ([]UserShirt, error)
	UpdateUserShirt(ctx context.Context, db *gorm.DB, record *UserShirt) error
	DeleteUserShirt(ctx context.Context, db *gorm.DB, id int64) error

	CreateUserCustomizer(ctx context.Context, db *gorm.DB, record *UserCustomizer) error
	FindUserCustomizerByID(ctx context.Context, db *gorm.DB, id int64) (*UserCustomizer, error)
	ListUserCustomizers(ctx context.Context, db *gorm.DB, customerID int64) ([]UserCustomizer, error)
	UpdateUserCustomizer(ctx context.Context, db *gorm.DB, record *UserCustomizer) error
	DeleteUserCustomizer(ctx context.Context, db *gorm.DB, id int64) error
}
