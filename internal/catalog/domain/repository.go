package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	CreateCategory(ctx context.Context, db *gorm.DB, category *ShirtCategory) error
	FindCategoryByID(ctx context.Context, db *gorm.DB, id int64) (*ShirtCategory, error)
	ListCategories(ctx context.Context, db *gorm.DB) ([]ShirtCategory, error)
	UpdateCategory(ctx context.Context, db *gorm.DB, category *ShirtCategory) error
	DeleteCategory(ctx context.Context, db *gorm.DB, id int64) error

	CreateSubCategory(ctx context.Context, db *gorm.DB, sub *ShirtSubCategory) error
	ListSubCategories(ctx context.Context, db *gorm.DB, categoryID int64) ([]ShirtSubCategory, error)
	DeleteSubCategory(ctx context.Context, db *gorm.DB, id int64) error

	CreateShirt(ctx context.Context, db *gorm.DB, shirt *Shirt) error
	FindShirtByID(ctx context.Context, db *gorm.DB, id int64) (*Shirt, error)
	ListShirts(ctx context.Context, db *gorm.DB, filter ListShirtsFilter) ([]Shirt, error)
	UpdateShirt(ctx context.Context, db *gorm.DB, shirt *Shirt) error
	DeleteShirt(ctx context.Context, db *gorm.DB, id int64) error

	CreateCustomizer(ctx context.Context, db *gorm.DB, customizer *Customizer) error
	FindCustomizerByID(ctx context.Context, db *gorm.DB, id int64) (*Customizer, error)
	ListCustomizers(ctx context.Context, db *gorm.DB) ([]Customizer, error)
	DeleteCustomizer(ctx context.Context, db *gorm.DB, id int64) error

	CreatePattern(ctx context.Context, db *gorm.DB, pattern *Pattern) error
	ListPatterns(ctx context.Context, db *gorm.DB) ([]Pattern, error)
	DeletePattern(ctx context.Context, db *gorm.DB, id int64) error

	CreateColor(ctx context.Context, db *gorm.DB, color *Color) error
	ListColors(ctx context.Context, db *gorm.DB) ([]Color, error)
	DeleteColor(ctx context.Context, db *gorm.DB, id int64) error

	CreateFont(ctx context.Context, db *gorm.DB, font *Font) error
	ListFonts(ctx context.Context, db *gorm.DB) ([]Font, error)
	DeleteFont(ctx context.Context, db *gorm.DB, id int64) error
}

type ListShirtsFilter struct {
	CategoryID    int64
	SubCategoryID int64
}
