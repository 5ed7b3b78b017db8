package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	// LoadSettings returns the singleton row, creating it with defaults on
	// first access.
	LoadSettings(ctx context.Context, db *gorm.DB) (*WebsiteSettings, error)
	SaveSettings(ctx context.Context, db *gorm.DB, settings *WebsiteSettings) error

	LoadPaymentSettings(ctx context.Context, db *gorm.DB) (*PaymentSettings, error)
	SavePaymentSettings(ctx context.Context, db *gorm.DB, settings *PaymentSettings) error
	LoadTaxConfiguration(ctx context.Context, db *gorm.DB) (*TaxConfiguration, error)
	SaveTaxConfiguration(ctx context.Context, db *gorm.DB, settings *TaxConfiguration) error
	LoadGeneralSettings(ctx context.Context, db *gorm.DB) (*GeneralSettings, error)
	SaveGeneralSettings(ctx context.Context, db *gorm.DB, settings *GeneralSettings) error
	LoadNotificationSettings(ctx context.Context, db *gorm.DB) (*NotificationSettings, error)
	SaveNotificationSettings(ctx context.Context, db *gorm.DB, settings *NotificationSettings) error

	CreateBanner(ctx context.Context, db *gorm.DB, banner *Banner) error
	FindBannerByID(ctx context.Context, db *gorm.DB, id int64) (*Banner, error)
	ListBanners(ctx context.Context, db *gorm.DB) ([]Banner, error)
	UpdateBanner(ctx context.Context, db *gorm.DB, banner *Banner) error
	DeleteBanner(ctx context.Context, db *gorm.DB, id int64) error

	CreateBlog(ctx context.Context, db *gorm.DB, blog *Blog) error
	FindBlogByID(ctx context.Context, db *gorm.DB, id int64) (*Blog, error)
	ListBlogs(ctx context.Context, db *gorm.DB) ([]Blog, error)
	UpdateBlog(ctx context.Context, db *gorm.DB, blog *Blog) error
	DeleteBlog(ctx context.Context, db *gorm.DB, id int64) error

	CreateTestimonial(ctx context.Context, db *gorm.DB, testimonial *Testimonial) error
	ListTestimonials(ctx context.Context, db *gorm.DB) ([]Testimonial, error)
	DeleteTestimonial(ctx context.Context, db *gorm.DB, id int64) error

	CreateProduct(ctx context.Context, db *gorm.DB, product *Product) error
	ListProducts(ctx context.Context, db *gorm.DB) ([]Product, error)
	DeleteProduct(ctx context.Context, db *gorm.DB, id int64) error
	CountProducts(ctx context.Context, db *gorm.DB) (int64, error)
}
