package domain

import (
	"context"
	"errors"
	"time"
)

type Service interface {
	GetSettings(ctx context.Context) (*SettingsResponse, error)
	UpdateSettings(ctx context.Context, req UpdateSettingsRequest) (*SettingsResponse, error)

	GetPaymentSettings(ctx context.Context) (*PaymentSettingsResponse, error)
	UpdatePaymentSettings(ctx context.Context, req UpdatePaymentSettingsRequest) (*PaymentSettingsResponse, error)
	GetTaxConfiguration(ctx context.Context) (*TaxConfigurationResponse, error)
	UpdateTaxConfiguration(ctx context.Context, req UpdateTaxConfigurationRequest) (*TaxConfigurationResponse, error)
	GetGeneralSettings(ctx context.Context) (*GeneralSettingsResponse, error)
	UpdateGeneralSettings(ctx context.Context, req UpdateGeneralSettingsRequest) (*GeneralSettingsResponse, error)
	GetNotificationSettings(ctx context.Context) (*NotificationSettingsResponse, error)
	UpdateNotificationSettings(ctx context.Context, req UpdateNotificationSettingsRequest) (*NotificationSettingsResponse, error)

	AddMenuItem(ctx context.Context, req AddMenuItemRequest) (*SettingsResponse, error)
	UpdateMenuItems(ctx context.Context, items []MenuItem) (*MenuUpdateResponse, error)
	DeleteMenuItems(ctx context.Context, ids []int) (*MenuDeleteResponse, error)

	ListBanners(ctx context.Context) ([]BannerResponse, error)
	CreateBanner(ctx context.Context, req CreateBannerRequest) (*BannerResponse, error)
	UpdateBanner(ctx context.Context, req UpdateBannerRequest) (*BannerResponse, error)
	DeleteBanner(ctx context.Context, id string) error

	ListBlogs(ctx context.Context) ([]BlogResponse, error)
	GetBlog(ctx context.Context, id string) (*BlogResponse, error)
	CreateBlog(ctx context.Context, req CreateBlogRequest) (*BlogResponse, error)
	UpdateBlog(ctx context.Context, req UpdateBlogRequest) (*BlogResponse, error)
	DeleteBlog(ctx context.Context, id string) error

	ListTestimonials(ctx context.Context) ([]TestimonialResponse, error)
	CreateTestimonial(ctx context.Context, req CreateTestimonialRequest) (*TestimonialResponse, error)
	DeleteTestimonial(ctx context.Context, id string) error

	ListProducts(ctx context.Context) ([]ProductResponse, error)
	CreateProduct(ctx context.Context, req CreateProductRequest) (*ProductResponse, error)
	DeleteProduct(ctx context.Context, id string) error

	InventoryStats(ctx context.Context) (*InventoryStatsResponse, error)
}

type SettingsResponse struct {
	WebsiteName        string     `json:"website_name"`
	Tagline            *string    `json:"tagline,omitempty"`
	Logo               *string    `json:"logo,omitempty"`
	PrimaryColor       string     `json:"primary_color"`
	AccentColor        string     `json:"accent_color"`
	NavigationMenu     []MenuItem `json:"navigation_menu"`
	WebsiteDescription *string    `json:"website_description,omitempty"`
	SEOKeywords        *string    `json:"seo_keywords,omitempty"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

type UpdateSettingsRequest struct {
	WebsiteName        *string `json:"website_name"`
	Tagline            *string `json:"tagline"`
	Logo               *string `json:"logo"`
	PrimaryColor       *string `json:"primary_color"`
	AccentColor        *string `json:"accent_color"`
	WebsiteDescription *string `json:"website_description"`
	SEOKeywords        *string `json:"seo_keywords"`
}

type AddMenuItemRequest struct {
	Name string `json:"name"`
	Link string `json:"link"`
}

type MenuUpdateResponse struct {
	Settings SettingsResponse `json:"settings"`
	Updated  int              `json:"updated"`
	Added    int              `json:"added"`
}

type MenuDeleteResponse struct {
	Settings     SettingsResponse `json:"settings"`
	DeletedItems []MenuItem       `json:"deleted_items"`
}

type CreateBannerRequest struct {
	Title       string  `json:"title"`
	ImageName   *string `json:"image_name"`
	Position    string  `json:"position"`
	LinkURL     *string `json:"link_url"`
	Status      string  `json:"status"`
	Description *string `json:"description"`
}

type UpdateBannerRequest struct {
	ID          string
	Title       *string `json:"title"`
	ImageName   *string `json:"image_name"`
	Position    *string `json:"position"`
	LinkURL     *string `json:"link_url"`
	Status      *string `json:"status"`
	Description *string `json:"description"`
}

type BannerResponse struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	ImageName   *string        `json:"image_name,omitempty"`
	Position    BannerPosition `json:"position"`
	LinkURL     *string        `json:"link_url,omitempty"`
	Status      BannerStatus   `json:"status"`
	Description *string        `json:"description,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

type CreateBlogRequest struct {
	Title         string  `json:"title"`
	Excerpt       string  `json:"excerpt"`
	Content       string  `json:"content"`
	FeaturedImage *string `json:"featured_image"`
	Status        string  `json:"status"`
	Category      string  `json:"category"`
}

type UpdateBlogRequest struct {
	ID            string
	Title         *string `json:"title"`
	Excerpt       *string `json:"excerpt"`
	Content       *string `json:"content"`
	FeaturedImage *string `json:"featured_image"`
	Status        *string `json:"status"`
	Category      *string `json:"category"`
}

type BlogResponse struct {
	ID            string       `json:"id"`
	Title         string       `json:"title"`
	Slug          string       `json:"slug"`
	Excerpt       string       `json:"excerpt"`
	Content       string       `json:"content"`
	FeaturedImage *string      `json:"featured_image,omitempty"`
	Status        BlogStatus   `json:"status"`
	Category      BlogCategory `json:"category"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

type CreateTestimonialRequest struct {
	Text         string `json:"text"`
	CustomerName string `json:"customer_name"`
}

type TestimonialResponse struct {
	ID           string    `json:"id"`
	Text         string    `json:"text"`
	CustomerName string    `json:"customer_name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type CreateProductRequest struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	SKU         string  `json:"sku"`
	Category    string  `json:"category"`
	ImageName   *string `json:"image_name"`
	Description *string `json:"description"`
}

type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       float64         `json:"price"`
	SKU         string          `json:"sku"`
	Category    ProductCategory `json:"category"`
	ImageName   *string         `json:"image_name,omitempty"`
	Description *string         `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Stock fields stay at zero until per-product stock tracking exists.
type InventoryStatsResponse struct {
	TotalProducts      int64   `json:"total_products"`
	LowStockItems      int64   `json:"low_stock_items"`
	OutOfStock         int64   `json:"out_of_stock"`
	TotalInventoryCost float64 `json:"total_inventory_cost"`
}

var (
	ErrNotFound        = errors.New("not_found")
	ErrInvalidID       = errors.New("invalid_id")
	ErrInvalidMenuItem = errors.New("invalid_menu_item")
	ErrMenuIDsMissing  = errors.New("menu_ids_missing")
	ErrMenuEmpty       = errors.New("menu_empty")
	ErrInvalidTitle    = errors.New("invalid_title")
	ErrInvalidPosition = errors.New("invalid_position")
	ErrInvalidStatus   = errors.New("invalid_status")
	ErrInvalidCategory = errors.New("invalid_category")
	ErrInvalidPrice    = errors.New("invalid_price")
	ErrInvalidSKU      = errors.New("invalid_sku")
	ErrInvalidText     = errors.New("invalid_text")
	ErrInvalidCurrency = errors.New("invalid_currency")
	ErrInvalidTaxType  = errors.New("invalid_tax_type")
	ErrInvalidLanguage = errors.New("invalid_language")
	ErrInvalidTaxRate  = errors.New("invalid_tax_rate")
)
