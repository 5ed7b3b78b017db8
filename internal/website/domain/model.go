package domain

import (
	"time"

	"gorm.io/datatypes"
)

type BannerPosition string

const (
	BannerPositionHero    BannerPosition = "hero_section"
	BannerPositionSidebar BannerPosition = "sidebar"
	BannerPositionFooter  BannerPosition = "footer"
	BannerPositionPopup   BannerPosition = "popup"
)

func (p BannerPosition) Valid() bool {
	switch p {
	case BannerPositionHero, BannerPositionSidebar, BannerPositionFooter, BannerPositionPopup:
		return true
	}
	return false
}

type BannerStatus string

const (
	BannerStatusActive   BannerStatus = "active"
	BannerStatusInactive BannerStatus = "inactive"
)

func (s BannerStatus) Valid() bool {
	return s == BannerStatusActive || s == BannerStatusInactive
}

type BlogStatus string

const (
	BlogStatusPublished BlogStatus = "published"
	BlogStatusDraft     BlogStatus = "draft"
)

func (s BlogStatus) Valid() bool {
	return s == BlogStatusPublished || s == BlogStatusDraft
}

type BlogCategory string

const (
	BlogCategoryNews   BlogCategory = "news"
	BlogCategoryUpdate BlogCategory = "update"
	BlogCategoryTips   BlogCategory = "tips"
	BlogCategoryEvents BlogCategory = "events"
)

func (c BlogCategory) Valid() bool {
	switch c {
	case BlogCategoryNews, BlogCategoryUpdate, BlogCategoryTips, BlogCategoryEvents:
		return true
	}
	return false
}

type ProductCategory string

const (
	ProductCategoryJerseys     ProductCategory = "jerseys"
	ProductCategoryHoodies     ProductCategory = "hoodies"
	ProductCategoryShorts      ProductCategory = "shorts"
	ProductCategoryAccessories ProductCategory = "accessories"
)

func (c ProductCategory) Valid() bool {
	switch c {
	case ProductCategoryJerseys, ProductCategoryHoodies, ProductCategoryShorts, ProductCategoryAccessories:
		return true
	}
	return false
}

// MenuItem is one entry of the navigation menu. IDs are small sequential
// integers local to the menu, not snowflakes.
type MenuItem struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Link string `json:"link"`
}

// SettingsID pins the singleton settings row.
const SettingsID int64 = 1

// WebsiteSettings is a singleton record, always stored under SettingsID and
// only reachable through the repository's Load/Save pair.
type WebsiteSettings struct {
	ID                 int64                            `json:"id" gorm:"primaryKey"`
	WebsiteName        string                           `json:"website_name" gorm:"type:text;not null"`
	Tagline            *string                          `json:"tagline,omitempty" gorm:"type:text"`
	Logo               *string                          `json:"logo,omitempty" gorm:"type:text"`
	PrimaryColor       string                           `json:"primary_color" gorm:"type:text;not null"`
	AccentColor        string                           `json:"accent_color" gorm:"type:text;not null"`
	NavigationMenu     datatypes.JSONType[[]MenuItem]   `json:"navigation_menu" gorm:"type:jsonb"`
	WebsiteDescription *string                          `json:"website_description,omitempty" gorm:"type:text"`
	SEOKeywords        *string                          `json:"seo_keywords,omitempty" gorm:"type:text"`
	CreatedAt          time.Time                        `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt          time.Time                        `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (WebsiteSettings) TableName() string { return "website_settings" }

type Banner struct {
	ID          int64          `json:"id" gorm:"primaryKey"`
	Title       string         `json:"title" gorm:"type:text;not null"`
	ImageName   *string        `json:"image_name,omitempty" gorm:"type:text"`
	Position    BannerPosition `json:"position" gorm:"type:text;not null"`
	LinkURL     *string        `json:"link_url,omitempty" gorm:"type:text"`
	Status      BannerStatus   `json:"status" gorm:"type:text;not null;default:'active'"`
	Description *string        `json:"description,omitempty" gorm:"type:text"`
	CreatedAt   time.Time      `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt   time.Time      `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Banner) TableName() string { return "banners" }

type Blog struct {
	ID            int64        `json:"id" gorm:"primaryKey"`
	Title         string       `json:"title" gorm:"type:text;not null"`
	Slug          string       `json:"slug" gorm:"type:text;not null;uniqueIndex"`
	Excerpt       string       `json:"excerpt" gorm:"type:text;not null"`
	Content       string       `json:"content" gorm:"type:text;not null"`
	FeaturedImage *string      `json:"featured_image,omitempty" gorm:"type:text"`
	Status        BlogStatus   `json:"status" gorm:"type:text;not null;default:'draft'"`
	Category      BlogCategory `json:"category" gorm:"type:text;not null"`
	CreatedAt     time.Time    `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt     time.Time    `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Blog) TableName() string { return "blogs" }

type Testimonial struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	Text         string    `json:"text" gorm:"type:text;not null"`
	CustomerName string    `json:"customer_name" gorm:"type:text;not null"`
	CreatedAt    time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Testimonial) TableName() string { return "testimonials" }

// Product is the storefront merchandise list, separate from the shirt
// catalog. Inventory stats count these rows.
type Product struct {
	ID          int64           `json:"id" gorm:"primaryKey"`
	Name        string          `json:"name" gorm:"type:text;not null"`
	Price       float64         `json:"price" gorm:"type:decimal(12,2);not null"`
	SKU         string          `json:"sku" gorm:"type:text;not null;uniqueIndex"`
	Category    ProductCategory `json:"category" gorm:"type:text;not null"`
	ImageName   *string         `json:"image_name,omitempty" gorm:"type:text"`
	Description *string         `json:"description,omitempty" gorm:"type:text"`
	CreatedAt   time.Time       `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt   time.Time       `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Product) TableName() string { return "products" }
