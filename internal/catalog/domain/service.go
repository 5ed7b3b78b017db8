package domain

import (
	"context"
	"errors"
	"time"
)

type Service interface {
	ListCategories(ctx context.Context) ([]CategoryResponse, error)
	CreateCategory(ctx context.Context, req CreateCategoryRequest) (*CategoryResponse, error)
	UpdateCategory(ctx context.Context, req UpdateCategoryRequest) (*CategoryResponse, error)
	DeleteCategory(ctx context.Context, id string) error
	UnlockCategory(ctx context.Context, id, password string) (*CategoryResponse, error)

	ListSubCategories(ctx context.Context, categoryID string) ([]SubCategoryResponse, error)
	CreateSubCategory(ctx context.Context, req CreateSubCategoryRequest) (*SubCategoryResponse, error)
	DeleteSubCategory(ctx context.Context, id string) error

	ListShirts(ctx context.Context, req ListShirtsRequest) ([]ShirtResponse, error)
	GetShirt(ctx context.Context, id string) (*ShirtResponse, error)
	CreateShirt(ctx context.Context, req CreateShirtRequest) (*ShirtResponse, error)
	UpdateShirt(ctx context.Context, req UpdateShirtRequest) (*ShirtResponse, error)
	DeleteShirt(ctx context.Context, id string) error

	ListCustomizers(ctx context.Context) ([]CustomizerResponse, error)
	GetCustomizer(ctx context.Context, id string) (*CustomizerResponse, error)
	CreateCustomizer(ctx context.Context, req CreateCustomizerRequest) (*CustomizerResponse, error)
	DeleteCustomizer(ctx context.Context, id string) error

	ListPatterns(ctx context.Context) ([]PatternResponse, error)
	CreatePattern(ctx context.Context, req CreatePatternRequest) (*PatternResponse, error)
	DeletePattern(ctx context.Context, id string) error

	ListColors(ctx context.Context) ([]ColorResponse, error)
	CreateColor(ctx context.Context, req CreateColorRequest) (*ColorResponse, error)
	DeleteColor(ctx context.Context, id string) error

	ListFonts(ctx context.Context) ([]FontResponse, error)
	CreateFont(ctx context.Context, req CreateFontRequest) (*FontResponse, error)
	DeleteFont(ctx context.Context, id string) error
}

type CreateCategoryRequest struct {
	Name        string  `json:"name"`
	DisplayName string  `json:"display_name"`
	Password    *string `json:"password"`
}

type UpdateCategoryRequest struct {
	ID          string
	DisplayName *string `json:"display_name"`
	Password    *string `json:"password"`
}

type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	DisplayName string    `json:"display_name"`
	Locked      bool      `json:"locked"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateSubCategoryRequest struct {
	CategoryID string `json:"category_id"`
	Name       string `json:"name"`
}

type SubCategoryResponse struct {
	ID         string    `json:"id"`
	CategoryID string    `json:"category_id"`
	Name       string    `json:"name"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type ListShirtsRequest struct {
	CategoryID    string
	SubCategoryID string
}

type CreateShirtRequest struct {
	Name          string         `json:"name"`
	Description   *string        `json:"description"`
	BasePrice     float64        `json:"base_price"`
	CategoryID    string         `json:"category_id"`
	SubCategoryID *string        `json:"sub_category_id"`
	ImageName     *string        `json:"image_name"`
	Metadata      map[string]any `json:"metadata"`
}

type UpdateShirtRequest struct {
	ID          string
	Name        *string        `json:"name"`
	Description *string        `json:"description"`
	BasePrice   *float64       `json:"base_price"`
	ImageName   *string        `json:"image_name"`
	Metadata    map[string]any `json:"metadata"`
}

type ShirtResponse struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Description   *string        `json:"description,omitempty"`
	BasePrice     float64        `json:"base_price"`
	CategoryID    string         `json:"category_id"`
	SubCategoryID *string        `json:"sub_category_id,omitempty"`
	ImageName     *string        `json:"image_name,omitempty"`
	Metadata      map[string]any `json:"metadata,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

type CreateCustomizerRequest struct {
	Name        string         `json:"name"`
	Description *string        `json:"description"`
	BasePrice   float64        `json:"base_price"`
	CategoryID  *string        `json:"category_id"`
	Template    map[string]any `json:"template"`
}

type CustomizerResponse struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description *string        `json:"description,omitempty"`
	BasePrice   float64        `json:"base_price"`
	CategoryID  *string        `json:"category_id,omitempty"`
	Template    map[string]any `json:"template,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

type CreatePatternRequest struct {
	Name      string  `json:"name"`
	ImageName *string `json:"image_name"`
}

type PatternResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	ImageName *string   `json:"image_name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateColorRequest struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

type ColorResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateFontRequest struct {
	FontName   string  `json:"font_name"`
	FontFamily string  `json:"font_family"`
	FileName   *string `json:"file_name"`
}

type FontResponse struct {
	ID         string    `json:"id"`
	FontName   string    `json:"font_name"`
	FontFamily string    `json:"font_family"`
	FileName   *string   `json:"file_name,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

var (
	ErrNotFound         = errors.New("not_found")
	ErrInvalidID        = errors.New("invalid_id")
	ErrInvalidName      = errors.New("invalid_name")
	ErrInvalidPrice     = errors.New("invalid_price")
	ErrInvalidCategory  = errors.New("invalid_category")
	ErrInvalidColorCode = errors.New("invalid_color_code")
	ErrInvalidFontFile  = errors.New("invalid_font_file")
	ErrWrongPassword    = errors.New("wrong_password")
	ErrCategoryLocked   = errors.New("category_locked")
)
