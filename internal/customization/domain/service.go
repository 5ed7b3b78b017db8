package domain

import (
	"context"
	"errors"
	"time"
)

type Service interface {
	ListUserShirts(ctx context.Context, req ListRequest) ([]UserShirtResponse, error)
	CreateUserShirt(ctx context.Context, req CreateUserShirtRequest) (*UserShirtResponse, error)
	UpdateUserShirt(ctx context.Context, req UpdateUserShirtRequest) (*UserShirtResponse, error)
	DeleteUserShirt(ctx context.Context, id string) error

	ListUserCustomizers(ctx context.Context, req ListRequest) ([]UserCustomizerResponse, error)
	CreateUserCustomizer(ctx context.Context, req CreateUserCustomizerRequest) (*UserCustomizerResponse, error)
	UpdateUserCustomizer(ctx context.Context, req UpdateUserCustomizerRequest) (*UserCustomizerResponse, error)
	DeleteUserCustomizer(ctx context.Context, id string) error
}

type ListRequest struct {
	CustomerID string
}

type CreateUserShirtRequest struct {
	CustomerID string             `json:"customer_id"`
	ShirtID    string             `json:"shirt_id"`
	Purchased  bool               `json:"purchased"`
	Data       *CustomizationData `json:"data"`
}

type UpdateUserShirtRequest struct {
	ID        string
	Purchased *bool              `json:"purchased"`
	Data      *CustomizationData `json:"data"`
}

type UserShirtResponse struct {
	ID         string            `json:"id"`
	CustomerID string            `json:"customer_id"`
	ShirtID    string            `json:"shirt_id"`
	Purchased  bool              `json:"purchased"`
	Data       CustomizationData `json:"data"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

type CreateUserCustomizerRequest struct {
	CustomerID   string             `json:"customer_id"`
	CustomizerID string             `json:"customizer_id"`
	Purchased    bool               `json:"purchased"`
	Data         *CustomizationData `json:"data"`
}

type UpdateUserCustomizerRequest struct {
	ID        string
	Purchased *bool              `json:"purchased"`
	Data      *CustomizationData `json:"data"`
}

type UserCustomizerResponse struct {
	ID           string            `json:"id"`
	CustomerID   string            `json:"customer_id"`
	CustomizerID string            `json:"customizer_id"`
	Purchased    bool              `json:"purchased"`
	Data         CustomizationData `json:"data"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

var (
	ErrNotFound        = errors.New("not_found")
	ErrInvalidID       = errors.New("invalid_id")
	ErrInvalidCustomer = errors.New("invalid_customer")
	ErrInvalidProduct  = errors.New("invalid_product")
)
