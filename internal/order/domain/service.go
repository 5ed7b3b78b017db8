package domain

import (
	"context"
	"errors"
	"time"
)

type Service interface {
	ListOrders(ctx context.Context, req ListOrdersRequest) ([]OrderResponse, error)
	GetOrder(ctx context.Context, id string) (*OrderResponse, error)
	CreateOrder(ctx context.Context, req CreateOrderRequest) (*OrderResponse, error)
	UpdateOrderStatus(ctx context.Context, id string, status OrderStatus) (*OrderResponse, error)

	ListInvoices(ctx context.Context, req ListInvoicesRequest) ([]InvoiceResponse, error)
	GetInvoice(ctx context.Context, id string) (*InvoiceResponse, error)
	CreateInvoice(ctx context.Context, req CreateInvoiceRequest) (*InvoiceResponse, error)
	UpdateInvoiceStatus(ctx context.Context, id string, status InvoiceStatus) (*InvoiceResponse, error)
}

type ListOrdersRequest struct {
	Status     string
	CustomerID string
}

type CreateOrderRequest struct {
	CustomerID string    `json:"customer_id"`
	PlacedAt   time.Time `json:"placed_at"`
	Total      float64   `json:"total"`
	Status     string    `json:"status"`
}

type OrderResponse struct {
	ID         string      `json:"id"`
	Number     string      `json:"number"`
	CustomerID string      `json:"customer_id"`
	PlacedAt   time.Time   `json:"placed_at"`
	Total      float64     `json:"total"`
	Status     OrderStatus `json:"status"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

type ListInvoicesRequest struct {
	Status     string
	CustomerID string
}

type CreateInvoiceRequest struct {
	CustomerID string    `json:"customer_id"`
	IssuedAt   time.Time `json:"issued_at"`
	Amount     float64   `json:"amount"`
	Status     string    `json:"status"`
	DueDate    time.Time `json:"due_date"`
}

type InvoiceResponse struct {
	ID         string        `json:"id"`
	Number     string        `json:"number"`
	CustomerID string        `json:"customer_id"`
	IssuedAt   time.Time     `json:"issued_at"`
	Amount     float64       `json:"amount"`
	Status     InvoiceStatus `json:"status"`
	DueDate    time.Time     `json:"due_date"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

var (
	ErrNotFound        = errors.New("not_found")
	ErrInvalidID       = errors.New("invalid_id")
	ErrInvalidCustomer = errors.New("invalid_customer")
	ErrInvalidAmount   = errors.New("invalid_amount")
	ErrInvalidStatus   = errors.New("invalid_status")
)
