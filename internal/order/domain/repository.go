package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	CreateOrder(ctx context.Context, db *gorm.DB, order *Order) error
	FindOrderByID(ctx context.Context, db *gorm.DB, id int64) (*Order, error)
	ListOrders(ctx context.Context, db *gorm.DB, filter ListOrdersFilter) ([]Order, error)
	UpdateOrder(ctx context.Context, db *gorm.DB, order *Order) error

	CreateInvoice(ctx context.Context, db *gorm.DB, invoice *Invoice) error
	FindInvoiceByID(ctx context.Context, db *gorm.DB, id int64) (*Invoice, error)
	ListInvoices(ctx context.Context, db *gorm.DB, filter ListInvoicesFilter) ([]Invoice, error)
	UpdateInvoice(ctx context.Context, db *gorm.DB, invoice *Invoice) error
}

type ListOrdersFilter struct {
	Status     OrderStatus
	CustomerID int64
}

type ListInvoicesFilter struct {
	Status     InvoiceStatus
	CustomerID int64
}
