package domain

import "time"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusCompleted:
		return true
	default:
		return false
	}
}

type InvoiceStatus string

const (
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusOverdue InvoiceStatus = "overdue"
)

func (s InvoiceStatus) Valid() bool {
	switch s {
	case InvoiceStatusPaid, InvoiceStatusPending, InvoiceStatusOverdue:
		return true
	default:
		return false
	}
}

type Order struct {
	ID         int64       `json:"id" gorm:"primaryKey"`
	Number     string      `json:"number" gorm:"type:text;not null;uniqueIndex"`
	CustomerID int64       `json:"customer_id" gorm:"not null;index"`
	PlacedAt   time.Time   `json:"placed_at" gorm:"not null;index"`
	Total      float64     `json:"total" gorm:"type:decimal(12,2);not null"`
	Status     OrderStatus `json:"status" gorm:"type:text;not null;index"`
	CreatedAt  time.Time   `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt  time.Time   `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Order) TableName() string { return "orders" }

type Invoice struct {
	ID         int64         `json:"id" gorm:"primaryKey"`
	Number     string        `json:"number" gorm:"type:text;not null;uniqueIndex"`
	CustomerID int64         `json:"customer_id" gorm:"not null;index"`
	IssuedAt   time.Time     `json:"issued_at" gorm:"not null;index"`
	Amount     float64       `json:"amount" gorm:"type:decimal(12,2);not null"`
	Status     InvoiceStatus `json:"status" gorm:"type:text;not null;index"`
	DueDate    time.Time     `json:"due_date" gorm:"not null"`
	CreatedAt  time.Time     `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt  time.Time     `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Invoice) TableName() string { return "invoices" }
