package domain

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// ProductUnits is one catalog item with its user-customization record count.
type ProductUnits struct {
	ProductID int64
	Name      string
	Category  *string
	Units     int64
}

// Repository is the read surface the aggregator runs on, plus snapshot
// writes. Range methods ending in Between are half-open [start, end);
// RevenueThrough is inclusive of end.
type Repository interface {
	CompletedOrderTotalSince(ctx context.Context, db *gorm.DB, start time.Time) (float64, error)
	CompletedOrderTotalBetween(ctx context.Context, db *gorm.DB, start, end time.Time) (float64, error)
	PaidInvoiceTotalSince(ctx context.Context, db *gorm.DB, start time.Time) (float64, error)
	PaidInvoiceTotalBetween(ctx context.Context, db *gorm.DB, start, end time.Time) (float64, error)
	CompletedOrderCountSince(ctx context.Context, db *gorm.DB, start time.Time) (int64, error)
	RevenueThrough(ctx context.Context, db *gorm.DB, start, end time.Time) (float64, error)

	TopShirt(ctx context.Context, db *gorm.DB) (*ProductUnits, error)
	TopCustomizer(ctx context.Context, db *gorm.DB) (*ProductUnits, error)
	AverageCompletedOrderTotalSince(ctx context.Context, db *gorm.DB, start time.Time) (float64, error)
	AverageCompletedOrderTotal(ctx context.Context, db *gorm.DB) (float64, error)

	DistinctOrderCustomerCount(ctx context.Context, db *gorm.DB) (int64, error)
	NewCustomerCount(ctx context.Context, db *gorm.DB, monthStart time.Time) (int64, error)
	ReturningCustomerCount(ctx context.Context, db *gorm.DB) (int64, error)

	SaveRevenueReport(ctx context.Context, db *gorm.DB, snapshot *RevenueReport) error
	SaveProductSalesReport(ctx context.Context, db *gorm.DB, snapshot *ProductSalesReport) error
	SaveCustomerAnalysisReport(ctx context.Context, db *gorm.DB, snapshot *CustomerAnalysisReport) error
	SaveGrowthTrendReport(ctx context.Context, db *gorm.DB, snapshot *GrowthTrendReport) error
}
