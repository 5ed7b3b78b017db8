package domain

import (
	"context"
	"errors"
	"time"
)

// Service computes business reports on demand from the transactional
// collections. Every call reads fresh data; nothing is cached.
type Service interface {
	GenerateRevenueReport(ctx context.Context) (*RevenueReportResult, error)
	GenerateProductSalesReport(ctx context.Context) (*ProductSalesResult, error)
	GenerateCustomerAnalysisReport(ctx context.Context) (*CustomerAnalysisResult, error)
	GenerateGrowthTrendReport(ctx context.Context) (*GrowthTrendResult, error)
}

type RevenueReportResult struct {
	ThisMonthRevenue float64   `json:"this_month_revenue"`
	LastMonthRevenue float64   `json:"last_month_revenue"`
	GrowthPercentage float64   `json:"growth_percentage"`
	TotalOrders      int64     `json:"total_orders"`
	ReportDate       string    `json:"report_date"`
	GeneratedAt      time.Time `json:"generated_at"`
}

type ProductSalesResult struct {
	TopProductName      *string   `json:"top_product_name"`
	TopProductRevenue   float64   `json:"top_product_revenue"`
	TopProductUnitsSold int64     `json:"top_product_units_sold"`
	TopCategory         *string   `json:"top_category"`
	ReportDate          string    `json:"report_date"`
	GeneratedAt         time.Time `json:"generated_at"`
}

type CustomerAnalysisResult struct {
	TotalCustomers     int64     `json:"total_customers"`
	NewCustomers       int64     `json:"new_customers"`
	ReturningCustomers int64     `json:"returning_customers"`
	AverageOrderValue  float64   `json:"average_order_value"`
	ReportDate         string    `json:"report_date"`
	GeneratedAt        time.Time `json:"generated_at"`
}

type GrowthTrendResult struct {
	MonthlyGrowth   float64   `json:"monthly_growth"`
	YearlyGrowth    float64   `json:"yearly_growth"`
	QuarterlyGrowth float64   `json:"quarterly_growth"`
	MarketShare     float64   `json:"market_share"`
	ReportDate      string    `json:"report_date"`
	GeneratedAt     time.Time `json:"generated_at"`
}

// ErrReportGeneration wraps any query or snapshot failure; callers receive
// it with the underlying cause appended.
var ErrReportGeneration = errors.New("report generation failed")
