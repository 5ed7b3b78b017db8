package domain

import "time"

// Snapshot rows written on every generate call. The aggregator never reads
// these back; they exist for point-in-time history only.

type RevenueReport struct {
	ID               int64     `json:"id" gorm:"primaryKey"`
	ThisMonthRevenue float64   `json:"this_month_revenue" gorm:"type:decimal(12,2);not null"`
	LastMonthRevenue float64   `json:"last_month_revenue" gorm:"type:decimal(12,2);not null"`
	GrowthPercentage float64   `json:"growth_percentage" gorm:"type:decimal(12,2);not null"`
	TotalOrders      int64     `json:"total_orders" gorm:"not null"`
	ReportDate       time.Time `json:"report_date" gorm:"type:date;not null"`
	CreatedAt        time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (RevenueReport) TableName() string { return "revenue_reports" }

type ProductSalesReport struct {
	ID                  int64     `json:"id" gorm:"primaryKey"`
	TopProductName      *string   `json:"top_product_name" gorm:"type:text"`
	TopProductRevenue   float64   `json:"top_product_revenue" gorm:"type:decimal(12,2);not null"`
	TopProductUnitsSold int64     `json:"top_product_units_sold" gorm:"not null"`
	TopCategory         *string   `json:"top_category" gorm:"type:text"`
	ReportDate          time.Time `json:"report_date" gorm:"type:date;not null"`
	CreatedAt           time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (ProductSalesReport) TableName() string { return "product_sales_reports" }

type CustomerAnalysisReport struct {
	ID                 int64     `json:"id" gorm:"primaryKey"`
	TotalCustomers     int64     `json:"total_customers" gorm:"not null"`
	NewCustomers       int64     `json:"new_customers" gorm:"not null"`
	ReturningCustomers int64     `json:"returning_customers" gorm:"not null"`
	AverageOrderValue  float64   `json:"average_order_value" gorm:"type:decimal(12,2);not null"`
	ReportDate         time.Time `json:"report_date" gorm:"type:date;not null"`
	CreatedAt          time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (CustomerAnalysisReport) TableName() string { return "customer_analysis_reports" }

type GrowthTrendReport struct {
	ID              int64     `json:"id" gorm:"primaryKey"`
	MonthlyGrowth   float64   `json:"monthly_growth" gorm:"type:decimal(12,2);not null"`
	YearlyGrowth    float64   `json:"yearly_growth" gorm:"type:decimal(12,2);not null"`
	QuarterlyGrowth float64   `json:"quarterly_growth" gorm:"type:decimal(12,2);not null"`
	MarketShare     float64   `json:"market_share" gorm:"type:decimal(12,2);not null"`
	ReportDate      time.Time `json:"report_date" gorm:"type:date;not null"`
	CreatedAt       time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (GrowthTrendReport) TableName() string { return "growth_trend_reports" }
