package repository

import (
	"context"
	"time"

	orderdomain "github.com/smallbiznis/threadline/internal/order/domain"
	"github.com/smallbiznis/threadline/internal/report/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) CompletedOrderTotalSince(ctx context.Context, db *gorm.DB, start time.Time) (float64, error) {
	var total float64
	err := db.WithContext(ctx).Model(&orderdomain.Order{}).
		Where("status = ? AND placed_at >= ?", orderdomain.OrderStatusCompleted, start).
		Select("COALESCE(SUM(total), 0)").
		Scan(&total).Error
	return total, err
}

func (r *repo) CompletedOrderTotalBetween(ctx context.Context, db *gorm.DB, start, end time.Time) (float64, error) {
	var total float64
	err := db.WithContext(ctx).Model(&orderdomain.Order{}).
		Where("status = ? AND placed_at >= ? AND placed_at < ?", orderdomain.OrderStatusCompleted, start, end).
		Select("COALESCE(SUM(total), 0)").
		Scan(&total).Error
	return total, err
}

func (r *repo) PaidInvoiceTotalSince(ctx context.Context, db *gorm.DB, start time.Time) (float64, error) {
	var total float64
	err := db.WithContext(ctx).Model(&orderdomain.Invoice{}).
		Where("status = ? AND issued_at >= ?", orderdomain.InvoiceStatusPaid, start).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

func (r *repo) PaidInvoiceTotalBetween(ctx context.Context, db *gorm.DB, start, end time.Time) (float64, error) {
	var total float64
	err := db.WithContext(ctx).Model(&orderdomain.Invoice{}).
		Where("status = ? AND issued_at >= ? AND issued_at < ?", orderdomain.InvoiceStatusPaid, start, end).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

func (r *repo) CompletedOrderCountSince(ctx context.Context, db *gorm.DB, start time.Time) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&orderdomain.Order{}).
		Where("status = ? AND placed_at >= ?", orderdomain.OrderStatusCompleted, start).
		Count(&count).Error
	return count, err
}

// RevenueThrough sums completed orders and paid invoices over an
// inclusive-end window, the bounding used by the growth trend report.
func (r *repo) RevenueThrough(ctx context.Context, db *gorm.DB, start, end time.Time) (float64, error) {
	var orders float64
	err := db.WithContext(ctx).Model(&orderdomain.Order{}).
		Where("status = ? AND placed_at >= ? AND placed_at <= ?", orderdomain.OrderStatusCompleted, start, end).
		Select("COALESCE(SUM(total), 0)").
		Scan(&orders).Error
	if err != nil {
		return 0, err
	}

	var invoices float64
	err = db.WithContext(ctx).Model(&orderdomain.Invoice{}).
		Where("status = ? AND issued_at >= ? AND issued_at <= ?", orderdomain.InvoiceStatusPaid, start, end).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&invoices).Error
	if err != nil {
		return 0, err
	}
	return orders + invoices, nil
}

func (r *repo) TopShirt(ctx context.Context, db *gorm.DB) (*domain.ProductUnits, error) {
	var rows []domain.ProductUnits
	err := db.WithContext(ctx).Raw(`
		SELECT s.id AS product_id, s.name AS name, c.display_name AS category, COUNT(us.id) AS units
		FROM user_shirts us
		JOIN shirts s ON s.id = us.shirt_id
		LEFT JOIN shirt_categories c ON c.id = s.category_id
		GROUP BY s.id, s.name, c.display_name
		ORDER BY units DESC, s.id ASC
		LIMIT 1`).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func (r *repo) TopCustomizer(ctx context.Context, db *gorm.DB) (*domain.ProductUnits, error) {
	var rows []domain.ProductUnits
	err := db.WithContext(ctx).Raw(`
		SELECT cz.id AS product_id, cz.name AS name, c.display_name AS category, COUNT(uc.id) AS units
		FROM user_customizers uc
		JOIN customizers cz ON cz.id = uc.customizer_id
		LEFT JOIN shirt_categories c ON c.id = cz.category_id
		GROUP BY cz.id, cz.name, c.display_name
		ORDER BY units DESC, cz.id ASC
		LIMIT 1`).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func (r *repo) AverageCompletedOrderTotalSince(ctx context.Context, db *gorm.DB, start time.Time) (float64, error) {
	var avg float64
	err := db.WithContext(ctx).Model(&orderdomain.Order{}).
		Where("status = ? AND placed_at >= ?", orderdomain.OrderStatusCompleted, start).
		Select("COALESCE(AVG(total), 0)").
		Scan(&avg).Error
	return avg, err
}

func (r *repo) AverageCompletedOrderTotal(ctx context.Context, db *gorm.DB) (float64, error) {
	var avg float64
	err := db.WithContext(ctx).Model(&orderdomain.Order{}).
		Where("status = ?", orderdomain.OrderStatusCompleted).
		Select("COALESCE(AVG(total), 0)").
		Scan(&avg).Error
	return avg, err
}

func (r *repo) DistinctOrderCustomerCount(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&orderdomain.Order{}).
		Distinct("customer_id").
		Count(&count).Error
	return count, err
}

// NewCustomerCount counts customers whose earliest order falls on or after
// monthStart, using a single grouped MIN aggregate.
func (r *repo) NewCustomerCount(ctx context.Context, db *gorm.DB, monthStart time.Time) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Raw(`
		SELECT COUNT(*) FROM (
			SELECT customer_id, MIN(placed_at) AS first_order
			FROM orders
			GROUP BY customer_id
		) firsts
		WHERE first_order >= ?`, monthStart).
		Scan(&count).Error
	return count, err
}

func (r *repo) ReturningCustomerCount(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Raw(`
		SELECT COUNT(*) FROM (
			SELECT customer_id
			FROM orders
			GROUP BY customer_id
			HAVING COUNT(id) > 1
		) repeats`).
		Scan(&count).Error
	return count, err
}

func (r *repo) SaveRevenueReport(ctx context.Context, db *gorm.DB, snapshot *domain.RevenueReport) error {
	return db.WithContext(ctx).Create(snapshot).Error
}

func (r *repo) SaveProductSalesReport(ctx context.Context, db *gorm.DB, snapshot *domain.ProductSalesReport) error {
	return db.WithContext(ctx).Create(snapshot).Error
}

func (r *repo) SaveCustomerAnalysisReport(ctx context.Context, db *gorm.DB, snapshot *domain.CustomerAnalysisReport) error {
	return db.WithContext(ctx).Create(snapshot).Error
}

func (r *repo) SaveGrowthTrendReport(ctx context.Context, db *gorm.DB, snapshot *domain.GrowthTrendReport) error {
	return db.WithContext(ctx).Create(snapshot).Error
}
