package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	catalogdomain "github.com/smallbiznis/threadline/internal/catalog/domain"
	"github.com/smallbiznis/threadline/internal/clock"
	customizationdomain "github.com/smallbiznis/threadline/internal/customization/domain"
	orderdomain "github.com/smallbiznis/threadline/internal/order/domain"
	"github.com/smallbiznis/threadline/internal/report/domain"
	"github.com/smallbiznis/threadline/internal/report/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var testNow = time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&orderdomain.Order{},
		&orderdomain.Invoice{},
		&catalogdomain.ShirtCategory{},
		&catalogdomain.Shirt{},
		&catalogdomain.Customizer{},
		&customizationdomain.UserShirt{},
		&customizationdomain.UserCustomizer{},
		&domain.RevenueReport{},
		&domain.ProductSalesReport{},
		&domain.CustomerAnalysisReport{},
		&domain.GrowthTrendReport{},
	))
	return db
}

func newTestService(t *testing.T, db *gorm.DB, now time.Time) domain.Service {
	t.Helper()

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	return New(Params{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Clock: clock.NewFakeClock(now),
		Repo:  repository.Provide(),
	})
}

var nextID int64 = 1000

func newID() int64 {
	nextID++
	return nextID
}

func seedOrder(t *testing.T, db *gorm.DB, customerID int64, placedAt time.Time, total float64, status orderdomain.OrderStatus) {
	t.Helper()
	id := newID()
	require.NoError(t, db.Create(&orderdomain.Order{
		ID:         id,
		Number:     fmt.Sprintf("ORD-TEST-%d", id),
		CustomerID: customerID,
		PlacedAt:   placedAt,
		Total:      total,
		Status:     status,
		CreatedAt:  placedAt,
		UpdatedAt:  placedAt,
	}).Error)
}

func seedInvoice(t *testing.T, db *gorm.DB, customerID int64, issuedAt time.Time, amount float64, status orderdomain.InvoiceStatus) {
	t.Helper()
	id := newID()
	require.NoError(t, db.Create(&orderdomain.Invoice{
		ID:         id,
		Number:     fmt.Sprintf("INV-TEST-%d", id),
		CustomerID: customerID,
		IssuedAt:   issuedAt,
		Amount:     amount,
		Status:     status,
		DueDate:    issuedAt.AddDate(0, 0, 30),
		CreatedAt:  issuedAt,
		UpdatedAt:  issuedAt,
	}).Error)
}

func seedCategory(t *testing.T, db *gorm.DB, displayName string) int64 {
	t.Helper()
	id := newID()
	require.NoError(t, db.Create(&catalogdomain.ShirtCategory{
		ID:          id,
		Name:        displayName,
		DisplayName: displayName,
		CreatedAt:   testNow,
		UpdatedAt:   testNow,
	}).Error)
	return id
}

func seedShirt(t *testing.T, db *gorm.DB, name string, categoryID int64) int64 {
	t.Helper()
	id := newID()
	require.NoError(t, db.Create(&catalogdomain.Shirt{
		ID:         id,
		Name:       name,
		BasePrice:  25,
		CategoryID: categoryID,
		CreatedAt:  testNow,
		UpdatedAt:  testNow,
	}).Error)
	return id
}

func seedCustomizer(t *testing.T, db *gorm.DB, name string, categoryID *int64) int64 {
	t.Helper()
	id := newID()
	require.NoError(t, db.Create(&catalogdomain.Customizer{
		ID:         id,
		Name:       name,
		BasePrice:  40,
		CategoryID: categoryID,
		CreatedAt:  testNow,
		UpdatedAt:  testNow,
	}).Error)
	return id
}

func seedUserShirts(t *testing.T, db *gorm.DB, shirtID int64, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		require.NoError(t, db.Create(&customizationdomain.UserShirt{
			ID:         newID(),
			CustomerID: newID(),
			ShirtID:    shirtID,
			CreatedAt:  testNow,
			UpdatedAt:  testNow,
		}).Error)
	}
}

func seedUserCustomizers(t *testing.T, db *gorm.DB, customizerID int64, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		require.NoError(t, db.Create(&customizationdomain.UserCustomizer{
			ID:           newID(),
			CustomerID:   newID(),
			CustomizerID: customizerID,
			CreatedAt:    testNow,
			UpdatedAt:    testNow,
		}).Error)
	}
}

func TestGrowth(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		previous float64
		want     float64
	}{
		{"increase", 150, 100, 50},
		{"decrease", 50, 100, -50},
		{"scenario", 250, 100, 150},
		{"zero previous with revenue", 120, 0, 100},
		{"zero previous zero current", 0, 0, 0},
		{"unchanged", 100, 100, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, growth(tt.current, tt.previous), 0.0001)
		})
	}
}

func TestQuarterWindows(t *testing.T) {
	// January rolls back to Q4 of the prior year, not month zero.
	jan := time.Date(2026, time.January, 15, 10, 0, 0, 0, time.UTC)
	start, end := previousQuarter(jan)
	assert.Equal(t, time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC), end)
	assert.Equal(t, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), quarterStart(jan))

	aug := time.Date(2026, time.August, 15, 10, 0, 0, 0, time.UTC)
	start, end = previousQuarter(aug)
	assert.Equal(t, time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, time.June, 30, 0, 0, 0, 0, time.UTC), end)
	assert.Equal(t, time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC), quarterStart(aug))
}

func TestGenerateRevenueReport(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db, testNow)

	customer := newID()
	thisMonth := time.Date(2026, time.August, 5, 9, 0, 0, 0, time.UTC)
	lastMonth := time.Date(2026, time.July, 10, 9, 0, 0, 0, time.UTC)

	seedOrder(t, db, customer, thisMonth, 100, orderdomain.OrderStatusCompleted)
	seedOrder(t, db, customer, thisMonth, 150, orderdomain.OrderStatusCompleted)
	seedInvoice(t, db, customer, thisMonth, 50, orderdomain.InvoiceStatusPaid)
	seedOrder(t, db, customer, lastMonth, 100, orderdomain.OrderStatusCompleted)

	// Wrong statuses never count, regardless of date.
	seedOrder(t, db, customer, thisMonth, 999, orderdomain.OrderStatusPending)
	seedOrder(t, db, customer, thisMonth, 999, orderdomain.OrderStatusProcessing)
	seedInvoice(t, db, customer, thisMonth, 999, orderdomain.InvoiceStatusOverdue)
	seedInvoice(t, db, customer, thisMonth, 999, orderdomain.InvoiceStatusPending)

	result, err := svc.GenerateRevenueReport(context.Background())
	require.NoError(t, err)

	assert.InDelta(t, 250.00, result.ThisMonthRevenue, 0.001)
	assert.InDelta(t, 100.00, result.LastMonthRevenue, 0.001)
	assert.InDelta(t, 150.00, result.GrowthPercentage, 0.001)
	assert.Equal(t, int64(2), result.TotalOrders)
	assert.Equal(t, "2026-08-15", result.ReportDate)
	assert.Equal(t, testNow, result.GeneratedAt)

	var snapshots int64
	require.NoError(t, db.Model(&domain.RevenueReport{}).Count(&snapshots).Error)
	assert.Equal(t, int64(1), snapshots)
}

func TestGenerateRevenueReport_Empty(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db, testNow)

	result, err := svc.GenerateRevenueReport(context.Background())
	require.NoError(t, err)

	assert.Zero(t, result.ThisMonthRevenue)
	assert.Zero(t, result.LastMonthRevenue)
	assert.Zero(t, result.GrowthPercentage)
	assert.Zero(t, result.TotalOrders)
}

func TestGenerateRevenueReport_HalfOpenBoundary(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db, testNow)

	// Placed exactly at the month boundary counts toward this month.
	boundary := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)
	seedOrder(t, db, newID(), boundary, 100, orderdomain.OrderStatusCompleted)

	result, err := svc.GenerateRevenueReport(context.Background())
	require.NoError(t, err)

	assert.InDelta(t, 100.00, result.ThisMonthRevenue, 0.001)
	assert.Zero(t, result.LastMonthRevenue)
}

func TestGenerateProductSalesReport_ShirtWinsTie(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db, testNow)

	categoryID := seedCategory(t, db, "Sports Jerseys")
	shirtID := seedShirt(t, db, "Classic Tee", categoryID)
	customizerID := seedCustomizer(t, db, "Jersey Builder", &categoryID)

	seedUserShirts(t, db, shirtID, 5)
	seedUserCustomizers(t, db, customizerID, 5)

	thisMonth := time.Date(2026, time.August, 5, 9, 0, 0, 0, time.UTC)
	seedOrder(t, db, newID(), thisMonth, 100, orderdomain.OrderStatusCompleted)

	result, err := svc.GenerateProductSalesReport(context.Background())
	require.NoError(t, err)

	require.NotNil(t, result.TopProductName)
	assert.Equal(t, "Classic Tee", *result.TopProductName)
	assert.Equal(t, int64(5), result.TopProductUnitsSold)
	require.NotNil(t, result.TopCategory)
	assert.Equal(t, "Sports Jerseys", *result.TopCategory)
	// Estimated: 5 units x 100.00 average completed-order value this month.
	assert.InDelta(t, 500.00, result.TopProductRevenue, 0.001)
}

func TestGenerateProductSalesReport_CustomizerWins(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db, testNow)

	categoryID := seedCategory(t, db, "Basics")
	shirtID := seedShirt(t, db, "Classic Tee", categoryID)
	customizerID := seedCustomizer(t, db, "Jersey Builder", nil)

	seedUserShirts(t, db, shirtID, 1)
	seedUserCustomizers(t, db, customizerID, 3)

	result, err := svc.GenerateProductSalesReport(context.Background())
	require.NoError(t, err)

	require.NotNil(t, result.TopProductName)
	assert.Equal(t, "Jersey Builder", *result.TopProductName)
	assert.Equal(t, int64(3), result.TopProductUnitsSold)
	assert.Nil(t, result.TopCategory)
}

func TestGenerateProductSalesReport_NoRecords(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db, testNow)

	result, err := svc.GenerateProductSalesReport(context.Background())
	require.NoError(t, err)

	assert.Nil(t, result.TopProductName)
	assert.Nil(t, result.TopCategory)
	assert.Zero(t, result.TopProductUnitsSold)
	assert.Zero(t, result.TopProductRevenue)
}

func TestGenerateCustomerAnalysisReport(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db, testNow)

	lastMonth := time.Date(2026, time.July, 10, 9, 0, 0, 0, time.UTC)
	thisMonth := time.Date(2026, time.August, 5, 9, 0, 0, 0, time.UTC)

	// Returning customer: earliest order predates this month, so not new
	// even though they ordered again this month.
	returning := newID()
	seedOrder(t, db, returning, lastMonth, 80, orderdomain.OrderStatusCompleted)
	seedOrder(t, db, returning, thisMonth, 120, orderdomain.OrderStatusCompleted)

	// New customer: single order this month.
	fresh := newID()
	seedOrder(t, db, fresh, thisMonth, 40, orderdomain.OrderStatusPending)

	result, err := svc.GenerateCustomerAnalysisReport(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(2), result.TotalCustomers)
	assert.Equal(t, int64(1), result.NewCustomers)
	assert.Equal(t, int64(1), result.ReturningCustomers)
	// Average over completed orders only, all-time: (80 + 120) / 2.
	assert.InDelta(t, 100.00, result.AverageOrderValue, 0.001)
}

func TestGenerateGrowthTrendReport_Q1PriorYearQuarter(t *testing.T) {
	jan := time.Date(2026, time.January, 15, 10, 0, 0, 0, time.UTC)
	db := newTestDB(t)
	svc := newTestService(t, db, jan)

	// Prior-year Q4 revenue must be found in Oct-Dec 2025.
	seedOrder(t, db, newID(), time.Date(2025, time.November, 20, 9, 0, 0, 0, time.UTC), 100, orderdomain.OrderStatusCompleted)
	seedOrder(t, db, newID(), time.Date(2026, time.January, 10, 9, 0, 0, 0, time.UTC), 200, orderdomain.OrderStatusCompleted)

	result, err := svc.GenerateGrowthTrendReport(context.Background())
	require.NoError(t, err)

	// December 2025 had nothing, January has revenue.
	assert.InDelta(t, 100.00, result.MonthlyGrowth, 0.001)
	// (200 - 100) / 100 * 100 against prior-year Q4.
	assert.InDelta(t, 100.00, result.QuarterlyGrowth, 0.001)
	// 2025 total 100 vs 2026-to-date 200.
	assert.InDelta(t, 100.00, result.YearlyGrowth, 0.001)
	assert.InDelta(t, 100.00, result.MarketShare, 0.001)
	assert.Equal(t, "2026-01-15", result.ReportDate)
}

func TestGenerateGrowthTrendReport_Empty(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db, testNow)

	result, err := svc.GenerateGrowthTrendReport(context.Background())
	require.NoError(t, err)

	assert.Zero(t, result.MonthlyGrowth)
	assert.Zero(t, result.QuarterlyGrowth)
	assert.Zero(t, result.YearlyGrowth)
	assert.InDelta(t, 100.00, result.MarketShare, 0.001)
}

func TestGenerateRevenueReport_SnapshotFailure(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db, testNow)

	require.NoError(t, db.Exec(`DROP TABLE revenue_reports`).Error)

	_, err := svc.GenerateRevenueReport(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrReportGeneration)
}

func TestGenerateRevenueReport_QueryFailure(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	mock.ExpectQuery("SELECT").WillReturnError(errors.New("connection refused"))

	svc := newTestService(t, db, testNow)
	_, err = svc.GenerateRevenueReport(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrReportGeneration)
	assert.Contains(t, err.Error(), "connection refused")
}
