package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/threadline/internal/clock"
	"github.com/smallbiznis/threadline/internal/report/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// marketShare is a stated placeholder. Real market share is not computable
// without external industry data.
const marketShare = 100.0

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Clock clock.Clock
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	clock clock.Clock
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("report.service"),
		genID: p.GenID,
		clock: p.Clock,
		repo:  p.Repo,
	}
}

func (s *Service) GenerateRevenueReport(ctx context.Context) (*domain.RevenueReportResult, error) {
	now := s.clock.Now()
	curStart := monthStart(now)
	prevStart := previousMonthStart(now)

	orderCur, err := s.repo.CompletedOrderTotalSince(ctx, s.db, curStart)
	if err != nil {
		return nil, s.fail("revenue", err)
	}
	invoiceCur, err := s.repo.PaidInvoiceTotalSince(ctx, s.db, curStart)
	if err != nil {
		return nil, s.fail("revenue", err)
	}
	orderPrev, err := s.repo.CompletedOrderTotalBetween(ctx, s.db, prevStart, curStart)
	if err != nil {
		return nil, s.fail("revenue", err)
	}
	invoicePrev, err := s.repo.PaidInvoiceTotalBetween(ctx, s.db, prevStart, curStart)
	if err != nil {
		return nil, s.fail("revenue", err)
	}
	totalOrders, err := s.repo.CompletedOrderCountSince(ctx, s.db, curStart)
	if err != nil {
		return nil, s.fail("revenue", err)
	}

	thisMonth := round2(orderCur + invoiceCur)
	lastMonth := round2(orderPrev + invoicePrev)
	result := &domain.RevenueReportResult{
		ThisMonthRevenue: thisMonth,
		LastMonthRevenue: lastMonth,
		GrowthPercentage: round2(growth(thisMonth, lastMonth)),
		TotalOrders:      totalOrders,
		ReportDate:       now.Format(dateLayout),
		GeneratedAt:      now,
	}

	snapshot := &domain.RevenueReport{
		ID:               s.genID.Generate().Int64(),
		ThisMonthRevenue: result.ThisMonthRevenue,
		LastMonthRevenue: result.LastMonthRevenue,
		GrowthPercentage: result.GrowthPercentage,
		TotalOrders:      result.TotalOrders,
		ReportDate:       dateOf(now),
		CreatedAt:        now,
	}
	if err := s.repo.SaveRevenueReport(ctx, s.db, snapshot); err != nil {
		return nil, s.fail("revenue", err)
	}
	return result, nil
}

func (s *Service) GenerateProductSalesReport(ctx context.Context) (*domain.ProductSalesResult, error) {
	now := s.clock.Now()

	topShirt, err := s.repo.TopShirt(ctx, s.db)
	if err != nil {
		return nil, s.fail("product_sales", err)
	}
	topCustomizer, err := s.repo.TopCustomizer(ctx, s.db)
	if err != nil {
		return nil, s.fail("product_sales", err)
	}

	// Shirt wins ties.
	top := topShirt
	if top == nil || (topCustomizer != nil && topCustomizer.Units > top.Units) {
		top = topCustomizer
	}

	result := &domain.ProductSalesResult{
		ReportDate:  now.Format(dateLayout),
		GeneratedAt: now,
	}
	if top != nil {
		// Estimated revenue: there is no product-to-order link in the data
		// model, so units x this-month average completed-order value is an
		// explicit approximation.
		avg, err := s.repo.AverageCompletedOrderTotalSince(ctx, s.db, monthStart(now))
		if err != nil {
			return nil, s.fail("product_sales", err)
		}
		name := top.Name
		result.TopProductName = &name
		result.TopProductUnitsSold = top.Units
		result.TopProductRevenue = round2(float64(top.Units) * avg)
		result.TopCategory = top.Category
	}

	snapshot := &domain.ProductSalesReport{
		ID:                  s.genID.Generate().Int64(),
		TopProductName:      result.TopProductName,
		TopProductRevenue:   result.TopProductRevenue,
		TopProductUnitsSold: result.TopProductUnitsSold,
		TopCategory:         result.TopCategory,
		ReportDate:          dateOf(now),
		CreatedAt:           now,
	}
	if err := s.repo.SaveProductSalesReport(ctx, s.db, snapshot); err != nil {
		return nil, s.fail("product_sales", err)
	}
	return result, nil
}

func (s *Service) GenerateCustomerAnalysisReport(ctx context.Context) (*domain.CustomerAnalysisResult, error) {
	now := s.clock.Now()

	totalCustomers, err := s.repo.DistinctOrderCustomerCount(ctx, s.db)
	if err != nil {
		return nil, s.fail("customer_analysis", err)
	}
	newCustomers, err := s.repo.NewCustomerCount(ctx, s.db, monthStart(now))
	if err != nil {
		return nil, s.fail("customer_analysis", err)
	}
	returningCustomers, err := s.repo.ReturningCustomerCount(ctx, s.db)
	if err != nil {
		return nil, s.fail("customer_analysis", err)
	}
	averageOrderValue, err := s.repo.AverageCompletedOrderTotal(ctx, s.db)
	if err != nil {
		return nil, s.fail("customer_analysis", err)
	}

	result := &domain.CustomerAnalysisResult{
		TotalCustomers:     totalCustomers,
		NewCustomers:       newCustomers,
		ReturningCustomers: returningCustomers,
		AverageOrderValue:  round2(averageOrderValue),
		ReportDate:         now.Format(dateLayout),
		GeneratedAt:        now,
	}

	snapshot := &domain.CustomerAnalysisReport{
		ID:                 s.genID.Generate().Int64(),
		TotalCustomers:     result.TotalCustomers,
		NewCustomers:       result.NewCustomers,
		ReturningCustomers: result.ReturningCustomers,
		AverageOrderValue:  result.AverageOrderValue,
		ReportDate:         dateOf(now),
		CreatedAt:          now,
	}
	if err := s.repo.SaveCustomerAnalysisReport(ctx, s.db, snapshot); err != nil {
		return nil, s.fail("customer_analysis", err)
	}
	return result, nil
}

func (s *Service) GenerateGrowthTrendReport(ctx context.Context) (*domain.GrowthTrendResult, error) {
	now := s.clock.Now()

	curMonthStart := monthStart(now)
	prevMonthStart := previousMonthStart(now)
	monthCur, err := s.repo.RevenueThrough(ctx, s.db, curMonthStart, now)
	if err != nil {
		return nil, s.fail("growth_trend", err)
	}
	monthPrev, err := s.repo.RevenueThrough(ctx, s.db, prevMonthStart, curMonthStart.AddDate(0, 0, -1))
	if err != nil {
		return nil, s.fail("growth_trend", err)
	}

	curQuarterStart := quarterStart(now)
	prevQuarterStart, prevQuarterEnd := previousQuarter(now)
	quarterCur, err := s.repo.RevenueThrough(ctx, s.db, curQuarterStart, now)
	if err != nil {
		return nil, s.fail("growth_trend", err)
	}
	quarterPrev, err := s.repo.RevenueThrough(ctx, s.db, prevQuarterStart, prevQuarterEnd)
	if err != nil {
		return nil, s.fail("growth_trend", err)
	}

	curYearStart := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	prevYearStart := time.Date(now.Year()-1, time.January, 1, 0, 0, 0, 0, now.Location())
	prevYearEnd := time.Date(now.Year()-1, time.December, 31, 0, 0, 0, 0, now.Location())
	yearCur, err := s.repo.RevenueThrough(ctx, s.db, curYearStart, now)
	if err != nil {
		return nil, s.fail("growth_trend", err)
	}
	yearPrev, err := s.repo.RevenueThrough(ctx, s.db, prevYearStart, prevYearEnd)
	if err != nil {
		return nil, s.fail("growth_trend", err)
	}

	result := &domain.GrowthTrendResult{
		MonthlyGrowth:   round2(growth(monthCur, monthPrev)),
		YearlyGrowth:    round2(growth(yearCur, yearPrev)),
		QuarterlyGrowth: round2(growth(quarterCur, quarterPrev)),
		MarketShare:     marketShare,
		ReportDate:      now.Format(dateLayout),
		GeneratedAt:     now,
	}

	snapshot := &domain.GrowthTrendReport{
		ID:              s.genID.Generate().Int64(),
		MonthlyGrowth:   result.MonthlyGrowth,
		YearlyGrowth:    result.YearlyGrowth,
		QuarterlyGrowth: result.QuarterlyGrowth,
		MarketShare:     result.MarketShare,
		ReportDate:      dateOf(now),
		CreatedAt:       now,
	}
	if err := s.repo.SaveGrowthTrendReport(ctx, s.db, snapshot); err != nil {
		return nil, s.fail("growth_trend", err)
	}
	return result, nil
}

func (s *Service) fail(report string, err error) error {
	s.log.Error("report generation failed", zap.String("report", report), zap.Error(err))
	return fmt.Errorf("%w: %v", domain.ErrReportGeneration, err)
}

// growth is the relative change in percent. A zero previous period is not
// an error: the result is 100 when anything was earned, otherwise 0.
func growth(current, previous float64) float64 {
	if previous > 0 {
		return (current - previous) / previous * 100
	}
	if current > 0 {
		return 100
	}
	return 0
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func previousMonthStart(t time.Time) time.Time {
	return monthStart(monthStart(t).AddDate(0, 0, -1))
}

func quarterStart(t time.Time) time.Time {
	q := (int(t.Month()) - 1) / 3
	return time.Date(t.Year(), time.Month(q*3+1), 1, 0, 0, 0, 0, t.Location())
}

// previousQuarter returns the full prior quarter as [start, end] where end
// is midnight of the quarter's last day. January through March roll back to
// Q4 of the prior year.
func previousQuarter(t time.Time) (time.Time, time.Time) {
	curStart := quarterStart(t)
	end := curStart.AddDate(0, 0, -1)
	start := time.Date(end.Year(), time.Month((int(end.Month())-1)/3*3+1), 1, 0, 0, 0, 0, t.Location())
	return start, end
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
