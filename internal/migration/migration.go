package migration

import (
	catalogdomain "github.com/smallbiznis/threadline/internal/catalog/domain"
	customizationdomain "github.com/smallbiznis/threadline/internal/customization/domain"
	memberdomain "github.com/smallbiznis/threadline/internal/member/domain"
	orderdomain "github.com/smallbiznis/threadline/internal/order/domain"
	reportdomain "github.com/smallbiznis/threadline/internal/report/domain"
	websitedomain "github.com/smallbiznis/threadline/internal/website/domain"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Models lists every persisted schema in dependency order.
func Models() []any {
	return []any{
		&memberdomain.Member{},
		&memberdomain.Session{},
		&catalogdomain.ShirtCategory{},
		&catalogdomain.ShirtSubCategory{},
		&catalogdomain.Shirt{},
		&catalogdomain.Customizer{},
		&catalogdomain.Pattern{},
		&catalogdomain.Color{},
		&catalogdomain.Font{},
		&orderdomain.Order{},
		&orderdomain.Invoice{},
		&customizationdomain.UserShirt{},
		&customizationdomain.UserCustomizer{},
		&websitedomain.WebsiteSettings{},
		&websitedomain.PaymentSettings{},
		&websitedomain.TaxConfiguration{},
		&websitedomain.GeneralSettings{},
		&websitedomain.NotificationSettings{},
		&websitedomain.Banner{},
		&websitedomain.Blog{},
		&websitedomain.Testimonial{},
		&websitedomain.Product{},
		&reportdomain.RevenueReport{},
		&reportdomain.ProductSalesReport{},
		&reportdomain.CustomerAnalysisReport{},
		&reportdomain.GrowthTrendReport{},
	}
}

// Run applies schema migrations on startup.
func Run(db *gorm.DB, log *zap.Logger) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		log.Error("schema migration failed", zap.Error(err))
		return err
	}
	log.Info("schema migration complete", zap.Int("models", len(Models())))
	return nil
}
