package seed

import (
	"time"

	"github.com/bwmarrin/snowflake"
	catalogdomain "github.com/smallbiznis/threadline/internal/catalog/domain"
	"github.com/smallbiznis/threadline/internal/clock"
	"github.com/smallbiznis/threadline/internal/config"
	customizationdomain "github.com/smallbiznis/threadline/internal/customization/domain"
	orderdomain "github.com/smallbiznis/threadline/internal/order/domain"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Run loads development fixtures when SEED_ON_START is set. It is a no-op
// when the catalog already has data.
func Run(cfg config.Config, db *gorm.DB, log *zap.Logger, genID *snowflake.Node, clk clock.Clock) error {
	if !cfg.SeedOnStart {
		return nil
	}

	var count int64
	if err := db.Model(&catalogdomain.Shirt{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Info("seed skipped, catalog not empty")
		return nil
	}

	now := clk.Now()
	id := func() int64 { return genID.Generate().Int64() }

	category := catalogdomain.ShirtCategory{
		ID:          id(),
		Name:        "classic",
		DisplayName: "Classic Tees",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := db.Create(&category).Error; err != nil {
		return err
	}

	shirt := catalogdomain.Shirt{
		ID:         id(),
		Name:       "Crew Neck Tee",
		BasePrice:  19.90,
		CategoryID: category.ID,
		Metadata:   datatypes.JSONMap{"fit": "regular"},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := db.Create(&shirt).Error; err != nil {
		return err
	}

	customizer := catalogdomain.Customizer{
		ID:         id(),
		Name:       "Front Print Designer",
		BasePrice:  29.90,
		CategoryID: &category.ID,
		Template:   datatypes.JSONMap{"zones": []any{"front"}},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := db.Create(&customizer).Error; err != nil {
		return err
	}

	colors := []catalogdomain.Color{
		{ID: id(), Name: "Jet Black", Code: "#000000", CreatedAt: now, UpdatedAt: now},
		{ID: id(), Name: "Snow White", Code: "#ffffff", CreatedAt: now, UpdatedAt: now},
	}
	if err := db.Create(&colors).Error; err != nil {
		return err
	}

	customerID := id()
	orders := []orderdomain.Order{
		{
			ID: id(), Number: "ORD-SEED-1", CustomerID: customerID,
			PlacedAt: now.AddDate(0, 0, -3), Total: 49.80,
			Status: orderdomain.OrderStatusCompleted, CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: id(), Number: "ORD-SEED-2", CustomerID: customerID,
			PlacedAt: now.AddDate(0, -1, 0), Total: 29.90,
			Status: orderdomain.OrderStatusCompleted, CreatedAt: now, UpdatedAt: now,
		},
	}
	if err := db.Create(&orders).Error; err != nil {
		return err
	}

	invoice := orderdomain.Invoice{
		ID: id(), Number: "INV-SEED-1", CustomerID: customerID,
		IssuedAt: now.AddDate(0, 0, -3), Amount: 49.80,
		Status:  orderdomain.InvoiceStatusPaid,
		DueDate: now.Add(14 * 24 * time.Hour), CreatedAt: now, UpdatedAt: now,
	}
	if err := db.Create(&invoice).Error; err != nil {
		return err
	}

	userShirt := customizationdomain.UserShirt{
		ID: id(), CustomerID: customerID, ShirtID: shirt.ID, Purchased: true,
		Data: datatypes.NewJSONType(customizationdomain.CustomizationData{
			Text: strPtr("SEED"),
		}),
		CreatedAt: now, UpdatedAt: now,
	}
	if err := db.Create(&userShirt).Error; err != nil {
		return err
	}

	log.Info("seed fixtures loaded")
	return nil
}

func strPtr(s string) *string { return &s }
