package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/smallbiznis/threadline/internal/clock"
	"github.com/smallbiznis/threadline/internal/website/domain"
	"github.com/smallbiznis/threadline/internal/website/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var testNow = time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) domain.Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&domain.WebsiteSettings{},
		&domain.PaymentSettings{},
		&domain.TaxConfiguration{},
		&domain.GeneralSettings{},
		&domain.NotificationSettings{},
		&domain.Banner{},
		&domain.Blog{},
		&domain.Testimonial{},
		&domain.Product{},
	))

	node, err := snowflake.NewNode(2)
	require.NoError(t, err)

	return New(Params{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Clock: clock.NewFakeClock(testNow),
		Repo:  repository.Provide(),
	})
}

func TestGetSettings_CreatesSingleton(t *testing.T) {
	svc := newTestService(t)

	settings, err := svc.GetSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Threadline", settings.WebsiteName)
	assert.Empty(t, settings.NavigationMenu)

	// Second load returns the same pinned row.
	again, err := svc.GetSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, settings.WebsiteName, again.WebsiteName)
}

func TestAddMenuItem_AssignsSequentialIDs(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	first, err := svc.AddMenuItem(ctx, domain.AddMenuItemRequest{Name: "Home", Link: "/"})
	require.NoError(t, err)
	require.Len(t, first.NavigationMenu, 1)
	assert.Equal(t, 1, first.NavigationMenu[0].ID)

	second, err := svc.AddMenuItem(ctx, domain.AddMenuItemRequest{Name: "Shop", Link: "/shop"})
	require.NoError(t, err)
	require.Len(t, second.NavigationMenu, 2)
	assert.Equal(t, 2, second.NavigationMenu[1].ID)

	// After deleting id 1, the next id continues from the current max.
	_, err = svc.DeleteMenuItems(ctx, []int{1})
	require.NoError(t, err)
	third, err := svc.AddMenuItem(ctx, domain.AddMenuItemRequest{Name: "Blog", Link: "/blog"})
	require.NoError(t, err)
	require.Len(t, third.NavigationMenu, 2)
	assert.Equal(t, 3, third.NavigationMenu[1].ID)
}

func TestAddMenuItem_RequiresNameAndLink(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.AddMenuItem(context.Background(), domain.AddMenuItemRequest{Name: "Home"})
	assert.ErrorIs(t, err, domain.ErrInvalidMenuItem)
}

func TestUpdateMenuItems_PreservesOrderAndAppendsNew(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddMenuItem(ctx, domain.AddMenuItemRequest{Name: "Home", Link: "/"})
	require.NoError(t, err)
	_, err = svc.AddMenuItem(ctx, domain.AddMenuItemRequest{Name: "Shop", Link: "/shop"})
	require.NoError(t, err)
	_, err = svc.AddMenuItem(ctx, domain.AddMenuItemRequest{Name: "About", Link: "/about"})
	require.NoError(t, err)

	result, err := svc.UpdateMenuItems(ctx, []domain.MenuItem{
		{ID: 2, Name: "Store", Link: "/store"},
		{ID: 9, Name: "Contact", Link: "/contact"},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Updated)
	assert.Equal(t, 1, result.Added)

	menu := result.Settings.NavigationMenu
	require.Len(t, menu, 4)
	assert.Equal(t, domain.MenuItem{ID: 1, Name: "Home", Link: "/"}, menu[0])
	assert.Equal(t, domain.MenuItem{ID: 2, Name: "Store", Link: "/store"}, menu[1])
	assert.Equal(t, domain.MenuItem{ID: 3, Name: "About", Link: "/about"}, menu[2])
	assert.Equal(t, domain.MenuItem{ID: 9, Name: "Contact", Link: "/contact"}, menu[3])
}

func TestDeleteMenuItems_ValidatesAllIDs(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddMenuItem(ctx, domain.AddMenuItemRequest{Name: "Home", Link: "/"})
	require.NoError(t, err)
	_, err = svc.AddMenuItem(ctx, domain.AddMenuItemRequest{Name: "Shop", Link: "/shop"})
	require.NoError(t, err)

	// One unknown id rejects the whole request.
	_, err = svc.DeleteMenuItems(ctx, []int{1, 42})
	assert.ErrorIs(t, err, domain.ErrInvalidMenuItem)

	settings, err := svc.GetSettings(ctx)
	require.NoError(t, err)
	assert.Len(t, settings.NavigationMenu, 2)

	result, err := svc.DeleteMenuItems(ctx, []int{1})
	require.NoError(t, err)
	require.Len(t, result.DeletedItems, 1)
	assert.Equal(t, "Home", result.DeletedItems[0].Name)
	require.Len(t, result.Settings.NavigationMenu, 1)
	assert.Equal(t, "Shop", result.Settings.NavigationMenu[0].Name)
}

func TestDeleteMenuItems_EmptyMenu(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.DeleteMenuItems(context.Background(), []int{1})
	assert.ErrorIs(t, err, domain.ErrMenuEmpty)

	_, err = svc.DeleteMenuItems(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrMenuIDsMissing)
}

func TestCreateBlog_Slug(t *testing.T) {
	svc := newTestService(t)

	blog, err := svc.CreateBlog(context.Background(), domain.CreateBlogRequest{
		Title:    "Summer Jersey Drop 2026",
		Excerpt:  "New drops",
		Content:  "Full article",
		Category: string(domain.BlogCategoryNews),
	})
	require.NoError(t, err)
	assert.Equal(t, "summer-jersey-drop-2026", blog.Slug)
	assert.Equal(t, domain.BlogStatusDraft, blog.Status)

	// Same title gets a deduplicated slug instead of failing.
	dup, err := svc.CreateBlog(context.Background(), domain.CreateBlogRequest{
		Title:    "Summer Jersey Drop 2026",
		Excerpt:  "New drops",
		Content:  "Full article",
		Category: string(domain.BlogCategoryNews),
	})
	require.NoError(t, err)
	assert.NotEqual(t, blog.Slug, dup.Slug)
	assert.Contains(t, dup.Slug, "summer-jersey-drop-2026")
}

func TestInventoryStats(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateProduct(ctx, domain.CreateProductRequest{
		Name:     "Team Hoodie",
		Price:    59.99,
		SKU:      "HD-001",
		Category: string(domain.ProductCategoryHoodies),
	})
	require.NoError(t, err)

	stats, err := svc.InventoryStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalProducts)
	assert.Zero(t, stats.LowStockItems)
	assert.Zero(t, stats.OutOfStock)
	assert.Zero(t, stats.TotalInventoryCost)
}
