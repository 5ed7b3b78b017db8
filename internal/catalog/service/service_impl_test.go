package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/smallbiznis/threadline/internal/catalog/domain"
	"github.com/smallbiznis/threadline/internal/catalog/repository"
	"github.com/smallbiznis/threadline/internal/clock"
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
		&domain.ShirtCategory{},
		&domain.ShirtSubCategory{},
		&domain.Shirt{},
		&domain.Customizer{},
		&domain.Pattern{},
		&domain.Color{},
		&domain.Font{},
	))

	node, err := snowflake.NewNode(3)
	require.NoError(t, err)

	return New(Params{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Clock: clock.NewFakeClock(testNow),
		Repo:  repository.Provide(),
	})
}

func strPtr(s string) *string { return &s }

func newLockedCategory(t *testing.T, svc domain.Service, password string) *domain.CategoryResponse {
	t.Helper()

	category, err := svc.CreateCategory(context.Background(), domain.CreateCategoryRequest{
		Name:        "vip",
		DisplayName: "VIP Drops",
		Password:    strPtr(password),
	})
	require.NoError(t, err)
	require.True(t, category.Locked)
	return category
}

func TestListShirts_LockedCategory(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	category := newLockedCategory(t, svc, "hunter2")
	_, err := svc.ListShirts(ctx, domain.ListShirtsRequest{CategoryID: category.ID})
	assert.ErrorIs(t, err, domain.ErrCategoryLocked)
}

func TestUnlockCategory_WrongPassword(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	category := newLockedCategory(t, svc, "hunter2")
	_, err := svc.UnlockCategory(ctx, category.ID, "letmein")
	assert.ErrorIs(t, err, domain.ErrWrongPassword)

	// Still locked after a failed attempt.
	_, err = svc.ListShirts(ctx, domain.ListShirtsRequest{CategoryID: category.ID})
	assert.ErrorIs(t, err, domain.ErrCategoryLocked)
}

func TestUnlockCategory_OpensListing(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	category := newLockedCategory(t, svc, "hunter2")
	shirt, err := svc.CreateShirt(ctx, domain.CreateShirtRequest{
		Name:       "Premium Crew Tee",
		BasePrice:  34.90,
		CategoryID: category.ID,
	})
	require.NoError(t, err)

	unlocked, err := svc.UnlockCategory(ctx, category.ID, "hunter2")
	require.NoError(t, err)
	assert.False(t, unlocked.Locked)

	shirts, err := svc.ListShirts(ctx, domain.ListShirtsRequest{CategoryID: category.ID})
	require.NoError(t, err)
	require.Len(t, shirts, 1)
	assert.Equal(t, shirt.ID, shirts[0].ID)

	// Unlocking an open category stays a no-op.
	again, err := svc.UnlockCategory(ctx, category.ID, "anything")
	require.NoError(t, err)
	assert.False(t, again.Locked)
}

func TestUnlockCategory_NotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.UnlockCategory(context.Background(), "123456789", "hunter2")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.UnlockCategory(context.Background(), "not-an-id", "hunter2")
	assert.ErrorIs(t, err, domain.ErrInvalidID)
}

func TestCreateColor_ValidatesCode(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	for _, code := range []string{"red", "#12345", "#GGGGGG", "123456"} {
		_, err := svc.CreateColor(ctx, domain.CreateColorRequest{Name: "Bad", Code: code})
		assert.ErrorIs(t, err, domain.ErrInvalidColorCode, "code %q", code)
	}

	color, err := svc.CreateColor(ctx, domain.CreateColorRequest{Name: "Navy", Code: "#1A2B3C"})
	require.NoError(t, err)
	assert.Equal(t, "#1a2b3c", color.Code)
}

func TestCreateFont_ValidatesFileName(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	for _, name := range []string{"font.exe", "font", "font.ttf.bak"} {
		_, err := svc.CreateFont(ctx, domain.CreateFontRequest{
			FontName: "Grotesk",
			FileName: strPtr(name),
		})
		assert.ErrorIs(t, err, domain.ErrInvalidFontFile, "file %q", name)
	}

	font, err := svc.CreateFont(ctx, domain.CreateFontRequest{
		FontName: "Grotesk",
		FileName: strPtr("grotesk.WOFF2"),
	})
	require.NoError(t, err)
	require.NotNil(t, font.FileName)
	assert.Equal(t, "grotesk.WOFF2", *font.FileName)
	assert.Equal(t, "Grotesk", font.FontFamily)
}
