package service

import (
	"context"
	"testing"

	"github.com/smallbiznis/threadline/internal/website/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool        { return &b }
func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func TestGetPaymentSettings_CreatesSingleton(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	settings, err := svc.GetPaymentSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.CurrencyUSD, settings.DefaultCurrency)
	assert.False(t, settings.StripeEnabled)

	// Second load returns the same pinned row, not a second record.
	again, err := svc.GetPaymentSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, settings.DefaultCurrency, again.DefaultCurrency)
}

func TestUpdatePaymentSettings_PatchesFields(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	updated, err := svc.UpdatePaymentSettings(ctx, domain.UpdatePaymentSettingsRequest{
		StripeEnabled:   boolPtr(true),
		DefaultCurrency: strPtr("EUR"),
		AdminEmail:      strPtr("pay@example.com"),
	})
	require.NoError(t, err)
	assert.True(t, updated.StripeEnabled)
	assert.Equal(t, domain.CurrencyEUR, updated.DefaultCurrency)

	// Untouched fields survive a later partial update.
	updated, err = svc.UpdatePaymentSettings(ctx, domain.UpdatePaymentSettingsRequest{
		PaypalEnabled: boolPtr(true),
	})
	require.NoError(t, err)
	assert.True(t, updated.StripeEnabled)
	assert.True(t, updated.PaypalEnabled)
	require.NotNil(t, updated.AdminEmail)
	assert.Equal(t, "pay@example.com", *updated.AdminEmail)
}

func TestUpdatePaymentSettings_InvalidCurrency(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.UpdatePaymentSettings(context.Background(), domain.UpdatePaymentSettingsRequest{
		DefaultCurrency: strPtr("JPY"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCurrency)
}

func TestUpdateTaxConfiguration(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	updated, err := svc.UpdateTaxConfiguration(ctx, domain.UpdateTaxConfigurationRequest{
		EnableTaxSetting: boolPtr(true),
		TaxType:          strPtr("VAT"),
		BusinessName:     strPtr("Threadline LLC"),
	})
	require.NoError(t, err)
	assert.True(t, updated.EnableTaxSetting)
	require.NotNil(t, updated.TaxType)
	assert.Equal(t, domain.TaxTypeVAT, *updated.TaxType)

	_, err = svc.UpdateTaxConfiguration(ctx, domain.UpdateTaxConfigurationRequest{
		TaxType: strPtr("tithe"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidTaxType)

	// Empty string clears the tax type.
	updated, err = svc.UpdateTaxConfiguration(ctx, domain.UpdateTaxConfigurationRequest{
		TaxType: strPtr(""),
	})
	require.NoError(t, err)
	assert.Nil(t, updated.TaxType)
}

func TestUpdateGeneralSettings(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	settings, err := svc.GetGeneralSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Threadline", settings.SiteTitle)
	assert.Equal(t, domain.LanguageEnglish, settings.DefaultLanguage)

	updated, err := svc.UpdateGeneralSettings(ctx, domain.UpdateGeneralSettingsRequest{
		SiteTitle:       strPtr("Threadline Store"),
		DefaultLanguage: strPtr("French"),
		TaxRate:         floatPtr(8.25),
	})
	require.NoError(t, err)
	assert.Equal(t, "Threadline Store", updated.SiteTitle)
	assert.Equal(t, domain.LanguageFrench, updated.DefaultLanguage)
	assert.Equal(t, 8.25, updated.TaxRate)

	_, err = svc.UpdateGeneralSettings(ctx, domain.UpdateGeneralSettingsRequest{
		DefaultLanguage: strPtr("Klingon"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidLanguage)

	_, err = svc.UpdateGeneralSettings(ctx, domain.UpdateGeneralSettingsRequest{
		TaxRate: floatPtr(-1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidTaxRate)
}

func TestUpdateNotificationSettings(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	updated, err := svc.UpdateNotificationSettings(ctx, domain.UpdateNotificationSettingsRequest{
		NewOrderNotification: boolPtr(true),
		LowStockAlerts:       boolPtr(true),
		AdminPhoneNumber:     strPtr("+15550100"),
	})
	require.NoError(t, err)
	assert.True(t, updated.NewOrderNotification)
	assert.True(t, updated.LowStockAlerts)
	assert.False(t, updated.EnablePushNotifications)

	reloaded, err := svc.GetNotificationSettings(ctx)
	require.NoError(t, err)
	assert.True(t, reloaded.NewOrderNotification)
	require.NotNil(t, reloaded.AdminPhoneNumber)
	assert.Equal(t, "+15550100", *reloaded.AdminPhoneNumber)
}
