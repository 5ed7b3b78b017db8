package repository

import (
	"context"

	"github.com/smallbiznis/threadline/internal/website/domain"
	"gorm.io/gorm"
)

func (r *repo) LoadPaymentSettings(ctx context.Context, db *gorm.DB) (*domain.PaymentSettings, error) {
	var settings domain.PaymentSettings
	err := db.WithContext(ctx).Where("id = ?", domain.SettingsID).Take(&settings).Error
	if err == nil {
		return &settings, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	settings = domain.PaymentSettings{
		ID:              domain.SettingsID,
		DefaultCurrency: domain.CurrencyUSD,
	}
	if err := db.WithContext(ctx).Create(&settings).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *repo) SavePaymentSettings(ctx context.Context, db *gorm.DB, settings *domain.PaymentSettings) error {
	if settings == nil {
		return gorm.ErrInvalidData
	}
	settings.ID = domain.SettingsID
	return db.WithContext(ctx).Save(settings).Error
}

func (r *repo) LoadTaxConfiguration(ctx context.Context, db *gorm.DB) (*domain.TaxConfiguration, error) {
	var settings domain.TaxConfiguration
	err := db.WithContext(ctx).Where("id = ?", domain.SettingsID).Take(&settings).Error
	if err == nil {
		return &settings, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	settings = domain.TaxConfiguration{ID: domain.SettingsID}
	if err := db.WithContext(ctx).Create(&settings).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *repo) SaveTaxConfiguration(ctx context.Context, db *gorm.DB, settings *domain.TaxConfiguration) error {
	if settings == nil {
		return gorm.ErrInvalidData
	}
	settings.ID = domain.SettingsID
	return db.WithContext(ctx).Save(settings).Error
}

func (r *repo) LoadGeneralSettings(ctx context.Context, db *gorm.DB) (*domain.GeneralSettings, error) {
	var settings domain.GeneralSettings
	err := db.WithContext(ctx).Where("id = ?", domain.SettingsID).Take(&settings).Error
	if err == nil {
		return &settings, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	settings = domain.GeneralSettings{
		ID:              domain.SettingsID,
		SiteTitle:       "Threadline",
		DefaultLanguage: domain.LanguageEnglish,
		Currency:        domain.CurrencyUSD,
	}
	if err := db.WithContext(ctx).Create(&settings).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *repo) SaveGeneralSettings(ctx context.Context, db *gorm.DB, settings *domain.GeneralSettings) error {
	if settings == nil {
		return gorm.ErrInvalidData
	}
	settings.ID = domain.SettingsID
	return db.WithContext(ctx).Save(settings).Error
}

func (r *repo) LoadNotificationSettings(ctx context.Context, db *gorm.DB) (*domain.NotificationSettings, error) {
	var settings domain.NotificationSettings
	err := db.WithContext(ctx).Where("id = ?", domain.SettingsID).Take(&settings).Error
	if err == nil {
		return &settings, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	settings = domain.NotificationSettings{ID: domain.SettingsID}
	if err := db.WithContext(ctx).Create(&settings).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *repo) SaveNotificationSettings(ctx context.Context, db *gorm.DB, settings *domain.NotificationSettings) error {
	if settings == nil {
		return gorm.ErrInvalidData
	}
	settings.ID = domain.SettingsID
	return db.WithContext(ctx).Save(settings).Error
}
