package service

import (
	"context"
	"strings"

	"github.com/smallbiznis/threadline/internal/website/domain"
)

func (s *Service) GetPaymentSettings(ctx context.Context) (*domain.PaymentSettingsResponse, error) {
	settings, err := s.repo.LoadPaymentSettings(ctx, s.db)
	if err != nil {
		return nil, err
	}
	resp := toPaymentSettingsResponse(settings)
	return &resp, nil
}

func (s *Service) UpdatePaymentSettings(ctx context.Context, req domain.UpdatePaymentSettingsRequest) (*domain.PaymentSettingsResponse, error) {
	settings, err := s.repo.LoadPaymentSettings(ctx, s.db)
	if err != nil {
		return nil, err
	}

	if req.PaypalEnabled != nil {
		settings.PaypalEnabled = *req.PaypalEnabled
	}
	if req.StripeEnabled != nil {
		settings.StripeEnabled = *req.StripeEnabled
	}
	if req.CashAppEnabled != nil {
		settings.CashAppEnabled = *req.CashAppEnabled
	}
	if req.ZelleEnabled != nil {
		settings.ZelleEnabled = *req.ZelleEnabled
	}
	if req.DefaultCurrency != nil {
		currency := domain.Currency(strings.TrimSpace(*req.DefaultCurrency))
		if !currency.Valid() {
			return nil, domain.ErrInvalidCurrency
		}
		settings.DefaultCurrency = currency
	}
	if req.StripeAPIKey != nil {
		settings.StripeAPIKey = req.StripeAPIKey
	}
	if req.StripeWebhookSecret != nil {
		settings.StripeWebhookSecret = req.StripeWebhookSecret
	}
	if req.Enable3DSecure != nil {
		settings.Enable3DSecure = *req.Enable3DSecure
	}
	if req.AdminEmail != nil {
		settings.AdminEmail = req.AdminEmail
	}
	if req.EmailOnPaymentSuccess != nil {
		settings.EmailOnPaymentSuccess = *req.EmailOnPaymentSuccess
	}
	if req.EmailOnPaymentFailure != nil {
		settings.EmailOnPaymentFailure = *req.EmailOnPaymentFailure
	}

	settings.UpdatedAt = s.clock.Now()
	if err := s.repo.SavePaymentSettings(ctx, s.db, settings); err != nil {
		return nil, err
	}

	resp := toPaymentSettingsResponse(settings)
	return &resp, nil
}

func (s *Service) GetTaxConfiguration(ctx context.Context) (*domain.TaxConfigurationResponse, error) {
	settings, err := s.repo.LoadTaxConfiguration(ctx, s.db)
	if err != nil {
		return nil, err
	}
	resp := toTaxConfigurationResponse(settings)
	return &resp, nil
}

func (s *Service) UpdateTaxConfiguration(ctx context.Context, req domain.UpdateTaxConfigurationRequest) (*domain.TaxConfigurationResponse, error) {
	settings, err := s.repo.LoadTaxConfiguration(ctx, s.db)
	if err != nil {
		return nil, err
	}

	if req.EnableTaxSetting != nil {
		settings.EnableTaxSetting = *req.EnableTaxSetting
	}
	if req.TaxType != nil {
		if *req.TaxType == "" {
			settings.TaxType = nil
		} else {
			taxType := domain.TaxType(strings.TrimSpace(*req.TaxType))
			if !taxType.Valid() {
				return nil, domain.ErrInvalidTaxType
			}
			settings.TaxType = &taxType
		}
	}
	if req.TaxInclusivePricing != nil {
		settings.TaxInclusivePricing = *req.TaxInclusivePricing
	}
	if req.BusinessName != nil {
		settings.BusinessName = req.BusinessName
	}
	if req.TaxIDVATNumber != nil {
		settings.TaxIDVATNumber = req.TaxIDVATNumber
	}
	if req.BusinessAddress != nil {
		settings.BusinessAddress = req.BusinessAddress
	}
	if req.B2BTaxExemption != nil {
		settings.B2BTaxExemption = *req.B2BTaxExemption
	}
	if req.DigitalProductTax != nil {
		settings.DigitalProductTax = *req.DigitalProductTax
	}

	settings.UpdatedAt = s.clock.Now()
	if err := s.repo.SaveTaxConfiguration(ctx, s.db, settings); err != nil {
		return nil, err
	}

	resp := toTaxConfigurationResponse(settings)
	return &resp, nil
}

func (s *Service) GetGeneralSettings(ctx context.Context) (*domain.GeneralSettingsResponse, error) {
	settings, err := s.repo.LoadGeneralSettings(ctx, s.db)
	if err != nil {
		return nil, err
	}
	resp := toGeneralSettingsResponse(settings)
	return &resp, nil
}

func (s *Service) UpdateGeneralSettings(ctx context.Context, req domain.UpdateGeneralSettingsRequest) (*domain.GeneralSettingsResponse, error) {
	settings, err := s.repo.LoadGeneralSettings(ctx, s.db)
	if err != nil {
		return nil, err
	}

	if req.SiteTitle != nil && strings.TrimSpace(*req.SiteTitle) != "" {
		settings.SiteTitle = strings.TrimSpace(*req.SiteTitle)
	}
	if req.SiteDescription != nil {
		settings.SiteDescription = req.SiteDescription
	}
	if req.DefaultLanguage != nil {
		language := domain.Language(strings.TrimSpace(*req.DefaultLanguage))
		if !language.Valid() {
			return nil, domain.ErrInvalidLanguage
		}
		settings.DefaultLanguage = language
	}
	if req.Currency != nil {
		currency := domain.Currency(strings.TrimSpace(*req.Currency))
		if !currency.Valid() {
			return nil, domain.ErrInvalidCurrency
		}
		settings.Currency = currency
	}
	if req.TaxRate != nil {
		if *req.TaxRate < 0 || *req.TaxRate > 100 {
			return nil, domain.ErrInvalidTaxRate
		}
		settings.TaxRate = *req.TaxRate
	}
	if req.MaintenanceMode != nil {
		settings.MaintenanceMode = *req.MaintenanceMode
	}
	if req.EnableAnalytics != nil {
		settings.EnableAnalytics = *req.EnableAnalytics
	}
	if req.EnableNotifications != nil {
		settings.EnableNotifications = *req.EnableNotifications
	}
	if req.Email != nil {
		settings.Email = req.Email
	}
	if req.PhoneNumber != nil {
		settings.PhoneNumber = req.PhoneNumber
	}
	if req.BusinessAddress != nil {
		settings.BusinessAddress = req.BusinessAddress
	}

	settings.UpdatedAt = s.clock.Now()
	if err := s.repo.SaveGeneralSettings(ctx, s.db, settings); err != nil {
		return nil, err
	}

	resp := toGeneralSettingsResponse(settings)
	return &resp, nil
}

func (s *Service) GetNotificationSettings(ctx context.Context) (*domain.NotificationSettingsResponse, error) {
	settings, err := s.repo.LoadNotificationSettings(ctx, s.db)
	if err != nil {
		return nil, err
	}
	resp := toNotificationSettingsResponse(settings)
	return &resp, nil
}

func (s *Service) UpdateNotificationSettings(ctx context.Context, req domain.UpdateNotificationSettingsRequest) (*domain.NotificationSettingsResponse, error) {
	settings, err := s.repo.LoadNotificationSettings(ctx, s.db)
	if err != nil {
		return nil, err
	}

	if req.NewOrderNotification != nil {
		settings.NewOrderNotification = *req.NewOrderNotification
	}
	if req.PaymentNotifications != nil {
		settings.PaymentNotifications = *req.PaymentNotifications
	}
	if req.LowStockAlerts != nil {
		settings.LowStockAlerts = *req.LowStockAlerts
	}
	if req.CustomerMessages != nil {
		settings.CustomerMessages = *req.CustomerMessages
	}
	if req.EnablePushNotifications != nil {
		settings.EnablePushNotifications = *req.EnablePushNotifications
	}
	if req.NewOrderAlerts != nil {
		settings.NewOrderAlerts = *req.NewOrderAlerts
	}
	if req.SystemAlerts != nil {
		settings.SystemAlerts = *req.SystemAlerts
	}
	if req.EnableSMSNotification != nil {
		settings.EnableSMSNotification = *req.EnableSMSNotification
	}
	if req.AdminPhoneNumber != nil {
		settings.AdminPhoneNumber = req.AdminPhoneNumber
	}
	if req.CriticalAlerts != nil {
		settings.CriticalAlerts = *req.CriticalAlerts
	}

	settings.UpdatedAt = s.clock.Now()
	if err := s.repo.SaveNotificationSettings(ctx, s.db, settings); err != nil {
		return nil, err
	}

	resp := toNotificationSettingsResponse(settings)
	return &resp, nil
}

func toPaymentSettingsResponse(settings *domain.PaymentSettings) domain.PaymentSettingsResponse {
	return domain.PaymentSettingsResponse{
		PaypalEnabled:         settings.PaypalEnabled,
		StripeEnabled:         settings.StripeEnabled,
		CashAppEnabled:        settings.CashAppEnabled,
		ZelleEnabled:          settings.ZelleEnabled,
		DefaultCurrency:       settings.DefaultCurrency,
		StripeAPIKey:          settings.StripeAPIKey,
		StripeWebhookSecret:   settings.StripeWebhookSecret,
		Enable3DSecure:        settings.Enable3DSecure,
		AdminEmail:            settings.AdminEmail,
		EmailOnPaymentSuccess: settings.EmailOnPaymentSuccess,
		EmailOnPaymentFailure: settings.EmailOnPaymentFailure,
		UpdatedAt:             settings.UpdatedAt,
	}
}

func toTaxConfigurationResponse(settings *domain.TaxConfiguration) domain.TaxConfigurationResponse {
	return domain.TaxConfigurationResponse{
		EnableTaxSetting:    settings.EnableTaxSetting,
		TaxType:             settings.TaxType,
		TaxInclusivePricing: settings.TaxInclusivePricing,
		BusinessName:        settings.BusinessName,
		TaxIDVATNumber:      settings.TaxIDVATNumber,
		BusinessAddress:     settings.BusinessAddress,
		B2BTaxExemption:     settings.B2BTaxExemption,
		DigitalProductTax:   settings.DigitalProductTax,
		UpdatedAt:           settings.UpdatedAt,
	}
}

func toGeneralSettingsResponse(settings *domain.GeneralSettings) domain.GeneralSettingsResponse {
	return domain.GeneralSettingsResponse{
		SiteTitle:           settings.SiteTitle,
		SiteDescription:     settings.SiteDescription,
		DefaultLanguage:     settings.DefaultLanguage,
		Currency:            settings.Currency,
		TaxRate:             settings.TaxRate,
		MaintenanceMode:     settings.MaintenanceMode,
		EnableAnalytics:     settings.EnableAnalytics,
		EnableNotifications: settings.EnableNotifications,
		Email:               settings.Email,
		PhoneNumber:         settings.PhoneNumber,
		BusinessAddress:     settings.BusinessAddress,
		UpdatedAt:           settings.UpdatedAt,
	}
}

func toNotificationSettingsResponse(settings *domain.NotificationSettings) domain.NotificationSettingsResponse {
	return domain.NotificationSettingsResponse{
		NewOrderNotification:    settings.NewOrderNotification,
		PaymentNotifications:    settings.PaymentNotifications,
		LowStockAlerts:          settings.LowStockAlerts,
		CustomerMessages:        settings.CustomerMessages,
		EnablePushNotifications: settings.EnablePushNotifications,
		NewOrderAlerts:          settings.NewOrderAlerts,
		SystemAlerts:            settings.SystemAlerts,
		EnableSMSNotification:   settings.EnableSMSNotification,
		AdminPhoneNumber:        settings.AdminPhoneNumber,
		CriticalAlerts:          settings.CriticalAlerts,
		UpdatedAt:               settings.UpdatedAt,
	}
}
