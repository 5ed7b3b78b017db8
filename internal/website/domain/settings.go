package domain

import "time"

type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
	CurrencyCAD Currency = "CAD"
)

func (c Currency) Valid() bool {
	switch c {
	case CurrencyUSD, CurrencyEUR, CurrencyGBP, CurrencyCAD:
		return true
	}
	return false
}

type TaxType string

const (
	TaxTypeVAT      TaxType = "VAT"
	TaxTypeSalesTax TaxType = "Sales Tax"
	TaxTypeGST      TaxType = "GST"
)

func (t TaxType) Valid() bool {
	switch t {
	case TaxTypeVAT, TaxTypeSalesTax, TaxTypeGST:
		return true
	}
	return false
}

type Language string

const (
	LanguageEnglish Language = "English"
	LanguageSpanish Language = "Spanish"
	LanguageFrench  Language = "French"
	LanguageGerman  Language = "German"
)

func (l Language) Valid() bool {
	switch l {
	case LanguageEnglish, LanguageSpanish, LanguageFrench, LanguageGerman:
		return true
	}
	return false
}

// The remaining settings singletons follow the same pinned-row pattern as
// WebsiteSettings: one record under SettingsID, reachable only through the
// repository's Load/Save pair.

type PaymentSettings struct {
	ID                    int64     `json:"id" gorm:"primaryKey"`
	PaypalEnabled         bool      `json:"paypal_enabled" gorm:"not null;default:false"`
	StripeEnabled         bool      `json:"stripe_enabled" gorm:"not null;default:false"`
	CashAppEnabled        bool      `json:"cash_app_enabled" gorm:"not null;default:false"`
	ZelleEnabled          bool      `json:"zelle_enabled" gorm:"not null;default:false"`
	DefaultCurrency       Currency  `json:"default_currency" gorm:"type:text;not null;default:'USD'"`
	StripeAPIKey          *string   `json:"stripe_api_key,omitempty" gorm:"type:text"`
	StripeWebhookSecret   *string   `json:"stripe_webhook_secret,omitempty" gorm:"type:text"`
	Enable3DSecure        bool      `json:"enable_3d_secure" gorm:"not null;default:false"`
	AdminEmail            *string   `json:"admin_email,omitempty" gorm:"type:text"`
	EmailOnPaymentSuccess bool      `json:"email_on_payment_success" gorm:"not null;default:false"`
	EmailOnPaymentFailure bool      `json:"email_on_payment_failure" gorm:"not null;default:false"`
	CreatedAt             time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt             time.Time `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (PaymentSettings) TableName() string { return "payment_settings" }

type TaxConfiguration struct {
	ID                  int64     `json:"id" gorm:"primaryKey"`
	EnableTaxSetting    bool      `json:"enable_tax_setting" gorm:"not null;default:false"`
	TaxType             *TaxType  `json:"tax_type,omitempty" gorm:"type:text"`
	TaxInclusivePricing bool      `json:"tax_inclusive_pricing" gorm:"not null;default:false"`
	BusinessName        *string   `json:"business_name,omitempty" gorm:"type:text"`
	TaxIDVATNumber      *string   `json:"tax_id_vat_number,omitempty" gorm:"type:text"`
	BusinessAddress     *string   `json:"business_address,omitempty" gorm:"type:text"`
	B2BTaxExemption     bool      `json:"b2b_tax_exemption" gorm:"not null;default:false"`
	DigitalProductTax   bool      `json:"digital_product_tax" gorm:"not null;default:false"`
	CreatedAt           time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt           time.Time `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (TaxConfiguration) TableName() string { return "tax_configurations" }

type GeneralSettings struct {
	ID                  int64     `json:"id" gorm:"primaryKey"`
	SiteTitle           string    `json:"site_title" gorm:"type:text;not null"`
	SiteDescription     *string   `json:"site_description,omitempty" gorm:"type:text"`
	DefaultLanguage     Language  `json:"default_language" gorm:"type:text;not null;default:'English'"`
	Currency            Currency  `json:"currency" gorm:"type:text;not null;default:'USD'"`
	TaxRate             float64   `json:"tax_rate" gorm:"type:decimal(5,2);not null;default:0"`
	MaintenanceMode     bool      `json:"maintenance_mode" gorm:"not null;default:false"`
	EnableAnalytics     bool      `json:"enable_analytics" gorm:"not null;default:false"`
	EnableNotifications bool      `json:"enable_notifications" gorm:"not null;default:false"`
	Email               *string   `json:"email,omitempty" gorm:"type:text"`
	PhoneNumber         *string   `json:"phone_number,omitempty" gorm:"type:text"`
	BusinessAddress     *string   `json:"business_address,omitempty" gorm:"type:text"`
	CreatedAt           time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt           time.Time `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (GeneralSettings) TableName() string { return "general_settings" }

type NotificationSettings struct {
	ID                      int64     `json:"id" gorm:"primaryKey"`
	NewOrderNotification    bool      `json:"new_order_notification" gorm:"not null;default:false"`
	PaymentNotifications    bool      `json:"payment_notifications" gorm:"not null;default:false"`
	LowStockAlerts          bool      `json:"low_stock_alerts" gorm:"not null;default:false"`
	CustomerMessages        bool      `json:"customer_messages" gorm:"not null;default:false"`
	EnablePushNotifications bool      `json:"enable_push_notifications" gorm:"not null;default:false"`
	NewOrderAlerts          bool      `json:"new_order_alerts" gorm:"not null;default:false"`
	SystemAlerts            bool      `json:"system_alerts" gorm:"not null;default:false"`
	EnableSMSNotification   bool      `json:"enable_sms_notification" gorm:"not null;default:false"`
	AdminPhoneNumber        *string   `json:"admin_phone_number,omitempty" gorm:"type:text"`
	CriticalAlerts          bool      `json:"critical_alerts" gorm:"not null;default:false"`
	CreatedAt               time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt               time.Time `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (NotificationSettings) TableName() string { return "notification_settings" }

type UpdatePaymentSettingsRequest struct {
	PaypalEnabled         *bool   `json:"paypal_enabled"`
	StripeEnabled         *bool   `json:"stripe_enabled"`
	CashAppEnabled        *bool   `json:"cash_app_enabled"`
	ZelleEnabled          *bool   `json:"zelle_enabled"`
	DefaultCurrency       *string `json:"default_currency"`
	StripeAPIKey          *string `json:"stripe_api_key"`
	StripeWebhookSecret   *string `json:"stripe_webhook_secret"`
	Enable3DSecure        *bool   `json:"enable_3d_secure"`
	AdminEmail            *string `json:"admin_email"`
	EmailOnPaymentSuccess *bool   `json:"email_on_payment_success"`
	EmailOnPaymentFailure *bool   `json:"email_on_payment_failure"`
}

type PaymentSettingsResponse struct {
	PaypalEnabled         bool      `json:"paypal_enabled"`
	StripeEnabled         bool      `json:"stripe_enabled"`
	CashAppEnabled        bool      `json:"cash_app_enabled"`
	ZelleEnabled          bool      `json:"zelle_enabled"`
	DefaultCurrency       Currency  `json:"default_currency"`
	StripeAPIKey          *string   `json:"stripe_api_key,omitempty"`
	StripeWebhookSecret   *string   `json:"stripe_webhook_secret,omitempty"`
	Enable3DSecure        bool      `json:"enable_3d_secure"`
	AdminEmail            *string   `json:"admin_email,omitempty"`
	EmailOnPaymentSuccess bool      `json:"email_on_payment_success"`
	EmailOnPaymentFailure bool      `json:"email_on_payment_failure"`
	UpdatedAt             time.Time `json:"updated_at"`
}

type UpdateTaxConfigurationRequest struct {
	EnableTaxSetting    *bool   `json:"enable_tax_setting"`
	TaxType             *string `json:"tax_type"`
	TaxInclusivePricing *bool   `json:"tax_inclusive_pricing"`
	BusinessName        *string `json:"business_name"`
	TaxIDVATNumber      *string `json:"tax_id_vat_number"`
	BusinessAddress     *string `json:"business_address"`
	B2BTaxExemption     *bool   `json:"b2b_tax_exemption"`
	DigitalProductTax   *bool   `json:"digital_product_tax"`
}

type TaxConfigurationResponse struct {
	EnableTaxSetting    bool      `json:"enable_tax_setting"`
	TaxType             *TaxType  `json:"tax_type,omitempty"`
	TaxInclusivePricing bool      `json:"tax_inclusive_pricing"`
	BusinessName        *string   `json:"business_name,omitempty"`
	TaxIDVATNumber      *string   `json:"tax_id_vat_number,omitempty"`
	BusinessAddress     *string   `json:"business_address,omitempty"`
	B2BTaxExemption     bool      `json:"b2b_tax_exemption"`
	DigitalProductTax   bool      `json:"digital_product_tax"`
	UpdatedAt           time.Time `json:"updated_at"`
}

type UpdateGeneralSettingsRequest struct {
	SiteTitle           *string  `json:"site_title"`
	SiteDescription     *string  `json:"site_description"`
	DefaultLanguage     *string  `json:"default_language"`
	Currency            *string  `json:"currency"`
	TaxRate             *float64 `json:"tax_rate"`
	MaintenanceMode     *bool    `json:"maintenance_mode"`
	EnableAnalytics     *bool    `json:"enable_analytics"`
	EnableNotifications *bool    `json:"enable_notifications"`
	Email               *string  `json:"email"`
	PhoneNumber         *string  `json:"phone_number"`
	BusinessAddress     *string  `json:"business_address"`
}

type GeneralSettingsResponse struct {
	SiteTitle           string    `json:"site_title"`
	SiteDescription     *string   `json:"site_description,omitempty"`
	DefaultLanguage     Language  `json:"default_language"`
	Currency            Currency  `json:"currency"`
	TaxRate             float64   `json:"tax_rate"`
	MaintenanceMode     bool      `json:"maintenance_mode"`
	EnableAnalytics     bool      `json:"enable_analytics"`
	EnableNotifications bool      `json:"enable_notifications"`
	Email               *string   `json:"email,omitempty"`
	PhoneNumber         *string   `json:"phone_number,omitempty"`
	BusinessAddress     *string   `json:"business_address,omitempty"`
	UpdatedAt           time.Time `json:"updated_at"`
}

type UpdateNotificationSettingsRequest struct {
	NewOrderNotification    *bool   `json:"new_order_notification"`
	PaymentNotifications    *bool   `json:"payment_notifications"`
	LowStockAlerts          *bool   `json:"low_stock_alerts"`
	CustomerMessages        *bool   `json:"customer_messages"`
	EnablePushNotifications *bool   `json:"enable_push_notifications"`
	NewOrderAlerts          *bool   `json:"new_order_alerts"`
	SystemAlerts            *bool   `json:"system_alerts"`
	EnableSMSNotification   *bool   `json:"enable_sms_notification"`
	AdminPhoneNumber        *string `json:"admin_phone_number"`
	CriticalAlerts          *bool   `json:"critical_alerts"`
}

type NotificationSettingsResponse struct {
	NewOrderNotification    bool      `json:"new_order_notification"`
	PaymentNotifications    bool      `json:"payment_notifications"`
	LowStockAlerts          bool      `json:"low_stock_alerts"`
	CustomerMessages        bool      `json:"customer_messages"`
	EnablePushNotifications bool      `json:"enable_push_notifications"`
	NewOrderAlerts          bool      `json:"new_order_alerts"`
	SystemAlerts            bool      `json:"system_alerts"`
	EnableSMSNotification   bool      `json:"enable_sms_notification"`
	AdminPhoneNumber        *string   `json:"admin_phone_number,omitempty"`
	CriticalAlerts          bool      `json:"critical_alerts"`
	UpdatedAt               time.Time `json:"updated_at"`
}
