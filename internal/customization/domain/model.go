package domain

import (
	"time"

	"gorm.io/datatypes"
)

// CustomizationData is the typed design payload saved against a product.
// All references are optional; an empty payload is a blank canvas.
type CustomizationData struct {
	ColorID   *string `json:"color_id,omitempty"`
	PatternID *string `json:"pattern_id,omitempty"`
	FontID    *string `json:"font_id,omitempty"`
	Text      *string `json:"text,omitempty"`
	Preview   *string `json:"preview,omitempty"`
}

// UserShirt links a customer to a shirt design. The record count per shirt
// is the units-sold proxy used by the product sales report.
type UserShirt struct {
	ID         int64                                  `json:"id" gorm:"primaryKey"`
	CustomerID int64                                  `json:"customer_id" gorm:"not null;index"`
	ShirtID    int64                                  `json:"shirt_id" gorm:"not null;index"`
	Purchased  bool                                   `json:"purchased" gorm:"not null;default:false"`
	Data       datatypes.JSONType[CustomizationData] `json:"data" gorm:"type:jsonb"`
	CreatedAt  time.Time                              `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt  time.Time                              `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (UserShirt) TableName() string { return "user_shirts" }

type UserCustomizer struct {
	ID           int64                                  `json:"id" gorm:"primaryKey"`
	CustomerID   int64                                  `json:"customer_id" gorm:"not null;index"`
	CustomizerID int64                                  `json:"customizer_id" gorm:"not null;index"`
	Purchased    bool                                   `json:"purchased" gorm:"not null;default:false"`
	Data         datatypes.JSONType[CustomizationData] `json:"data" gorm:"type:jsonb"`
	CreatedAt    time.Time                              `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt    time.Time                              `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (UserCustomizer) TableName() string { return "user_customizers" }
