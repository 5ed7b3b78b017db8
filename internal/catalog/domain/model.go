package domain

import (
	"time"

	"gorm.io/datatypes"
)

// ShirtCategory optionally carries a bcrypt password hash; locked categories
// require Unlock before their shirts are listed.
type ShirtCategory struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"type:text;not null;uniqueIndex"`
	DisplayName  string    `json:"display_name" gorm:"type:text;not null"`
	PasswordHash string    `json:"-" gorm:"type:text"`
	Locked       bool      `json:"locked" gorm:"not null;default:false"`
	CreatedAt    time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (ShirtCategory) TableName() string { return "shirt_categories" }

type ShirtSubCategory struct {
	ID         int64     `json:"id" gorm:"primaryKey"`
	CategoryID int64     `json:"category_id" gorm:"not null;index"`
	Name       string    `json:"name" gorm:"type:text;not null"`
	CreatedAt  time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (ShirtSubCategory) TableName() string { return "shirt_sub_categories" }

type Shirt struct {
	ID            int64             `json:"id" gorm:"primaryKey"`
	Name          string            `json:"name" gorm:"type:text;not null"`
	Description   *string           `json:"description,omitempty" gorm:"type:text"`
	BasePrice     float64           `json:"base_price" gorm:"type:decimal(12,2);not null"`
	CategoryID    int64             `json:"category_id" gorm:"not null;index"`
	SubCategoryID *int64            `json:"sub_category_id,omitempty" gorm:"index"`
	ImageName     *string           `json:"image_name,omitempty" gorm:"type:text"`
	Metadata      datatypes.JSONMap `json:"metadata,omitempty" gorm:"type:jsonb"`
	CreatedAt     time.Time         `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt     time.Time         `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Shirt) TableName() string { return "shirts" }

type Customizer struct {
	ID          int64             `json:"id" gorm:"primaryKey"`
	Name        string            `json:"name" gorm:"type:text;not null"`
	Description *string           `json:"description,omitempty" gorm:"type:text"`
	BasePrice   float64           `json:"base_price" gorm:"type:decimal(12,2);not null"`
	CategoryID  *int64            `json:"category_id,omitempty" gorm:"index"`
	Template    datatypes.JSONMap `json:"template,omitempty" gorm:"type:jsonb"`
	CreatedAt   time.Time         `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt   time.Time         `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Customizer) TableName() string { return "customizers" }

type Pattern struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"type:text;not null"`
	ImageName *string   `json:"image_name,omitempty" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Pattern) TableName() string { return "patterns" }

type Color struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"type:text;not null"`
	Code      string    `json:"code" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Color) TableName() string { return "colors" }

type Font struct {
	ID         int64     `json:"id" gorm:"primaryKey"`
	FontName   string    `json:"font_name" gorm:"type:text;not null"`
	FontFamily string    `json:"font_family" gorm:"type:text;not null"`
	FileName   *string   `json:"file_name,omitempty" gorm:"type:text"`
	CreatedAt  time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Font) TableName() string { return "fonts" }
