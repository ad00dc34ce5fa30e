package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// PromotionModel is the GORM-specific struct for the 'promotions' table.
// Exactly one of ProductRef, StoreRef and CategoryRef is set, matching TargetType.
type PromotionModel struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key"`

	Title       string `gorm:"type:varchar(255);not null;default:''"`
	Description string `gorm:"type:text;not null;default:''"`
	ImageURL    string `gorm:"column:image_url;type:text;not null;default:''"`
	LinkURL     string `gorm:"column:link_url;type:text;not null;default:''"`

	TargetType  string  `gorm:"type:varchar(20);not null"`
	ProductRef  *string `gorm:"type:varchar(255)"`
	StoreRef    *string `gorm:"type:varchar(255)"`
	CategoryRef *string `gorm:"type:varchar(255)"`

	Value     *float64 `gorm:"type:numeric(12,2)"`
	ValueType *string  `gorm:"type:varchar(20)"`

	Placements pq.StringArray `gorm:"type:text[];not null"`
	Cities     pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	Channels   pq.StringArray `gorm:"type:text[];not null;default:'{app}'"`

	Stacking     string `gorm:"type:varchar(32);not null;default:best"`
	DisplayOrder int    `gorm:"not null;default:0"`

	MinQty            *int     `gorm:"column:min_qty"`
	MinOrderSubtotal  *float64 `gorm:"type:numeric(12,2)"`
	MaxDiscountAmount *float64 `gorm:"type:numeric(12,2)"`

	StartDate time.Time `gorm:"type:timestamptz;not null"`
	EndDate   time.Time `gorm:"type:timestamptz;not null"`
	IsActive  bool      `gorm:"not null;default:true"`

	ViewsCount       int64 `gorm:"not null;default:0"`
	ClicksCount      int64 `gorm:"not null;default:0"`
	ConversionsCount int64 `gorm:"not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (PromotionModel) TableName() string {
	return "promotions"
}
