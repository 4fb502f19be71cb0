package inventory

import (
	"context"
	"time"
)

// Vehicle is the main inventory store's record shape. The pipeline only ever
// writes it, once, when an approved submission is promoted; everything else
// about inventory lives outside this core.
type Vehicle struct {
	ID          uint64 `gorm:"primaryKey;column:id" json:"-"`
	StockNumber string `gorm:"size:32;uniqueIndex;not null" json:"stock_number"`
	Condition   string `gorm:"size:16;not null;default:'used'" json:"condition"`

	Make       string  `gorm:"size:64" json:"make"`
	Model      string  `gorm:"size:64" json:"model"`
	Year       int     `json:"year"`
	Trim       string  `gorm:"size:64" json:"trim"`
	Kilometers int     `json:"kilometers"`
	Price      float64 `gorm:"type:decimal(12,2)" json:"price"`

	Location     string   `gorm:"size:128" json:"location"`
	Province     string   `gorm:"size:64" json:"province"`
	Color        string   `gorm:"size:32" json:"color"`
	Transmission string   `gorm:"size:32" json:"transmission"`
	FuelType     string   `gorm:"size:32" json:"fuel_type"`
	BodyType     string   `gorm:"size:32" json:"body_type"`
	Drivetrain   string   `gorm:"size:32" json:"drivetrain"`
	VIN          string   `gorm:"size:32" json:"vin"`
	ImageURLs    []string `gorm:"serializer:json;type:json" json:"image_urls,omitempty"`
	Notes        string   `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Vehicle) TableName() string { return "vehicles" }

// Creator is the promotion port: one-way, one-time create into inventory.
type Creator interface {
	Create(ctx context.Context, v *Vehicle) error
}
