package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Package is a sellable glass-construction template with pricing and layout
// defaults. The door defaults are only meaningful when HasDoor is set.
// Input defaults are applied by the service layer and column defaults by the
// goose migration; gorm default tags are avoided because they drop zero
// values (is_active false, a zero price, a zero door offset) from the INSERT.
type Package struct {
	PackageID         int64           `gorm:"column:package_id;primaryKey;autoIncrement"`
	Name              string          `gorm:"column:package_name;not null"`
	Article           string          `gorm:"column:package_article"`
	ProductType       string          `gorm:"column:product_type"`
	GlassType         string          `gorm:"column:glass_type"`
	GlassThickness    int             `gorm:"column:glass_thickness"`
	GlassPricePerSqm  decimal.Decimal `gorm:"column:glass_price_per_sqm;type:numeric(10,2);not null"`
	HardwareSet       string          `gorm:"column:hardware_set"`
	HardwarePrice     decimal.Decimal `gorm:"column:hardware_price;type:numeric(10,2);not null"`
	MarkupPercent     decimal.Decimal `gorm:"column:markup_percent;type:numeric(5,2);not null"`
	InstallationPrice decimal.Decimal `gorm:"column:installation_price;type:numeric(10,2);not null"`
	Description       string          `gorm:"column:description"`
	SketchImageURL    string          `gorm:"column:sketch_image_url"`
	SketchSVG         string          `gorm:"column:sketch_svg"`
	IsActive          bool            `gorm:"column:is_active;not null"`

	HasDoor                bool   `gorm:"column:has_door;not null"`
	DefaultPartitionHeight int    `gorm:"column:default_partition_height;not null"`
	DefaultPartitionWidth  int    `gorm:"column:default_partition_width;not null"`
	DefaultDoorHeight      int    `gorm:"column:default_door_height;not null"`
	DefaultDoorWidth       int    `gorm:"column:default_door_width;not null"`
	DefaultDoorPosition    string `gorm:"column:default_door_position;not null"`
	DefaultDoorOffset      string `gorm:"column:default_door_offset;not null"`
	DefaultDoorPanels      int    `gorm:"column:default_door_panels;not null"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Package) TableName() string {
	return "glass_packages"
}
