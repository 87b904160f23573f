package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Component is a priced part (profile, handle, seal, ...) usable across
// packages. Deactivation is a soft delete: the row stays referenceable by
// existing memberships and alternative edges. The service layer fills input
// defaults and the goose migration carries the column defaults; gorm default
// tags are avoided because they drop zero values (is_active false, price 0)
// from the INSERT.
type Component struct {
	ComponentID     int64           `gorm:"column:component_id;primaryKey;autoIncrement"`
	Name            string          `gorm:"column:component_name;not null"`
	Type            string          `gorm:"column:component_type;not null"`
	Article         string          `gorm:"column:article"`
	Characteristics string          `gorm:"column:characteristics"`
	Unit            string          `gorm:"column:unit;not null"`
	PricePerUnit    decimal.Decimal `gorm:"column:price_per_unit;type:numeric(10,2);not null"`
	IsActive        bool            `gorm:"column:is_active;not null"`
	CreatedAt       time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName maps the model to the glass catalog table.
func (Component) TableName() string {
	return "glass_components"
}
