package components

import (
	"github.com/shopspring/decimal"
	"github.com/vitrum-studio/vitrum-backend/pkg/db/models"
)

// ComponentDTO is the wire shape of a catalog row. Prices are converted from
// the store-native decimal to float64 at this boundary only.
type ComponentDTO struct {
	ComponentID     int64   `json:"component_id"`
	Name            string  `json:"component_name"`
	Type            string  `json:"component_type"`
	Article         string  `json:"article"`
	Characteristics string  `json:"characteristics"`
	Unit            string  `json:"unit"`
	PricePerUnit    float64 `json:"price_per_unit"`
	IsActive        bool    `json:"is_active"`
}

// ToComponentDTO maps a catalog model to its wire shape.
func ToComponentDTO(m models.Component) ComponentDTO {
	return ComponentDTO{
		ComponentID:     m.ComponentID,
		Name:            m.Name,
		Type:            m.Type,
		Article:         m.Article,
		Characteristics: m.Characteristics,
		Unit:            m.Unit,
		PricePerUnit:    m.PricePerUnit.InexactFloat64(),
		IsActive:        m.IsActive,
	}
}

// ToComponentDTOs maps a slice of catalog models.
func ToComponentDTOs(rows []models.Component) []ComponentDTO {
	out := make([]ComponentDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, ToComponentDTO(row))
	}
	return out
}

// ComponentInput carries the mutable catalog fields. Unit defaults to the
// generic piece unit and the price to zero when absent.
type ComponentInput struct {
	Name            string
	Type            string
	Article         string
	Characteristics string
	Unit            string
	PricePerUnit    float64
	IsActive        *bool
}

func (in ComponentInput) toModel() models.Component {
	unit := in.Unit
	if unit == "" {
		unit = defaultUnit
	}
	isActive := true
	if in.IsActive != nil {
		isActive = *in.IsActive
	}
	return models.Component{
		Name:            in.Name,
		Type:            in.Type,
		Article:         in.Article,
		Characteristics: in.Characteristics,
		Unit:            unit,
		PricePerUnit:    decimal.NewFromFloat(in.PricePerUnit),
		IsActive:        isActive,
	}
}

// BulkImportFailure reports one rejected item of a bulk import.
type BulkImportFailure struct {
	Index int    `json:"index"`
	Error string `json:"error"`
}

// BulkImportResult summarizes a bulk import: items are committed
// independently, so partial progress is visible here rather than hidden.
type BulkImportResult struct {
	Imported int                 `json:"imported"`
	Failed   []BulkImportFailure `json:"failed,omitempty"`
}
