package controllers

import (
	componentsvc "github.com/vitrum-studio/vitrum-backend/internal/components"
	packagesvc "github.com/vitrum-studio/vitrum-backend/internal/packages"
)

type componentPayload struct {
	ComponentID     int64   `json:"component_id,omitempty"`
	Name            string  `json:"component_name" validate:"required"`
	Type            string  `json:"component_type" validate:"required"`
	Article         string  `json:"article,omitempty"`
	Characteristics string  `json:"characteristics,omitempty"`
	Unit            string  `json:"unit,omitempty"`
	PricePerUnit    float64 `json:"price_per_unit,omitempty" validate:"omitempty,gte=0"`
	IsActive        *bool   `json:"is_active,omitempty"`
}

func (p componentPayload) toInput() componentsvc.ComponentInput {
	return componentsvc.ComponentInput{
		Name:            p.Name,
		Type:            p.Type,
		Article:         p.Article,
		Characteristics: p.Characteristics,
		Unit:            p.Unit,
		PricePerUnit:    p.PricePerUnit,
		IsActive:        p.IsActive,
	}
}

type packagePayload struct {
	PackageID         int64    `json:"package_id,omitempty"`
	Name              string   `json:"package_name" validate:"required"`
	Article           string   `json:"package_article,omitempty"`
	ProductType       string   `json:"product_type,omitempty"`
	GlassType         string   `json:"glass_type,omitempty"`
	GlassThickness    int      `json:"glass_thickness,omitempty" validate:"omitempty,gte=0"`
	GlassPricePerSqm  float64  `json:"glass_price_per_sqm,omitempty" validate:"omitempty,gte=0"`
	HardwareSet       string   `json:"hardware_set,omitempty"`
	HardwarePrice     *float64 `json:"hardware_price,omitempty" validate:"omitempty,gte=0"`
	MarkupPercent     *float64 `json:"markup_percent,omitempty" validate:"omitempty,gte=0"`
	InstallationPrice *float64 `json:"installation_price,omitempty" validate:"omitempty,gte=0"`
	Description       string   `json:"description,omitempty"`
	SketchImageURL    string   `json:"sketch_image_url,omitempty"`
	SketchSVG         string   `json:"sketch_svg,omitempty"`
	IsActive          *bool    `json:"is_active,omitempty"`

	HasDoor                *bool   `json:"has_door,omitempty"`
	DefaultPartitionHeight *int    `json:"default_partition_height,omitempty" validate:"omitempty,gte=0"`
	DefaultPartitionWidth  *int    `json:"default_partition_width,omitempty" validate:"omitempty,gte=0"`
	DefaultDoorHeight      *int    `json:"default_door_height,omitempty" validate:"omitempty,gte=0"`
	DefaultDoorWidth       *int    `json:"default_door_width,omitempty" validate:"omitempty,gte=0"`
	DefaultDoorPosition    *string `json:"default_door_position,omitempty"`
	DefaultDoorOffset      *string `json:"default_door_offset,omitempty"`
	DefaultDoorPanels      *int    `json:"default_door_panels,omitempty" validate:"omitempty,gte=1"`
}

func (p packagePayload) toInput() packagesvc.PackageInput {
	return packagesvc.PackageInput{
		Name:              p.Name,
		Article:           p.Article,
		ProductType:       p.ProductType,
		GlassType:         p.GlassType,
		GlassThickness:    p.GlassThickness,
		GlassPricePerSqm:  p.GlassPricePerSqm,
		HardwareSet:       p.HardwareSet,
		HardwarePrice:     p.HardwarePrice,
		MarkupPercent:     p.MarkupPercent,
		InstallationPrice: p.InstallationPrice,
		Description:       p.Description,
		SketchImageURL:    p.SketchImageURL,
		SketchSVG:         p.SketchSVG,
		IsActive:          p.IsActive,

		HasDoor:                p.HasDoor,
		DefaultPartitionHeight: p.DefaultPartitionHeight,
		DefaultPartitionWidth:  p.DefaultPartitionWidth,
		DefaultDoorHeight:      p.DefaultDoorHeight,
		DefaultDoorWidth:       p.DefaultDoorWidth,
		DefaultDoorPosition:    p.DefaultDoorPosition,
		DefaultDoorOffset:      p.DefaultDoorOffset,
		DefaultDoorPanels:      p.DefaultDoorPanels,
	}
}

type createPackageRequest struct {
	Package *packagePayload `json:"package" validate:"required"`
}

type updatePackageRequest struct {
	Package *packagePayload `json:"package" validate:"required"`
}

type deletePackageRequest struct {
	PackageID int64 `json:"package_id" validate:"required,gt=0"`
}

type createComponentRequest struct {
	Component *componentPayload `json:"component" validate:"required"`
}

type updateComponentRequest struct {
	Component *componentPayload `json:"component" validate:"required"`
}

type deleteComponentRequest struct {
	ComponentID int64 `json:"component_id" validate:"required,gt=0"`
	Force       bool  `json:"force,omitempty"`
}

type importComponentsRequest struct {
	Components []componentPayload `json:"components" validate:"required,min=1,dive"`
}

type membershipRequest struct {
	PackageID   int64 `json:"package_id" validate:"required,gt=0"`
	ComponentID int64 `json:"component_id" validate:"required,gt=0"`
	Quantity    *int  `json:"quantity,omitempty" validate:"omitempty,gt=0"`
	IsRequired  *bool `json:"is_required,omitempty"`
}

type deleteMembershipRequest struct {
	MembershipID int64 `json:"id" validate:"required,gt=0"`
}

type alternativeRequest struct {
	ComponentID            int64 `json:"component_id" validate:"required,gt=0"`
	AlternativeComponentID int64 `json:"alternative_component_id" validate:"required,gt=0"`
	Priority               *int  `json:"priority,omitempty" validate:"omitempty,gte=1"`
}

type swapRequest struct {
	PackageID     int64 `json:"package_id" validate:"required,gt=0"`
	CurrentMainID int64 `json:"current_main_id" validate:"required,gt=0"`
	NewMainID     int64 `json:"new_main_id" validate:"required,gt=0"`
}
