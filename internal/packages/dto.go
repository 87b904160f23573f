package packages

import (
	"github.com/shopspring/decimal"
	"github.com/vitrum-studio/vitrum-backend/internal/components"
	"github.com/vitrum-studio/vitrum-backend/pkg/db/models"
)

// PackageDTO is the wire shape of a registry row. Components is nil unless
// the caller asked for the nested structure; listings without it must not
// carry the field at all.
type PackageDTO struct {
	PackageID         int64   `json:"package_id"`
	Name              string  `json:"package_name"`
	Article           string  `json:"package_article"`
	ProductType       string  `json:"product_type"`
	GlassType         string  `json:"glass_type"`
	GlassThickness    int     `json:"glass_thickness"`
	GlassPricePerSqm  float64 `json:"glass_price_per_sqm"`
	HardwareSet       string  `json:"hardware_set"`
	HardwarePrice     float64 `json:"hardware_price"`
	MarkupPercent     float64 `json:"markup_percent"`
	InstallationPrice float64 `json:"installation_price"`
	Description       string  `json:"description"`
	SketchImageURL    string  `json:"sketch_image_url"`
	SketchSVG         string  `json:"sketch_svg"`
	IsActive          bool    `json:"is_active"`

	HasDoor                bool   `json:"has_door"`
	DefaultPartitionHeight int    `json:"default_partition_height"`
	DefaultPartitionWidth  int    `json:"default_partition_width"`
	DefaultDoorHeight      int    `json:"default_door_height"`
	DefaultDoorWidth       int    `json:"default_door_width"`
	DefaultDoorPosition    string `json:"default_door_position"`
	DefaultDoorOffset      string `json:"default_door_offset"`
	DefaultDoorPanels      int    `json:"default_door_panels"`

	Components *[]PackageComponentDTO `json:"components,omitempty"`
}

// PackageComponentDTO is one resolved membership entry: the component, its
// quantity/requiredness in the package, and the active alternatives ordered
// by priority.
type PackageComponentDTO struct {
	MembershipID int64                     `json:"id"`
	PackageID    int64                     `json:"package_id"`
	Quantity     int                       `json:"quantity"`
	IsRequired   bool                      `json:"is_required"`
	Component    components.ComponentDTO   `json:"component"`
	Alternatives []components.ComponentDTO `json:"alternatives"`
}

func toPackageDTO(m models.Package) PackageDTO {
	return PackageDTO{
		PackageID:         m.PackageID,
		Name:              m.Name,
		Article:           m.Article,
		ProductType:       m.ProductType,
		GlassType:         m.GlassType,
		GlassThickness:    m.GlassThickness,
		GlassPricePerSqm:  m.GlassPricePerSqm.InexactFloat64(),
		HardwareSet:       m.HardwareSet,
		HardwarePrice:     m.HardwarePrice.InexactFloat64(),
		MarkupPercent:     m.MarkupPercent.InexactFloat64(),
		InstallationPrice: m.InstallationPrice.InexactFloat64(),
		Description:       m.Description,
		SketchImageURL:    m.SketchImageURL,
		SketchSVG:         m.SketchSVG,
		IsActive:          m.IsActive,

		HasDoor:                m.HasDoor,
		DefaultPartitionHeight: m.DefaultPartitionHeight,
		DefaultPartitionWidth:  m.DefaultPartitionWidth,
		DefaultDoorHeight:      m.DefaultDoorHeight,
		DefaultDoorWidth:       m.DefaultDoorWidth,
		DefaultDoorPosition:    m.DefaultDoorPosition,
		DefaultDoorOffset:      m.DefaultDoorOffset,
		DefaultDoorPanels:      m.DefaultDoorPanels,
	}
}

func (rec MemberRecord) component() models.Component {
	return models.Component{
		ComponentID:     rec.ComponentID,
		Name:            rec.ComponentName,
		Type:            rec.ComponentType,
		Article:         rec.Article,
		Characteristics: rec.Characteristics,
		Unit:            rec.Unit,
		PricePerUnit:    rec.PricePerUnit,
		IsActive:        rec.IsActive,
	}
}

// PackageInput carries the mutable registry fields. Pointer fields fall back
// to the registry defaults when absent.
type PackageInput struct {
	Name              string
	Article           string
	ProductType       string
	GlassType         string
	GlassThickness    int
	GlassPricePerSqm  float64
	HardwareSet       string
	HardwarePrice     *float64
	MarkupPercent     *float64
	InstallationPrice *float64
	Description       string
	SketchImageURL    string
	SketchSVG         string
	IsActive          *bool

	HasDoor                *bool
	DefaultPartitionHeight *int
	DefaultPartitionWidth  *int
	DefaultDoorHeight      *int
	DefaultDoorWidth       *int
	DefaultDoorPosition    *string
	DefaultDoorOffset      *string
	DefaultDoorPanels      *int
}

func (in PackageInput) toModel() models.Package {
	pkg := models.Package{
		Name:              in.Name,
		Article:           in.Article,
		ProductType:       in.ProductType,
		GlassType:         in.GlassType,
		GlassThickness:    in.GlassThickness,
		GlassPricePerSqm:  decimal.NewFromFloat(in.GlassPricePerSqm),
		HardwareSet:       in.HardwareSet,
		HardwarePrice:     decimal.NewFromFloat(floatOr(in.HardwarePrice, 0)),
		MarkupPercent:     decimal.NewFromFloat(floatOr(in.MarkupPercent, 20)),
		InstallationPrice: decimal.NewFromFloat(floatOr(in.InstallationPrice, 3000)),
		Description:       in.Description,
		SketchImageURL:    in.SketchImageURL,
		SketchSVG:         in.SketchSVG,
		IsActive:          boolOr(in.IsActive, true),

		HasDoor:                boolOr(in.HasDoor, false),
		DefaultPartitionHeight: intOr(in.DefaultPartitionHeight, 1900),
		DefaultPartitionWidth:  intOr(in.DefaultPartitionWidth, 1000),
		DefaultDoorHeight:      intOr(in.DefaultDoorHeight, 1900),
		DefaultDoorWidth:       intOr(in.DefaultDoorWidth, 800),
		DefaultDoorPosition:    stringOr(in.DefaultDoorPosition, "center"),
		DefaultDoorOffset:      stringOr(in.DefaultDoorOffset, "0"),
		DefaultDoorPanels:      intOr(in.DefaultDoorPanels, 1),
	}
	return pkg
}

// MembershipInput carries one upsert of a component into a package.
type MembershipInput struct {
	PackageID   int64
	ComponentID int64
	Quantity    *int
	IsRequired  *bool
}

func floatOr(v *float64, fallback float64) float64 {
	if v != nil {
		return *v
	}
	return fallback
}

func intOr(v *int, fallback int) int {
	if v != nil {
		return *v
	}
	return fallback
}

func boolOr(v *bool, fallback bool) bool {
	if v != nil {
		return *v
	}
	return fallback
}

func stringOr(v *string, fallback string) string {
	if v != nil {
		return *v
	}
	return fallback
}
