package models

// PackageComponent binds a component into a package with a quantity and a
// required/optional flag. At most one row may exist per
// (package_id, component_id) pair; the membership repository enforces this
// with an existence check before insert. Column defaults live in the goose
// migration only: a gorm default tag would drop zero values (is_required
// false) from the INSERT and let the column default overwrite them.
type PackageComponent struct {
	ID          int64 `gorm:"column:id;primaryKey;autoIncrement"`
	PackageID   int64 `gorm:"column:package_id;not null;index"`
	ComponentID int64 `gorm:"column:component_id;not null;index"`
	Quantity    int   `gorm:"column:quantity;not null"`
	IsRequired  bool  `gorm:"column:is_required;not null"`
}

func (PackageComponent) TableName() string {
	return "package_components"
}
