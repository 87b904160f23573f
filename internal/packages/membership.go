package packages

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"github.com/vitrum-studio/vitrum-backend/pkg/db/models"
	"gorm.io/gorm"
)

// MembershipRepository persists the package↔component join rows.
type MembershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository builds a membership repository on the connection.
func NewMembershipRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *MembershipRepository) WithTx(tx *gorm.DB) *MembershipRepository {
	return &MembershipRepository{db: tx}
}

// MemberRecord is one membership row joined with its component, flattened
// for scanning.
type MemberRecord struct {
	ID              int64
	PackageID       int64
	ComponentID     int64
	Quantity        int
	IsRequired      bool
	ComponentName   string
	ComponentType   string
	Article         string
	Characteristics string
	Unit            string
	PricePerUnit    decimal.Decimal
	IsActive        bool
}

// ListForPackage returns the package's membership rows joined with their
// components, ordered by component type then name for stable display
// grouping regardless of insertion order.
func (r *MembershipRepository) ListForPackage(ctx context.Context, packageID int64) ([]MemberRecord, error) {
	var rows []MemberRecord
	err := r.db.WithContext(ctx).
		Table("package_components pc").
		Select("pc.id, pc.package_id, pc.component_id, pc.quantity, pc.is_required, " +
			"gc.component_name, gc.component_type, gc.article, gc.characteristics, " +
			"gc.unit, gc.price_per_unit, gc.is_active").
		Joins("JOIN glass_components gc ON gc.component_id = pc.component_id").
		Where("pc.package_id = ?", packageID).
		Order("gc.component_type ASC").
		Order("gc.component_name ASC").
		Scan(&rows).
		Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Find returns the membership row for the (package, component) pair.
func (r *MembershipRepository) Find(ctx context.Context, packageID, componentID int64) (*models.PackageComponent, error) {
	var row models.PackageComponent
	err := r.db.WithContext(ctx).
		First(&row, "package_id = ? AND component_id = ?", packageID, componentID).
		Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Upsert updates the pair's quantity and requiredness in place when the row
// exists, otherwise inserts it. This keeps the (package, component) pair
// unique without relying on a database constraint.
func (r *MembershipRepository) Upsert(ctx context.Context, packageID, componentID int64, quantity int, isRequired bool) error {
	existing, err := r.Find(ctx, packageID, componentID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if existing != nil {
		return r.db.WithContext(ctx).
			Model(&models.PackageComponent{}).
			Where("id = ?", existing.ID).
			Updates(map[string]any{"quantity": quantity, "is_required": isRequired}).
			Error
	}

	row := models.PackageComponent{
		PackageID:   packageID,
		ComponentID: componentID,
		Quantity:    quantity,
		IsRequired:  isRequired,
	}
	return r.db.WithContext(ctx).Create(&row).Error
}

// DeleteByID removes a single membership row.
func (r *MembershipRepository) DeleteByID(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.PackageComponent{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteForPackage removes every membership row of a package.
func (r *MembershipRepository) DeleteForPackage(ctx context.Context, packageID int64) error {
	return r.db.WithContext(ctx).
		Where("package_id = ?", packageID).
		Delete(&models.PackageComponent{}).
		Error
}

// Repoint rewrites the pair's component reference, carrying quantity and
// requiredness along untouched since the row itself is preserved.
func (r *MembershipRepository) Repoint(ctx context.Context, packageID, fromComponentID, toComponentID int64) error {
	return r.db.WithContext(ctx).
		Model(&models.PackageComponent{}).
		Where("package_id = ? AND component_id = ?", packageID, fromComponentID).
		Update("component_id", toComponentID).
		Error
}
