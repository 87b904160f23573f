package packages

import (
	"context"

	"github.com/vitrum-studio/vitrum-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository provides persistence for the package registry.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// List returns packages newest-first, optionally active rows only.
func (r *Repository) List(ctx context.Context, activeOnly bool) ([]models.Package, error) {
	qb := r.db.WithContext(ctx).Order("package_id DESC")
	if activeOnly {
		qb = qb.Where("is_active = ?", true)
	}
	var rows []models.Package
	if err := qb.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// FindByID loads a single package row.
func (r *Repository) FindByID(ctx context.Context, id int64) (*models.Package, error) {
	var pkg models.Package
	if err := r.db.WithContext(ctx).First(&pkg, "package_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &pkg, nil
}

// Create inserts a new package row.
func (r *Repository) Create(ctx context.Context, pkg *models.Package) error {
	return r.db.WithContext(ctx).Create(pkg).Error
}

// Update saves all fields of an existing package row.
func (r *Repository) Update(ctx context.Context, pkg *models.Package) error {
	return r.db.WithContext(ctx).Save(pkg).Error
}

// Delete removes the package row only. Membership cascade is the service's
// job inside one transaction.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).
		Where("package_id = ?", id).
		Delete(&models.Package{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
