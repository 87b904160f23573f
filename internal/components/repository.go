package components

import (
	"context"

	"github.com/vitrum-studio/vitrum-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository provides persistence for the component catalog.
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

// List returns catalog rows ordered by name, optionally active rows only.
func (r *Repository) List(ctx context.Context, activeOnly bool) ([]models.Component, error) {
	qb := r.db.WithContext(ctx).Order("component_name ASC")
	if activeOnly {
		qb = qb.Where("is_active = ?", true)
	}
	var rows []models.Component
	if err := qb.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// FindByID loads a single component row.
func (r *Repository) FindByID(ctx context.Context, id int64) (*models.Component, error) {
	var component models.Component
	if err := r.db.WithContext(ctx).First(&component, "component_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &component, nil
}

// Create inserts a new component row.
func (r *Repository) Create(ctx context.Context, component *models.Component) error {
	return r.db.WithContext(ctx).Create(component).Error
}

// Update saves all fields of an existing component row.
func (r *Repository) Update(ctx context.Context, component *models.Component) error {
	return r.db.WithContext(ctx).Save(component).Error
}

// Deactivate soft-deletes the component. Existing membership rows and
// alternative edges keep referencing it.
func (r *Repository) Deactivate(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).
		Model(&models.Component{}).
		Where("component_id = ?", id).
		Update("is_active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes the component row. Callers must check references first.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).
		Where("component_id = ?", id).
		Delete(&models.Component{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountReferences counts membership rows and alternative edges that point at
// the component, in either direction for edges.
func (r *Repository) CountReferences(ctx context.Context, id int64) (int64, error) {
	var memberships int64
	if err := r.db.WithContext(ctx).
		Model(&models.PackageComponent{}).
		Where("component_id = ?", id).
		Count(&memberships).Error; err != nil {
		return 0, err
	}

	var edges int64
	if err := r.db.WithContext(ctx).
		Model(&models.ComponentAlternative{}).
		Where("component_id = ? OR alternative_component_id = ?", id, id).
		Count(&edges).Error; err != nil {
		return 0, err
	}

	return memberships + edges, nil
}
