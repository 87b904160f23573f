package components

import (
	"context"
	"errors"

	"github.com/vitrum-studio/vitrum-backend/pkg/db/models"
	"gorm.io/gorm"
)

// AlternativeRepository persists the directed substitutability graph between
// components. An edge (A, B) reads "B can stand in for A".
type AlternativeRepository struct {
	db *gorm.DB
}

// NewAlternativeRepository builds a graph repository on the given connection.
func NewAlternativeRepository(db *gorm.DB) *AlternativeRepository {
	return &AlternativeRepository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *AlternativeRepository) WithTx(tx *gorm.DB) *AlternativeRepository {
	return &AlternativeRepository{db: tx}
}

// EdgeExists reports whether the exact ordered pair is present.
func (r *AlternativeRepository) EdgeExists(ctx context.Context, componentID, alternativeID int64) (bool, error) {
	var edge models.ComponentAlternative
	err := r.db.WithContext(ctx).
		First(&edge, "component_id = ? AND alternative_component_id = ?", componentID, alternativeID).
		Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// AddEdge inserts the ordered pair unless it already exists. Duplicate calls
// are no-ops, keeping the graph free of repeated edges.
func (r *AlternativeRepository) AddEdge(ctx context.Context, componentID, alternativeID int64, priority int) error {
	exists, err := r.EdgeExists(ctx, componentID, alternativeID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	edge := models.ComponentAlternative{
		ComponentID:            componentID,
		AlternativeComponentID: alternativeID,
		Priority:               priority,
	}
	return r.db.WithContext(ctx).Create(&edge).Error
}

// RemoveEdge deletes the exact ordered pair; absent pairs are a no-op.
func (r *AlternativeRepository) RemoveEdge(ctx context.Context, componentID, alternativeID int64) error {
	return r.db.WithContext(ctx).
		Where("component_id = ? AND alternative_component_id = ?", componentID, alternativeID).
		Delete(&models.ComponentAlternative{}).
		Error
}

// Resolve returns the active alternative components for the source component
// ordered by ascending priority, then name for stable display.
func (r *AlternativeRepository) Resolve(ctx context.Context, componentID int64) ([]models.Component, error) {
	var rows []models.Component
	err := r.db.WithContext(ctx).
		Table("component_alternatives ca").
		Select("gc.*").
		Joins("JOIN glass_components gc ON gc.component_id = ca.alternative_component_id").
		Where("ca.component_id = ?", componentID).
		Where("gc.is_active = ?", true).
		Order("ca.priority ASC").
		Order("gc.component_name ASC").
		Scan(&rows).
		Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListEdgesFrom returns every edge sourced at the component.
func (r *AlternativeRepository) ListEdgesFrom(ctx context.Context, componentID int64) ([]models.ComponentAlternative, error) {
	var rows []models.ComponentAlternative
	err := r.db.WithContext(ctx).
		Where("component_id = ?", componentID).
		Order("priority ASC").
		Find(&rows).
		Error
	return rows, err
}

// RepointSource rewrites the source of every edge hanging off `from` to `to`.
// Used by the swap operation so siblings of the old primary re-anchor on the
// new one.
func (r *AlternativeRepository) RepointSource(ctx context.Context, from, to int64) error {
	return r.db.WithContext(ctx).
		Model(&models.ComponentAlternative{}).
		Where("component_id = ?", from).
		Update("component_id", to).
		Error
}
