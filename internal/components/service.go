package components

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	pkgerrors "github.com/vitrum-studio/vitrum-backend/pkg/errors"
	"gorm.io/gorm"
)

const (
	defaultUnit     = "шт"
	defaultPriority = 1
)

// ServiceParams groups dependencies for the catalog service.
type ServiceParams struct {
	ComponentRepo   *Repository
	AlternativeRepo *AlternativeRepository
}

// Service exposes the component catalog and the alternative graph.
type Service interface {
	ListComponents(ctx context.Context, activeOnly bool) ([]ComponentDTO, error)
	CreateComponent(ctx context.Context, input ComponentInput) (int64, error)
	UpdateComponent(ctx context.Context, id int64, input ComponentInput) error
	DeactivateComponent(ctx context.Context, id int64) error
	DeleteComponent(ctx context.Context, id int64) error
	BulkImport(ctx context.Context, items []ComponentInput) (BulkImportResult, error)

	AddAlternative(ctx context.Context, componentID, alternativeID int64, priority *int) error
	RemoveAlternative(ctx context.Context, componentID, alternativeID int64) error
	ResolveAlternatives(ctx context.Context, componentID int64) ([]ComponentDTO, error)
}

type service struct {
	componentRepo   *Repository
	alternativeRepo *AlternativeRepository
}

// NewService builds a catalog service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.ComponentRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "component repo is required")
	}
	if params.AlternativeRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "alternative repo is required")
	}
	return &service{
		componentRepo:   params.ComponentRepo,
		alternativeRepo: params.AlternativeRepo,
	}, nil
}

// ListComponents returns catalog rows, filtered to active ones on request.
func (s *service) ListComponents(ctx context.Context, activeOnly bool) ([]ComponentDTO, error) {
	rows, err := s.componentRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list components")
	}
	return ToComponentDTOs(rows), nil
}

// CreateComponent validates and inserts a catalog row, returning its id.
func (s *service) CreateComponent(ctx context.Context, input ComponentInput) (int64, error) {
	if err := validateComponentInput(input); err != nil {
		return 0, err
	}
	row := input.toModel()
	if err := s.componentRepo.Create(ctx, &row); err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create component")
	}
	return row.ComponentID, nil
}

// UpdateComponent overwrites the mutable fields of an existing row.
func (s *service) UpdateComponent(ctx context.Context, id int64, input ComponentInput) error {
	if id <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "component id is required")
	}
	if err := validateComponentInput(input); err != nil {
		return err
	}

	existing, err := s.componentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "component not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load component")
	}

	updated := input.toModel()
	updated.ComponentID = existing.ComponentID
	updated.CreatedAt = existing.CreatedAt
	if err := s.componentRepo.Update(ctx, &updated); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update component")
	}
	return nil
}

// DeactivateComponent soft-deletes a row; references stay intact.
func (s *service) DeactivateComponent(ctx context.Context, id int64) error {
	if id <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "component id is required")
	}
	if err := s.componentRepo.Deactivate(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "component not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "deactivate component")
	}
	return nil
}

// DeleteComponent hard-deletes a row, allowed only while nothing references
// it. Referenced components must be deactivated instead.
func (s *service) DeleteComponent(ctx context.Context, id int64) error {
	if id <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "component id is required")
	}

	refs, err := s.componentRepo.CountReferences(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "count component references")
	}
	if refs > 0 {
		return pkgerrors.New(pkgerrors.CodeConflict, "component is referenced by packages or alternatives; deactivate it instead").
			WithDetails(map[string]any{"references": refs})
	}

	if err := s.componentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "component not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete component")
	}
	return nil
}

// BulkImport inserts items independently and reports per-item failures, so a
// bad row never hides the progress made before it.
func (s *service) BulkImport(ctx context.Context, items []ComponentInput) (BulkImportResult, error) {
	if len(items) == 0 {
		return BulkImportResult{}, pkgerrors.New(pkgerrors.CodeValidation, "no components to import")
	}

	result := BulkImportResult{}
	for i, item := range items {
		if err := validateComponentInput(item); err != nil {
			result.Failed = append(result.Failed, BulkImportFailure{Index: i, Error: err.Error()})
			continue
		}
		row := item.toModel()
		if err := s.componentRepo.Create(ctx, &row); err != nil {
			result.Failed = append(result.Failed, BulkImportFailure{Index: i, Error: fmt.Sprintf("insert failed: %v", err)})
			continue
		}
		result.Imported++
	}
	return result, nil
}

// AddAlternative records that alternativeID can substitute componentID.
// Repeated calls with the same ordered pair are idempotent.
func (s *service) AddAlternative(ctx context.Context, componentID, alternativeID int64, priority *int) error {
	if componentID <= 0 || alternativeID <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "component id and alternative id are required")
	}
	if componentID == alternativeID {
		return pkgerrors.New(pkgerrors.CodeValidation, "a component cannot be its own alternative")
	}

	for _, id := range []int64{componentID, alternativeID} {
		if _, err := s.componentRepo.FindByID(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "component not found").
					WithDetails(map[string]any{"component_id": id})
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load component")
		}
	}

	p := defaultPriority
	if priority != nil {
		if *priority < 1 {
			return pkgerrors.New(pkgerrors.CodeValidation, "priority must be positive")
		}
		p = *priority
	}

	if err := s.alternativeRepo.AddEdge(ctx, componentID, alternativeID, p); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "add alternative edge")
	}
	return nil
}

// RemoveAlternative deletes the exact ordered pair, tolerating absence.
func (s *service) RemoveAlternative(ctx context.Context, componentID, alternativeID int64) error {
	if componentID <= 0 || alternativeID <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "component id and alternative id are required")
	}
	if err := s.alternativeRepo.RemoveEdge(ctx, componentID, alternativeID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "remove alternative edge")
	}
	return nil
}

// ResolveAlternatives lists the active substitutes for a component ordered by
// ascending priority.
func (s *service) ResolveAlternatives(ctx context.Context, componentID int64) ([]ComponentDTO, error) {
	if componentID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "component id is required")
	}
	rows, err := s.alternativeRepo.Resolve(ctx, componentID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "resolve alternatives")
	}
	return ToComponentDTOs(rows), nil
}

func validateComponentInput(input ComponentInput) error {
	if input.Name == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "component name is required")
	}
	if input.Type == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "component type is required")
	}
	if decimal.NewFromFloat(input.PricePerUnit).IsNegative() {
		return pkgerrors.New(pkgerrors.CodeValidation, "price per unit must not be negative")
	}
	return nil
}
