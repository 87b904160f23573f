package packages

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"github.com/vitrum-studio/vitrum-backend/internal/components"
	"github.com/vitrum-studio/vitrum-backend/pkg/db"
	pkgerrors "github.com/vitrum-studio/vitrum-backend/pkg/errors"
	"gorm.io/gorm"
)

// ServiceParams groups dependencies for the registry service.
type ServiceParams struct {
	DB              *db.Client
	PackageRepo     *Repository
	MembershipRepo  *MembershipRepository
	ComponentRepo   *components.Repository
	AlternativeRepo *components.AlternativeRepository
}

// Service exposes the package registry, membership resolution, and the swap
// operation.
type Service interface {
	ListPackages(ctx context.Context, activeOnly, withComponents bool) ([]PackageDTO, error)
	GetPackage(ctx context.Context, id int64) (*PackageDTO, error)
	CreatePackage(ctx context.Context, input PackageInput) (int64, error)
	UpdatePackage(ctx context.Context, id int64, input PackageInput) error
	DeletePackage(ctx context.Context, id int64) error

	GetComponents(ctx context.Context, packageID int64) ([]PackageComponentDTO, error)
	UpsertMembership(ctx context.Context, input MembershipInput) error
	RemoveMembership(ctx context.Context, membershipID int64) error

	SwapMainAlternative(ctx context.Context, packageID, currentMainID, newMainID int64) error
}

type service struct {
	db              *db.Client
	packageRepo     *Repository
	membershipRepo  *MembershipRepository
	componentRepo   *components.Repository
	alternativeRepo *components.AlternativeRepository
}

// NewService builds a registry service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.DB == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "db client is required")
	}
	if params.PackageRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "package repo is required")
	}
	if params.MembershipRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "membership repo is required")
	}
	if params.ComponentRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "component repo is required")
	}
	if params.AlternativeRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "alternative repo is required")
	}
	return &service{
		db:              params.DB,
		packageRepo:     params.PackageRepo,
		membershipRepo:  params.MembershipRepo,
		componentRepo:   params.ComponentRepo,
		alternativeRepo: params.AlternativeRepo,
	}, nil
}

// ListPackages returns registry rows newest-first. With withComponents the
// resolved membership structure is attached to every row; without it the
// field is absent from the payload entirely.
func (s *service) ListPackages(ctx context.Context, activeOnly, withComponents bool) ([]PackageDTO, error) {
	rows, err := s.packageRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list packages")
	}

	out := make([]PackageDTO, 0, len(rows))
	for _, row := range rows {
		dto := toPackageDTO(row)
		if withComponents {
			members, err := s.GetComponents(ctx, row.PackageID)
			if err != nil {
				return nil, err
			}
			dto.Components = &members
		}
		out = append(out, dto)
	}
	return out, nil
}

// GetPackage loads one registry row without the membership structure.
func (s *service) GetPackage(ctx context.Context, id int64) (*PackageDTO, error) {
	if id <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "package id is required")
	}
	row, err := s.packageRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "package not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load package")
	}
	dto := toPackageDTO(*row)
	return &dto, nil
}

// CreatePackage validates and inserts a registry row, returning its id.
func (s *service) CreatePackage(ctx context.Context, input PackageInput) (int64, error) {
	if err := validatePackageInput(input); err != nil {
		return 0, err
	}
	row := input.toModel()
	if err := s.packageRepo.Create(ctx, &row); err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create package")
	}
	return row.PackageID, nil
}

// UpdatePackage overwrites the mutable fields of an existing row.
func (s *service) UpdatePackage(ctx context.Context, id int64, input PackageInput) error {
	if id <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "package id is required")
	}
	if err := validatePackageInput(input); err != nil {
		return err
	}

	existing, err := s.packageRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "package not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load package")
	}

	updated := input.toModel()
	updated.PackageID = existing.PackageID
	updated.CreatedAt = existing.CreatedAt
	if err := s.packageRepo.Update(ctx, &updated); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update package")
	}
	return nil
}

// DeletePackage removes the package and its membership rows in one
// transaction; either both steps land or neither does.
func (s *service) DeletePackage(ctx context.Context, id int64) error {
	if id <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "package id is required")
	}

	if _, err := s.packageRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "package not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load package")
	}

	err := s.db.WithTx(ctx, func(tx *gorm.DB) error {
		if err := s.membershipRepo.WithTx(tx).DeleteForPackage(ctx, id); err != nil {
			return err
		}
		return s.packageRepo.WithTx(tx).Delete(ctx, id)
	})
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete package")
	}
	return nil
}

// GetComponents resolves the package's membership rows ordered by component
// type then name, each carrying its active alternatives ordered by priority.
func (s *service) GetComponents(ctx context.Context, packageID int64) ([]PackageComponentDTO, error) {
	if packageID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "package id is required")
	}

	records, err := s.membershipRepo.ListForPackage(ctx, packageID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list package components")
	}

	out := make([]PackageComponentDTO, 0, len(records))
	for _, rec := range records {
		alternatives, err := s.alternativeRepo.Resolve(ctx, rec.ComponentID)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "resolve alternatives")
		}
		out = append(out, PackageComponentDTO{
			MembershipID: rec.ID,
			PackageID:    rec.PackageID,
			Quantity:     rec.Quantity,
			IsRequired:   rec.IsRequired,
			Component:    components.ToComponentDTO(rec.component()),
			Alternatives: components.ToComponentDTOs(alternatives),
		})
	}
	return out, nil
}

// UpsertMembership binds a component into a package, updating quantity and
// requiredness in place when the pair already exists.
func (s *service) UpsertMembership(ctx context.Context, input MembershipInput) error {
	if input.PackageID <= 0 || input.ComponentID <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "package id and component id are required")
	}
	quantity := intOr(input.Quantity, 1)
	if quantity <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "quantity must be positive")
	}

	if _, err := s.packageRepo.FindByID(ctx, input.PackageID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "package not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load package")
	}
	if _, err := s.componentRepo.FindByID(ctx, input.ComponentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "component not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load component")
	}

	err := s.membershipRepo.Upsert(ctx, input.PackageID, input.ComponentID, quantity, boolOr(input.IsRequired, true))
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "upsert membership")
	}
	return nil
}

// RemoveMembership drops one membership row; nothing else is touched.
func (s *service) RemoveMembership(ctx context.Context, membershipID int64) error {
	if membershipID <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "membership id is required")
	}
	if err := s.membershipRepo.DeleteByID(ctx, membershipID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "membership not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "remove membership")
	}
	return nil
}

func validatePackageInput(input PackageInput) error {
	if input.Name == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "package name is required")
	}
	monetary := map[string]float64{
		"glass_price_per_sqm": input.GlassPricePerSqm,
		"hardware_price":      floatOr(input.HardwarePrice, 0),
		"markup_percent":      floatOr(input.MarkupPercent, 20),
		"installation_price":  floatOr(input.InstallationPrice, 3000),
	}
	for field, value := range monetary {
		if decimal.NewFromFloat(value).IsNegative() {
			return pkgerrors.New(pkgerrors.CodeValidation, "monetary fields must not be negative").
				WithDetails(map[string]any{"field": field})
		}
	}
	return nil
}
