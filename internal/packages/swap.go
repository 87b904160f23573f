package packages

import (
	"context"
	"errors"

	pkgerrors "github.com/vitrum-studio/vitrum-backend/pkg/errors"
	"gorm.io/gorm"
)

// SwapMainAlternative re-anchors the package's bound component onto one of
// its alternatives. Four steps run in one transaction:
//
//  1. the edge (current → new) is removed, so the pair about to become
//     primary does not also list itself as its own alternative;
//  2. the membership row is re-pointed to the new component, carrying its
//     quantity and requiredness over unchanged;
//  3. the reverse edge (new → current) is inserted, demoting the old primary
//     to an alternative of the new one; the demotion edge always carries
//     priority 1, so swapping back restores the edge pair but not a
//     non-default priority the original edge may have had;
//  4. every other edge still sourced at the old primary is re-pointed, so
//     all siblings hang off the new primary.
//
// Any failure rolls the whole set back, leaving the package bound to the
// current component as before.
func (s *service) SwapMainAlternative(ctx context.Context, packageID, currentMainID, newMainID int64) error {
	if packageID <= 0 || currentMainID <= 0 || newMainID <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "package id, current main id, and new main id are required")
	}
	if currentMainID == newMainID {
		return pkgerrors.New(pkgerrors.CodeValidation, "current and new main components must differ")
	}

	// Looked up before any mutation: quantity/is_required stay on the row
	// being re-pointed, and a package that never used the current component
	// is an error rather than a silent no-op.
	if _, err := s.membershipRepo.Find(ctx, packageID, currentMainID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "package does not use the current main component").
				WithDetails(map[string]any{"package_id": packageID, "component_id": currentMainID})
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load membership")
	}

	if _, err := s.componentRepo.FindByID(ctx, newMainID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "new main component not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load component")
	}

	err := s.db.WithTx(ctx, func(tx *gorm.DB) error {
		alternatives := s.alternativeRepo.WithTx(tx)
		memberships := s.membershipRepo.WithTx(tx)

		if err := alternatives.RemoveEdge(ctx, currentMainID, newMainID); err != nil {
			return err
		}
		if err := memberships.Repoint(ctx, packageID, currentMainID, newMainID); err != nil {
			return err
		}
		if err := alternatives.AddEdge(ctx, newMainID, currentMainID, defaultSwapPriority); err != nil {
			return err
		}
		return alternatives.RepointSource(ctx, currentMainID, newMainID)
	})
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "swap main alternative")
	}
	return nil
}

const defaultSwapPriority = 1
