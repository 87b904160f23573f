package packages

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/vitrum-studio/vitrum-backend/internal/components"
	"github.com/vitrum-studio/vitrum-backend/pkg/db/models"
	pkgerrors "github.com/vitrum-studio/vitrum-backend/pkg/errors"
)

// swapFixture is one package bound to a primary component that has two
// alternatives: the promotion candidate and a sibling.
type swapFixture struct {
	pkg     *models.Package
	current *models.Component
	next    *models.Component
	sibling *models.Component
}

func newSwapFixture(t *testing.T, svc Service, conn *gorm.DB) swapFixture {
	t.Helper()
	ctx := context.Background()

	f := swapFixture{
		pkg:     newPackage(t, conn, "Душевая кабина", true),
		current: newCatalogComponent(t, conn, "Ручка хром", "handle", true),
		next:    newCatalogComponent(t, conn, "Ручка бронза", "handle", true),
		sibling: newCatalogComponent(t, conn, "Ручка сатин", "handle", true),
	}

	quantity := 2
	notRequired := false
	require.NoError(t, svc.UpsertMembership(ctx, MembershipInput{
		PackageID:   f.pkg.PackageID,
		ComponentID: f.current.ComponentID,
		Quantity:    &quantity,
		IsRequired:  &notRequired,
	}))

	altRepo := components.NewAlternativeRepository(conn)
	require.NoError(t, altRepo.AddEdge(ctx, f.current.ComponentID, f.next.ComponentID, 1))
	require.NoError(t, altRepo.AddEdge(ctx, f.current.ComponentID, f.sibling.ComponentID, 2))
	return f
}

func TestSwapMainAlternative(t *testing.T) {
	svc, conn := newRegistryService(t)
	ctx := context.Background()
	f := newSwapFixture(t, svc, conn)

	require.NoError(t, svc.SwapMainAlternative(ctx, f.pkg.PackageID, f.current.ComponentID, f.next.ComponentID))

	memberships := NewMembershipRepository(conn)
	altRepo := components.NewAlternativeRepository(conn)

	// the membership now points at the promoted component, with quantity and
	// requiredness carried over
	row, err := memberships.Find(ctx, f.pkg.PackageID, f.next.ComponentID)
	require.NoError(t, err)
	assert.Equal(t, 2, row.Quantity)
	assert.False(t, row.IsRequired)
	_, err = memberships.Find(ctx, f.pkg.PackageID, f.current.ComponentID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// the old primary and the sibling both hang off the new primary
	edges, err := altRepo.ListEdgesFrom(ctx, f.next.ComponentID)
	require.NoError(t, err)
	require.Len(t, edges, 2)
	targets := map[int64]bool{}
	for _, edge := range edges {
		targets[edge.AlternativeComponentID] = true
	}
	assert.True(t, targets[f.current.ComponentID])
	assert.True(t, targets[f.sibling.ComponentID])

	// nothing is sourced at the old primary anymore
	edges, err = altRepo.ListEdgesFrom(ctx, f.current.ComponentID)
	require.NoError(t, err)
	assert.Empty(t, edges)

	// the new primary never lists itself
	exists, err := altRepo.EdgeExists(ctx, f.next.ComponentID, f.next.ComponentID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestSwapMainAlternative_RoundTripRestoresBinding(t *testing.T) {
	svc, conn := newRegistryService(t)
	ctx := context.Background()
	f := newSwapFixture(t, svc, conn)

	require.NoError(t, svc.SwapMainAlternative(ctx, f.pkg.PackageID, f.current.ComponentID, f.next.ComponentID))
	require.NoError(t, svc.SwapMainAlternative(ctx, f.pkg.PackageID, f.next.ComponentID, f.current.ComponentID))

	memberships := NewMembershipRepository(conn)
	row, err := memberships.Find(ctx, f.pkg.PackageID, f.current.ComponentID)
	require.NoError(t, err)
	assert.Equal(t, 2, row.Quantity)
	assert.False(t, row.IsRequired)

	altRepo := components.NewAlternativeRepository(conn)
	edges, err := altRepo.ListEdgesFrom(ctx, f.current.ComponentID)
	require.NoError(t, err)
	require.Len(t, edges, 2)

	// the demotion edge is always written at priority 1, while re-pointed
	// sibling edges keep theirs
	priorities := map[int64]int{}
	for _, edge := range edges {
		priorities[edge.AlternativeComponentID] = edge.Priority
	}
	assert.Equal(t, 1, priorities[f.next.ComponentID])
	assert.Equal(t, 2, priorities[f.sibling.ComponentID])

	edges, err = altRepo.ListEdgesFrom(ctx, f.next.ComponentID)
	require.NoError(t, err)
	assert.Empty(t, edges)
}

func TestSwapMainAlternative_MissingMembership(t *testing.T) {
	svc, conn := newRegistryService(t)
	ctx := context.Background()

	pkg := newPackage(t, conn, "Пустой пакет", true)
	current := newCatalogComponent(t, conn, "Ручка", "handle", true)
	next := newCatalogComponent(t, conn, "Ручка запасная", "handle", true)

	err := svc.SwapMainAlternative(ctx, pkg.PackageID, current.ComponentID, next.ComponentID)
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}

func TestSwapMainAlternative_MissingNewComponent(t *testing.T) {
	svc, conn := newRegistryService(t)
	ctx := context.Background()

	pkg := newPackage(t, conn, "Пакет", true)
	current := newCatalogComponent(t, conn, "Ручка", "handle", true)
	require.NoError(t, svc.UpsertMembership(ctx, MembershipInput{
		PackageID:   pkg.PackageID,
		ComponentID: current.ComponentID,
	}))

	err := svc.SwapMainAlternative(ctx, pkg.PackageID, current.ComponentID, current.ComponentID+500)
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}

func TestSwapMainAlternative_RejectsSameComponent(t *testing.T) {
	svc, _ := newRegistryService(t)

	err := svc.SwapMainAlternative(context.Background(), 1, 7, 7)
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestSwapMainAlternative_WorksWithoutPriorEdge(t *testing.T) {
	// promoting a component that was never recorded as an alternative still
	// re-points the membership and demotes the old primary
	svc, conn := newRegistryService(t)
	ctx := context.Background()

	pkg := newPackage(t, conn, "Пакет", true)
	current := newCatalogComponent(t, conn, "Ручка", "handle", true)
	next := newCatalogComponent(t, conn, "Ручка новая", "handle", true)
	require.NoError(t, svc.UpsertMembership(ctx, MembershipInput{
		PackageID:   pkg.PackageID,
		ComponentID: current.ComponentID,
	}))

	require.NoError(t, svc.SwapMainAlternative(ctx, pkg.PackageID, current.ComponentID, next.ComponentID))

	altRepo := components.NewAlternativeRepository(conn)
	exists, err := altRepo.EdgeExists(ctx, next.ComponentID, current.ComponentID)
	require.NoError(t, err)
	assert.True(t, exists)

	memberships := NewMembershipRepository(conn)
	row, err := memberships.Find(ctx, pkg.PackageID, next.ComponentID)
	require.NoError(t, err)
	assert.Equal(t, 1, row.Quantity)
}
