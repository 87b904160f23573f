package components

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/vitrum-studio/vitrum-backend/pkg/db/models"
)

func setupCatalogTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	glassComponents := `
CREATE TABLE IF NOT EXISTS glass_components (
  component_id INTEGER PRIMARY KEY AUTOINCREMENT,
  component_name TEXT NOT NULL,
  component_type TEXT NOT NULL,
  article TEXT,
  characteristics TEXT,
  unit TEXT NOT NULL DEFAULT 'шт',
  price_per_unit NUMERIC NOT NULL DEFAULT 0,
  is_active INTEGER NOT NULL DEFAULT 1,
  created_at DATETIME,
  updated_at DATETIME
);`
	packageComponents := `
CREATE TABLE IF NOT EXISTS package_components (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  package_id INTEGER NOT NULL,
  component_id INTEGER NOT NULL,
  quantity INTEGER NOT NULL DEFAULT 1,
  is_required INTEGER NOT NULL DEFAULT 1
);`
	componentAlternatives := `
CREATE TABLE IF NOT EXISTS component_alternatives (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  component_id INTEGER NOT NULL,
  alternative_component_id INTEGER NOT NULL,
  priority INTEGER NOT NULL DEFAULT 1
);`
	require.NoError(t, db.Exec(glassComponents).Error)
	require.NoError(t, db.Exec(packageComponents).Error)
	require.NoError(t, db.Exec(componentAlternatives).Error)

	// the shared in-memory DB outlives a single test
	require.NoError(t, db.Exec("DELETE FROM glass_components").Error)
	require.NoError(t, db.Exec("DELETE FROM package_components").Error)
	require.NoError(t, db.Exec("DELETE FROM component_alternatives").Error)
	return db
}

func newComponent(t *testing.T, db *gorm.DB, name, componentType string, active bool) *models.Component {
	t.Helper()

	component := &models.Component{
		Name:         name,
		Type:         componentType,
		Unit:         "шт",
		PricePerUnit: decimal.NewFromInt(100),
		IsActive:     active,
	}
	require.NoError(t, db.Create(component).Error)
	return component
}

func TestRepositoryList_OrdersByName(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	newComponent(t, db, "Ручка хром", "handle", true)
	newComponent(t, db, "Петля", "hinge", true)
	newComponent(t, db, "Профиль", "profile", false)

	rows, err := repo.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Петля", rows[0].Name)
	assert.Equal(t, "Профиль", rows[1].Name)
	assert.Equal(t, "Ручка хром", rows[2].Name)
}

func TestRepositoryList_ActiveOnlySkipsDeactivated(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	newComponent(t, db, "Активная петля", "hinge", true)
	newComponent(t, db, "Снятая с продажи петля", "hinge", false)

	rows, err := repo.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Активная петля", rows[0].Name)
}

func TestRepositoryDeactivate(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	component := newComponent(t, db, "Уплотнитель", "seal", true)

	require.NoError(t, repo.Deactivate(ctx, component.ComponentID))

	reloaded, err := repo.FindByID(ctx, component.ComponentID)
	require.NoError(t, err)
	assert.False(t, reloaded.IsActive)

	err = repo.Deactivate(ctx, component.ComponentID+1000)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepositoryDelete_MissingRow(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewRepository(db)

	err := repo.Delete(context.Background(), 4242)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepositoryCountReferences(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	target := newComponent(t, db, "Петля основная", "hinge", true)
	other := newComponent(t, db, "Петля запасная", "hinge", true)

	refs, err := repo.CountReferences(ctx, target.ComponentID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), refs)

	require.NoError(t, db.Create(&models.PackageComponent{
		PackageID:   1,
		ComponentID: target.ComponentID,
		Quantity:    2,
		IsRequired:  true,
	}).Error)
	require.NoError(t, db.Create(&models.ComponentAlternative{
		ComponentID:            target.ComponentID,
		AlternativeComponentID: other.ComponentID,
		Priority:               1,
	}).Error)
	require.NoError(t, db.Create(&models.ComponentAlternative{
		ComponentID:            other.ComponentID,
		AlternativeComponentID: target.ComponentID,
		Priority:               1,
	}).Error)

	refs, err = repo.CountReferences(ctx, target.ComponentID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), refs)
}

func TestAlternativeRepositoryAddEdge_Idempotent(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewAlternativeRepository(db)
	ctx := context.Background()

	a := newComponent(t, db, "Ручка А", "handle", true)
	b := newComponent(t, db, "Ручка Б", "handle", true)

	require.NoError(t, repo.AddEdge(ctx, a.ComponentID, b.ComponentID, 1))
	require.NoError(t, repo.AddEdge(ctx, a.ComponentID, b.ComponentID, 1))

	var count int64
	require.NoError(t, db.Model(&models.ComponentAlternative{}).
		Where("component_id = ?", a.ComponentID).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestAlternativeRepositoryResolve_OrdersByPriorityAndSkipsInactive(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewAlternativeRepository(db)
	ctx := context.Background()

	main := newComponent(t, db, "Профиль основной", "profile", true)
	second := newComponent(t, db, "Профиль матовый", "profile", true)
	first := newComponent(t, db, "Профиль глянцевый", "profile", true)
	retired := newComponent(t, db, "Профиль устаревший", "profile", false)

	require.NoError(t, repo.AddEdge(ctx, main.ComponentID, second.ComponentID, 2))
	require.NoError(t, repo.AddEdge(ctx, main.ComponentID, first.ComponentID, 1))
	require.NoError(t, repo.AddEdge(ctx, main.ComponentID, retired.ComponentID, 1))

	rows, err := repo.Resolve(ctx, main.ComponentID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, first.ComponentID, rows[0].ComponentID)
	assert.Equal(t, second.ComponentID, rows[1].ComponentID)
}

func TestAlternativeRepositoryRemoveEdge_AbsentPairIsNoop(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewAlternativeRepository(db)

	require.NoError(t, repo.RemoveEdge(context.Background(), 11, 12))
}

func TestAlternativeRepositoryRepointSource(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewAlternativeRepository(db)
	ctx := context.Background()

	old := newComponent(t, db, "Старый основной", "hinge", true)
	next := newComponent(t, db, "Новый основной", "hinge", true)
	sibling := newComponent(t, db, "Запасной", "hinge", true)

	require.NoError(t, repo.AddEdge(ctx, old.ComponentID, sibling.ComponentID, 3))

	require.NoError(t, repo.RepointSource(ctx, old.ComponentID, next.ComponentID))

	edges, err := repo.ListEdgesFrom(ctx, old.ComponentID)
	require.NoError(t, err)
	assert.Empty(t, edges)

	edges, err = repo.ListEdgesFrom(ctx, next.ComponentID)
	require.NoError(t, err)
	require.Len(t, edges, 1)
	assert.Equal(t, sibling.ComponentID, edges[0].AlternativeComponentID)
	assert.Equal(t, 3, edges[0].Priority)
}
