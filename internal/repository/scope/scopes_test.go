package scope

import (
	"testing"

	"dungeon-master-be/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	require.NoError(t, err)
	return db
}

func TestOrderByCreatedAsc(t *testing.T) {
	var items []model.InventoryItem
	tx := newDryRunDB(t).Scopes(OrderByCreatedAsc).Find(&items)

	require.NoError(t, tx.Error)
	assert.Contains(t, tx.Statement.SQL.String(), "ORDER BY created_at ASC")
}

func TestOrderByCreatedDesc(t *testing.T) {
	var characters []model.Character
	tx := newDryRunDB(t).Scopes(OrderByCreatedDesc).Find(&characters)

	require.NoError(t, tx.Error)
	assert.Contains(t, tx.Statement.SQL.String(), "ORDER BY created_at DESC")
}

func TestWithSoftDeleteIncludesDeletedRows(t *testing.T) {
	var users []model.User

	scoped := newDryRunDB(t).Find(&users)
	require.NoError(t, scoped.Error)
	assert.Contains(t, scoped.Statement.SQL.String(), "deleted_at", "default query filters soft-deleted users")

	unscoped := newDryRunDB(t).Scopes(WithSoftDelete).Find(&users)
	require.NoError(t, unscoped.Error)
	assert.NotContains(t, unscoped.Statement.SQL.String(), "deleted_at")
}
