package migration

import (
	"RecipeHub/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=recipehub dbname=recipehub sslmode=disable",
	}), &gorm.Config{DryRun: true, DisableAutomaticPing: true})
	require.NoError(t, err)
	return db
}

func TestPromoteAdmin(t *testing.T) {
	tx := promoteAdmin(dryRunDB(t), "  Root@Example.com ")
	require.NoError(t, tx.Error)

	sql := tx.Statement.SQL.String()
	assert.Contains(t, sql, `UPDATE "users" SET "role"=$1`)
	assert.Contains(t, sql, "email = ")
	assert.Contains(t, sql, "role <> ")
	require.NotEmpty(t, tx.Statement.Vars)
	assert.Equal(t, domain.RoleAdmin, tx.Statement.Vars[0])
	assert.Contains(t, tx.Statement.Vars, "root@example.com")
}
