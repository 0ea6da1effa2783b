package db

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type scopeRow struct {
	ID  uint `gorm:"primaryKey"`
	Day time.Time
}

func setupScopeDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&scopeRow{}))

	for d := 1; d <= 10; d++ {
		require.NoError(t, gdb.Create(&scopeRow{Day: time.Date(2024, time.March, d, 0, 0, 0, 0, time.UTC)}).Error)
	}
	return gdb
}

func TestPaginate(t *testing.T) {
	gdb := setupScopeDB(t)

	var rows []scopeRow
	require.NoError(t, gdb.Scopes(Paginate(2, 4)).Order("id").Find(&rows).Error)
	require.Len(t, rows, 4)
	assert.Equal(t, uint(5), rows[0].ID)

	rows = nil
	require.NoError(t, gdb.Scopes(Paginate(0, 0)).Find(&rows).Error)
	assert.Len(t, rows, 10)
}

func TestDateBetween(t *testing.T) {
	gdb := setupScopeDB(t)
	from := time.Date(2024, time.March, 3, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)

	var rows []scopeRow
	require.NoError(t, gdb.Scopes(DateBetween("day", &from, &to)).Find(&rows).Error)
	assert.Len(t, rows, 3)

	rows = nil
	require.NoError(t, gdb.Scopes(DateBetween("day", nil, &to)).Find(&rows).Error)
	assert.Len(t, rows, 5)
}
