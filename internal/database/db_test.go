package database_test

import (
	"testing"

	"menu-backend/internal/database"
	"menu-backend/internal/models"
	"menu-backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedIsIdempotent(t *testing.T) {
	db := testutil.OpenTestDB(t)

	require.NoError(t, database.Seed(db))

	var restaurant models.Restaurant
	require.NoError(t, db.First(&restaurant, "slug = ?", "padoca-veronese").Error)
	assert.Equal(t, "Padoca Veronese", restaurant.Name)

	// A second run must not duplicate the sample row.
	require.NoError(t, database.Seed(db))
	var count int64
	require.NoError(t, db.Model(&models.Restaurant{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSeedSkipsPopulatedDatabase(t *testing.T) {
	db := testutil.OpenTestDB(t)

	require.NoError(t, db.Create(&models.Restaurant{Name: "Existing", Slug: "existing"}).Error)
	require.NoError(t, database.Seed(db))

	var count int64
	require.NoError(t, db.Model(&models.Restaurant{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
