package testutil

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"tunahub/database"
)

// NewDB returns a migrated, private in-memory SQLite database that is
// closed when the test ends.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := database.OpenSQLite(path, nil)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		_ = database.Close(db)
	})
	return db
}
