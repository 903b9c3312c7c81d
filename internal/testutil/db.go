// Package testutil builds throwaway catalog databases for tests.
package testutil

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"movie-catalog/internal/config"
	"movie-catalog/internal/database"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
)

// NewDB returns a migrated in-memory SQLite database with foreign keys on.
// A single connection keeps the in-memory database alive for the test.
func NewDB(t *testing.T) *database.Database {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)

	db, err := database.Open(sqlite.Open(dsn), config.DatabaseConfig{
		MaxOpenConns: 1,
		MaxIdleConns: 1,
		QueryTimeout: 5 * time.Second,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}

// NewLogger returns a logger that discards everything below panic level.
func NewLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}
