package testutils

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/Kostiantyn78/ImageHub/internal/config"
	"github.com/Kostiantyn78/ImageHub/internal/db"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

var testDBSeq int64

// SetupDB opens a unique in-memory SQLite database for one test and
// migrates the schema. It also installs a minimal test configuration so
// token helpers work without a config file.
func SetupDB(t *testing.T) *gorm.DB {
	t.Helper()

	config.StoreForTest(config.Config{
		JWT: config.JWTConfig{
			Secret:           "test_secret",
			Algorithm:        "HS256",
			AccessTTLMinutes: 15,
			RefreshTTLHours:  168,
			EmailTTLHours:    24,
		},
	})

	seq := atomic.AddInt64(&testDBSeq, 1)
	dsn := fmt.Sprintf("file:imagehub_%d?mode=memory&cache=shared", seq)
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	return gdb
}
