// Package mock provides in-memory test doubles for the integration suite.
package mock

import (
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/spendwise/backend/internal/integration/persistence/model"
)

var dbOnce sync.Once
var db *Db

// Db wraps a shared in-memory SQLite connection migrated with every model.
type Db struct {
	DbConn *gorm.DB
	models []any
}

// NewDb returns the shared test database, opening and migrating it on first use.
func NewDb() *Db {
	dbOnce.Do(func() {
		db = open()
	})
	return db
}

func open() *Db {
	conn, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to open test database: " + err.Error())
	}

	sqlDB, err := conn.DB()
	if err != nil {
		panic("failed to get sql.DB: " + err.Error())
	}
	sqlDB.SetMaxOpenConns(1)

	newDb := &Db{
		DbConn: conn,
		models: []any{
			&model.UserModel{},
			&model.RefreshTokenModel{},
			&model.ExpenseModel{},
			&model.LedgerEntryModel{},
			&model.BudgetModel{},
			&model.AuditLogModel{},
			&model.NotificationModel{},
		},
	}

	if err := conn.AutoMigrate(newDb.models...); err != nil {
		panic("failed to migrate test database: " + err.Error())
	}

	return newDb
}

// Reset deletes every row so scenarios start from a clean database.
func (d *Db) Reset() error {
	// Child tables first so foreign keys never dangle mid-reset
	for i := len(d.models) - 1; i >= 0; i-- {
		err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(d.models[i]).Error
		if err != nil {
			return fmt.Errorf("failed to reset table for model %T: %w", d.models[i], err)
		}
	}
	return nil
}
