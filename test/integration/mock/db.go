package mock

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbOnce sync.Once
var db *Db

// Db wraps a shared in-memory SQLite connection used by the feature suite.
type Db struct {
	DbConn *gorm.DB
	models []any
}

// NewDb opens the shared in-memory database and migrates the given models.
// The connection is a singleton so every scenario sees the same schema.
func NewDb(models []any) *Db {
	if db == nil {
		dbOnce.Do(func() {
			db = open(models)
		})
	}
	return db
}

func open(models []any) *Db {
	dbSQL, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}

	// A single connection keeps the shared-memory database alive.
	dbSQL.SetMaxOpenConns(1)

	dbConn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect to database: " + err.Error())
	}

	if err := dbConn.AutoMigrate(models...); err != nil {
		panic("failed to migrate test database: " + err.Error())
	}

	return &Db{DbConn: dbConn, models: models}
}

// Reset deletes every row from every migrated table. Tables are truncated in
// reverse migration order so children go before their parents.
func (d *Db) Reset() error {
	for i := len(d.models) - 1; i >= 0; i-- {
		model := d.models[i]
		err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(model).Error
		if err != nil {
			return fmt.Errorf("failed to reset table for model %T: %w", model, err)
		}
	}
	return nil
}
