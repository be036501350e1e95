package postgres

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const sqliteDSNOptions = "?_busy_timeout=5000&_foreign_keys=on"

// NewSQLite opens the SQLite database configured under database.sqlitePath.
func NewSQLite(params Params) (*gorm.DB, error) {
	path := params.Config.Database.SQLitePath
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrap(err, "failed to create SQLite directory")
		}
	}

	db, err := OpenSQLite(path)
	if err != nil {
		return nil, err
	}

	return attach(params, db, "SQLite")
}

// OpenSQLite opens a SQLite database with a single connection. SQLite allows one writer
// at a time, so transactions queue on the pool instead of failing with SQLITE_BUSY.
func OpenSQLite(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path+sqliteDSNOptions), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open SQLite database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get SQLite sql.DB")
	}
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}
