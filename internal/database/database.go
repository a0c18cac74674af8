package database

import (
	"errors"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	sqlite "modernc.org/sqlite"
)

// Extended result codes from the sqlite engine.
const (
	sqliteConstraintPrimaryKey = 1555
	sqliteConstraintUnique     = 2067
)

// sqliteDialector adds error translation for the cgo-free driver. The stock
// sqlite translator only recognizes the mattn error type, so constraint
// violations from modernc would otherwise pass through untranslated.
type sqliteDialector struct {
	gorm.Dialector
}

func (d sqliteDialector) Translate(err error) error {
	var serr *sqlite.Error
	if errors.As(err, &serr) {
		switch serr.Code() {
		case sqliteConstraintPrimaryKey, sqliteConstraintUnique:
			return gorm.ErrDuplicatedKey
		}
	}
	if translator, ok := d.Dialector.(gorm.ErrorTranslator); ok {
		return translator.Translate(err)
	}
	return err
}

func (d sqliteDialector) SavePoint(tx *gorm.DB, name string) error {
	return d.Dialector.(gorm.SavePointerDialectorInterface).SavePoint(tx, name)
}

func (d sqliteDialector) RollbackTo(tx *gorm.DB, name string) error {
	return d.Dialector.(gorm.SavePointerDialectorInterface).RollbackTo(tx, name)
}

// Connect opens PostgreSQL for postgres:// DSNs and sqlite (cgo-free driver)
// for anything else. TranslateError is on and the sqlite path carries its own
// translator, so unique-index conflicts surface as gorm.ErrDuplicatedKey on
// both backends.
func Connect(dsn string) (*gorm.DB, error) {
	cfg := &gorm.Config{TranslateError: true}

	var (
		db  *gorm.DB
		err error
	)
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		db, err = gorm.Open(postgres.Open(dsn), cfg)
	} else {
		db, err = gorm.Open(
			sqliteDialector{Dialector: gormsqlite.New(gormsqlite.Config{
				DriverName: "sqlite",
				DSN:        dsn,
			})},
			cfg,
		)
	}
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// Bounded pool; callers queue on exhaustion instead of failing.
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}
