package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	_ "modernc.org/sqlite" // pure Go SQLite driver
)

type Database struct {
	bun *bun.DB
}

// NewDatabase opens or creates the vault database in dataDir.
func NewDatabase(dataDir string) (db *Database, err error) {
	sqlDB, err := sql.Open("sqlite", dataDir+"/vault.db")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// A single connection avoids SQLITE_BUSY errors on
	// concurrent writes from different request handlers.
	sqlDB.SetMaxOpenConns(1)

	bunDB := bun.NewDB(sqlDB, sqlitedialect.New())

	_, err = bunDB.NewCreateTable().
		Model((*keyModel)(nil)).
		IfNotExists().
		Exec(context.Background())
	if err != nil {
		_ = bunDB.Close()
		return nil, fmt.Errorf("creating keys table: %w", err)
	}

	return &Database{bun: bunDB}, nil
}

func (db *Database) Check(ctx context.Context) (err error) {
	return db.bun.PingContext(ctx)
}

func (db *Database) Close() (err error) {
	return db.bun.Close()
}
