package persist

import (
	"context"
	"embed"
	"fmt"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var ledgerSchema embed.FS

// RunMigrations brings the ledger schema up to date and returns the
// resulting goose version.
func RunMigrations(ctx context.Context, db *DB) (int64, error) {
	goose.SetLogger(goose.NopLogger())
	goose.SetBaseFS(ledgerSchema)
	if err := goose.SetDialect("postgres"); err != nil {
		return 0, fmt.Errorf("set dialect: %w", err)
	}

	sqlDB := stdlib.OpenDBFromPool(db.Pool)
	defer sqlDB.Close()

	if err := goose.UpContext(ctx, sqlDB, "migrations"); err != nil {
		return 0, fmt.Errorf("migrate ledger schema: %w", err)
	}
	version, err := goose.GetDBVersionContext(ctx, sqlDB)
	if err != nil {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	db.log.Info("ledger schema ready", zap.Int64("version", version))
	return version, nil
}
