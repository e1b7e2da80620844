package db

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"

	"github.com/ryotarofr/dx-ax-container/pkg/db/migrations"
)

// Migrate applies all pending migrations.
func Migrate(ctx context.Context, db *bun.DB) error {
	migrator := migrate.NewMigrator(db, migrations.Migrations)

	if err := migrator.Init(ctx); err != nil {
		return fmt.Errorf("failed to init migrations: %w", err)
	}

	group, err := migrator.Migrate(ctx)
	if err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	if group.ID == 0 {
		fmt.Println("Database is up to date")
		return nil
	}

	fmt.Printf("Migrated to %s\n", group)
	return nil
}
