package migrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Print(" [up migration] ")

		_, err := db.NewRaw("CREATE INDEX IF NOT EXISTS trn_refresh_tokens_user_id_idx ON trn_refresh_tokens (user_id)").Exec(ctx)
		return err
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Print(" [down migration] ")

		_, err := db.NewRaw("DROP INDEX IF EXISTS trn_refresh_tokens_user_id_idx").Exec(ctx)
		return err
	})
}
