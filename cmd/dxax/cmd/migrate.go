package cmd

import (
	"context"
	"log"

	"github.com/spf13/cobra"

	"github.com/ryotarofr/dx-ax-container/pkg/config"
	"github.com/ryotarofr/dx-ax-container/pkg/db"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	Run:   runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	cfg, err := config.ValidateEnv()
	if err != nil {
		log.Fatalf("❌ %v\n", err)
	}

	database, err := db.New(ctx, db.Config{
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		Database: cfg.DBName,
		SSLMode:  cfg.DBSSLMode,
		MaxConns: cfg.DBMaxConns,
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer database.Close()

	log.Println("Running migrations...")
	if err := db.Migrate(ctx, database); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}
	log.Println("Migrations completed successfully.")
}
