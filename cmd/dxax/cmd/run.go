package cmd

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ryotarofr/dx-ax-container/pkg/api"
	"github.com/ryotarofr/dx-ax-container/pkg/api/routes"
	"github.com/ryotarofr/dx-ax-container/pkg/auth"
	"github.com/ryotarofr/dx-ax-container/pkg/config"
	"github.com/ryotarofr/dx-ax-container/pkg/db"
	"github.com/ryotarofr/dx-ax-container/pkg/logx"
	"github.com/ryotarofr/dx-ax-container/pkg/refreshstore"
	"github.com/ryotarofr/dx-ax-container/pkg/token"
	"github.com/ryotarofr/dx-ax-container/pkg/users"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the HTTP server",
	Run:   run,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func run(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	cfg, err := config.ValidateEnv()
	if err != nil {
		log.Fatalf("❌ %v\n", err)
	}

	cfg.Print(log.Printf)

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
		log.Fatalf("failed to initialize database: %v", err)
	}
	defer database.Close()

	codec := token.NewCodec([]byte(cfg.AuthSecret), time.Duration(cfg.AccessTokenTTL)*time.Second)
	store := refreshstore.NewBunStore(database)
	authSvc := auth.NewService(store, codec, time.Duration(cfg.RefreshTokenTTL)*time.Second, logx.NewDefault())
	directory := users.NewDirectory(users.Defaults())

	a := api.NewApi(cfg.CORSOrigin)
	routes.RegisterAPI(a.Api, &routes.Services{
		Auth:      authSvc,
		DB:        database,
		Directory: directory,
	})

	addr := fmt.Sprintf(":%s", cfg.Port)

	log.Printf("🚀 Server starting on %s\n", addr)
	log.Printf("📚 OpenAPI docs: http://localhost%s/docs\n", addr)

	if err := http.ListenAndServe(addr, a.Router); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
