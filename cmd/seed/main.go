// Command seed applies migrations and installs the default roles, users and
// modules, then exits. Useful for provisioning a database ahead of the
// service, or re-running the seed after wiping a dev database.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/spendlog/spendlog/internal/app"
	"github.com/spendlog/spendlog/internal/service"
	"github.com/spendlog/spendlog/internal/store/drivers/sqlite"
	"github.com/spendlog/spendlog/pkg/slogx"
)

func main() {
	cfg := app.LoadConfig()

	logger := slogx.New(slogx.Config{
		Service: "spendlog-seed",
		Version: app.BuildVersion,
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	})

	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	if err := db.ApplyMigrations(); err != nil {
		log.Fatalf("failed to apply migrations: %v", err)
	}

	seeder := &service.SeedService{Store: db, Logger: logger}
	if err := seeder.Run(context.Background()); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}

	logger.Info("seeding complete", "database", cfg.DatabaseFile)
}
