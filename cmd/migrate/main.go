package main

import (
	"flag"
	"fmt"
	"log"

	"inventory-backend/cmd"
	"inventory-backend/internal/database"

	"github.com/caarlos0/env/v11"
)

type MigrateConfig struct {
	DatabaseURL string `env:"DATABASE_URL,notEmpty,required"`
}

const usage = `usage: migrate [-env <file>] <command>

commands:
  up               apply all pending migrations
  down             roll back the most recent migration
  down-to <id>     roll back every migration after <id>
  status           list applied migration ids`

func main() {
	cmd.LoadEnvFile()

	var cfg MigrateConfig
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("error parsing config: %v", err)
	}

	args := flag.Args()
	if len(args) == 0 {
		log.Fatal(usage)
	}

	db, err := database.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	migrator := database.GetMigrator(db)

	switch args[0] {
	case "up":
		if err := migrator.Migrate(); err != nil {
			log.Fatalf("migration failed: %v", err)
		}
		log.Println("migrations applied")
	case "down":
		if err := migrator.RollbackLast(); err != nil {
			log.Fatalf("rollback failed: %v", err)
		}
		log.Println("rolled back last migration")
	case "down-to":
		if len(args) < 2 {
			log.Fatal(usage)
		}
		if err := migrator.RollbackTo(args[1]); err != nil {
			log.Fatalf("rollback to %s failed: %v", args[1], err)
		}
		log.Printf("rolled back to migration %s", args[1])
	case "status":
		if !db.Migrator().HasTable("migrations") {
			log.Println("no migrations applied")
			return
		}
		var applied []string
		if err := db.Table("migrations").Order("id").Pluck("id", &applied).Error; err != nil {
			log.Fatalf("error reading migration state: %v", err)
		}
		for _, id := range applied {
			fmt.Println(id)
		}
	default:
		log.Fatalf("unknown command %q\n%s", args[0], usage)
	}
}
