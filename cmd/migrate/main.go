package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"path/filepath"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"

	"library-platform/internal/pkg/config"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded, using system environment: %v", err)
	}

	var service string
	var migrationsDir string
	flag.StringVar(&service, "service", "", "service to migrate: user, book, loan or review")
	flag.StringVar(&migrationsDir, "dir", "db/migrations", "base directory with per-service migration files")
	flag.Parse()

	dsn, err := dsnFor(service)
	if err != nil {
		log.Fatalf("goose: %v", err)
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Fatalf("goose: failed to open DB: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Fatalf("goose: failed to close DB: %v", err)
		}
	}()

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("goose: %v", err)
	}

	arguments := flag.Args()
	if len(arguments) == 0 {
		arguments = []string{"up"}
	}

	command := arguments[0]
	var args []string
	if len(arguments) > 1 {
		args = arguments[1:]
	}

	dir := filepath.Join(migrationsDir, service)
	if err := goose.Run(command, db, dir, args...); err != nil {
		log.Fatalf("goose %v: %v", command, err)
	}

	fmt.Printf("goose %s success for %s service\n", command, service)
}

func dsnFor(service string) (string, error) {
	switch service {
	case "user":
		cfg, err := config.LoadUserConfig()
		return cfg.DB.BuildDSN(), err
	case "book":
		cfg, err := config.LoadBookConfig()
		return cfg.DB.BuildDSN(), err
	case "loan":
		cfg, err := config.LoadLoanConfig()
		return cfg.DB.BuildDSN(), err
	case "review":
		cfg, err := config.LoadReviewConfig()
		return cfg.DB.BuildDSN(), err
	default:
		return "", fmt.Errorf("unknown service %q (want user, book, loan or review)", service)
	}
}
