package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/cortheos/cortheos/internal/webserver"
	"github.com/cortheos/cortheos/internal/webserver/infrastructure"
)

var version string = "unknown"

func main() {
	var cfg Config

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatal(fmt.Errorf("error parsing configuration from environment variables: %w", err))
	}

	dbPath := cfg.DatabasePath
	if dbPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			log.Fatal("Error retrieving user home dir")
		}
		if err = os.MkdirAll(fmt.Sprintf("%s/cortheos", homeDir), os.ModePerm); err != nil {
			log.Fatal(fmt.Errorf("couldn't create %s/cortheos, exiting", homeDir))
		}
		dbPath = fmt.Sprintf("%s/cortheos/database.db", homeDir)
	}

	run(cfg, dbPath)
}

func run(cfg Config, dbPath string) {
	db := infrastructure.Connect(dbPath)

	// A fresh deployment has no accounts and signup is invite-only, so mint
	// a bootstrap owner invite and print it once.
	if code, err := infrastructure.SeedOwnerInvite(db); err != nil {
		log.Fatal(err)
	} else if code != "" {
		log.Printf("No accounts found, created owner invite code %s (single use, expires in 48h)\n", code)
	}

	webserverConfig := webserver.Config{
		Domain:            cfg.Domain,
		JwtSecret:         []byte(cfg.JwtSecret),
		SessionTimeout:    cfg.SessionTimeout,
		MinPasswordLength: cfg.MinPasswordLength,
	}

	controllers := webserver.SetupControllers(webserverConfig, db)
	app := webserver.New(webserverConfig, controllers)

	fmt.Printf("Cortheos version %s started listening on port %s\n\n", version, cfg.Port)
	if err := app.Listen(fmt.Sprintf(":%s", cfg.Port)); err != nil {
		log.Fatal(err)
	}
}
