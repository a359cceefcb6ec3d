package main

import (
	"nutritrack/config"
	"nutritrack/routes"
	"nutritrack/store"

	"github.com/sirupsen/logrus"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{TimestampFormat: "2006-01-02 15:04:05", FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load configuration: %v", err)
	}

	db, err := config.Open(cfg)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		log.Fatalf("migrate schema: %v", err)
	}

	st := store.New(db)
	r := routes.SetupRouter(cfg, log, st)

	log.Infof("listening on %s", cfg.HTTPAddr)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
