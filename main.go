// main.go - Entry point for the inventory backend server

package main

import (
	"inventory-backend/alerts"
	"inventory-backend/config"
	"inventory-backend/database"
	"inventory-backend/handlers"
	"inventory-backend/store"

	"github.com/sirupsen/logrus"
)

func main() {
	log := logrus.New()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config error: ", err)
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatal("DB connection error: ", err)
	}

	var publisher *alerts.Publisher
	if cfg.MQTTBroker != "" {
		publisher, err = alerts.Connect(cfg.MQTTBroker, cfg.LowStockTopic, log)
		if err != nil {
			log.Fatal("MQTT connection error: ", err)
		}
		defer publisher.Close()
	}

	st := store.New(db, log)
	r := handlers.NewRouter(db, st, publisher, cfg.JWTSecret, log)

	log.WithField("port", cfg.Port).Info("starting server")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("server error: ", err)
	}
}
