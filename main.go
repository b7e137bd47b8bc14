package main

import (
	"log"
	"os"
	"path/filepath"

	"ffinfo-bot/bot"
	"ffinfo-bot/config"
	"ffinfo-bot/ffapi"
	"ffinfo-bot/handlers"
	"ffinfo-bot/ratelimit"
	"ffinfo-bot/store"
	"ffinfo-bot/utils/database"
)

func main() {
	settings, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading settings: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(settings.UsageDBPath), os.ModePerm); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}
	db, err := database.Init(settings.UsageDBPath)
	if err != nil {
		log.Fatalf("Error initializing usage database: %v", err)
	}

	cfgStore := store.New(settings.ConfigFilePath)
	limiter := ratelimit.New()
	api := ffapi.NewClient(settings)

	b, err := bot.New(settings, cfgStore, limiter, api, db)
	if err != nil {
		log.Fatalf("Error creating bot: %v", err)
	}

	handlers.Register(b)

	b.Run()

	defer b.Close()
}
