package config

import (
	"log"
	"strings"

	"ffinfo-bot/model"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load loads the process settings from the environment, with an optional
// .env file for local runs. Everything except the token and app id has a
// default.
func Load() (*model.Settings, error) {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("Info: .env file not found, relying on environment variables")
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("INFO_API_URL", "http://deepinfosukh.vercel.app/info")
	v.SetDefault("PROFILE_IMAGE_URL", "https://profile.thug4ff.com/api/profile")
	v.SetDefault("OUTFIT_IMAGE_URL", "")
	v.SetDefault("CONFIG_FILE", "data/info_channels.json")
	v.SetDefault("USAGE_DB", "data/usage.db")

	token := v.GetString("BOT_TOKEN")
	if token == "" {
		log.Fatal("Error: BOT_TOKEN environment variable not set")
	}

	appID := v.GetString("APP_ID")
	if appID == "" {
		log.Fatal("Error: APP_ID environment variable not set")
	}

	logChannelID := v.GetString("LOG_CHANNEL_ID")
	if logChannelID == "" {
		log.Println("Warning: LOG_CHANNEL_ID not set, channel logging will be disabled")
	}

	var developerIDs []string
	if raw := v.GetString("DEVELOPER_USER_IDS"); raw != "" {
		developerIDs = strings.Split(raw, ",")
	}

	settings := &model.Settings{
		BotToken:         token,
		AppID:            appID,
		LogChannelID:     logChannelID,
		InfoAPIURL:       v.GetString("INFO_API_URL"),
		ProfileImageURL:  v.GetString("PROFILE_IMAGE_URL"),
		OutfitImageURL:   v.GetString("OUTFIT_IMAGE_URL"),
		ConfigFilePath:   v.GetString("CONFIG_FILE"),
		UsageDBPath:      v.GetString("USAGE_DB"),
		DeveloperUserIDs: developerIDs,
	}

	return settings, nil
}
