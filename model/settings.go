package model

// Settings 存储应用程序的进程级配置
type Settings struct {
	BotToken     string
	AppID        string
	LogChannelID string

	InfoAPIURL      string
	ProfileImageURL string
	OutfitImageURL  string

	ConfigFilePath string
	UsageDBPath    string

	DeveloperUserIDs []string
}
