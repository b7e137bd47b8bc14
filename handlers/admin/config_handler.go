package admin

import (
	"fmt"
	"log"

	"ffinfo-bot/bot"
	"ffinfo-bot/utils"

	"github.com/bwmarrin/discordgo"
)

// Accepted ranges for the admin overrides.
const (
	minCooldownSeconds = 5
	maxCooldownSeconds = 3600
	minDailyLimit      = 1
	maxDailyLimit      = 1000
)

// HandleInfoConfig shows the effective settings when called without
// arguments, and validates and persists overrides when called with them.
// Nothing is saved unless every provided value passes validation.
func HandleInfoConfig(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	if !utils.IsAdmin(i) {
		utils.SendErrorResponse(s, i, "You do not have permission to use this command.")
		return
	}

	options := i.ApplicationCommandData().Options
	if len(options) == 0 {
		showConfig(s, i, b)
		return
	}

	var cooldown, dailyLimit *int
	var embedColor *string

	for _, opt := range options {
		switch opt.Name {
		case "cooldown":
			v := int(opt.IntValue())
			if v < minCooldownSeconds || v > maxCooldownSeconds {
				utils.SendErrorResponse(s, i, fmt.Sprintf("Cooldown must be between %d and %d seconds.", minCooldownSeconds, maxCooldownSeconds))
				return
			}
			cooldown = &v
		case "daily_limit":
			v := int(opt.IntValue())
			if v < minDailyLimit || v > maxDailyLimit {
				utils.SendErrorResponse(s, i, fmt.Sprintf("Daily limit must be between %d and %d.", minDailyLimit, maxDailyLimit))
				return
			}
			dailyLimit = &v
		case "embed_color":
			raw := opt.StringValue()
			if _, err := utils.ParseHexColor(raw); err != nil {
				utils.SendErrorResponse(s, i, fmt.Sprintf("Embed color %v.", err))
				return
			}
			embedColor = &raw
		}
	}

	if err := b.Store.SetOverrides(i.GuildID, cooldown, dailyLimit, embedColor); err != nil {
		log.Printf("Error saving config for guild %s: %v", i.GuildID, err)
		utils.LogError(s, b.GetSettings().LogChannelID, "Admin", "InfoConfig", err.Error())
		utils.SendErrorResponse(s, i, "Failed to save the configuration. The change may be lost.")
		return
	}

	utils.SendPublicResponse(s, i, "✅ Settings updated for this server.")
}

func showConfig(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	colorHex := b.Store.EmbedColorHex(i.GuildID)
	if colorHex == "" {
		colorHex = "default"
	}

	embed := &discordgo.MessageEmbed{
		Title: "Current /info settings",
		Color: 0x3498DB,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Cooldown", Value: fmt.Sprintf("%ds", b.Store.CooldownSeconds(i.GuildID)), Inline: true},
			{Name: "Daily limit", Value: fmt.Sprintf("%d", b.Store.DailyLimit(i.GuildID)), Inline: true},
			{Name: "Embed color", Value: colorHex, Inline: true},
		},
	}
	utils.SendEphemeralEmbed(s, i, embed)
}
