package info

import (
	"fmt"
	"log"
	"time"

	"ffinfo-bot/bot"
	"ffinfo-bot/utils"
	"ffinfo-bot/utils/database"

	"github.com/bwmarrin/discordgo"
)

// HandleInfoStats shows the invoking user their own usage: today's count and
// remaining quota from the in-memory limiter, lifetime totals from the
// usage log.
func HandleInfoStats(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	guildID := i.GuildID
	userID := i.Member.User.ID

	dailyLimit := b.Store.DailyLimit(guildID)
	usedToday := b.Limiter.DailyCount(guildID, userID)
	remaining := dailyLimit - usedToday
	if remaining < 0 {
		remaining = 0
	}

	cooldown := time.Duration(b.Store.CooldownSeconds(guildID)) * time.Second
	ready, wait := b.Limiter.CheckCooldown(userID, cooldown)
	cooldownText := "Ready"
	if !ready {
		cooldownText = fmt.Sprintf("%ds remaining", wait)
	}

	lifetime, err := database.GetUsageCount(b.DB, guildID, userID, nil)
	if err != nil {
		log.Printf("Error reading usage count for user %s: %v", userID, err)
	}

	embed := &discordgo.MessageEmbed{
		Title: "Your /info usage",
		Color: EmbedColor(b.Store.EmbedColorHex(guildID)),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Used today", Value: fmt.Sprintf("%d / %d", usedToday, dailyLimit), Inline: true},
			{Name: "Remaining today", Value: fmt.Sprintf("%d", remaining), Inline: true},
			{Name: "Cooldown", Value: cooldownText, Inline: true},
			{Name: "All-time lookups here", Value: fmt.Sprintf("%d", lifetime), Inline: true},
		},
	}

	if recent, err := database.GetRecentUsage(b.DB, guildID, userID, 5); err == nil && len(recent) > 0 {
		var history string
		for _, record := range recent {
			when := time.Unix(record.Timestamp, 0).UTC().Format("2006-01-02 15:04")
			history += fmt.Sprintf("`%s` — UID %s\n", when, record.UID)
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "Recent lookups",
			Value:  history,
			Inline: false,
		})
	}

	utils.SendEphemeralEmbed(s, i, embed)
}
