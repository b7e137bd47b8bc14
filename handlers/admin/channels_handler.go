// Package admin holds the guild-configuration commands. Discord already
// gates them behind the Administrator permission; the handlers double-check.
package admin

import (
	"fmt"
	"log"

	"ffinfo-bot/bot"
	"ffinfo-bot/utils"

	"github.com/bwmarrin/discordgo"
)

// HandleSetInfoChannel adds a channel to the guild's allow-list.
func HandleSetInfoChannel(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	if !utils.IsAdmin(i) {
		utils.SendErrorResponse(s, i, "You do not have permission to use this command.")
		return
	}

	channel := i.ApplicationCommandData().Options[0].ChannelValue(s)
	added, err := b.Store.AddChannel(i.GuildID, channel.ID)
	if err != nil {
		log.Printf("Error saving config for guild %s: %v", i.GuildID, err)
		utils.LogError(s, b.GetSettings().LogChannelID, "Admin", "SetInfoChannel", err.Error())
		utils.SendErrorResponse(s, i, "Failed to save the configuration. The change may be lost.")
		return
	}

	if added {
		utils.SendPublicResponse(s, i, fmt.Sprintf("✅ <#%s> is now allowed for `/info` commands", channel.ID))
	} else {
		utils.SendPublicResponse(s, i, fmt.Sprintf("ℹ️ <#%s> is already allowed for `/info` commands", channel.ID))
	}
}

// HandleRemoveInfoChannel removes a channel from the guild's allow-list.
func HandleRemoveInfoChannel(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	if !utils.IsAdmin(i) {
		utils.SendErrorResponse(s, i, "You do not have permission to use this command.")
		return
	}

	channel := i.ApplicationCommandData().Options[0].ChannelValue(s)
	removed, err := b.Store.RemoveChannel(i.GuildID, channel.ID)
	if err != nil {
		log.Printf("Error saving config for guild %s: %v", i.GuildID, err)
		utils.LogError(s, b.GetSettings().LogChannelID, "Admin", "RemoveInfoChannel", err.Error())
		utils.SendErrorResponse(s, i, "Failed to save the configuration. The change may be lost.")
		return
	}

	if removed {
		utils.SendPublicResponse(s, i, fmt.Sprintf("✅ <#%s> has been removed from allowed channels", channel.ID))
	} else {
		utils.SendPublicResponse(s, i, fmt.Sprintf("❌ <#%s> is not in the list of allowed channels", channel.ID))
	}
}

// HandleInfoChannels lists the allow-list and the effective limits. Open to
// everyone.
func HandleInfoChannels(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	channels := b.Store.Channels(i.GuildID)

	description := "All channels are allowed (no restriction configured)"
	if len(channels) > 0 {
		description = ""
		for _, channelID := range channels {
			description += fmt.Sprintf("<#%s>\n", channelID)
		}
	}

	embed := &discordgo.MessageEmbed{
		Title:       "Allowed channels for /info",
		Description: description,
		Color:       0x3498DB,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Cooldown: %ds • Daily limit: %d",
				b.Store.CooldownSeconds(i.GuildID), b.Store.DailyLimit(i.GuildID)),
		},
	}
	utils.SendEmbedResponse(s, i, embed)
}
