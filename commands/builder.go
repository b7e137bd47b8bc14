package commands

import "github.com/bwmarrin/discordgo"

// GenerateCommands returns the application command set for the bot.
// Admin-only commands carry the Administrator default member permission, so
// Discord hides them from regular members.
func GenerateCommands() []*discordgo.ApplicationCommand {
	adminOnly := int64(discordgo.PermissionAdministrator)

	return []*discordgo.ApplicationCommand{
		{
			Name:        "info",
			Description: "Displays information about a Free Fire player",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "uid",
					Description: "Player UID (digits only, at least 6)",
					Required:    true,
				},
			},
		},
		{
			Name:                     "setinfochannel",
			Description:              "Allow a channel for /info commands",
			DefaultMemberPermissions: &adminOnly,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionChannel,
					Name:        "channel",
					Description: "The channel to allow",
					Required:    true,
					ChannelTypes: []discordgo.ChannelType{
						discordgo.ChannelTypeGuildText,
					},
				},
			},
		},
		{
			Name:                     "removeinfochannel",
			Description:              "Remove a channel from /info commands",
			DefaultMemberPermissions: &adminOnly,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionChannel,
					Name:        "channel",
					Description: "The channel to remove",
					Required:    true,
					ChannelTypes: []discordgo.ChannelType{
						discordgo.ChannelTypeGuildText,
					},
				},
			},
		},
		{
			Name:        "infochannels",
			Description: "List the channels allowed for /info",
		},
		{
			Name:        "infostats",
			Description: "Show your /info usage for this server",
		},
		{
			Name:                     "infoconfig",
			Description:              "Show or change the /info settings for this server",
			DefaultMemberPermissions: &adminOnly,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "cooldown",
					Description: "Cooldown between uses in seconds (5-3600)",
					Required:    false,
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "daily_limit",
					Description: "Maximum uses per user per day (1-1000)",
					Required:    false,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "embed_color",
					Description: "Embed color as hex, with or without #",
					Required:    false,
				},
			},
		},
		{
			Name:                     "botstatus",
			Description:              "Show system information about the bot",
			DefaultMemberPermissions: &adminOnly,
		},
	}
}
