package handlers

import (
	"log"

	"ffinfo-bot/bot"
	"ffinfo-bot/handlers/admin"
	"ffinfo-bot/handlers/info"
	"ffinfo-bot/utils"

	"github.com/bwmarrin/discordgo"
)

func Register(b *bot.Bot) {
	b.CommandHandlers = commandHandlers(b)
	addHandlers(b)
}

func commandHandlers(b *bot.Bot) map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate) {
	return map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate){
		"info": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			info.HandleInfoCommand(s, i, b)
		},
		"setinfochannel": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			admin.HandleSetInfoChannel(s, i, b)
		},
		"removeinfochannel": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			admin.HandleRemoveInfoChannel(s, i, b)
		},
		"infochannels": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			admin.HandleInfoChannels(s, i, b)
		},
		"infostats": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			info.HandleInfoStats(s, i, b)
		},
		"infoconfig": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			admin.HandleInfoConfig(s, i, b)
		},
		"botstatus": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			SystemInfoHandler(s, i, b)
		},
	}
}

func addHandlers(b *bot.Bot) {
	b.Session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		log.Printf("Logged in as: %v#%v", s.State.User.Username, s.State.User.Discriminator)
	})
	b.Session.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if i.Type != discordgo.InteractionApplicationCommand {
			return
		}
		// Commands only make sense inside a guild
		if i.GuildID == "" || i.Member == nil {
			utils.SendErrorResponse(s, i, "This command can only be used in a server.")
			return
		}
		if h, ok := b.CommandHandlers[i.ApplicationCommandData().Name]; ok {
			go h(s, i)
		}
	})
}
