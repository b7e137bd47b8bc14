package info

import (
	"time"

	"ffinfo-bot/model"
	"ffinfo-bot/utils"

	"github.com/bwmarrin/discordgo"
)

// BuildPlayerEmbed renders the formatted sections as one embed, each section
// a field drawn as a label tree.
func BuildPlayerEmbed(sections []Section, color int, requester *discordgo.User) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:     "Player Information",
		Color:     color,
		Timestamp: time.Now().Format(time.RFC3339),
		Footer:    &discordgo.MessageEmbedFooter{Text: "Free Fire player lookup"},
	}
	if requester != nil {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: requester.AvatarURL("")}
	}

	for _, section := range sections {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   section.Title,
			Value:  renderLines(section.Lines),
			Inline: false,
		})
	}
	return embed
}

func renderLines(lines []Line) string {
	var out string
	for index, line := range lines {
		branch := "├─"
		if index == len(lines)-1 {
			branch = "└─"
		}
		out += "**" + branch + " " + line.Label + "**: " + line.Value
		if index != len(lines)-1 {
			out += "\n"
		}
	}
	return out
}

// BuildNotFoundEmbed is the response for a UID the API does not know.
func BuildNotFoundEmbed(uid string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "Player Not Found",
		Description: "UID `" + uid + "` not found or inaccessible.",
		Color:       0xE74C3C,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Tip",
				Value:  "- Make sure the UID is correct\n- Try a different UID",
				Inline: false,
			},
		},
	}
}

// EmbedColor resolves the guild's configured color, falling back to the
// default when the stored value is missing or unparseable.
func EmbedColor(hex string) int {
	if hex == "" {
		return model.DefaultEmbedColor
	}
	color, err := utils.ParseHexColor(hex)
	if err != nil {
		return model.DefaultEmbedColor
	}
	return color
}
