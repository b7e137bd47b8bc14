package info

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"ffinfo-bot/bot"
	"ffinfo-bot/ffapi"
	"ffinfo-bot/model"
	"ffinfo-bot/utils"
	"ffinfo-bot/utils/database"

	"github.com/bwmarrin/discordgo"
)

// HandleInfoCommand runs the full /info pipeline: validation, channel
// allow-list, rate limits, the player fetch, the embed, and finally the
// best-effort image attachments.
func HandleInfoCommand(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	guildID := i.GuildID
	userID := i.Member.User.ID

	uid := i.ApplicationCommandData().Options[0].StringValue()
	if !ffapi.ValidUID(uid) {
		utils.SendErrorResponse(s, i, "Invalid UID! It must:\n- Be only numbers\n- Have at least 6 digits")
		return
	}

	if !b.Store.IsChannelAllowed(guildID, i.ChannelID) {
		utils.SendErrorResponse(s, i, "This command is not allowed in this channel.")
		return
	}

	cooldown := time.Duration(b.Store.CooldownSeconds(guildID)) * time.Second
	dailyLimit := b.Store.DailyLimit(guildID)

	result := b.Limiter.Reserve(guildID, userID, cooldown, dailyLimit)
	if !result.Allowed {
		if result.QuotaExceeded {
			utils.SendErrorResponse(s, i, fmt.Sprintf("You have reached the daily limit of %d lookups for this server. Try again tomorrow.", dailyLimit))
		} else {
			utils.SendErrorResponse(s, i, fmt.Sprintf("Please wait %ds before using this command again", result.RemainingSeconds))
		}
		return
	}

	if err := utils.DeferResponse(s, i, false); err != nil {
		log.Printf("Error deferring info response: %v", err)
		return
	}

	ctx := context.Background()
	doc, err := b.API.FetchPlayer(ctx, uid)
	if err != nil {
		switch {
		case errors.Is(err, ffapi.ErrPlayerNotFound):
			utils.EditDeferredEmbed(s, i.Interaction, BuildNotFoundEmbed(uid))
		default:
			log.Printf("Stats API failure for uid %s: %v", uid, err)
			utils.LogError(s, b.GetSettings().LogChannelID, "Info", "FetchPlayer", err.Error())
			utils.EditDeferredError(s, i.Interaction, "API error. Try again later.")
		}
		return
	}

	recordUsage(b, guildID, userID, uid)

	sections := FormatPlayer(doc, uid)
	color := EmbedColor(b.Store.EmbedColorHex(guildID))
	utils.EditDeferredEmbed(s, i.Interaction, BuildPlayerEmbed(sections, color, i.Member.User))

	// The primary response is out; everything from here on is best effort
	// and must not retract it.
	if hasRegion(doc) {
		sendImages(ctx, s, i, b, uid)
	}
}

// recordUsage appends the accepted request to the persistent usage log. The
// in-memory limiter already counted it; a write failure only costs history.
func recordUsage(b *bot.Bot, guildID, userID, uid string) {
	record := model.UsageRecord{
		GuildID:   guildID,
		UserID:    userID,
		UID:       uid,
		Timestamp: time.Now().Unix(),
	}
	if err := database.AddUsageRecord(b.DB, record); err != nil {
		log.Printf("Error recording usage for user %s: %v", userID, err)
	}
}

// hasRegion mirrors the image endpoints' own requirement: they can only
// generate an image for an account with a resolvable region.
func hasRegion(doc *model.PlayerDocument) bool {
	return doc.BasicInfo != nil && doc.BasicInfo.Region.Valid && doc.BasicInfo.Region.Value != "" && doc.BasicInfo.Region.Value != Placeholder
}

func sendImages(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot, uid string) {
	if b.Store.ShowProfileImage() {
		sendImage(s, i, fmt.Sprintf("profile_%s.png", uid), func() ([]byte, error) {
			return b.API.FetchProfileImage(ctx, uid)
		})
	}
	if b.Store.ShowOutfitImage() {
		sendImage(s, i, fmt.Sprintf("outfit_%s.png", uid), func() ([]byte, error) {
			return b.API.FetchOutfitImage(ctx, uid)
		})
	}
}

// sendImage fetches one generated image and attaches it as a follow-up
// message. Failures are logged and swallowed.
func sendImage(s *discordgo.Session, i *discordgo.InteractionCreate, filename string, fetch func() ([]byte, error)) {
	data, err := fetch()
	if err != nil {
		log.Printf("Image fetch failed for %s: %v", filename, err)
		return
	}

	_, err = s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
		Files: []*discordgo.File{
			{
				Name:        filename,
				ContentType: "image/png",
				Reader:      bytes.NewReader(data),
			},
		},
	})
	if err != nil {
		log.Printf("Error sending image follow-up %s: %v", filename, err)
	}
}
