package bot

import (
	"log"
	"sync/atomic"
	"time"

	"ffinfo-bot/ffapi"
	"ffinfo-bot/model"
	"ffinfo-bot/ratelimit"
	"ffinfo-bot/store"

	"github.com/bwmarrin/discordgo"
	"github.com/jmoiron/sqlx"
)

type Bot struct {
	Session            *discordgo.Session
	RegisteredCommands []*discordgo.ApplicationCommand
	CommandHandlers    map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate)

	settings atomic.Value // *model.Settings

	Store   *store.Store
	Limiter *ratelimit.Limiter
	API     *ffapi.Client
	DB      *sqlx.DB

	StartedAt     time.Time
	cleanupTicker *time.Ticker
	done          chan struct{}
}

func (b *Bot) GetSettings() *model.Settings {
	return b.settings.Load().(*model.Settings)
}

func (b *Bot) GetSession() *discordgo.Session {
	return b.Session
}

func (b *Bot) GetDB() *sqlx.DB {
	return b.DB
}

func New(settings *model.Settings, cfgStore *store.Store, limiter *ratelimit.Limiter, api *ffapi.Client, db *sqlx.DB) (*Bot, error) {
	dg, err := discordgo.New("Bot " + settings.BotToken)
	if err != nil {
		return nil, err
	}
	dg.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages

	b := &Bot{
		Session:   dg,
		Store:     cfgStore,
		Limiter:   limiter,
		API:       api,
		DB:        db,
		StartedAt: time.Now(),
		done:      make(chan struct{}),
	}
	b.settings.Store(settings)
	return b, nil
}

func (b *Bot) Close() {
	log.Println("Gracefully shutting down.")
	close(b.done)

	if b.cleanupTicker != nil {
		b.cleanupTicker.Stop()
	}
	b.Session.Close()
}

// startCleanup purges stale cooldown stamps and old day counters in the
// background for as long as the bot runs.
func (b *Bot) startCleanup() {
	b.cleanupTicker = time.NewTicker(15 * time.Minute)
	go func() {
		for {
			select {
			case <-b.cleanupTicker.C:
				b.Limiter.Cleanup()
			case <-b.done:
				return
			}
		}
	}()
}
