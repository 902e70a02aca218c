package bot

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/susu3304/huntbot/internal/commands"
	"github.com/susu3304/huntbot/internal/db"
	"go.uber.org/zap"
)

type Bot struct {
	session  *discordgo.Session
	db       *db.DB
	registry *commands.Registry
	timers   *timerWorker
	log      *zap.SugaredLogger
}

func New(token, prefix string, database *db.DB, timerInterval time.Duration) (*Bot, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}

	bot := &Bot{
		session:  session,
		db:       database,
		registry: commands.DefaultRegistry(prefix, database),
		timers:   newTimerWorker(session, database, timerInterval),
		log:      zap.S().Named("bot"),
	}

	// Register event handlers
	session.AddHandler(bot.onReady)
	session.AddHandler(bot.onGuildCreate)
	session.AddHandler(bot.onMessageCreate)
	session.AddHandler(bot.onInteractionCreate)

	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentsMessageContent

	return bot, nil
}

func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open discord session: %w", err)
	}
	b.timers.start()
	b.log.Info("Discord bot is running")
	return nil
}

func (b *Bot) Stop() error {
	b.timers.stop()
	return b.session.Close()
}
