package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"greeter/internal/config"
	"greeter/internal/ports/input"
	"greeter/internal/ports/output"
)

// Bot is the Discord adapter.
type Bot struct {
	session *discordgo.Session
	config  *config.Config
	handler *Handler
	logger  *zap.Logger
}

// NewBot creates a Bot and wires the greeting use case into the interaction handler.
func NewBot(cfg *config.Config, greetings input.GreetingUseCase, translator output.Translator, logger *zap.Logger) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		return nil, fmt.Errorf("discord: create session: %w", err)
	}

	bot := &Bot{
		session: s,
		config:  cfg,
		handler: NewHandler(greetings, translator, logger),
		logger:  logger,
	}
	bot.setupHandlers()
	return bot, nil
}

func (b *Bot) setupHandlers() {
	b.session.AddHandler(b.handleInteraction)
}

func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	if i.ApplicationCommandData().Name == helloCommandName {
		b.handler.HandleHello(s, i)
	}
}

// Start registers the slash command and serves interactions until ctx is done.
func (b *Bot) Start(ctx context.Context) error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("discord: open session: %w", err)
	}
	defer b.session.Close()

	cmd := helloCommand(b.handler.languageChoices())
	if _, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.config.Discord.GuildID, cmd); err != nil {
		b.logger.Warn("failed to register command", zap.String("command", cmd.Name), zap.Error(err))
	}

	b.logger.Info("Discord bot online, press CTRL+C to quit")
	<-ctx.Done()

	return nil
}
