package discord

import (
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"greeter/internal/domain"
	discordpkg "greeter/pkg/discord"
)

const (
	helloCommandName = "hello"
	optionName       = "name"
	optionLanguage   = "language"

	// Discord accepts at most 25 choices per option.
	maxChoices = 25
)

func helloCommand(choices []*discordgo.ApplicationCommandOptionChoice) *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        helloCommandName,
		Description: "Say hello in one of the supported languages",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        optionName,
				Description: "Name to greet (defaults to you)",
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        optionLanguage,
				Description: "Language for the greeting",
				Choices:     choices,
			},
		},
	}
}

func (h *Handler) languageChoices() []*discordgo.ApplicationCommandOptionChoice {
	codes := h.greetings.Languages()
	if len(codes) > maxChoices {
		codes = codes[:maxChoices]
	}
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(codes))
	for _, code := range codes {
		label := code
		if info, err := h.greetings.Language(code); err == nil && info.NativeName != "" {
			label = info.NativeName + " (" + code + ")"
		}
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{Name: label, Value: code})
	}
	return choices
}

// HandleHello answers /hello with a greeting embed.
func (h *Handler) HandleHello(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if err := s.InteractionRespond(i.Interaction, h.helloResponse(i.Interaction)); err != nil {
		h.logger.Error("failed to respond to /hello", zap.Error(err))
	}
}

func (h *Handler) helloResponse(i *discordgo.Interaction) *discordgo.InteractionResponse {
	name, lang := parseHelloOptions(i.ApplicationCommandData().Options)
	if name == "" {
		name = resolveInteractionName(i)
	}
	if name == "" {
		name = domain.DefaultName
	}
	if lang == "" {
		lang = domain.DefaultLanguage
	}

	g := h.greetings.Greet(name, lang)
	locale := string(i.Locale)
	embed := discordpkg.BuildGreetingEmbed(
		g,
		h.translator.T(locale, "embed_title", nil),
		h.translator.T(locale, "embed_footer", map[string]any{"Language": g.Language}),
	)

	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
		},
	}
}

func parseHelloOptions(opts []*discordgo.ApplicationCommandInteractionDataOption) (name, lang string) {
	for _, opt := range opts {
		if opt.Type != discordgo.ApplicationCommandOptionString {
			continue
		}
		switch opt.Name {
		case optionName:
			name = opt.StringValue()
		case optionLanguage:
			lang = opt.StringValue()
		}
	}
	return name, lang
}
