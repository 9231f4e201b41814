package discord

import (
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"greeter/internal/application"
	"greeter/internal/infrastructure/i18n"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	catalog, err := i18n.NewCatalog(zap.NewNop(), "")
	require.NoError(t, err)
	svc := application.NewGreetingService(catalog, i18n.DisplayNamer{}).
		WithClock(func() time.Time { return time.Unix(1700000000, 0) })
	return NewHandler(svc, catalog, zap.NewNop())
}

func helloInteraction(opts ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.Interaction {
	return &discordgo.Interaction{
		Type: discordgo.InteractionApplicationCommand,
		Data: discordgo.ApplicationCommandInteractionData{
			Name:    helloCommandName,
			Options: opts,
		},
	}
}

func stringOption(name, value string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionString,
		Value: value,
	}
}

func TestHelloResponse_WithOptions(t *testing.T) {
	h := newTestHandler(t)
	i := helloInteraction(stringOption(optionName, "Ada"), stringOption(optionLanguage, "fr"))
	i.Locale = discordgo.SpanishES

	resp := h.helloResponse(i)

	require.Equal(t, discordgo.InteractionResponseChannelMessageWithSource, resp.Type)
	require.Len(t, resp.Data.Embeds, 1)
	embed := resp.Data.Embeds[0]
	assert.Equal(t, "Bonjour, Ada!", embed.Description)
	assert.Equal(t, "Saludo", embed.Title)
	assert.Equal(t, "Idioma: fr", embed.Footer.Text)
}

func TestHelloResponse_DefaultsToCaller(t *testing.T) {
	h := newTestHandler(t)

	i := helloInteraction()
	i.Member = &discordgo.Member{Nick: "Captain", User: &discordgo.User{Username: "ada", GlobalName: "Ada"}}
	assert.Equal(t, "Hello, Captain!", h.helloResponse(i).Data.Embeds[0].Description)

	i = helloInteraction(stringOption(optionLanguage, "de"))
	i.User = &discordgo.User{Username: "ada"}
	assert.Equal(t, "Hallo, ada!", h.helloResponse(i).Data.Embeds[0].Description)

	i = helloInteraction()
	assert.Equal(t, "Hello, World!", h.helloResponse(i).Data.Embeds[0].Description)
}

func TestResolveDisplayName(t *testing.T) {
	assert.Equal(t, "", resolveDisplayName(nil))
	assert.Equal(t, "", resolveDisplayName(&discordgo.Member{Nick: "x"}))
	assert.Equal(t, "Nick", resolveDisplayName(&discordgo.Member{Nick: "Nick", User: &discordgo.User{Username: "u"}}))
	assert.Equal(t, "Global", resolveDisplayName(&discordgo.Member{User: &discordgo.User{Username: "u", GlobalName: "Global"}}))
	assert.Equal(t, "u", resolveDisplayName(&discordgo.Member{User: &discordgo.User{Username: "u"}}))
}

func TestHelloCommand(t *testing.T) {
	h := newTestHandler(t)
	cmd := helloCommand(h.languageChoices())

	assert.Equal(t, helloCommandName, cmd.Name)
	require.Len(t, cmd.Options, 2)
	assert.False(t, cmd.Options[0].Required)

	choices := cmd.Options[1].Choices
	require.Len(t, choices, 9)
	values := make([]string, 0, len(choices))
	for _, c := range choices {
		values = append(values, c.Value.(string))
	}
	assert.ElementsMatch(t, []string{"en", "es", "fr", "de", "it", "pt", "ru", "ja", "zh"}, values)
	assert.Equal(t, "日本語 (ja)", choices[5].Name)
}
