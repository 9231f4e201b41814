package discord

import (
	"github.com/bwmarrin/discordgo"

	"greeter/internal/domain"
)

const embedColor = 0x5865F2

// BuildGreetingEmbed renders a greeting as a Discord embed. The greeting
// message is the description, left untouched.
func BuildGreetingEmbed(g domain.Greeting, title, footer string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: g.Message,
		Color:       embedColor,
		Footer:      &discordgo.MessageEmbedFooter{Text: footer},
	}
}
