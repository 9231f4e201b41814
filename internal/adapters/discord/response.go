package discord

import (
	"github.com/bwmarrin/discordgo"
)

// Nick > GlobalName > Username
func resolveDisplayName(member *discordgo.Member) string {
	if member == nil || member.User == nil {
		return ""
	}
	if member.Nick != "" {
		return member.Nick
	}
	return userDisplayName(member.User)
}

func userDisplayName(user *discordgo.User) string {
	if user == nil {
		return ""
	}
	if user.GlobalName != "" {
		return user.GlobalName
	}
	return user.Username
}

// resolveInteractionName uses the guild member when present, the DM user otherwise.
func resolveInteractionName(i *discordgo.Interaction) string {
	if name := resolveDisplayName(i.Member); name != "" {
		return name
	}
	return userDisplayName(i.User)
}
