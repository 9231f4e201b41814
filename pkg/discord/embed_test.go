package discord

import (
	"testing"

	"greeter/internal/domain"
)

func TestBuildGreetingEmbed(t *testing.T) {
	g := domain.Greeting{Message: "Ciao, <@42>!", Name: "<@42>", Language: "it"}
	embed := BuildGreetingEmbed(g, "Saluto", "Lingua: it")

	if embed.Description != g.Message {
		t.Fatalf("description = %q, want %q", embed.Description, g.Message)
	}
	if embed.Title != "Saluto" || embed.Footer == nil || embed.Footer.Text != "Lingua: it" {
		t.Fatalf("unexpected embed: %+v", embed)
	}
	if embed.Color != embedColor {
		t.Fatalf("color = %#x", embed.Color)
	}
}
