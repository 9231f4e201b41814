package cli

import (
	"fmt"
	"io"

	"greeter/internal/ports/input"
)

const (
	formatText = "text"
	formatJSON = "json"
)

type greetOptions struct {
	name          string
	format        string
	language      string
	listLanguages bool
}

type greetingOutput struct {
	Message   string `json:"message"`
	Name      string `json:"name"`
	Language  string `json:"language"`
	Timestamp string `json:"timestamp"`
}

// runGreet prints the greeting; any format other than json is treated as text.
func runGreet(w io.Writer, greetings input.GreetingUseCase, opts greetOptions) error {
	if opts.listLanguages {
		return listLanguages(w, greetings.Languages(), opts.format)
	}

	g := greetings.Greet(opts.name, opts.language)
	if opts.format == formatJSON {
		return encodeJSON(w, &greetingOutput{
			Message:   g.Message,
			Name:      g.Name,
			Language:  g.Language,
			Timestamp: g.Timestamp,
		})
	}
	_, err := fmt.Fprintln(w, g.Message)
	return err
}

func listLanguages(w io.Writer, languages []string, format string) error {
	if format == formatJSON {
		return encodeJSON(w, map[string][]string{"languages": languages})
	}
	if _, err := fmt.Fprintln(w, "Available languages:"); err != nil {
		return err
	}
	for _, code := range languages {
		if _, err := fmt.Fprintf(w, "  %s\n", code); err != nil {
			return err
		}
	}
	return nil
}
