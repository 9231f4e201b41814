package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"greeter/internal/ports/output"
)

var _ output.LanguageNamer = DisplayNamer{}

// DisplayNamer names languages using the CLDR tables shipped with x/text.
type DisplayNamer struct{}

// Names falls back to the code itself when it cannot be parsed or named.
func (DisplayNamer) Names(code string) (english, native string) {
	tag, err := language.Parse(code)
	if err != nil {
		return code, code
	}
	english = display.English.Languages().Name(tag)
	if english == "" {
		english = code
	}
	native = display.Self.Name(tag)
	if native == "" {
		native = english
	}
	return english, native
}
