package output

// Translator exposes a minimal i18n contract for user-facing messages.
// Implementations provide message lookup + templating for a given locale.
type Translator interface {
	// T renders the message identified by key for the given locale.
	// data is an optional map used for template placeholders (may be nil).
	T(locale, key string, data map[string]any) string
}

// LanguageNamer resolves human readable names for a language code.
type LanguageNamer interface {
	// Names returns the English name and the language's own name for code.
	Names(code string) (english, native string)
}
