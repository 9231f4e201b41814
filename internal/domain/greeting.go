package domain

import "strings"

const (
	// Placeholder is the token replaced by the recipient's name.
	Placeholder = "{name}"

	DefaultName     = "World"
	DefaultLanguage = "en"

	// FallbackTemplate is used when neither the requested language nor
	// English is present in the catalog.
	FallbackTemplate = "Hello, " + Placeholder + "!"
)

// Greeting is the result of formatting one greeting. Language echoes the
// requested code even when the fallback template was used.
type Greeting struct {
	Message   string
	Name      string
	Language  string
	Timestamp string
}

// LanguageInfo describes one catalog entry.
type LanguageInfo struct {
	Code       string
	Name       string
	NativeName string
	Template   string
	Example    string
}

// Render substitutes name into the first placeholder of tmpl, verbatim.
func Render(tmpl, name string) string {
	return strings.Replace(tmpl, Placeholder, name, 1)
}

// ValidateTemplate reports ErrInvalidTemplate unless tmpl holds exactly one placeholder.
func ValidateTemplate(tmpl string) error {
	if strings.Count(tmpl, Placeholder) != 1 {
		return ErrInvalidTemplate
	}
	return nil
}
