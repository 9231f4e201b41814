package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"greeter/internal/domain"
	"greeter/internal/ports/output"
)

//go:embed active.*.toml
var localeFS embed.FS

// GreetingMessageID is the message holding the greeting template in every
// locale file.
const GreetingMessageID = "greeting"

var _ output.Catalog = (*Catalog)(nil)

// Catalog is the greeting catalog built once from the embedded locale files
// and an optional extension file. It is never mutated after NewCatalog
// returns, so it can be shared between goroutines without locking.
type Catalog struct {
	bundle          *i18n.Bundle
	defaultLanguage language.Tag
	templates       map[string]string
	codes           []string
	localizers      []*i18n.Localizer
	matcher         language.Matcher
	logger          *zap.Logger
}

// NewCatalog loads the embedded active.*.toml files, then extensionFile when
// it is not empty. Extension entries override embedded ones for the same code.
// The language of a file is taken from its name (active.en.toml, eo.yaml).
func NewCatalog(logger *zap.Logger, extensionFile string) (*Catalog, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
	bundle.RegisterUnmarshalFunc("yml", yaml.Unmarshal)

	files, err := fs.Glob(localeFS, "active.*.toml")
	if err != nil {
		return nil, fmt.Errorf("i18n: list locales: %w", err)
	}

	c := &Catalog{
		bundle:          bundle,
		defaultLanguage: language.English,
		templates:       make(map[string]string, len(files)+1),
		logger:          logger,
	}

	for _, file := range files {
		mf, err := bundle.LoadMessageFileFS(localeFS, file)
		if err != nil {
			return nil, fmt.Errorf("i18n: load %s: %w", file, err)
		}
		if err := c.add(mf); err != nil {
			return nil, err
		}
	}

	if extensionFile != "" {
		mf, err := bundle.LoadMessageFile(extensionFile)
		if err != nil {
			return nil, fmt.Errorf("i18n: load %s: %w", extensionFile, err)
		}
		if err := c.add(mf); err != nil {
			return nil, err
		}
		logger.Info("greeting catalog extended", zap.String("file", extensionFile), zap.String("language", mf.Tag.String()))
	}

	c.codes = make([]string, 0, len(c.templates))
	for code := range c.templates {
		c.codes = append(c.codes, code)
	}
	sort.Strings(c.codes)
	c.buildLocalizers()

	logger.Debug("greeting catalog loaded", zap.Strings("languages", c.codes))
	return c, nil
}

func (c *Catalog) add(mf *i18n.MessageFile) error {
	code := mf.Tag.String()
	for _, msg := range mf.Messages {
		if msg.ID != GreetingMessageID {
			continue
		}
		if err := domain.ValidateTemplate(msg.Other); err != nil {
			return fmt.Errorf("i18n: %s: %q: %w", mf.Path, msg.Other, err)
		}
		c.templates[code] = msg.Other
		return nil
	}
	return fmt.Errorf("i18n: %s: %w for %q", mf.Path, domain.ErrMissingTemplate, code)
}

// Lookup returns the template for an exact, case-sensitive language code.
func (c *Catalog) Lookup(code string) (string, bool) {
	tmpl, ok := c.templates[code]
	return tmpl, ok
}

// Languages returns the catalog codes in sorted order.
func (c *Catalog) Languages() []string {
	out := make([]string, len(c.codes))
	copy(out, c.codes)
	return out
}
