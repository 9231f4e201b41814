package i18n

import (
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"greeter/internal/ports/output"
)

var _ output.Translator = (*Catalog)(nil)

// buildLocalizers creates one localizer per loaded locale, the default
// language first. Each one falls back to the default language for messages
// its own file lacks. Called once the bundle is complete.
func (c *Catalog) buildLocalizers() {
	tags := []language.Tag{c.defaultLanguage}
	for _, tag := range c.bundle.LanguageTags() {
		if tag != c.defaultLanguage {
			tags = append(tags, tag)
		}
	}

	c.localizers = make([]*i18n.Localizer, len(tags))
	for i, tag := range tags {
		c.localizers[i] = i18n.NewLocalizer(c.bundle, tag.String(), c.defaultLanguage.String())
	}
	c.matcher = language.NewMatcher(tags)
}

// localizerFor picks the localizer of the closest loaded locale, so "es-MX"
// is served by Spanish. Empty or unmatched locales get the default one.
func (c *Catalog) localizerFor(locale string) *i18n.Localizer {
	if locale == "" {
		return c.localizers[0]
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return c.localizers[0]
	}
	if _, i, conf := c.matcher.Match(tag); conf != language.No {
		return c.localizers[i]
	}
	return c.localizers[0]
}

// T renders the message identified by key in the closest locale, falling back
// to the default language and finally to the key itself.
func (c *Catalog) T(locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}

	msg, err := c.localizerFor(locale).Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		c.logger.Debug("localize failed", zap.String("key", key), zap.String("locale", locale), zap.Error(err))
		return key
	}
	return msg
}
