package application

import (
	"fmt"
	"strconv"
	"time"

	"greeter/internal/domain"
	"greeter/internal/ports/output"
)

type GreetingService struct {
	catalog output.Catalog
	namer   output.LanguageNamer
	now     func() time.Time
}

func NewGreetingService(catalog output.Catalog, namer output.LanguageNamer) *GreetingService {
	return &GreetingService{
		catalog: catalog,
		namer:   namer,
		now:     time.Now,
	}
}

// WithClock replaces the time source used for greeting timestamps.
func (s *GreetingService) WithClock(now func() time.Time) *GreetingService {
	s.now = now
	return s
}

// Greet formats a greeting for name in language. Unknown codes use the
// English template; the requested code is still reported as-is.
func (s *GreetingService) Greet(name, language string) domain.Greeting {
	return domain.Greeting{
		Message:   domain.Render(s.template(language), name),
		Name:      name,
		Language:  language,
		Timestamp: strconv.FormatInt(s.now().Unix(), 10),
	}
}

func (s *GreetingService) template(language string) string {
	if tmpl, ok := s.catalog.Lookup(language); ok {
		return tmpl
	}
	if tmpl, ok := s.catalog.Lookup(domain.DefaultLanguage); ok {
		return tmpl
	}
	return domain.FallbackTemplate
}

func (s *GreetingService) Languages() []string {
	return s.catalog.Languages()
}

func (s *GreetingService) Language(code string) (domain.LanguageInfo, error) {
	tmpl, ok := s.catalog.Lookup(code)
	if !ok {
		return domain.LanguageInfo{}, fmt.Errorf("%w: %q", domain.ErrLanguageNotSupported, code)
	}
	english, native := s.namer.Names(code)
	return domain.LanguageInfo{
		Code:       code,
		Name:       english,
		NativeName: native,
		Template:   tmpl,
		Example:    domain.Render(tmpl, domain.DefaultName),
	}, nil
}
