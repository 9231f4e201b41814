package input

import "greeter/internal/domain"

type GreetingUseCase interface {
	Greet(name, language string) domain.Greeting
	Languages() []string
	Language(code string) (domain.LanguageInfo, error)
}
