package domain

import (
	"errors"
	"testing"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		tmpl string
		in   string
		want string
	}{
		{"english", "Hello, {name}!", "Ada", "Hello, Ada!"},
		{"empty name", "Hello, {name}!", "", "Hello, !"},
		{"name containing placeholder", "Hello, {name}!", "{name}", "Hello, {name}!"},
		{"unescaped markup", "Hallo, {name}!", "<b>&</b>", "Hallo, <b>&</b>!"},
		{"full width punctuation", "你好，{name}！", "Go", "你好，Go！"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Render(tt.tmpl, tt.in); got != tt.want {
				t.Fatalf("Render(%q, %q) = %q, want %q", tt.tmpl, tt.in, got, tt.want)
			}
		})
	}
}

func TestValidateTemplate(t *testing.T) {
	if err := ValidateTemplate(FallbackTemplate); err != nil {
		t.Fatalf("fallback template rejected: %v", err)
	}
	for _, tmpl := range []string{"Hello!", "{name} and {name}", ""} {
		if err := ValidateTemplate(tmpl); !errors.Is(err, ErrInvalidTemplate) {
			t.Fatalf("ValidateTemplate(%q) = %v, want ErrInvalidTemplate", tmpl, err)
		}
	}
}
