package i18n

import (
	"errors"
	"strings"
	"testing"
)

func TestCatalogHasNineLanguages(t *testing.T) {
	langs := All()
	if len(langs) != 9 {
		t.Fatalf("Expected 9 languages, got %d", len(langs))
	}
	if langs[0].Code != "tr" {
		t.Errorf("Expected Turkish first, got %q", langs[0].Code)
	}

	seen := make(map[string]bool)
	for _, l := range langs {
		if seen[l.Code] {
			t.Errorf("Duplicate language code %q", l.Code)
		}
		seen[l.Code] = true
		if l.Name == "" || l.DisplayName == "" {
			t.Errorf("Language %q has empty name", l.Code)
		}
	}
}

func TestEveryLanguageDefinesEveryKey(t *testing.T) {
	for _, l := range All() {
		for _, key := range Keys {
			if !Has(l.Code, key) {
				t.Errorf("Language %q is missing key %q", l.Code, key)
			}
		}
	}
}

func TestTablesHaveNoExtraKeys(t *testing.T) {
	known := make(map[Key]bool, len(Keys))
	for _, k := range Keys {
		known[k] = true
	}
	for code, table := range translations {
		for k := range table {
			if !known[k] {
				t.Errorf("Language %q defines unknown key %q", code, k)
			}
		}
	}
}

func TestLookup(t *testing.T) {
	l, err := Lookup("ja")
	if err != nil {
		t.Fatalf("Lookup(ja) failed: %v", err)
	}
	if l != Japanese {
		t.Errorf("Expected Japanese, got %+v", l)
	}

	_, err = Lookup("xx")
	if !errors.Is(err, ErrUnknownLanguage) {
		t.Errorf("Expected ErrUnknownLanguage, got %v", err)
	}
}

func TestIndex(t *testing.T) {
	if got := Index("en"); got != 1 {
		t.Errorf("Index(en) = %d, want 1", got)
	}
	if got := Index("ru"); got != 8 {
		t.Errorf("Index(ru) = %d, want 8", got)
	}
	if got := Index("nope"); got != -1 {
		t.Errorf("Index(nope) = %d, want -1", got)
	}
}

func TestPrinterTranslates(t *testing.T) {
	p := NewPrinter("tr")
	if got := p.T(KeyPlayAgain); got != "Tekrar oyna" {
		t.Errorf("T(play_again) = %q, want %q", got, "Tekrar oyna")
	}
	if p.Language() != Turkish {
		t.Errorf("Expected Turkish printer, got %+v", p.Language())
	}
}

func TestPrinterFormatsArguments(t *testing.T) {
	p := NewPrinter("en")
	got := p.T(KeyToastScore, 50)
	if got != "+50 points!" {
		t.Errorf("T(toast_score, 50) = %q", got)
	}

	rules := p.T(KeyRules, 10, 50, 10)
	if !strings.Contains(rules, "10 points") || !strings.Contains(rules, "+50") {
		t.Errorf("Rules text not formatted: %q", rules)
	}
}

func TestPrinterFallsBackToEnglish(t *testing.T) {
	p := NewPrinter("xx")
	if p.Language() != English {
		t.Errorf("Expected English fallback, got %+v", p.Language())
	}
	if got := p.T(KeyGameOver); got != "Game over!" {
		t.Errorf("T(game_over) = %q", got)
	}
}
