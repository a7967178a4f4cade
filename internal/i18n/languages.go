// Package i18n holds the language catalog and the UI string tables.
// Strings are served through golang.org/x/text message printers so number
// formatting follows the selected locale.
package i18n

import (
	"errors"
	"fmt"

	"golang.org/x/text/language"
)

// ErrUnknownLanguage is returned when a code is not in the catalog.
var ErrUnknownLanguage = errors.New("i18n: unknown language")

// Language is one selectable UI language.
type Language struct {
	Code        string // BCP 47 base code, also the stored preference value
	Name        string
	DisplayName string
}

// Tag returns the x/text tag for the language.
func (l Language) Tag() language.Tag {
	return language.Make(l.Code)
}

// Catalog entries in display order.
var (
	Turkish    = Language{Code: "tr", Name: "Türkçe", DisplayName: "Türkçe"}
	English    = Language{Code: "en", Name: "English", DisplayName: "English"}
	Chinese    = Language{Code: "zh", Name: "中文", DisplayName: "中文"}
	Japanese   = Language{Code: "ja", Name: "日本語", DisplayName: "日本語"}
	Spanish    = Language{Code: "es", Name: "Español", DisplayName: "Español"}
	Korean     = Language{Code: "ko", Name: "한국어", DisplayName: "한국어"}
	Indonesian = Language{Code: "id", Name: "Bahasa Indonesia", DisplayName: "Bahasa Indonesia"}
	Vietnamese = Language{Code: "vi", Name: "Tiếng Việt", DisplayName: "Tiếng Việt"}
	Russian    = Language{Code: "ru", Name: "Русский", DisplayName: "Русский"}
)

var all = []Language{
	Turkish, English, Chinese, Japanese, Spanish,
	Korean, Indonesian, Vietnamese, Russian,
}

// All returns a copy of the catalog in display order.
func All() []Language {
	out := make([]Language, len(all))
	copy(out, all)
	return out
}

// Lookup finds a language by code.
func Lookup(code string) (Language, error) {
	for _, l := range all {
		if l.Code == code {
			return l, nil
		}
	}
	return Language{}, fmt.Errorf("%w: %q", ErrUnknownLanguage, code)
}

// Index returns the catalog position of code, or -1.
func Index(code string) int {
	for i, l := range all {
		if l.Code == code {
			return i
		}
	}
	return -1
}
